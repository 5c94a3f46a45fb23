package suggest

import (
	"math/rand"
	"testing"

	"pwd-advisor/pkg/strength"
)

func hasAllClasses(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func TestStrengthenShortInputFallback(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	for _, input := range []string{"", "a", "ab"} {
		if got := s.Strengthen(input); got != fallback {
			t.Errorf("Strengthen(%q) = %q, want the fixed fallback", input, got)
		}
	}
}

func TestStrengthenPostConditions(t *testing.T) {
	s := New(rand.New(rand.NewSource(42)))
	inputs := []string{"abc", "summer", "Summer2024", "monkey", "0000", "!!!!!!", "correct horse"}

	for _, input := range inputs {
		for i := 0; i < 25; i++ {
			got := s.Strengthen(input)
			if len(got) < minLength {
				t.Errorf("Strengthen(%q) = %q, length %d below floor %d", input, got, len(got), minLength)
			}
			if !hasAllClasses(got) {
				t.Errorf("Strengthen(%q) = %q, missing a character class", input, got)
			}
		}
	}
}

func TestStrengthenProducesVariety(t *testing.T) {
	s := New(rand.New(rand.NewSource(7)))
	outputs := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		outputs[s.Strengthen("Summer2024")] = struct{}{}
	}
	if len(outputs) < 2 {
		t.Errorf("20 runs yielded %d distinct outputs, want at least 2", len(outputs))
	}
}

func TestSuggestionsClearQualityBar(t *testing.T) {
	s := New(rand.New(rand.NewSource(99)))
	got := s.Suggestions("Summer2024", 3)

	if len(got) == 0 {
		t.Fatal("want at least one qualifying suggestion")
	}
	if len(got) > 3 {
		t.Fatalf("want at most 3 suggestions, got %d", len(got))
	}

	seen := make(map[string]struct{})
	for _, candidate := range got {
		if score := strength.Score(candidate); score <= QualityBar {
			t.Errorf("suggestion %q scored %d, want above %d", candidate, score, QualityBar)
		}
		if _, dup := seen[candidate]; dup {
			t.Errorf("duplicate suggestion %q", candidate)
		}
		seen[candidate] = struct{}{}
	}
}

func TestSuggestionsZeroCount(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	if got := s.Suggestions("Summer2024", 0); got != nil {
		t.Errorf("want nil for zero count, got %v", got)
	}
}

func TestStrengthenImprovesScore(t *testing.T) {
	// Statistical, not absolute: strengthening a common word must beat its
	// original score in at least 90 of 100 runs.
	s := New(rand.New(rand.NewSource(123)))
	words := []string{
		"sunshine", "princess", "football", "baseball", "superman",
		"welcome", "monkey", "dragon", "shadow", "secret",
		"freedom", "whatever", "letmein", "iloveyou", "michael",
		"summer", "winter", "master", "batman", "trustno1",
	}

	improved, total := 0, 0
	for _, word := range words {
		before := strength.Score(word)
		for i := 0; i < 5; i++ {
			total++
			if strength.Score(s.Strengthen(word)) > before {
				improved++
			}
		}
	}

	if improved*100 < total*90 {
		t.Errorf("strengthening improved %d of %d runs, want at least 90%%", improved, total)
	}
}

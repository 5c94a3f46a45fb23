package strength

import (
	"strings"
	"testing"
)

func TestScoreBounds(t *testing.T) {
	cases := []string{
		"",
		"a",
		"password",
		"12345678",
		"aB3!aB3!",
		"correct horse battery staple",
		strings.Repeat("Xk9#mQ2!vL", 20),
		"päss wörd",
	}

	for _, password := range cases {
		got := Score(password)
		if got < 0 || got > 100 {
			t.Errorf("Score(%q) = %d, want within [0, 100]", password, got)
		}
	}
}

func TestScoreEmpty(t *testing.T) {
	if got := Score(""); got != 0 {
		t.Errorf("Score of empty password should be 0, got %d", got)
	}
}

func TestScoreExact(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		// trivial + letters only + common exact drive it to the floor
		{"password", 0},
		{"qwerty", 0},
		// digits only + keyboard walk + common exact
		{"12345678", 0},
		// repetition penalty, two classes
		{"aaaa1111", 41},
		// full variety, no penalties
		{"aB3!aB3!", 86},
		{"Tr0ub4dor&3", 92},
	}

	for _, tc := range cases {
		if got := Score(tc.password); got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.password, got, tc.want)
		}
	}
}

func TestScoreVarietyBeatsRepetition(t *testing.T) {
	repetitive := Score("aaaa1111")
	varied := Score("aB3!aB3!")
	if repetitive >= varied {
		t.Errorf("repetitive password scored %d, varied scored %d, want repetitive < varied", repetitive, varied)
	}
}

func TestScoreAddingUnusedClassNeverLowers(t *testing.T) {
	cases := []struct {
		base, extended string
	}{
		{"abcdefgh", "abcdefgh7"},
		{"summer", "summer8"},
		{"monkeybars", "monkeybars!"},
		{"98347621", "98347621x"},
	}

	for _, tc := range cases {
		base, extended := Score(tc.base), Score(tc.extended)
		if extended < base {
			t.Errorf("Score(%q) = %d dropped below Score(%q) = %d", tc.extended, extended, tc.base, base)
		}
	}
}

func TestScoreLeetNormalization(t *testing.T) {
	// "p4ssw0rd" normalizes back to "password" and must be punished like it.
	leet := Score("p4ssw0rd")
	honest := Score("xkqmvwrz")
	if leet >= honest {
		t.Errorf("leet-disguised common password scored %d, random letters scored %d", leet, honest)
	}
}

func TestScoreKeyboardWalk(t *testing.T) {
	walked := Score("Xzxcvb9!")
	clean := Score("Xwkrtm9!")
	if walked >= clean {
		t.Errorf("keyboard walk scored %d, clean password scored %d", walked, clean)
	}
}

func TestHasKeyboardWalk(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"QWERTYuiop", true},
		{"xx12345xx", true},
		{"zebra", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := HasKeyboardWalk(tc.password); got != tc.want {
			t.Errorf("HasKeyboardWalk(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestIsCommonPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"p4ssw0rd", true},
		{"letmein", true},
		{"Xk9#mQ2!vL", false},
	}

	for _, tc := range cases {
		if got := IsCommonPassword(tc.password); got != tc.want {
			t.Errorf("IsCommonPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

package cracktime

import (
	"strings"
	"testing"
)

func TestCharspace(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 26},
		{"ABC", 26},
		{"abcABC", 52},
		{"abc123", 36},
		{"abc!", 59},
		{"Ab1!", 95},
	}

	for _, tc := range cases {
		if got := Charspace(tc.password); got != tc.want {
			t.Errorf("Charspace(%q) = %d, want %d", tc.password, got, tc.want)
		}
	}
}

func TestSimulateHashcatShape(t *testing.T) {
	results := SimulateHashcat("Tr0ub4dor&3")
	if len(results) != 3 {
		t.Fatalf("want 3 GPUs, got %d", len(results))
	}

	for _, gpu := range results {
		if gpu.Name == "" {
			t.Errorf("GPU name should not be empty")
		}
		if len(gpu.Algorithms) != 4 {
			t.Fatalf("GPU %s: want 4 algorithms, got %d", gpu.Name, len(gpu.Algorithms))
		}
		for _, algo := range gpu.Algorithms {
			if algo.Display == "" || strings.Contains(algo.Display, "NaN") {
				t.Errorf("GPU %s %s rendered %q", gpu.Name, algo.Algorithm, algo.Display)
			}
			if algo.Seconds < 0 {
				t.Errorf("GPU %s %s: negative seconds %f", gpu.Name, algo.Algorithm, algo.Seconds)
			}
		}
	}
}

func TestSimulateHashcatSlowerHashTakesLonger(t *testing.T) {
	// bcrypt rates are orders of magnitude below NTLM on every card.
	for _, gpu := range SimulateHashcat("Secret42!") {
		var ntlm, bcrypt float64
		for _, algo := range gpu.Algorithms {
			switch algo.Algorithm {
			case "NTLM":
				ntlm = algo.Seconds
			case "bcrypt":
				bcrypt = algo.Seconds
			}
		}
		if bcrypt <= ntlm {
			t.Errorf("GPU %s: bcrypt (%f) should take longer than NTLM (%f)", gpu.Name, bcrypt, ntlm)
		}
	}
}

func TestSimulateHashcatOverflowRendersSentinel(t *testing.T) {
	// charspace^length overflows float64 well before 300 characters; the
	// display string must fall back to the sentinel, never NaN.
	results := SimulateHashcat(strings.Repeat("Ab1!x", 60))
	for _, gpu := range results {
		for _, algo := range gpu.Algorithms {
			if algo.Display != "Infinite" {
				t.Errorf("GPU %s %s: want %q, got %q", gpu.Name, algo.Algorithm, "Infinite", algo.Display)
			}
		}
	}
}

func TestSimulateHashcatEmptyPassword(t *testing.T) {
	for _, gpu := range SimulateHashcat("") {
		for _, algo := range gpu.Algorithms {
			if algo.Seconds != 0 {
				t.Errorf("empty password should take 0 seconds, got %f", algo.Seconds)
			}
		}
	}
}

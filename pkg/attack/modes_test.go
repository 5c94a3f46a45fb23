package attack

import "testing"

func TestSimulateModeSet(t *testing.T) {
	modes := Simulate("whatever", 50)
	want := []string{"Brute Force", "Dictionary Attack", "Rainbow Table", "Hybrid Attack"}
	if len(modes) != len(want) {
		t.Fatalf("want %d modes, got %d", len(want), len(modes))
	}
	for i, mode := range modes {
		if mode.Name != want[i] {
			t.Errorf("mode %d = %q, want %q", i, mode.Name, want[i])
		}
		if mode.Description == "" {
			t.Errorf("mode %q has no description", mode.Name)
		}
		if mode.EstimatedTime == "" {
			t.Errorf("mode %q has no estimated time", mode.Name)
		}
	}
}

func TestSimulateEffectivenessExtremes(t *testing.T) {
	for _, mode := range Simulate("anything", 0) {
		if mode.Effectiveness != EffectivenessVeryHigh {
			t.Errorf("score 0: mode %q effectiveness = %q, want %q", mode.Name, mode.Effectiveness, EffectivenessVeryHigh)
		}
	}
	for _, mode := range Simulate("anything", 100) {
		if mode.Effectiveness != EffectivenessLow {
			t.Errorf("score 100: mode %q effectiveness = %q, want %q", mode.Name, mode.Effectiveness, EffectivenessLow)
		}
	}
}

func TestSimulateEstimatedTimes(t *testing.T) {
	cases := []struct {
		score int
		name  string
		want  string
	}{
		// brute force: 10^(score/10)
		{10, "Brute Force", "10 seconds"},
		{50, "Brute Force", "1 days"},
		// dictionary: 10^(score/20)
		{100, "Dictionary Attack", "1 days"},
		{40, "Dictionary Attack", "2 minutes"},
	}

	for _, tc := range cases {
		for _, mode := range Simulate("x", tc.score) {
			if mode.Name == tc.name && mode.EstimatedTime != tc.want {
				t.Errorf("%s at score %d = %q, want %q", tc.name, tc.score, mode.EstimatedTime, tc.want)
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := Simulate("one", 73)
	b := Simulate("two", 73)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("mode %d differs between identical scores: %+v vs %+v", i, a[i], b[i])
		}
	}
}

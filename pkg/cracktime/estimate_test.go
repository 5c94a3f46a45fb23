package cracktime

import (
	"math"
	"strings"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0 seconds"},
		{59, "59 seconds"},
		{60, "1 minutes"},
		{120, "2 minutes"},
		{3600, "1 hours"},
		{86400, "1 days"},
		{31_536_000, "1 years"},
		{400 * 31_536_000, "400 years"},
		{2000 * 31_536_000, "Millions of years"},
		{-5, "0 seconds"},
		{math.NaN(), "Undefinable"},
		{math.Inf(1), "Infinite"},
		{math.Inf(-1), "Infinite"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestEstimateEmptyPassword(t *testing.T) {
	got := Estimate("", 0)
	if got.Regular != "Instantly" || got.FastComputer != "Instantly" || got.SuperComputer != "Instantly" {
		t.Errorf("empty password should crack instantly, got %+v", got)
	}
}

func TestEstimateScoreBrackets(t *testing.T) {
	// Eight character passwords keep the length multiplier at its floor of 1.
	cases := []struct {
		score       int
		wantRegular string
	}{
		{10, "10 seconds"},
		{30, "17 minutes"},
		{50, "1 days"},
		{85, "Millions of years"},
	}

	for _, tc := range cases {
		got := Estimate("abcdwxyz", tc.score)
		if got.Regular != tc.wantRegular {
			t.Errorf("Estimate(score=%d).Regular = %q, want %q", tc.score, got.Regular, tc.wantRegular)
		}
	}
}

func TestEstimateTiersNeverRenderNaN(t *testing.T) {
	// Long, high-scoring passwords overflow the naive scaling math; the
	// output must still be presentable.
	got := Estimate(strings.Repeat("Xk9#m", 40), 100)
	for _, display := range []string{got.Regular, got.FastComputer, got.SuperComputer} {
		if display == "" || strings.Contains(display, "NaN") || strings.Contains(display, "Inf ") {
			t.Errorf("tier rendered as %q", display)
		}
	}
}

func TestEstimateLengthDoubles(t *testing.T) {
	// Nine characters doubles the ten second floor bracket.
	got := Estimate("abcdwxyzk", 10)
	if got.Regular != "20 seconds" {
		t.Errorf("nine character estimate = %q, want %q", got.Regular, "20 seconds")
	}

	// Characters under eight never reduce below the baseline.
	short := Estimate("abc", 10)
	if short.Regular != "10 seconds" {
		t.Errorf("short password estimate = %q, want %q", short.Regular, "10 seconds")
	}
}

func TestEstimateFasterTiers(t *testing.T) {
	got := Estimate("abcdwxyz", 50)
	if got.Regular != "1 days" {
		t.Errorf("regular = %q, want 1 days", got.Regular)
	}
	if got.FastComputer != "10 seconds" {
		t.Errorf("fastComputer = %q, want 10 seconds", got.FastComputer)
	}
	if got.SuperComputer != "0 seconds" {
		t.Errorf("superComputer = %q, want 0 seconds", got.SuperComputer)
	}
}

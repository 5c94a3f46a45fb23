// Package cracktime turns a password and its strength score into the human
// readable "time to crack" figures shown to the user. It holds two separate
// models on purpose: a coarse score-bracket estimate for the three attacker
// tiers, and a keyspace-exhaustion breakdown per GPU and hash algorithm.
// The two are not reconciled; downstream displays present both.
package cracktime

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Speed-up factors relative to a regular home computer.
const (
	fastComputerFactor  = 10_000
	superComputerFactor = 1_000_000
)

// Result is the three-tier crack time for a single password.
type Result struct {
	Regular       string `json:"regular"`
	FastComputer  string `json:"fastComputer"`
	SuperComputer string `json:"superComputer"`
}

// Estimate computes the score-bracket based crack time. The base seconds are
// picked from the score bracket, then doubled for every character beyond
// eight. Short passwords never drop below the bracket baseline.
func Estimate(password string, score int) Result {
	if password == "" {
		return Result{
			Regular:       "Instantly",
			FastComputer:  "Instantly",
			SuperComputer: "Instantly",
		}
	}

	base := baseSeconds(score)
	length := utf8.RuneCountInString(password)
	multiplier := math.Max(1, math.Pow(2, float64(length-8)))
	seconds := base * multiplier

	return Result{
		Regular:       FormatDuration(seconds),
		FastComputer:  FormatDuration(seconds / fastComputerFactor),
		SuperComputer: FormatDuration(seconds / superComputerFactor),
	}
}

func baseSeconds(score int) float64 {
	switch {
	case score < 20:
		return 10
	case score < 40:
		return 1e3
	case score < 60:
		return 1e5
	case score < 80:
		return 1e8
	case score < 90:
		return 1e11
	default:
		return 1e15
	}
}

// Duration brackets in seconds.
const (
	minute = 60
	hour   = 3600
	day    = 86400
	year   = 31_536_000
)

// FormatDuration renders seconds as a rough human readable span. Non-finite
// input must never leak into user-visible text: the keyspace math overflows
// float64 for long, high-charspace passwords.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) {
		return "Undefinable"
	}
	if math.IsInf(seconds, 0) {
		return "Infinite"
	}
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < year:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < 10*year:
		return fmt.Sprintf("%.0f years", seconds/year)
	case seconds < 1000*year:
		return fmt.Sprintf("%.0f years", seconds/year)
	default:
		return "Millions of years"
	}
}

package strength

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Score rates a password from 0 (hopeless) to 100 with an additive point
// system: length and character variety earn points, weak patterns lose them.
// This is a heuristic, not an entropy calculation. Every penalty is checked
// independently and they stack; the result is clamped to [0, 100].
func Score(password string) int {
	if password == "" {
		return 0
	}

	score := math.Min(30, float64(utf8.RuneCountInString(password))*2)

	upper, lower, digit, special := classes(password)
	variety := 0
	for _, present := range []bool{upper, lower, digit, special} {
		if present {
			score += 10
			variety++
		}
	}
	score += 7.5 * float64(variety)

	if hasRepeatRun(password) {
		score -= 10
	}
	if isTrivial(password) {
		score -= 30
	}
	if digit && !upper && !lower && !special {
		score -= 15
	}
	if (upper || lower) && !digit && !special {
		score -= 10
	}
	if HasKeyboardWalk(password) {
		score -= 15
	}
	score -= commonPasswordPenalty(password)

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

// classes reports which of the four character classes appear. Anything
// outside ASCII letters and digits counts as special.
func classes(password string) (upper, lower, digit, special bool) {
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
	return
}

// hasRepeatRun reports a run of three or more identical characters.
func hasRepeatRun(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

func isTrivial(password string) bool {
	lower := strings.ToLower(password)
	for _, w := range trivialPasswords {
		if lower == w {
			return true
		}
	}
	return false
}

// HasKeyboardWalk reports whether the password contains a known keyboard
// walk substring, case-insensitively.
func HasKeyboardWalk(password string) bool {
	lower := strings.ToLower(password)
	for _, walk := range keyboardWalks {
		if strings.Contains(lower, walk) {
			return true
		}
	}
	return false
}

// IsCommonPassword reports whether the password, or its leet-normalized
// form, exactly matches a trivial or common dictionary entry.
func IsCommonPassword(password string) bool {
	if isTrivial(password) {
		return true
	}
	lower := strings.ToLower(password)
	norm := normalizeLeet(lower)
	for _, entry := range commonPasswords {
		if lower == entry || norm == entry {
			return true
		}
	}
	return false
}

// commonPasswordPenalty checks the password and its leet-normalized form
// against the common password list. An exact dictionary hit is punished
// harder than a substring hit.
func commonPasswordPenalty(password string) float64 {
	lower := strings.ToLower(password)
	norm := normalizeLeet(lower)

	substring := false
	for _, entry := range commonPasswords {
		if lower == entry || norm == entry {
			return 30
		}
		if strings.Contains(lower, entry) || strings.Contains(norm, entry) {
			substring = true
		}
	}
	if substring {
		return 20
	}
	return 0
}

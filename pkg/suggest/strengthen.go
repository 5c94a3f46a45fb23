// Package suggest turns a weak password into stronger, still recognizable
// candidates. The transformation is deliberately random so a "regenerate"
// action keeps producing fresh variants; the random source is injected so
// tests can seed it. No cryptographic claim is made for this randomness.
package suggest

import (
	"math/rand"
	"strings"
	"time"

	"pwd-advisor/pkg/strength"
)

// fallback is returned for inputs too short to transform.
const fallback = "Str0ng#P@ss!23"

// minLength is the floor every strengthened password is padded up to.
const minLength = 12

// padding excludes visually ambiguous glyphs (I, l, 0, O, 1).
const padding = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// Strengthener produces stronger candidate passwords from user input.
type Strengthener struct {
	rnd *rand.Rand
}

// New builds a Strengthener around the given random source. A nil source
// falls back to a time-seeded one.
func New(rnd *rand.Rand) *Strengthener {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Strengthener{rnd: rnd}
}

// Strengthen transforms a password into a longer, stronger candidate:
// leetspeak substitutions and case flips are applied probabilistically so the
// input stays recognizable, then special characters are inserted and the
// result padded to the minimum length. Repeated calls give different outputs.
// A final patch step guarantees every character class is present; the
// transformation alone does not.
func (s *Strengthener) Strengthen(password string) string {
	if len(password) < 3 {
		return fallback
	}

	runes := capitalizeWordRuns([]rune(password))

	out := make([]rune, 0, len(runes)+8)
	for _, r := range runes {
		lower := toLower(r)
		if sub, ok := strength.LeetSubstitutions[lower]; ok && s.rnd.Float64() > 0.3 {
			out = append(out, sub)
			continue
		}
		if r >= 'a' && r <= 'z' && s.rnd.Float64() > 0.5 {
			out = append(out, r-'a'+'A')
			continue
		}
		out = append(out, r)
	}

	// Work 1-4 special characters into random positions.
	for i := 0; i < 1+s.rnd.Intn(4); i++ {
		pos := s.rnd.Intn(len(out) + 1)
		special := strength.SpecialCharacters[s.rnd.Intn(len(strength.SpecialCharacters))]
		out = append(out[:pos], append([]rune{special}, out[pos:]...)...)
	}

	for len(out) < minLength {
		out = append(out, rune(padding[s.rnd.Intn(len(padding))]))
	}

	return patchClasses(string(out))
}

// capitalizeWordRuns uppercases the first letter of every run of three or
// more letters, keeping word-like anchors of the original input readable.
func capitalizeWordRuns(runes []rune) []rune {
	out := make([]rune, len(runes))
	copy(out, runes)

	runStart := -1
	for i := 0; i <= len(out); i++ {
		letter := i < len(out) && isLetter(out[i])
		if letter && runStart < 0 {
			runStart = i
		}
		if !letter && runStart >= 0 {
			if i-runStart >= 3 {
				first := out[runStart]
				if first >= 'a' && first <= 'z' {
					out[runStart] = first - 'a' + 'A'
				}
			}
			runStart = -1
		}
	}
	return out
}

// patchClasses appends a fixed fallback character for every character class
// still missing. This is the post-condition step callers rely on.
func patchClasses(password string) string {
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

	var b strings.Builder
	b.WriteString(password)
	if !upper {
		b.WriteByte('Q')
	}
	if !lower {
		b.WriteByte('q')
	}
	if !digit {
		b.WriteByte('7')
	}
	if !special {
		b.WriteByte('#')
	}
	return b.String()
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// Package attack models how well the classic cracking strategies would fare
// against a password. The deterministic part maps the strength score to an
// effectiveness label and an estimated time per attack mode; the live
// simulation in live.go is a timer-driven animation driver on top of it.
package attack

import (
	"math"

	"pwd-advisor/pkg/cracktime"
)

// Effectiveness labels, from the attacker's point of view.
const (
	EffectivenessLow      = "Low"
	EffectivenessMedium   = "Medium"
	EffectivenessHigh     = "High"
	EffectivenessVeryHigh = "Very High"
)

// Mode is the outcome of simulating one attack strategy.
type Mode struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Effectiveness string `json:"effectiveness"`
	EstimatedTime string `json:"estimatedTime"`
}

// modeSpec defines one strategy as two pure functions of the score: the
// effectiveness bracket thresholds and the exponent divisor of the
// 10^(score/divisor) time model.
type modeSpec struct {
	name        string
	description string
	// score below these marks Very High / High / Medium, else Low
	veryHighBelow int
	highBelow     int
	mediumBelow   int
	timeDivisor   float64
}

var modeSpecs = []modeSpec{
	{
		name:          "Brute Force",
		description:   "Systematically tries every possible character combination",
		veryHighBelow: 30,
		highBelow:     50,
		mediumBelow:   75,
		timeDivisor:   10,
	},
	{
		name:          "Dictionary Attack",
		description:   "Tries words from password lists, dictionaries and previous breaches",
		veryHighBelow: 40,
		highBelow:     60,
		mediumBelow:   80,
		timeDivisor:   20,
	},
	{
		name:          "Rainbow Table",
		description:   "Looks the hash up in precomputed hash-to-plaintext tables",
		veryHighBelow: 35,
		highBelow:     55,
		mediumBelow:   75,
		timeDivisor:   15,
	},
	{
		name:          "Hybrid Attack",
		description:   "Combines dictionary words with brute-forced digits and symbols",
		veryHighBelow: 45,
		highBelow:     65,
		mediumBelow:   85,
		timeDivisor:   12,
	},
}

func (m modeSpec) effectiveness(score int) string {
	switch {
	case score < m.veryHighBelow:
		return EffectivenessVeryHigh
	case score < m.highBelow:
		return EffectivenessHigh
	case score < m.mediumBelow:
		return EffectivenessMedium
	default:
		return EffectivenessLow
	}
}

func (m modeSpec) estimatedSeconds(score int) float64 {
	return math.Pow(10, float64(score)/m.timeDivisor)
}

// Simulate evaluates the fixed set of attack modes against a score. The
// password itself does not change the deterministic outcome; it is accepted
// to mirror the live simulation signature.
func Simulate(password string, score int) []Mode {
	modes := make([]Mode, 0, len(modeSpecs))
	for _, spec := range modeSpecs {
		modes = append(modes, Mode{
			Name:          spec.name,
			Description:   spec.description,
			Effectiveness: spec.effectiveness(score),
			EstimatedTime: cracktime.FormatDuration(spec.estimatedSeconds(score)),
		})
	}
	return modes
}

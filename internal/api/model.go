package api

import (
	"pwd-advisor/pkg/attack"
	"pwd-advisor/pkg/cracktime"
)

type analyzeRequest struct {
	Password string      `json:"password" binding:"required"`
	Profile  *profileDTO `json:"profile"`
}

type profileDTO struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
}

type analyzeResponse struct {
	Score       int                     `json:"score"`
	Issues      []string                `json:"issues"`
	CrackTime   cracktime.Result        `json:"crackTime"`
	Hashcat     []cracktime.GPUEstimate `json:"hashcatResults"`
	AttackModes []attack.Mode           `json:"attackModes"`
	Zxcvbn      *zxcvbnStrength         `json:"zxcvbn,omitempty"`
}

// zxcvbnStrength is a second opinion from the zxcvbn estimator, shown next
// to the heuristic score.
type zxcvbnStrength struct {
	Score            int     `json:"score"`
	CrackTime        float64 `json:"crackTime"`
	CrackTimeDisplay string  `json:"crackTimeDisplay"`
}

type suggestRequest struct {
	Password string `json:"password" binding:"required"`
	Count    int    `json:"count"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

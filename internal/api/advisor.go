// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"crypto/sha1"
	"encoding/hex"
	"github.com/dgraph-io/ristretto"
	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"
	"net/http"
	"time"

	"pwd-advisor/pkg/attack"
	"pwd-advisor/pkg/cracktime"
	"pwd-advisor/pkg/strength"
	"pwd-advisor/pkg/suggest"
)

const (
	cacheTTL      = 5 * time.Minute
	maxSuggestion = 10
)

type advisorApi struct {
	cache        *ristretto.Cache
	strengthener *suggest.Strengthener
}

func (a *advisorApi) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := strength.Profile{}
	if req.Profile != nil {
		profile = strength.Profile{
			FullName:    req.Profile.FullName,
			Email:       req.Profile.Email,
			DateOfBirth: req.Profile.DateOfBirth,
		}
	}

	// Responses are cached under a digest so the raw password never lives
	// beyond the request.
	key := cacheKey(req.Password, profile)
	if cached, ok := a.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached.(analyzeResponse))
		return
	}

	score := strength.Score(req.Password)
	entropy := zxcvbn.PasswordStrength(req.Password, nil)

	resp := analyzeResponse{
		Score:       score,
		Issues:      strength.CheckPersonalData(req.Password, profile),
		CrackTime:   cracktime.Estimate(req.Password, score),
		Hashcat:     cracktime.SimulateHashcat(req.Password),
		AttackModes: attack.Simulate(req.Password, score),
		Zxcvbn: &zxcvbnStrength{
			Score:            entropy.Score,
			CrackTime:        entropy.CrackTime,
			CrackTimeDisplay: entropy.CrackTimeDisplay,
		},
	}
	if resp.Issues == nil {
		resp.Issues = []string{}
	}

	a.cache.SetWithTTL(key, resp, 1, cacheTTL)
	c.JSON(http.StatusOK, resp)
}

func (a *advisorApi) suggestPasswords(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.Count
	if count <= 0 {
		count = 3
	}
	if count > maxSuggestion {
		count = maxSuggestion
	}

	// Never cached: regenerating is supposed to give fresh candidates.
	suggestions := a.strengthener.Suggestions(req.Password, count)
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, suggestResponse{Suggestions: suggestions})
}

func cacheKey(password string, profile strength.Profile) string {
	h := sha1.New()
	for _, part := range []string{password, profile.FullName, profile.Email, profile.DateOfBirth} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func RegisterAdvisorApi(group *gin.RouterGroup) error {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1e4,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	a := &advisorApi{
		cache:        cache,
		strengthener: suggest.New(nil),
	}

	group.POST("/analyze", a.analyze)
	group.POST("/suggest", a.suggestPasswords)

	return nil
}

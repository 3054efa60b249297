package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChallengeType selects which user total a challenge is measured against.
type ChallengeType string

const (
	ChallengeTypeWorkouts ChallengeType = "workouts"
	ChallengeTypeMinutes  ChallengeType = "minutes"
	ChallengeTypeCalories ChallengeType = "calories"
)

// Valid reports whether t is a known metric.
func (t ChallengeType) Valid() bool {
	switch t {
	case ChallengeTypeWorkouts, ChallengeTypeMinutes, ChallengeTypeCalories:
		return true
	}
	return false
}

// ParseChallengeType normalises raw input into a ChallengeType.
func ParseChallengeType(raw string) (ChallengeType, error) {
	t := ChallengeType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown challenge type %q", ErrValidation, raw)
	}
	return t, nil
}

// Challenge is a shared goal tracked against a numeric target.
//
// Current is persisted for compatibility but nothing increments it; progress is
// derived from the live user totals.
type Challenge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Goal         int           `json:"goal"`
	Current      int           `json:"current"`
	Participants []string      `json:"participants"`
	EndDate      time.Time     `json:"endDate"`
	Type         ChallengeType `json:"type"`
}

// ChallengePatch carries a partial challenge update. Nil fields are left untouched.
type ChallengePatch struct {
	Name         *string
	Description  *string
	Goal         *int
	Current      *int
	Participants []string
	EndDate      *time.Time
	Type         *ChallengeType
}

// Merge returns c with every non-nil patch field applied.
func (p ChallengePatch) Merge(c Challenge) Challenge {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Goal != nil {
		c.Goal = *p.Goal
	}
	if p.Current != nil {
		c.Current = *p.Current
	}
	if p.Participants != nil {
		c.Participants = append([]string(nil), p.Participants...)
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	return c
}

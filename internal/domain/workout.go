package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkoutType is the exercise category of a workout.
type WorkoutType string

const (
	WorkoutTypeCardio      WorkoutType = "cardio"
	WorkoutTypeStrength    WorkoutType = "strength"
	WorkoutTypeFlexibility WorkoutType = "flexibility"
	WorkoutTypeSports      WorkoutType = "sports"
	WorkoutTypeOther       WorkoutType = "other"
)

// WorkoutTypes lists every category in display order.
var WorkoutTypes = []WorkoutType{
	WorkoutTypeCardio,
	WorkoutTypeStrength,
	WorkoutTypeFlexibility,
	WorkoutTypeSports,
	WorkoutTypeOther,
}

// Valid reports whether t is a known category.
func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutTypeCardio, WorkoutTypeStrength, WorkoutTypeFlexibility, WorkoutTypeSports, WorkoutTypeOther:
		return true
	}
	return false
}

// ParseWorkoutType normalises raw input into a WorkoutType.
func ParseWorkoutType(raw string) (WorkoutType, error) {
	t := WorkoutType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown workout type %q", ErrValidation, raw)
	}
	return t, nil
}

// Intensity is the effort level of a workout.
type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// Intensities lists every level from lowest to highest.
var Intensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh, IntensityExtreme}

// Valid reports whether i is a known level.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh, IntensityExtreme:
		return true
	}
	return false
}

// ParseIntensity normalises raw input into an Intensity.
func ParseIntensity(raw string) (Intensity, error) {
	i := Intensity(strings.ToLower(strings.TrimSpace(raw)))
	if !i.Valid() {
		return "", fmt.Errorf("%w: unknown intensity %q", ErrValidation, raw)
	}
	return i, nil
}

// Workout represents one logged exercise session. Records are immutable once
// stored; Calories is nil when no estimate was computed.
type Workout struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Type      WorkoutType `json:"type"`
	Name      string      `json:"name"`
	Duration  int         `json:"duration"`
	Intensity Intensity   `json:"intensity"`
	Calories  *int        `json:"calories,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	Date      time.Time   `json:"date"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CaloriesOrZero returns the stored estimate, treating an absent value as 0.
func (w Workout) CaloriesOrZero() int {
	if w.Calories == nil {
		return 0
	}
	return *w.Calories
}

// Cursor models the pagination token for workout listings.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

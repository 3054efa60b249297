// Package calories estimates energy expenditure from MET (Metabolic Equivalent
// of Task) values keyed by workout type and intensity.
package calories

import (
	"math"

	"example.com/fitpulse/internal/domain"
)

// DefaultWeightKg is the body weight used when none is supplied.
const DefaultWeightKg = 70.0

var metValues = map[domain.WorkoutType]map[domain.Intensity]float64{
	domain.WorkoutTypeCardio: {
		domain.IntensityLow:     3.5,
		domain.IntensityMedium:  7.0,
		domain.IntensityHigh:    10.0,
		domain.IntensityExtreme: 14.0,
	},
	domain.WorkoutTypeStrength: {
		domain.IntensityLow:     3.0,
		domain.IntensityMedium:  5.0,
		domain.IntensityHigh:    6.0,
		domain.IntensityExtreme: 8.0,
	},
	domain.WorkoutTypeFlexibility: {
		domain.IntensityLow:     2.5,
		domain.IntensityMedium:  3.0,
		domain.IntensityHigh:    4.0,
		domain.IntensityExtreme: 5.0,
	},
	domain.WorkoutTypeSports: {
		domain.IntensityLow:     4.0,
		domain.IntensityMedium:  6.0,
		domain.IntensityHigh:    8.0,
		domain.IntensityExtreme: 12.0,
	},
	domain.WorkoutTypeOther: {
		domain.IntensityLow:     3.0,
		domain.IntensityMedium:  5.0,
		domain.IntensityHigh:    7.0,
		domain.IntensityExtreme: 10.0,
	},
}

var descriptions = map[domain.WorkoutType]map[domain.Intensity]string{
	domain.WorkoutTypeCardio: {
		domain.IntensityLow:     "Light walking or easy cycling",
		domain.IntensityMedium:  "Moderate running or swimming",
		domain.IntensityHigh:    "Hard running or fast cycling",
		domain.IntensityExtreme: "Sprints, HIIT or high-speed running",
	},
	domain.WorkoutTypeStrength: {
		domain.IntensityLow:     "Stretching with light weights",
		domain.IntensityMedium:  "Weight training with moderate load",
		domain.IntensityHigh:    "Intense weight training with heavy load",
		domain.IntensityExtreme: "CrossFit or extreme functional training",
	},
	domain.WorkoutTypeFlexibility: {
		domain.IntensityLow:     "Gentle stretching",
		domain.IntensityMedium:  "Yoga or Pilates",
		domain.IntensityHigh:    "Advanced yoga (Vinyasa)",
		domain.IntensityExtreme: "Ashtanga or Power Yoga",
	},
	domain.WorkoutTypeSports: {
		domain.IntensityLow:     "Light recreational sport",
		domain.IntensityMedium:  "Moderate football, basketball or tennis",
		domain.IntensityHigh:    "Intense competitive sport",
		domain.IntensityExtreme: "High-performance sport",
	},
	domain.WorkoutTypeOther: {
		domain.IntensityLow:     "Light physical activity",
		domain.IntensityMedium:  "Moderate physical activity",
		domain.IntensityHigh:    "Intense physical activity",
		domain.IntensityExtreme: "Extreme physical activity",
	},
}

// MET returns the metabolic equivalent for the pair. ok is false for values
// outside the enumerations.
func MET(workoutType domain.WorkoutType, intensity domain.Intensity) (met float64, ok bool) {
	byIntensity, ok := metValues[workoutType]
	if !ok {
		return 0, false
	}
	met, ok = byIntensity[intensity]
	return met, ok
}

// Estimate returns round(MET × weightKg × durationMin/60). A non-positive
// weight is replaced with DefaultWeightKg; unknown types or intensities yield 0.
// Callers must not rely on the result for durationMin <= 0.
func Estimate(workoutType domain.WorkoutType, durationMin int, intensity domain.Intensity, weightKg float64) int {
	met, ok := MET(workoutType, intensity)
	if !ok {
		return 0
	}
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}
	return int(math.Round(met * weightKg * (float64(durationMin) / 60)))
}

// EstimateDefault estimates with DefaultWeightKg.
func EstimateDefault(workoutType domain.WorkoutType, durationMin int, intensity domain.Intensity) int {
	return Estimate(workoutType, durationMin, intensity, DefaultWeightKg)
}

// Describe returns a human-readable label for the pair, or "" when unknown.
func Describe(workoutType domain.WorkoutType, intensity domain.Intensity) string {
	return descriptions[workoutType][intensity]
}

// Info bundles the estimate with the values it was derived from.
type Info struct {
	Calories    int
	MET         float64
	Description string
}

// InfoFor returns the estimate, MET and label for a workout at DefaultWeightKg.
func InfoFor(workoutType domain.WorkoutType, durationMin int, intensity domain.Intensity) Info {
	return InfoAt(workoutType, durationMin, intensity, DefaultWeightKg)
}

// InfoAt is InfoFor for a given body weight.
func InfoAt(workoutType domain.WorkoutType, durationMin int, intensity domain.Intensity, weightKg float64) Info {
	met, _ := MET(workoutType, intensity)
	return Info{
		Calories:    Estimate(workoutType, durationMin, intensity, weightKg),
		MET:         met,
		Description: Describe(workoutType, intensity),
	}
}

// Ranges estimates the workout at every intensity level at DefaultWeightKg.
func Ranges(workoutType domain.WorkoutType, durationMin int) map[domain.Intensity]int {
	return RangesAt(workoutType, durationMin, DefaultWeightKg)
}

// RangesAt is Ranges for a given body weight.
func RangesAt(workoutType domain.WorkoutType, durationMin int, weightKg float64) map[domain.Intensity]int {
	out := make(map[domain.Intensity]int, len(domain.Intensities))
	for _, intensity := range domain.Intensities {
		out[intensity] = Estimate(workoutType, durationMin, intensity, weightKg)
	}
	return out
}

// Estimator adapts the package functions to domain.Estimator.
type Estimator struct{}

// Estimate implements domain.Estimator.
func (Estimator) Estimate(workoutType domain.WorkoutType, durationMin int, intensity domain.Intensity, weightKg float64) int {
	return Estimate(workoutType, durationMin, intensity, weightKg)
}

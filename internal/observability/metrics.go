// Package observability registers the Prometheus collectors for store activity.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for store operations.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
	OutcomeNoop   = "noop"
)

var (
	operationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitpulse",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Number of store mutations grouped by operation and outcome.",
	}, []string{"operation", "outcome"})

	readFailureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitpulse",
		Subsystem: "store",
		Name:      "read_failures_total",
		Help:      "Reads that fell back to the default value, grouped by key and reason.",
	}, []string{"key", "reason"})

	workoutPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitpulse",
		Subsystem: "store",
		Name:      "last_workout_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout persisted.",
	})

	userTotalsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fitpulse",
		Subsystem: "user",
		Name:      "totals",
		Help:      "Running totals of the profile after the last mutation.",
	}, []string{"metric"})
)

func init() {
	prometheus.MustRegister(operationCounter, readFailureCounter, workoutPersistGauge, userTotalsGauge)
}

// RecordOperation counts a store mutation.
func RecordOperation(operation, outcome string) {
	operationCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordReadFailure counts a read that degraded to its default.
func RecordReadFailure(key, reason string) {
	readFailureCounter.WithLabelValues(key, reason).Inc()
}

// RecordWorkoutPersisted updates the persistence watermark gauge.
func RecordWorkoutPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutPersistGauge.Set(float64(ts.Unix()))
}

// RecordUserTotals publishes the profile totals.
func RecordUserTotals(workouts, minutes, calories int) {
	userTotalsGauge.WithLabelValues("workouts").Set(float64(workouts))
	userTotalsGauge.WithLabelValues("minutes").Set(float64(minutes))
	userTotalsGauge.WithLabelValues("calories").Set(float64(calories))
}

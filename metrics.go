package main

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Signup outcomes used as the "result" label.
const (
	signupCreated  = "created"
	signupInvalid  = "invalid"
	signupConflict = "conflict"
	signupError    = "error"
)

var (
	metricsOnce sync.Once

	signupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutrition_api",
			Name:      "signups_total",
			Help:      "Count of signup attempts by result.",
		},
		[]string{"result"},
	)

	signupTargetCalories = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nutrition_api",
			Name:      "signup_target_calories",
			Help:      "Daily calorie target assigned at signup.",
			Buckets:   prometheus.LinearBuckets(1000, 250, 13),
		},
	)
)

// registerMetrics registers collectors with the default registry (idempotent).
func registerMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(signupsTotal, signupTargetCalories)
	})
}

func recordSignup(result string) {
	signupsTotal.WithLabelValues(result).Inc()
}

func observeTargetCalories(kcal int) {
	signupTargetCalories.Observe(float64(kcal))
}

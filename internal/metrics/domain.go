package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	applicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "applications_submitted_total",
			Help:      "Applications submitted by talent.",
		},
	)

	applicationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "application_transitions_total",
			Help:      "Application status transitions by target status.",
		},
		[]string{"status"},
	)

	matchTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "match_transitions_total",
			Help:      "Match status transitions by target status.",
		},
		[]string{"status"},
	)

	teamsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "teams",
			Name:      "created_total",
			Help:      "Teams created.",
		},
	)
)

func ApplicationSubmitted() { applicationsSubmitted.Inc() }

func ApplicationTransition(status string) { applicationTransitions.WithLabelValues(status).Inc() }

func MatchTransition(status string) { matchTransitions.WithLabelValues(status).Inc() }

func TeamCreated() { teamsCreated.Inc() }

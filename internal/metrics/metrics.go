// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recommendation engine and the
// progress store. Callers that expose an HTTP endpoint can serve these
// from the default registry; the engine itself has no network surface.

var (
	// Recommendation Engine Metrics

	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by content kind",
		},
		[]string{"kind"},
	)

	RecommendationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation calls in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind"},
	)

	CandidatesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_candidates_scored_total",
			Help: "Total number of candidate items scored by content kind",
		},
		[]string{"kind"},
	)

	ProfileBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_builds_total",
			Help: "Total number of full user profile rebuilds",
		},
	)

	ProfileUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_updates_total",
			Help: "Total number of incremental profile updates",
		},
	)

	// Progress Store Metrics

	StoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_store_operations_total",
			Help: "Total number of successful progress store operations",
		},
		[]string{"operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_store_errors_total",
			Help: "Total number of progress store errors",
		},
		[]string{"operation"},
	)
)

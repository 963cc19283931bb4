// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courselab/courselab-go/internal/metrics"
)

// Engine evaluates recommendation requests against a configuration.
// It holds no mutable state between calls and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// normalizeOptions clamps tuning knobs to sane values. Invalid options
// degrade to defaults rather than erroring: they are tuning knobs, not
// correctness-critical inputs.
func (e *Engine) normalizeOptions(opts Options) Options {
	if opts.MaxResults <= 0 {
		opts.MaxResults = e.config.Limits.DefaultMaxResults
	}
	if opts.MaxResults > e.config.Limits.MaxResults {
		opts.MaxResults = e.config.Limits.MaxResults
	}

	if opts.MinConfidence < 0 {
		opts.MinConfidence = 0
	}
	if opts.MinConfidence > 1 {
		opts.MinConfidence = 1
	}

	if opts.DiversityFactor < 0 {
		opts.DiversityFactor = 0
	}
	if opts.DiversityFactor > 1 {
		opts.DiversityFactor = 1
	}

	if opts.TimeConstraint < 0 {
		opts.TimeConstraint = 0
	}

	return opts
}

// instrument records metrics and a debug log line for a ranking call.
func (e *Engine) instrument(kind string, candidates, returned int, start time.Time) {
	metrics.RecommendationRequests.WithLabelValues(kind).Inc()
	metrics.RecommendationLatency.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.CandidatesScored.WithLabelValues(kind).Add(float64(candidates))

	e.logger.Debug().
		Str("request_id", uuid.NewString()).
		Str("kind", kind).
		Int("candidates", candidates).
		Int("returned", returned).
		Dur("elapsed", time.Since(start)).
		Msg("ranking complete")
}

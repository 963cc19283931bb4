// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"fmt"
)

// Config contains all tuning constants for the recommendation engine.
type Config struct {
	// Weights defines the relative contribution of each scoring signal.
	Weights SignalWeights `json:"weights"`

	// Scoring contains difficulty-fit and soft time-fit factors.
	Scoring ScoringConfig `json:"scoring"`

	// Skill contains the point thresholds for skill levels.
	Skill SkillThresholds `json:"skill"`

	// Patterns contains cutoffs for learning-pattern detection.
	Patterns PatternThresholds `json:"patterns"`

	// Diversity contains parameters for the diversity pass.
	Diversity DiversityConfig `json:"diversity"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Update contains the incremental profile update parameters.
	Update UpdateConfig `json:"update"`

	// Confidence contains the evidence-to-confidence mapping.
	Confidence ConfidenceConfig `json:"confidence"`
}

// SignalWeights defines the relative contribution of each scoring signal.
// Signals combine additively, so a zero signal never zeroes the total.
type SignalWeights struct {
	// Continuation is the bonus for the user's current in-progress item.
	// It is deliberately large enough to dominate every other signal.
	// Default: 100.
	Continuation float64 `json:"continuation"`

	// Prerequisite scales both the unmet-prerequisite penalty and the
	// all-satisfied bonus. Default: 4.
	Prerequisite float64 `json:"prerequisite"`

	// Interest scales the position-weighted tag overlap bonus.
	// Default: 3.
	Interest float64 `json:"interest"`

	// Difficulty scales the difficulty-fit bonus and penalty.
	// Default: 2.
	Difficulty float64 `json:"difficulty"`

	// TypePreference scales the content-type preference bonus.
	// Default: 2.
	TypePreference float64 `json:"type_preference"`

	// TimePenalty is subtracted when an item exceeds the caller's time
	// constraint. Default: 8.
	TimePenalty float64 `json:"time_penalty"`

	// Streak is the quick-win bonus for short items during an active
	// streak. Default: 1.5.
	Streak float64 `json:"streak"`

	// Base is the constant popularity fallback score every candidate
	// receives, so brand-new users still get a deterministic ranking.
	// Default: 1.
	Base float64 `json:"base"`
}

// ScoringConfig contains difficulty-fit factors applied on top of
// Weights.Difficulty.
type ScoringConfig struct {
	// ExactDifficultyBonus applies when item difficulty matches the
	// user's skill level. Default: 1.0.
	ExactDifficultyBonus float64 `json:"exact_difficulty_bonus"`

	// AdjacentDifficultyBonus applies for a one-tier gap. Default: 0.4.
	AdjacentDifficultyBonus float64 `json:"adjacent_difficulty_bonus"`

	// DifficultyGapPenalty is subtracted for a two-tier gap.
	// Default: 0.5.
	DifficultyGapPenalty float64 `json:"difficulty_gap_penalty"`

	// SoftTimeFitBonus applies when no time constraint is given but the
	// item fits within the user's observed average completion time.
	// Default: 0.25.
	SoftTimeFitBonus float64 `json:"soft_time_fit_bonus"`
}

// SkillThresholds contains the point thresholds for skill levels.
// Boundary values promote to the upper tier.
type SkillThresholds struct {
	// IntermediatePoints is the minimum for intermediate. Default: 500.
	IntermediatePoints int `json:"intermediate_points"`

	// AdvancedPoints is the minimum for advanced. Default: 2000.
	AdvancedPoints int `json:"advanced_points"`
}

// PatternThresholds contains cutoffs for learning-pattern detection.
type PatternThresholds struct {
	// ShortContentMinutes is the median-duration cutoff below which the
	// user is flagged as preferring short content. Default: 15.
	ShortContentMinutes int `json:"short_content_minutes"`

	// InteractiveShare is the completion share of tutorials and paths
	// above which the user prefers interactive content. Default: 0.6.
	InteractiveShare float64 `json:"interactive_share"`

	// PrerequisiteShare is the share of completed items declaring
	// prerequisites above which the user likes prerequisites.
	// Default: 0.5.
	PrerequisiteShare float64 `json:"prerequisite_share"`

	// QuickWinMinutes is the duration at or below which an item counts
	// as a quick win. Default: 10.
	QuickWinMinutes int `json:"quick_win_minutes"`
}

// DiversityConfig contains parameters for the diversity pass.
type DiversityConfig struct {
	// OverlapPenalty is subtracted per already-selected item sharing at
	// least one tag, scaled by the caller's diversity factor.
	// Default: 1.5.
	OverlapPenalty float64 `json:"overlap_penalty"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultMaxResults applies when the caller passes no cap.
	// Default: 10.
	DefaultMaxResults int `json:"default_max_results"`

	// MaxResults is the hard cap on returned items. Default: 100.
	MaxResults int `json:"max_results"`

	// InterestCap is the maximum number of interest tags tracked in a
	// profile. Default: 10.
	InterestCap int `json:"interest_cap"`
}

// UpdateConfig contains the incremental profile update parameters.
type UpdateConfig struct {
	// EMAAlpha is the exponential-moving-average blending weight for a
	// single new activity. Default: 0.3.
	EMAAlpha float64 `json:"ema_alpha"`
}

// ConfidenceConfig maps fired evidence signals to a confidence value.
// Confidence reflects how much evidence backs a recommendation, not how
// high its score is; it is clamped to [0,1].
type ConfidenceConfig struct {
	// Base is the confidence floor for a popularity-only pick.
	// Default: 0.2.
	Base float64 `json:"base"`

	// PerSignal is added per fired evidence signal. Default: 0.15.
	PerSignal float64 `json:"per_signal"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: SignalWeights{
			Continuation:   100,
			Prerequisite:   4,
			Interest:       3,
			Difficulty:     2,
			TypePreference: 2,
			TimePenalty:    8,
			Streak:         1.5,
			Base:           1,
		},
		Scoring: ScoringConfig{
			ExactDifficultyBonus:    1.0,
			AdjacentDifficultyBonus: 0.4,
			DifficultyGapPenalty:    0.5,
			SoftTimeFitBonus:        0.25,
		},
		Skill: SkillThresholds{
			IntermediatePoints: 500,
			AdvancedPoints:     2000,
		},
		Patterns: PatternThresholds{
			ShortContentMinutes: 15,
			InteractiveShare:    0.6,
			PrerequisiteShare:   0.5,
			QuickWinMinutes:     10,
		},
		Diversity: DiversityConfig{
			OverlapPenalty: 1.5,
		},
		Limits: LimitsConfig{
			DefaultMaxResults: 10,
			MaxResults:        100,
			InterestCap:       10,
		},
		Update: UpdateConfig{
			EMAAlpha: 0.3,
		},
		Confidence: ConfidenceConfig{
			Base:      0.2,
			PerSignal: 0.15,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Continuation <= 0 {
		return fmt.Errorf("weights.continuation must be positive, got %f", c.Weights.Continuation)
	}
	if c.Weights.Base < 0 {
		return fmt.Errorf("weights.base must be non-negative, got %f", c.Weights.Base)
	}
	if c.Weights.TimePenalty < 0 {
		return fmt.Errorf("weights.time_penalty must be non-negative, got %f", c.Weights.TimePenalty)
	}

	if c.Skill.IntermediatePoints <= 0 {
		return fmt.Errorf("skill.intermediate_points must be positive, got %d", c.Skill.IntermediatePoints)
	}
	if c.Skill.AdvancedPoints <= c.Skill.IntermediatePoints {
		return fmt.Errorf("skill.advanced_points must exceed intermediate_points, got %d <= %d",
			c.Skill.AdvancedPoints, c.Skill.IntermediatePoints)
	}

	if c.Patterns.InteractiveShare < 0 || c.Patterns.InteractiveShare > 1 {
		return fmt.Errorf("patterns.interactive_share must be in [0, 1], got %f", c.Patterns.InteractiveShare)
	}
	if c.Patterns.PrerequisiteShare < 0 || c.Patterns.PrerequisiteShare > 1 {
		return fmt.Errorf("patterns.prerequisite_share must be in [0, 1], got %f", c.Patterns.PrerequisiteShare)
	}

	if c.Diversity.OverlapPenalty < 0 {
		return fmt.Errorf("diversity.overlap_penalty must be non-negative, got %f", c.Diversity.OverlapPenalty)
	}

	if c.Limits.DefaultMaxResults < 1 {
		return fmt.Errorf("limits.default_max_results must be positive, got %d", c.Limits.DefaultMaxResults)
	}
	if c.Limits.MaxResults < c.Limits.DefaultMaxResults {
		return fmt.Errorf("limits.max_results must be >= limits.default_max_results, got %d < %d",
			c.Limits.MaxResults, c.Limits.DefaultMaxResults)
	}
	if c.Limits.InterestCap < 1 {
		return fmt.Errorf("limits.interest_cap must be positive, got %d", c.Limits.InterestCap)
	}

	if c.Update.EMAAlpha <= 0 || c.Update.EMAAlpha >= 1 {
		return fmt.Errorf("update.ema_alpha must be in (0, 1), got %f", c.Update.EMAAlpha)
	}

	if c.Confidence.Base < 0 || c.Confidence.Base > 1 {
		return fmt.Errorf("confidence.base must be in [0, 1], got %f", c.Confidence.Base)
	}
	if c.Confidence.PerSignal < 0 || c.Confidence.PerSignal > 1 {
		return fmt.Errorf("confidence.per_signal must be in [0, 1], got %f", c.Confidence.PerSignal)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	clone := *c
	return &clone
}

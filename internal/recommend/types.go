// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"github.com/courselab/courselab-go/internal/catalog"
)

// SkillLevel is the coarse user tier derived from cumulative points.
type SkillLevel string

const (
	// SkillBeginner is the entry tier.
	SkillBeginner SkillLevel = "beginner"
	// SkillIntermediate is the middle tier.
	SkillIntermediate SkillLevel = "intermediate"
	// SkillAdvanced is the top tier.
	SkillAdvanced SkillLevel = "advanced"
)

// Tier returns the numeric tier (0-2) for distance comparisons against
// item difficulty. Returns -1 for an unrecognized level.
func (s SkillLevel) Tier() int {
	switch s {
	case SkillBeginner:
		return 0
	case SkillIntermediate:
		return 1
	case SkillAdvanced:
		return 2
	default:
		return -1
	}
}

// Reason labels the strongest signal behind a recommendation.
// The set is closed: the Explainer panics on anything else.
type Reason string

const (
	ReasonContinuesPath      Reason = "continues_learning_path"
	ReasonBuildsOnCompleted  Reason = "builds_on_completed"
	ReasonMatchesInterest    Reason = "matches_interest"
	ReasonPopularChoice      Reason = "popular_choice"
	ReasonSuitableForLevel   Reason = "suitable_for_level"
	ReasonQuickWin           Reason = "quick_win"
	ReasonPrerequisiteForGoal Reason = "prerequisite_for_goal"
	ReasonSimilarToLiked     Reason = "similar_to_liked"
	ReasonFillsSkillGap      Reason = "fills_skill_gap"
	ReasonMaintainsStreak    Reason = "maintains_streak"
)

// Valid reports whether the reason belongs to the closed set.
func (r Reason) Valid() bool {
	switch r {
	case ReasonContinuesPath, ReasonBuildsOnCompleted, ReasonMatchesInterest,
		ReasonPopularChoice, ReasonSuitableForLevel, ReasonQuickWin,
		ReasonPrerequisiteForGoal, ReasonSimilarToLiked, ReasonFillsSkillGap,
		ReasonMaintainsStreak:
		return true
	default:
		return false
	}
}

// TypeWeights is a 3-way weight distribution over content kinds.
// Weights sum to 1, or are all zero for a brand-new user ("no preference").
type TypeWeights struct {
	Articles  float64 `json:"articles" validate:"min=0,max=1"`
	Tutorials float64 `json:"tutorials" validate:"min=0,max=1"`
	Paths     float64 `json:"paths" validate:"min=0,max=1"`
}

// Sum returns the total weight.
func (w TypeWeights) Sum() float64 {
	return w.Articles + w.Tutorials + w.Paths
}

// Weight returns the weight for a content kind.
func (w TypeWeights) Weight(kind catalog.Kind) float64 {
	switch kind {
	case catalog.KindArticle:
		return w.Articles
	case catalog.KindTutorial:
		return w.Tutorials
	case catalog.KindPath:
		return w.Paths
	default:
		return 0
	}
}

// Normalize returns a copy scaled to sum to 1. An all-zero distribution
// stays all-zero: downstream scoring treats that as "no preference".
func (w TypeWeights) Normalize() TypeWeights {
	sum := w.Sum()
	if sum == 0 {
		return w
	}
	return TypeWeights{
		Articles:  w.Articles / sum,
		Tutorials: w.Tutorials / sum,
		Paths:     w.Paths / sum,
	}
}

// DifficultyWeights is a weight distribution over the three difficulty tiers.
type DifficultyWeights struct {
	Beginner     float64 `json:"beginner" validate:"min=0,max=1"`
	Intermediate float64 `json:"intermediate" validate:"min=0,max=1"`
	Advanced     float64 `json:"advanced" validate:"min=0,max=1"`
}

// CompletionTimes holds observed average minutes per completed item.
// A zero value means no observations yet (undefined, not NaN).
type CompletionTimes struct {
	Articles  float64 `json:"articles" validate:"min=0"`
	Tutorials float64 `json:"tutorials" validate:"min=0"`
}

// ForKind returns the average for a kind, or 0 when untracked.
func (t CompletionTimes) ForKind(kind catalog.Kind) float64 {
	switch kind {
	case catalog.KindArticle:
		return t.Articles
	case catalog.KindTutorial:
		return t.Tutorials
	default:
		return 0
	}
}

// LearningPatterns are simple boolean flags derived from majority rules
// over the user's history.
type LearningPatterns struct {
	// PrefersShortContent is true when the median completed-item
	// duration falls below the configured cutoff.
	PrefersShortContent bool `json:"prefers_short_content"`

	// PrefersInteractive is true when tutorials and paths make up the
	// majority of completions.
	PrefersInteractive bool `json:"prefers_interactive"`

	// LikesPrerequisites is true when most completed items declared
	// prerequisites.
	LikesPrerequisites bool `json:"likes_prerequisites"`
}

// UserProfile is the behavioral profile derived from progress history.
// It is ephemeral: rebuilt per call and never persisted by this package.
type UserProfile struct {
	// SkillLevel is a pure function of total points against fixed thresholds.
	SkillLevel SkillLevel `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`

	// Interests is an ordered tag list, most relevant first, capped at 10.
	Interests []string `json:"interests" validate:"max=10"`

	// PreferredContentTypes is the completion-derived kind distribution.
	PreferredContentTypes TypeWeights `json:"preferred_content_types"`

	// AverageCompletionTime is the observed minutes per completed item.
	AverageCompletionTime CompletionTimes `json:"average_completion_time"`

	// DifficultyPreference is the distribution over completed difficulties.
	DifficultyPreference DifficultyWeights `json:"difficulty_preference"`

	// LearningPatterns are majority-rule behavior flags.
	LearningPatterns LearningPatterns `json:"learning_patterns"`
}

// Recommendation is one scored, explainable candidate.
type Recommendation struct {
	// Item is the recommended content item.
	Item catalog.ContentItem `json:"item"`

	// Score is the combined signal score. It is unbounded and comparable
	// only within a single call.
	Score float64 `json:"score"`

	// Confidence is the evidence strength in [0,1], independent of Score.
	Confidence float64 `json:"confidence"`

	// Reason labels the strongest contributing signal.
	Reason Reason `json:"reason"`

	// Explanation is a short human-readable justification.
	Explanation string `json:"explanation"`

	// Signals is the per-signal score breakdown for diagnostics.
	Signals map[string]float64 `json:"signals,omitempty"`
}

// Options configures a ranking call. The zero value means: exclude
// completed items, default result cap, no confidence filter, no time
// constraint, and no diversity penalty. Use DefaultOptions for the
// recommended moderate diversity setting.
type Options struct {
	// IncludeCompleted includes already-completed items as candidates.
	IncludeCompleted bool `json:"include_completed"`

	// MaxResults caps the returned list. Non-positive values fall back
	// to the configured default.
	MaxResults int `json:"max_results"`

	// MinConfidence drops recommendations below this confidence.
	// Clamped to [0,1].
	MinConfidence float64 `json:"min_confidence"`

	// TimeConstraint is the available time in minutes. Items exceeding
	// it are strongly down-weighted, never excluded. Non-positive means
	// no constraint.
	TimeConstraint int `json:"time_constraint"`

	// DiversityFactor scales the tag-overlap penalty in the diversity
	// pass. 0 disables the pass (pure score order); 1 is maximal.
	// Clamped to [0,1].
	DiversityFactor float64 `json:"diversity_factor"`
}

// DefaultOptions returns the recommended options: top 10, no filters,
// moderate diversity.
func DefaultOptions() Options {
	return Options{
		MaxResults:      10,
		DiversityFactor: 0.5,
	}
}

// RecommendationSet groups per-kind ranked lists.
type RecommendationSet struct {
	Articles  []Recommendation `json:"articles"`
	Tutorials []Recommendation `json:"tutorials"`
	Paths     []Recommendation `json:"paths"`
}

// Empty reports whether no kind produced any recommendation.
func (s *RecommendationSet) Empty() bool {
	return s == nil || (len(s.Articles) == 0 && len(s.Tutorials) == 0 && len(s.Paths) == 0)
}

// TimeBuckets partitions recommendations by estimated duration.
// Boundaries are fixed constants, independent of any time constraint.
type TimeBuckets struct {
	// Quick holds items estimated at 15 minutes or less.
	Quick []Recommendation `json:"quick"`

	// Moderate holds items estimated at 16-45 minutes.
	Moderate []Recommendation `json:"moderate"`

	// Long holds items estimated above 45 minutes.
	Long []Recommendation `json:"long"`
}

// Explanation is the human-readable rendering of a recommendation.
type Explanation struct {
	// Reason is the original reason tag.
	Reason Reason `json:"reason"`

	// Confidence is the label for the numeric confidence value.
	Confidence string `json:"confidence"`

	// Details combines the reason phrase with the item title.
	Details string `json:"details"`
}

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"fmt"
)

// reasonPhrase maps a reason to its display phrase. The reason set is
// closed, so an unknown value is a programming error and panics.
func reasonPhrase(r Reason) string {
	switch r {
	case ReasonContinuesPath:
		return "Continue where you left off"
	case ReasonBuildsOnCompleted:
		return "Builds on what you've completed"
	case ReasonMatchesInterest:
		return "Matches your interests"
	case ReasonPopularChoice:
		return "Popular with other learners"
	case ReasonSuitableForLevel:
		return "Suited to your skill level"
	case ReasonQuickWin:
		return "A quick win to keep momentum"
	case ReasonPrerequisiteForGoal:
		return "Unblocks something you've started"
	case ReasonSimilarToLiked:
		return "Similar to content you've enjoyed"
	case ReasonFillsSkillGap:
		return "Stretches you to the next level"
	case ReasonMaintainsStreak:
		return "Keeps your streak alive"
	default:
		panic(fmt.Sprintf("recommend: unknown reason %q", string(r)))
	}
}

// ConfidenceLabel maps a numeric confidence to its display band.
// Bands are half-open and cover [0,1] without gaps or overlap.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence < 0.3:
		return "Suggestion"
	case confidence < 0.6:
		return "Good Match"
	case confidence < 0.85:
		return "Strong Match"
	default:
		return "Excellent Match"
	}
}

// Explain renders a recommendation for display. It panics on a reason
// outside the closed set, since that can only come from a scorer bug or
// a caller fabricating recommendations.
func (e *Engine) Explain(rec Recommendation) Explanation {
	phrase := reasonPhrase(rec.Reason)
	return Explanation{
		Reason:     rec.Reason,
		Confidence: ConfidenceLabel(rec.Confidence),
		Details:    fmt.Sprintf("%s: %s", phrase, rec.Item.Metadata().Title),
	}
}

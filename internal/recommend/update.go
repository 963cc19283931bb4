// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/metrics"
)

// UpdateProfileWithActivity folds a single completed activity into a
// profile without a full rebuild, using exponential moving averages so
// recent behavior shifts preferences gradually. The input profile is not
// modified.
//
// Skill level, difficulty preference, and learning patterns need the full
// history and are left unchanged; callers wanting those refreshed should
// rebuild the profile from progress.
func (e *Engine) UpdateProfileWithActivity(profile UserProfile, kind catalog.Kind, tags []string, minutesSpent int) UserProfile {
	metrics.ProfileUpdates.Inc()

	alpha := e.config.Update.EMAAlpha
	updated := profile
	updated.PreferredContentTypes = shiftTypeWeights(profile.PreferredContentTypes, kind, alpha)
	updated.AverageCompletionTime = shiftCompletionTime(profile.AverageCompletionTime, kind, minutesSpent, alpha)
	updated.Interests = mergeInterests(profile.Interests, tags, e.config.Limits.InterestCap)
	return updated
}

// shiftTypeWeights nudges the distribution toward the completed kind.
// Blending toward a one-hot vector preserves the sum-to-1 invariant, and
// bootstraps an all-zero cold-start distribution on the first activity.
func shiftTypeWeights(w TypeWeights, kind catalog.Kind, alpha float64) TypeWeights {
	shifted := TypeWeights{
		Articles:  (1 - alpha) * w.Articles,
		Tutorials: (1 - alpha) * w.Tutorials,
		Paths:     (1 - alpha) * w.Paths,
	}
	switch kind {
	case catalog.KindArticle:
		shifted.Articles += alpha
	case catalog.KindTutorial:
		shifted.Tutorials += alpha
	case catalog.KindPath:
		shifted.Paths += alpha
	}
	return shifted.Normalize()
}

// shiftCompletionTime blends the observed minutes into the running
// average. The first observation seeds the average directly.
func shiftCompletionTime(t CompletionTimes, kind catalog.Kind, minutes int, alpha float64) CompletionTimes {
	if minutes <= 0 {
		return t
	}
	blend := func(old float64) float64 {
		if old == 0 {
			return float64(minutes)
		}
		return (1-alpha)*old + alpha*float64(minutes)
	}
	switch kind {
	case catalog.KindArticle:
		t.Articles = blend(t.Articles)
	case catalog.KindTutorial:
		t.Tutorials = blend(t.Tutorials)
	}
	return t
}

// mergeInterests prepends the activity's tags so they survive the cap,
// then keeps prior interests in order, deduplicated, truncated to limit.
func mergeInterests(old, tags []string, limit int) []string {
	merged := make([]string, 0, len(old)+len(tags))
	seen := make(map[string]bool, len(old)+len(tags))

	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	for _, tag := range old {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

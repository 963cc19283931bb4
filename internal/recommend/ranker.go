// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/progress"
)

// RecommendedArticles ranks the supplied articles for the user.
// An empty catalog yields an empty, non-nil slice.
func (e *Engine) RecommendedArticles(prog *progress.UserProgress, articles []catalog.Article, opts Options) []Recommendation {
	start := time.Now()
	prog = ensureProgress(prog)
	opts = e.normalizeOptions(opts)

	items := make([]catalog.ContentItem, len(articles))
	for i := range articles {
		items[i] = articles[i]
	}

	profile := buildProfile(e.config, prog, articles, nil)
	recs := e.rank(&profile, prog, items, goalPrerequisites(prog, items), opts)
	e.instrument("article", len(items), len(recs), start)
	return recs
}

// RecommendedTutorials ranks the supplied tutorials for the user.
func (e *Engine) RecommendedTutorials(prog *progress.UserProgress, tutorials []catalog.Tutorial, opts Options) []Recommendation {
	start := time.Now()
	prog = ensureProgress(prog)
	opts = e.normalizeOptions(opts)

	items := make([]catalog.ContentItem, len(tutorials))
	for i := range tutorials {
		items[i] = tutorials[i]
	}

	profile := buildProfile(e.config, prog, nil, tutorials)
	recs := e.rank(&profile, prog, items, goalPrerequisites(prog, items), opts)
	e.instrument("tutorial", len(items), len(recs), start)
	return recs
}

// RecommendedPaths ranks the supplied learning paths for the user.
// The profile is built without catalog metadata since paths carry their
// own curriculum rather than standalone tags.
func (e *Engine) RecommendedPaths(prog *progress.UserProgress, paths []catalog.LearningPath, opts Options) []Recommendation {
	start := time.Now()
	prog = ensureProgress(prog)
	opts = e.normalizeOptions(opts)

	items := make([]catalog.ContentItem, len(paths))
	for i := range paths {
		items[i] = paths[i]
	}

	profile := buildProfile(e.config, prog, nil, nil)
	recs := e.rank(&profile, prog, items, goalPrerequisites(prog, items), opts)
	e.instrument("path", len(items), len(recs), start)
	return recs
}

// ensureProgress substitutes an empty snapshot for nil so callers without
// stored history get cold-start behavior instead of a panic.
func ensureProgress(prog *progress.UserProgress) *progress.UserProgress {
	if prog == nil {
		return &progress.UserProgress{}
	}
	return prog
}

// goalPrerequisites collects IDs that unblock the user's in-progress
// items: unmet prerequisites of anything started, plus unfinished entries
// of in-progress learning paths.
func goalPrerequisites(prog *progress.UserProgress, items []catalog.ContentItem) map[string]struct{} {
	goals := make(map[string]struct{})
	for _, item := range items {
		meta := item.Metadata()
		if !prog.IsInProgress(item.Kind(), meta.ID) {
			continue
		}
		for _, id := range meta.Prerequisites {
			goals[id] = struct{}{}
		}
		if path, ok := item.(catalog.LearningPath); ok {
			for _, id := range path.Items {
				goals[id] = struct{}{}
			}
		}
	}
	return goals
}

// rank scores, diversifies, filters, and truncates one candidate pool.
// The returned slice is never nil.
func (e *Engine) rank(profile *UserProfile, prog *progress.UserProgress, items []catalog.ContentItem, goalPrereqs map[string]struct{}, opts Options) []Recommendation {
	s := &scorer{
		cfg:         e.config,
		profile:     profile,
		prog:        prog,
		goalPrereqs: goalPrereqs,
		opts:        opts,
	}

	scored := make([]Recommendation, 0, len(items))
	for _, item := range items {
		meta := item.Metadata()
		if !opts.IncludeCompleted && prog.IsCompleted(item.Kind(), meta.ID) {
			continue
		}
		scored = append(scored, s.scoreItem(item))
	}

	if opts.DiversityFactor > 0 {
		scored = e.diversify(scored, opts.DiversityFactor)
	} else {
		// Stable sort keeps catalog order among equal scores, which
		// makes cold-start output deterministic.
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
	}

	result := make([]Recommendation, 0, min(len(scored), opts.MaxResults))
	for _, rec := range scored {
		if rec.Confidence < opts.MinConfidence {
			continue
		}
		result = append(result, rec)
		if len(result) == opts.MaxResults {
			break
		}
	}
	return result
}

// diversify reorders greedily: repeatedly pick the highest penalized score,
// then penalize remaining candidates that share a tag with anything already
// selected. Penalties accumulate per overlapping pick, so a topic cluster
// cannot monopolize the top of the list.
func (e *Engine) diversify(scored []Recommendation, factor float64) []Recommendation {
	penalty := factor * e.config.Diversity.OverlapPenalty

	remaining := make([]Recommendation, len(scored))
	copy(remaining, scored)
	adjusted := make([]float64, len(remaining))
	for i := range remaining {
		adjusted[i] = remaining[i].Score
	}

	selected := make([]Recommendation, 0, len(remaining))
	selectedTags := make(map[string]bool)

	for len(remaining) > 0 {
		best := 0
		for i := 1; i < len(remaining); i++ {
			if adjusted[i] > adjusted[best] {
				best = i
			}
		}

		pick := remaining[best]
		selected = append(selected, pick)
		for _, tag := range pick.Item.Metadata().Tags {
			selectedTags[strings.ToLower(tag)] = true
		}

		remaining = append(remaining[:best], remaining[best+1:]...)
		adjusted = append(adjusted[:best], adjusted[best+1:]...)

		for i := range remaining {
			if sharesTag(remaining[i].Item.Metadata().Tags, selectedTags) {
				adjusted[i] -= penalty
			}
		}
	}
	return selected
}

func sharesTag(tags []string, selected map[string]bool) bool {
	for _, tag := range tags {
		if selected[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

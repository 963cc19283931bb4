// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"sort"
	"time"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/progress"
)

// AllRecommendations ranks every kind in the catalog with a single shared
// profile, so cross-kind signals (a tutorial unblocking a started path,
// interests learned from articles applied to tutorials) carry over.
func (e *Engine) AllRecommendations(prog *progress.UserProgress, cat *catalog.Catalog, opts Options) *RecommendationSet {
	start := time.Now()
	prog = ensureProgress(prog)
	opts = e.normalizeOptions(opts)
	if cat == nil {
		cat = &catalog.Catalog{}
	}

	profile := buildProfile(e.config, prog, cat.Articles, cat.Tutorials)

	items := make([]catalog.ContentItem, 0, cat.Size())
	articleItems := make([]catalog.ContentItem, 0, len(cat.Articles))
	for _, a := range cat.Articles {
		articleItems = append(articleItems, a)
	}
	tutorialItems := make([]catalog.ContentItem, 0, len(cat.Tutorials))
	for _, t := range cat.Tutorials {
		tutorialItems = append(tutorialItems, t)
	}
	pathItems := make([]catalog.ContentItem, 0, len(cat.Paths))
	for _, p := range cat.Paths {
		pathItems = append(pathItems, p)
	}
	items = append(items, articleItems...)
	items = append(items, tutorialItems...)
	items = append(items, pathItems...)

	goals := goalPrerequisites(prog, items)

	set := &RecommendationSet{
		Articles:  e.rank(&profile, prog, articleItems, goals, opts),
		Tutorials: e.rank(&profile, prog, tutorialItems, goals, opts),
		Paths:     e.rank(&profile, prog, pathItems, goals, opts),
	}
	e.instrument("all", len(items), len(set.Articles)+len(set.Tutorials)+len(set.Paths), start)
	return set
}

// NextRecommendation returns the single best item across all kinds, or nil
// when the catalog has no eligible candidates. Ties break toward articles,
// then tutorials, then paths.
func (e *Engine) NextRecommendation(prog *progress.UserProgress, cat *catalog.Catalog) *Recommendation {
	opts := DefaultOptions()
	opts.MaxResults = 1
	set := e.AllRecommendations(prog, cat, opts)

	var best *Recommendation
	for _, recs := range [][]Recommendation{set.Articles, set.Tutorials, set.Paths} {
		if len(recs) == 0 {
			continue
		}
		if best == nil || recs[0].Score > best.Score {
			rec := recs[0]
			best = &rec
		}
	}
	return best
}

// RecommendationsByTime ranks everything under the given time constraint
// and partitions the result into quick, moderate, and long buckets. Bucket
// boundaries are fixed; availableMinutes only influences scoring.
func (e *Engine) RecommendationsByTime(prog *progress.UserProgress, cat *catalog.Catalog, availableMinutes int) *TimeBuckets {
	opts := DefaultOptions()
	opts.TimeConstraint = availableMinutes
	set := e.AllRecommendations(prog, cat, opts)

	merged := make([]Recommendation, 0, len(set.Articles)+len(set.Tutorials)+len(set.Paths))
	merged = append(merged, set.Articles...)
	merged = append(merged, set.Tutorials...)
	merged = append(merged, set.Paths...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	buckets := &TimeBuckets{}
	for _, rec := range merged {
		switch minutes := rec.Item.Metadata().EstimatedMinutes; {
		case minutes <= 15:
			buckets.Quick = append(buckets.Quick, rec)
		case minutes <= 45:
			buckets.Moderate = append(buckets.Moderate, rec)
		default:
			buckets.Long = append(buckets.Long, rec)
		}
	}
	return buckets
}

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"sort"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/metrics"
	"github.com/courselab/courselab-go/internal/progress"
)

// BuildProfile derives a UserProfile from a progress snapshot. The article
// and tutorial catalogs are used to resolve the tags, durations, and
// difficulties of completed items; either may be nil.
//
// The result is a pure function of its inputs: calling twice with identical
// inputs yields identical profiles.
func (e *Engine) BuildProfile(prog *progress.UserProgress, articles []catalog.Article, tutorials []catalog.Tutorial) UserProfile {
	metrics.ProfileBuilds.Inc()
	return buildProfile(e.config, prog, articles, tutorials)
}

// completedMeta collects the metadata of every completed item found in the
// supplied catalogs, in catalog order (articles first).
func completedMeta(prog *progress.UserProgress, articles []catalog.Article, tutorials []catalog.Tutorial) []catalog.Meta {
	metas := make([]catalog.Meta, 0, prog.TotalCompleted())
	for _, a := range articles {
		if prog.IsCompleted(catalog.KindArticle, a.ID) {
			metas = append(metas, a.Meta)
		}
	}
	for _, t := range tutorials {
		if prog.IsCompleted(catalog.KindTutorial, t.ID) {
			metas = append(metas, t.Meta)
		}
	}
	return metas
}

func buildProfile(cfg *Config, prog *progress.UserProgress, articles []catalog.Article, tutorials []catalog.Tutorial) UserProfile {
	if prog == nil {
		prog = &progress.UserProgress{}
	}

	metas := completedMeta(prog, articles, tutorials)

	return UserProfile{
		SkillLevel:            skillLevelFor(cfg, prog.TotalPoints),
		Interests:             interestsFrom(cfg, metas),
		PreferredContentTypes: typeWeightsFrom(prog),
		AverageCompletionTime: completionTimesFrom(prog),
		DifficultyPreference:  difficultyWeightsFrom(metas),
		LearningPatterns:      patternsFrom(cfg, prog, metas),
	}
}

// skillLevelFor maps cumulative points to a skill tier. Thresholds are
// inclusive on the upper tier: exactly IntermediatePoints is intermediate.
func skillLevelFor(cfg *Config, points int) SkillLevel {
	switch {
	case points >= cfg.Skill.AdvancedPoints:
		return SkillAdvanced
	case points >= cfg.Skill.IntermediatePoints:
		return SkillIntermediate
	default:
		return SkillBeginner
	}
}

// interestsFrom ranks tags of completed content by frequency, breaking
// ties by first appearance in catalog order, capped at the interest limit.
func interestsFrom(cfg *Config, metas []catalog.Meta) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, m := range metas {
		for _, tag := range m.Tags {
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	if len(counts) == 0 {
		return nil
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return firstSeen[tags[i]] < firstSeen[tags[j]]
	})

	if len(tags) > cfg.Limits.InterestCap {
		tags = tags[:cfg.Limits.InterestCap]
	}
	return tags
}

// typeWeightsFrom computes the completion-count distribution over kinds.
// A kind with zero completions keeps weight 0 (not smoothed); a brand-new
// user gets an all-zero distribution.
func typeWeightsFrom(prog *progress.UserProgress) TypeWeights {
	w := TypeWeights{
		Articles:  float64(prog.CompletedCount(catalog.KindArticle)),
		Tutorials: float64(prog.CompletedCount(catalog.KindTutorial)),
		Paths:     float64(prog.CompletedCount(catalog.KindPath)),
	}
	return w.Normalize()
}

// completionTimesFrom computes average minutes per completed item.
// Zero when a kind has no completions.
func completionTimesFrom(prog *progress.UserProgress) CompletionTimes {
	var t CompletionTimes
	if n := prog.CompletedCount(catalog.KindArticle); n > 0 {
		t.Articles = float64(prog.ArticleMinutes) / float64(n)
	}
	if n := prog.CompletedCount(catalog.KindTutorial); n > 0 {
		t.Tutorials = float64(prog.TutorialMinutes) / float64(n)
	}
	return t
}

// difficultyWeightsFrom computes the distribution over declared
// difficulties of completed items.
func difficultyWeightsFrom(metas []catalog.Meta) DifficultyWeights {
	var counts [3]float64
	var total float64
	for _, m := range metas {
		tier := m.Difficulty.Tier()
		if tier < 0 {
			continue
		}
		counts[tier]++
		total++
	}
	if total == 0 {
		return DifficultyWeights{}
	}
	return DifficultyWeights{
		Beginner:     counts[0] / total,
		Intermediate: counts[1] / total,
		Advanced:     counts[2] / total,
	}
}

// patternsFrom derives boolean learning patterns via simple majority rules.
func patternsFrom(cfg *Config, prog *progress.UserProgress, metas []catalog.Meta) LearningPatterns {
	var p LearningPatterns

	if len(metas) > 0 {
		durations := make([]int, 0, len(metas))
		withPrereqs := 0
		for _, m := range metas {
			durations = append(durations, m.EstimatedMinutes)
			if len(m.Prerequisites) > 0 {
				withPrereqs++
			}
		}

		sort.Ints(durations)
		median := durations[len(durations)/2]
		p.PrefersShortContent = median < cfg.Patterns.ShortContentMinutes
		p.LikesPrerequisites = float64(withPrereqs)/float64(len(metas)) >= cfg.Patterns.PrerequisiteShare
	}

	if total := prog.TotalCompleted(); total > 0 {
		interactive := prog.CompletedCount(catalog.KindTutorial) + prog.CompletedCount(catalog.KindPath)
		p.PrefersInteractive = float64(interactive)/float64(total) >= cfg.Patterns.InteractiveShare
	}

	return p
}

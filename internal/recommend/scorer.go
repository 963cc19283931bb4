// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"strings"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/progress"
)

// Signal names used in the per-recommendation score breakdown.
const (
	signalContinuation   = "continuation"
	signalPrerequisites  = "prerequisites"
	signalGoalPrereq     = "goal_prerequisite"
	signalInterest       = "interest"
	signalDifficulty     = "difficulty"
	signalTypePreference = "type_preference"
	signalTimeFit        = "time_fit"
	signalStreak         = "streak"
	signalQuickWin       = "quick_win"
	signalBase           = "base"
)

// scorer evaluates candidates of one ranking call. It is built once per
// call and holds only read-only snapshots.
type scorer struct {
	cfg     *Config
	profile *UserProfile
	prog    *progress.UserProgress

	// goalPrereqs holds IDs that are unmet prerequisites or unfinished
	// steps of the user's in-progress items.
	goalPrereqs map[string]struct{}

	opts Options
}

// scoreItem computes the weighted signal sum, evidence-based confidence,
// and labeled reason for a single candidate. Signals combine additively:
// a zero signal never zeroes the total.
func (s *scorer) scoreItem(item catalog.ContentItem) Recommendation {
	meta := item.Metadata()
	signals := make(map[string]float64, 8)

	// Popularity fallback: a constant base so brand-new users with an
	// all-zero profile still receive a deterministic, non-empty ranking.
	signals[signalBase] = s.cfg.Weights.Base

	evidence := 0
	var (
		continued    bool
		prereqsMet   bool
		goalPrereq   bool
		topInterest  bool
		interestHit  bool
		exactLevel   bool
		skillGapUp   bool
		streakWin    bool
		quickWin     bool
	)

	// Continuation: the user's current in-progress item dominates.
	if s.prog.IsInProgress(item.Kind(), meta.ID) {
		signals[signalContinuation] = s.cfg.Weights.Continuation
		continued = true
		evidence++
	}

	// Prerequisite chain: unmet prerequisites down-weight, never exclude.
	if n := len(meta.Prerequisites); n > 0 {
		unmet := 0
		for _, id := range meta.Prerequisites {
			if !s.completedAnywhere(id) {
				unmet++
			}
		}
		if unmet > 0 {
			signals[signalPrerequisites] = -s.cfg.Weights.Prerequisite * float64(unmet) / float64(n)
		} else {
			signals[signalPrerequisites] = s.cfg.Weights.Prerequisite * 0.25
			prereqsMet = true
			evidence++
		}
	}

	// Goal prerequisite: the item unblocks something the user started.
	if _, ok := s.goalPrereqs[meta.ID]; ok && !s.completedAnywhere(meta.ID) {
		signals[signalGoalPrereq] = s.cfg.Weights.Prerequisite * 0.75
		goalPrereq = true
		evidence++
	}

	// Interest overlap: earlier interests weigh more.
	if w, top := s.interestOverlap(meta.Tags); w > 0 {
		signals[signalInterest] = s.cfg.Weights.Interest * w
		interestHit = true
		topInterest = top
		evidence++
	}

	// Difficulty fit: exact match is best, adjacent is fine, a two-tier
	// gap is actively discouraging.
	if bonus, dist, up := s.difficultyFit(meta.Difficulty); dist >= 0 {
		signals[signalDifficulty] = bonus
		if dist <= 1 {
			exactLevel = dist == 0
			skillGapUp = up
			evidence++
		}
	}

	// Content-type preference: skipped entirely for the all-zero
	// distribution of a brand-new user.
	if w := s.profile.PreferredContentTypes.Weight(item.Kind()); w > 0 {
		signals[signalTypePreference] = s.cfg.Weights.TypePreference * w
		evidence++
	}

	// Time fit: a hard constraint penalizes oversized items strongly so
	// short windows still surface something; without a constraint the
	// observed average completion time gives a soft bonus.
	if s.opts.TimeConstraint > 0 {
		if meta.EstimatedMinutes > s.opts.TimeConstraint {
			signals[signalTimeFit] = -s.cfg.Weights.TimePenalty
		}
	} else if avg := s.profile.AverageCompletionTime.ForKind(item.Kind()); avg > 0 && float64(meta.EstimatedMinutes) <= avg {
		signals[signalTimeFit] = s.cfg.Weights.Streak * s.cfg.Scoring.SoftTimeFitBonus
		evidence++
	}

	// Quick win and streak: short items keep momentum going.
	if meta.EstimatedMinutes > 0 && meta.EstimatedMinutes <= s.cfg.Patterns.QuickWinMinutes {
		if s.prog.StreakDays > 0 {
			signals[signalStreak] = s.cfg.Weights.Streak
			streakWin = true
		} else {
			signals[signalQuickWin] = s.cfg.Weights.Streak * 0.5
			quickWin = true
		}
		evidence++
	}

	var score float64
	for _, v := range signals {
		score += v
	}

	reason := chooseReason(reasonInputs{
		continued:   continued,
		goalPrereq:  goalPrereq,
		prereqsMet:  prereqsMet,
		topInterest: topInterest,
		interestHit: interestHit,
		streakWin:   streakWin,
		quickWin:    quickWin,
		exactLevel:  exactLevel,
		skillGapUp:  skillGapUp,
	})

	return Recommendation{
		Item:        item,
		Score:       score,
		Confidence:  s.confidence(evidence),
		Reason:      reason,
		Explanation: reasonPhrase(reason),
		Signals:     signals,
	}
}

// completedAnywhere reports whether the ID is completed under any kind.
// Prerequisite lists may reference articles, tutorials, or paths.
func (s *scorer) completedAnywhere(id string) bool {
	return s.prog.IsCompleted(catalog.KindArticle, id) ||
		s.prog.IsCompleted(catalog.KindTutorial, id) ||
		s.prog.IsCompleted(catalog.KindPath, id)
}

// interestOverlap returns the position-weighted overlap between item tags
// and profile interests, and whether the strongest interest matched.
func (s *scorer) interestOverlap(tags []string) (weight float64, top bool) {
	if len(tags) == 0 || len(s.profile.Interests) == 0 {
		return 0, false
	}

	positions := make(map[string]int, len(s.profile.Interests))
	for i, interest := range s.profile.Interests {
		positions[strings.ToLower(interest)] = i
	}

	limit := float64(s.cfg.Limits.InterestCap)
	for _, tag := range tags {
		if pos, ok := positions[strings.ToLower(tag)]; ok {
			weight += 1 - float64(pos)/limit
			if pos == 0 {
				top = true
			}
		}
	}
	return weight, top
}

// difficultyFit returns the difficulty signal, the tier distance (-1 when
// either side is undeclared), and whether the item sits one tier above the
// user's level.
func (s *scorer) difficultyFit(d catalog.Difficulty) (bonus float64, dist int, up bool) {
	itemTier := d.Tier()
	skillTier := s.profile.SkillLevel.Tier()
	if itemTier < 0 || skillTier < 0 {
		return 0, -1, false
	}

	dist = itemTier - skillTier
	up = dist == 1
	if dist < 0 {
		dist = -dist
	}

	w := s.cfg.Weights.Difficulty
	switch dist {
	case 0:
		bonus = w * s.cfg.Scoring.ExactDifficultyBonus
	case 1:
		bonus = w * s.cfg.Scoring.AdjacentDifficultyBonus
	default:
		bonus = -w * s.cfg.Scoring.DifficultyGapPenalty
	}
	return bonus, dist, up
}

// confidence maps the fired evidence count to [0,1]. It is independent of
// score magnitude: a well-evidenced match outranks a popularity fallback
// even when their raw scores are close.
func (s *scorer) confidence(evidence int) float64 {
	c := s.cfg.Confidence.Base + s.cfg.Confidence.PerSignal*float64(evidence)
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}

// reasonInputs carries which signals fired for reason selection.
type reasonInputs struct {
	continued   bool
	goalPrereq  bool
	prereqsMet  bool
	topInterest bool
	interestHit bool
	streakWin   bool
	quickWin    bool
	exactLevel  bool
	skillGapUp  bool
}

// chooseReason picks the strongest contributing signal for labeling.
// Priority: continuation > prerequisite-chain fit > interest match >
// quick-win > difficulty fit > popularity. The reason never feeds back
// into the score.
func chooseReason(in reasonInputs) Reason {
	switch {
	case in.continued:
		return ReasonContinuesPath
	case in.goalPrereq:
		return ReasonPrerequisiteForGoal
	case in.prereqsMet:
		return ReasonBuildsOnCompleted
	case in.topInterest:
		return ReasonSimilarToLiked
	case in.interestHit:
		return ReasonMatchesInterest
	case in.streakWin:
		return ReasonMaintainsStreak
	case in.quickWin:
		return ReasonQuickWin
	case in.exactLevel:
		return ReasonSuitableForLevel
	case in.skillGapUp:
		return ReasonFillsSkillGap
	default:
		return ReasonPopularChoice
	}
}

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/progress"
)

func newTestScorer(profile *UserProfile, prog *progress.UserProgress, goals map[string]struct{}, opts Options) *scorer {
	if prog == nil {
		prog = &progress.UserProgress{}
	}
	if goals == nil {
		goals = map[string]struct{}{}
	}
	return &scorer{
		cfg:         DefaultConfig(),
		profile:     profile,
		prog:        prog,
		goalPrereqs: goals,
		opts:        opts,
	}
}

func TestScorePopularityFallback(t *testing.T) {
	// No signals beyond the base: undeclared difficulty, no tags, not
	// short, no prerequisites, no history.
	s := newTestScorer(&UserProfile{SkillLevel: SkillBeginner}, nil, nil, Options{})
	rec := s.scoreItem(testArticle("plain", nil, "", 30))

	if rec.Score != 1 {
		t.Errorf("Score = %f, want 1 (base only)", rec.Score)
	}
	if rec.Confidence != 0.2 {
		t.Errorf("Confidence = %f, want 0.2 (no evidence)", rec.Confidence)
	}
	if rec.Reason != ReasonPopularChoice {
		t.Errorf("Reason = %q, want %q", rec.Reason, ReasonPopularChoice)
	}
}

func TestScoreContinuationDominates(t *testing.T) {
	prog := progress.New("u1")
	prog.TutorialProgress = map[string]progress.ItemProgress{
		"started": {StartedAt: time.Now()},
	}
	profile := &UserProfile{SkillLevel: SkillBeginner, Interests: []string{"go"}}
	s := newTestScorer(profile, prog, nil, Options{})

	started := s.scoreItem(testTutorial("started", nil, "", 30))
	perfect := s.scoreItem(testTutorial("perfect", []string{"go"}, catalog.DifficultyBeginner, 8))

	if started.Score <= perfect.Score {
		t.Errorf("in-progress score %f should dominate perfect match %f", started.Score, perfect.Score)
	}
	if started.Reason != ReasonContinuesPath {
		t.Errorf("Reason = %q, want %q", started.Reason, ReasonContinuesPath)
	}
}

func TestScoreInterestPositionWeighting(t *testing.T) {
	profile := &UserProfile{
		SkillLevel: SkillBeginner,
		Interests:  []string{"go", "web", "databases"},
	}
	s := newTestScorer(profile, nil, nil, Options{})

	top := s.scoreItem(testArticle("a-go", []string{"go"}, "", 30))
	second := s.scoreItem(testArticle("a-web", []string{"web"}, "", 30))

	wantTop := 3.0 * (1 - 0.0/10)
	wantSecond := 3.0 * (1 - 1.0/10)
	if math.Abs(top.Signals[signalInterest]-wantTop) > 1e-9 {
		t.Errorf("top interest signal = %f, want %f", top.Signals[signalInterest], wantTop)
	}
	if math.Abs(second.Signals[signalInterest]-wantSecond) > 1e-9 {
		t.Errorf("second interest signal = %f, want %f", second.Signals[signalInterest], wantSecond)
	}

	if top.Reason != ReasonSimilarToLiked {
		t.Errorf("top interest Reason = %q, want %q", top.Reason, ReasonSimilarToLiked)
	}
	if second.Reason != ReasonMatchesInterest {
		t.Errorf("second interest Reason = %q, want %q", second.Reason, ReasonMatchesInterest)
	}
}

func TestScoreInterestCaseInsensitive(t *testing.T) {
	profile := &UserProfile{SkillLevel: SkillBeginner, Interests: []string{"Go"}}
	s := newTestScorer(profile, nil, nil, Options{})

	rec := s.scoreItem(testArticle("a1", []string{"gO"}, "", 30))
	if rec.Signals[signalInterest] == 0 {
		t.Error("interest signal = 0, want case-insensitive tag match")
	}
}

func TestScoreDifficultyFit(t *testing.T) {
	tests := []struct {
		name       string
		skill      SkillLevel
		difficulty catalog.Difficulty
		want       float64
		reason     Reason
	}{
		{"exact match", SkillBeginner, catalog.DifficultyBeginner, 2.0, ReasonSuitableForLevel},
		{"one above", SkillBeginner, catalog.DifficultyIntermediate, 0.8, ReasonFillsSkillGap},
		{"one below", SkillIntermediate, catalog.DifficultyBeginner, 0.8, ReasonPopularChoice},
		{"two-tier gap", SkillBeginner, catalog.DifficultyAdvanced, -1.0, ReasonPopularChoice},
		{"undeclared", SkillBeginner, "", 0, ReasonPopularChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScorer(&UserProfile{SkillLevel: tt.skill}, nil, nil, Options{})
			rec := s.scoreItem(testArticle("a1", nil, tt.difficulty, 30))

			if math.Abs(rec.Signals[signalDifficulty]-tt.want) > 1e-9 {
				t.Errorf("difficulty signal = %f, want %f", rec.Signals[signalDifficulty], tt.want)
			}
			if rec.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", rec.Reason, tt.reason)
			}
		})
	}
}

func TestScorePrerequisites(t *testing.T) {
	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"done-1": true, "done-2": true}

	s := newTestScorer(&UserProfile{SkillLevel: SkillBeginner}, prog, nil, Options{})

	t.Run("all satisfied gives bonus", func(t *testing.T) {
		rec := s.scoreItem(testArticle("next", nil, "", 30, "done-1", "done-2"))
		if want := 4.0 * 0.25; rec.Signals[signalPrerequisites] != want {
			t.Errorf("prerequisite signal = %f, want %f", rec.Signals[signalPrerequisites], want)
		}
		if rec.Reason != ReasonBuildsOnCompleted {
			t.Errorf("Reason = %q, want %q", rec.Reason, ReasonBuildsOnCompleted)
		}
	})

	t.Run("unmet fraction penalizes without excluding", func(t *testing.T) {
		rec := s.scoreItem(testArticle("gated", nil, "", 30, "done-1", "missing"))
		if want := -4.0 * 0.5; rec.Signals[signalPrerequisites] != want {
			t.Errorf("prerequisite signal = %f, want %f", rec.Signals[signalPrerequisites], want)
		}
		if rec.Reason == ReasonBuildsOnCompleted {
			t.Error("unmet prerequisites must not report builds_on_completed")
		}
	})
}

func TestScoreGoalPrerequisite(t *testing.T) {
	goals := map[string]struct{}{"unblocker": {}}
	s := newTestScorer(&UserProfile{SkillLevel: SkillBeginner}, nil, goals, Options{})

	rec := s.scoreItem(testArticle("unblocker", nil, "", 30))
	if want := 4.0 * 0.75; rec.Signals[signalGoalPrereq] != want {
		t.Errorf("goal prerequisite signal = %f, want %f", rec.Signals[signalGoalPrereq], want)
	}
	if rec.Reason != ReasonPrerequisiteForGoal {
		t.Errorf("Reason = %q, want %q", rec.Reason, ReasonPrerequisiteForGoal)
	}
}

func TestScoreTimeConstraint(t *testing.T) {
	profile := &UserProfile{SkillLevel: SkillBeginner}

	t.Run("oversized item penalized not excluded", func(t *testing.T) {
		s := newTestScorer(profile, nil, nil, Options{TimeConstraint: 30})
		rec := s.scoreItem(testArticle("long", nil, "", 45))
		if rec.Signals[signalTimeFit] != -8 {
			t.Errorf("time_fit signal = %f, want -8", rec.Signals[signalTimeFit])
		}
	})

	t.Run("fitting item not penalized", func(t *testing.T) {
		s := newTestScorer(profile, nil, nil, Options{TimeConstraint: 30})
		rec := s.scoreItem(testArticle("fits", nil, "", 30))
		if rec.Signals[signalTimeFit] != 0 {
			t.Errorf("time_fit signal = %f, want 0", rec.Signals[signalTimeFit])
		}
	})

	t.Run("soft bonus from observed average", func(t *testing.T) {
		withAvg := &UserProfile{
			SkillLevel:            SkillBeginner,
			AverageCompletionTime: CompletionTimes{Articles: 20},
		}
		s := newTestScorer(withAvg, nil, nil, Options{})
		rec := s.scoreItem(testArticle("fits-habit", nil, "", 18))
		if want := 1.5 * 0.25; rec.Signals[signalTimeFit] != want {
			t.Errorf("time_fit signal = %f, want %f", rec.Signals[signalTimeFit], want)
		}
	})
}

func TestScoreQuickWinAndStreak(t *testing.T) {
	profile := &UserProfile{SkillLevel: SkillBeginner}

	t.Run("short item without streak", func(t *testing.T) {
		s := newTestScorer(profile, nil, nil, Options{})
		rec := s.scoreItem(testArticle("short", nil, "", 8))
		if want := 1.5 * 0.5; rec.Signals[signalQuickWin] != want {
			t.Errorf("quick_win signal = %f, want %f", rec.Signals[signalQuickWin], want)
		}
		if rec.Reason != ReasonQuickWin {
			t.Errorf("Reason = %q, want %q", rec.Reason, ReasonQuickWin)
		}
	})

	t.Run("short item during streak", func(t *testing.T) {
		prog := progress.New("u1")
		prog.StreakDays = 4
		s := newTestScorer(profile, prog, nil, Options{})
		rec := s.scoreItem(testArticle("short", nil, "", 8))
		if rec.Signals[signalStreak] != 1.5 {
			t.Errorf("streak signal = %f, want 1.5", rec.Signals[signalStreak])
		}
		if rec.Reason != ReasonMaintainsStreak {
			t.Errorf("Reason = %q, want %q", rec.Reason, ReasonMaintainsStreak)
		}
	})

	t.Run("longer item gets neither", func(t *testing.T) {
		s := newTestScorer(profile, nil, nil, Options{})
		rec := s.scoreItem(testArticle("medium", nil, "", 11))
		if rec.Signals[signalQuickWin] != 0 || rec.Signals[signalStreak] != 0 {
			t.Errorf("signals = quick_win %f, streak %f, want 0, 0",
				rec.Signals[signalQuickWin], rec.Signals[signalStreak])
		}
	})
}

func TestScoreTypePreference(t *testing.T) {
	profile := &UserProfile{
		SkillLevel:            SkillBeginner,
		PreferredContentTypes: TypeWeights{Articles: 0.75, Tutorials: 0.25},
	}
	s := newTestScorer(profile, nil, nil, Options{})

	article := s.scoreItem(testArticle("a1", nil, "", 30))
	if want := 2.0 * 0.75; article.Signals[signalTypePreference] != want {
		t.Errorf("type_preference signal = %f, want %f", article.Signals[signalTypePreference], want)
	}

	path := s.scoreItem(testPath("p1", nil, 120))
	if path.Signals[signalTypePreference] != 0 {
		t.Errorf("unweighted kind signal = %f, want 0", path.Signals[signalTypePreference])
	}
}

func TestScoreConfidenceClamped(t *testing.T) {
	// Fire every bonus signal at once: confidence must cap at 1.
	prog := progress.New("u1")
	prog.StreakDays = 2
	prog.CompletedArticles = map[string]bool{"pre": true}
	prog.TutorialProgress = map[string]progress.ItemProgress{"rich": {StartedAt: time.Now()}}

	profile := &UserProfile{
		SkillLevel:            SkillBeginner,
		Interests:             []string{"go"},
		PreferredContentTypes: TypeWeights{Tutorials: 1},
		AverageCompletionTime: CompletionTimes{Tutorials: 20},
	}
	goals := map[string]struct{}{"rich": {}}

	s := newTestScorer(profile, prog, goals, Options{})
	rec := s.scoreItem(testTutorial("rich", []string{"go"}, catalog.DifficultyBeginner, 8, "pre"))

	if rec.Confidence != 1 {
		t.Errorf("Confidence = %f, want clamped to 1", rec.Confidence)
	}
}

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"math"
	"reflect"
	"testing"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/progress"
)

func TestSkillLevelThresholds(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		points int
		want   SkillLevel
	}{
		{0, SkillBeginner},
		{499, SkillBeginner},
		{500, SkillIntermediate},
		{1999, SkillIntermediate},
		{2000, SkillAdvanced},
		{100000, SkillAdvanced},
	}

	for _, tt := range tests {
		if got := skillLevelFor(cfg, tt.points); got != tt.want {
			t.Errorf("skillLevelFor(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestBuildProfileColdStart(t *testing.T) {
	e := newTestEngine(t)
	prof := e.BuildProfile(progress.New("new-user"), nil, nil)

	if prof.SkillLevel != SkillBeginner {
		t.Errorf("SkillLevel = %q, want beginner", prof.SkillLevel)
	}
	if len(prof.Interests) != 0 {
		t.Errorf("Interests = %v, want empty", prof.Interests)
	}
	if sum := prof.PreferredContentTypes.Sum(); sum != 0 {
		t.Errorf("PreferredContentTypes.Sum() = %f, want 0 (no preference)", sum)
	}
	if prof.AverageCompletionTime != (CompletionTimes{}) {
		t.Errorf("AverageCompletionTime = %+v, want zero", prof.AverageCompletionTime)
	}
	if !ValidateUserProfile(&prof) {
		t.Error("ValidateUserProfile() = false for cold-start profile")
	}
}

func TestBuildProfileNilProgress(t *testing.T) {
	e := newTestEngine(t)
	prof := e.BuildProfile(nil, nil, nil)
	if prof.SkillLevel != SkillBeginner {
		t.Errorf("SkillLevel = %q, want beginner", prof.SkillLevel)
	}
}

func TestInterestsRankedByFrequency(t *testing.T) {
	e := newTestEngine(t)

	articles := []catalog.Article{
		testArticle("a1", []string{"go", "testing"}, catalog.DifficultyBeginner, 10),
		testArticle("a2", []string{"go", "web"}, catalog.DifficultyBeginner, 10),
		testArticle("a3", []string{"go"}, catalog.DifficultyBeginner, 10),
		testArticle("a4", []string{"databases"}, catalog.DifficultyBeginner, 10),
	}
	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"a1": true, "a2": true, "a3": true, "a4": true}

	prof := e.BuildProfile(prog, articles, nil)

	// go x3, then first-seen order among the x1 tags.
	want := []string{"go", "testing", "web", "databases"}
	if !reflect.DeepEqual(prof.Interests, want) {
		t.Errorf("Interests = %v, want %v", prof.Interests, want)
	}
}

func TestInterestsCapped(t *testing.T) {
	e := newTestEngine(t)

	articles := make([]catalog.Article, 0, 15)
	completed := make(map[string]bool, 15)
	for _, tag := range []string{
		"t00", "t01", "t02", "t03", "t04", "t05", "t06",
		"t07", "t08", "t09", "t10", "t11", "t12", "t13", "t14",
	} {
		id := "a-" + tag
		articles = append(articles, testArticle(id, []string{tag}, catalog.DifficultyBeginner, 10))
		completed[id] = true
	}
	prog := progress.New("u1")
	prog.CompletedArticles = completed

	prof := e.BuildProfile(prog, articles, nil)
	if len(prof.Interests) != 10 {
		t.Errorf("len(Interests) = %d, want 10", len(prof.Interests))
	}
}

func TestTypeWeightsFromCompletions(t *testing.T) {
	e := newTestEngine(t)

	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"a1": true, "a2": true, "a3": true}
	prog.CompletedTutorials = map[string]bool{"t1": true}

	prof := e.BuildProfile(prog, nil, nil)
	w := prof.PreferredContentTypes

	if math.Abs(w.Articles-0.75) > 1e-9 || math.Abs(w.Tutorials-0.25) > 1e-9 || w.Paths != 0 {
		t.Errorf("PreferredContentTypes = %+v, want {0.75 0.25 0}", w)
	}
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %f, want 1", w.Sum())
	}
}

func TestCompletionTimes(t *testing.T) {
	e := newTestEngine(t)

	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"a1": true, "a2": true}
	prog.ArticleMinutes = 30
	prog.CompletedTutorials = map[string]bool{"t1": true}
	prog.TutorialMinutes = 45

	prof := e.BuildProfile(prog, nil, nil)
	if prof.AverageCompletionTime.Articles != 15 {
		t.Errorf("Articles average = %f, want 15", prof.AverageCompletionTime.Articles)
	}
	if prof.AverageCompletionTime.Tutorials != 45 {
		t.Errorf("Tutorials average = %f, want 45", prof.AverageCompletionTime.Tutorials)
	}
}

func TestDifficultyPreferenceDistribution(t *testing.T) {
	e := newTestEngine(t)

	articles := []catalog.Article{
		testArticle("a1", nil, catalog.DifficultyBeginner, 10),
		testArticle("a2", nil, catalog.DifficultyBeginner, 10),
		testArticle("a3", nil, catalog.DifficultyIntermediate, 10),
		testArticle("a4", nil, "", 10), // undeclared, excluded
	}
	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"a1": true, "a2": true, "a3": true, "a4": true}

	prof := e.BuildProfile(prog, articles, nil)
	want := DifficultyWeights{Beginner: 2.0 / 3.0, Intermediate: 1.0 / 3.0}
	got := prof.DifficultyPreference
	if math.Abs(got.Beginner-want.Beginner) > 1e-9 ||
		math.Abs(got.Intermediate-want.Intermediate) > 1e-9 ||
		got.Advanced != 0 {
		t.Errorf("DifficultyPreference = %+v, want %+v", got, want)
	}
}

func TestLearningPatterns(t *testing.T) {
	e := newTestEngine(t)

	t.Run("short content and prerequisites", func(t *testing.T) {
		articles := []catalog.Article{
			testArticle("a1", nil, catalog.DifficultyBeginner, 5, "a0"),
			testArticle("a2", nil, catalog.DifficultyBeginner, 10, "a1"),
			testArticle("a3", nil, catalog.DifficultyBeginner, 60),
		}
		prog := progress.New("u1")
		prog.CompletedArticles = map[string]bool{"a1": true, "a2": true, "a3": true}

		p := e.BuildProfile(prog, articles, nil).LearningPatterns
		if !p.PrefersShortContent {
			t.Error("PrefersShortContent = false, want true (median 10 < 15)")
		}
		if !p.LikesPrerequisites {
			t.Error("LikesPrerequisites = false, want true (2/3 declared)")
		}
		if p.PrefersInteractive {
			t.Error("PrefersInteractive = true, want false (articles only)")
		}
	})

	t.Run("interactive majority", func(t *testing.T) {
		prog := progress.New("u1")
		prog.CompletedArticles = map[string]bool{"a1": true}
		prog.CompletedTutorials = map[string]bool{"t1": true, "t2": true}

		p := e.BuildProfile(prog, nil, nil).LearningPatterns
		if !p.PrefersInteractive {
			t.Error("PrefersInteractive = false, want true (2/3 tutorials)")
		}
	})
}

func TestBuildProfileDeterministic(t *testing.T) {
	e := newTestEngine(t)

	articles := []catalog.Article{
		testArticle("a1", []string{"go", "testing"}, catalog.DifficultyBeginner, 10),
		testArticle("a2", []string{"web", "go"}, catalog.DifficultyIntermediate, 25),
	}
	prog := progress.New("u1")
	prog.CompletedArticles = map[string]bool{"a1": true, "a2": true}
	prog.TotalPoints = 700
	prog.ArticleMinutes = 35

	first := e.BuildProfile(prog, articles, nil)
	second := e.BuildProfile(prog, articles, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildProfile not deterministic:\n first = %+v\nsecond = %+v", first, second)
	}
}

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package progress

import (
	"time"

	"github.com/courselab/courselab-go/internal/catalog"
)

// ItemProgress is the in-progress state for a started tutorial or path.
type ItemProgress struct {
	// StartedAt is when the user first opened the item.
	StartedAt time.Time `json:"started_at"`

	// CompletedSteps lists finished step or sub-item IDs.
	CompletedSteps []string `json:"completed_steps,omitempty"`

	// LastAccessedAt is the most recent activity on the item.
	LastAccessedAt time.Time `json:"last_accessed_at"`
}

// UserProgress is a per-user aggregate of learning history.
// The recommendation engine reads it as an immutable snapshot.
type UserProgress struct {
	// UserID is the owning user.
	UserID string `json:"user_id"`

	// CompletedArticles is the set of completed article slugs.
	CompletedArticles map[string]bool `json:"completed_articles,omitempty"`

	// CompletedTutorials is the set of completed tutorial IDs.
	CompletedTutorials map[string]bool `json:"completed_tutorials,omitempty"`

	// CompletedPaths is the set of completed learning path IDs.
	CompletedPaths map[string]bool `json:"completed_paths,omitempty"`

	// TutorialProgress maps started tutorial IDs to in-progress state.
	TutorialProgress map[string]ItemProgress `json:"tutorial_progress,omitempty"`

	// PathProgress maps started path IDs to in-progress state.
	PathProgress map[string]ItemProgress `json:"path_progress,omitempty"`

	// TotalPoints is the cumulative points earned.
	TotalPoints int `json:"total_points"`

	// StreakDays is the current consecutive-day activity streak.
	StreakDays int `json:"streak_days"`

	// ArticleMinutes is the total time spent on completed articles.
	ArticleMinutes int `json:"article_minutes"`

	// TutorialMinutes is the total time spent on completed tutorials.
	TutorialMinutes int `json:"tutorial_minutes"`

	// LastActivityAt is the timestamp of the most recent activity.
	LastActivityAt time.Time `json:"last_activity_at"`

	// CreatedAt is when the progress record was created.
	CreatedAt time.Time `json:"created_at"`
}

// New returns an empty progress record for a brand-new user.
func New(userID string) *UserProgress {
	now := time.Now()
	return &UserProgress{
		UserID:         userID,
		CreatedAt:      now,
		LastActivityAt: now,
	}
}

// IsCompleted reports whether the item of the given kind is completed.
func (p *UserProgress) IsCompleted(kind catalog.Kind, id string) bool {
	if p == nil {
		return false
	}
	switch kind {
	case catalog.KindArticle:
		return p.CompletedArticles[id]
	case catalog.KindTutorial:
		return p.CompletedTutorials[id]
	case catalog.KindPath:
		return p.CompletedPaths[id]
	default:
		return false
	}
}

// IsInProgress reports whether the item is started but not completed.
// Articles are never tracked as in-progress.
func (p *UserProgress) IsInProgress(kind catalog.Kind, id string) bool {
	if p == nil || p.IsCompleted(kind, id) {
		return false
	}
	switch kind {
	case catalog.KindTutorial:
		_, ok := p.TutorialProgress[id]
		return ok
	case catalog.KindPath:
		_, ok := p.PathProgress[id]
		return ok
	default:
		return false
	}
}

// CompletedCount returns the number of completed items of the given kind.
func (p *UserProgress) CompletedCount(kind catalog.Kind) int {
	if p == nil {
		return 0
	}
	switch kind {
	case catalog.KindArticle:
		return len(p.CompletedArticles)
	case catalog.KindTutorial:
		return len(p.CompletedTutorials)
	case catalog.KindPath:
		return len(p.CompletedPaths)
	default:
		return 0
	}
}

// TotalCompleted returns the number of completed items across all kinds.
func (p *UserProgress) TotalCompleted() int {
	return p.CompletedCount(catalog.KindArticle) +
		p.CompletedCount(catalog.KindTutorial) +
		p.CompletedCount(catalog.KindPath)
}

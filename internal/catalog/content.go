// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package catalog

// Kind identifies a content kind.
type Kind int

const (
	// KindArticle is written long-form content.
	KindArticle Kind = iota
	// KindTutorial is hands-on, step-based content.
	KindTutorial
	// KindPath is a multi-item learning path.
	KindPath
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindTutorial:
		return "tutorial"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Difficulty is the declared difficulty tier of a content item.
type Difficulty string

const (
	// DifficultyBeginner is the entry tier.
	DifficultyBeginner Difficulty = "beginner"
	// DifficultyIntermediate is the middle tier.
	DifficultyIntermediate Difficulty = "intermediate"
	// DifficultyAdvanced is the top tier.
	DifficultyAdvanced Difficulty = "advanced"
)

// Tier returns the numeric tier (0-2) for difficulty distance comparisons.
// Returns -1 for an empty or unrecognized difficulty.
func (d Difficulty) Tier() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return -1
	}
}

// Meta holds the fields shared by all content kinds.
type Meta struct {
	// ID is the unique slug or identifier within the kind.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Category is the section the item belongs to.
	Category string `json:"category"`

	// Tags is the set of topic tags, in catalog order.
	Tags []string `json:"tags"`

	// Difficulty is the declared tier. Optional; empty means undeclared.
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// EstimatedMinutes is the estimated completion time.
	EstimatedMinutes int `json:"estimated_minutes"`

	// Prerequisites lists IDs that should be completed first. Optional.
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// ContentItem is the sealed sum type over the three content kinds.
// Only Article, Tutorial, and LearningPath implement it.
type ContentItem interface {
	// Kind returns the content kind discriminator.
	Kind() Kind

	// Metadata returns the shared metadata fields.
	Metadata() Meta

	// sealed prevents implementations outside this package.
	sealed()
}

// Article is written long-form content.
type Article struct {
	Meta

	// WordCount is the approximate article length.
	WordCount int `json:"word_count,omitempty"`

	// Author is the author slug.
	Author string `json:"author,omitempty"`
}

// Kind returns KindArticle.
func (Article) Kind() Kind { return KindArticle }

// Metadata returns the shared metadata fields.
func (a Article) Metadata() Meta { return a.Meta }

func (Article) sealed() {}

// Tutorial is hands-on, step-based content.
type Tutorial struct {
	Meta

	// Steps is the number of steps in the tutorial.
	Steps int `json:"steps,omitempty"`

	// Interactive indicates the tutorial has runnable exercises.
	Interactive bool `json:"interactive,omitempty"`
}

// Kind returns KindTutorial.
func (Tutorial) Kind() Kind { return KindTutorial }

// Metadata returns the shared metadata fields.
func (t Tutorial) Metadata() Meta { return t.Meta }

func (Tutorial) sealed() {}

// LearningPath is an ordered multi-item learning path.
type LearningPath struct {
	Meta

	// Items lists the content IDs that make up the path, in order.
	Items []string `json:"items,omitempty"`
}

// Kind returns KindPath.
func (LearningPath) Kind() Kind { return KindPath }

// Metadata returns the shared metadata fields.
func (p LearningPath) Metadata() Meta { return p.Meta }

func (LearningPath) sealed() {}

// Interface conformance checks.
var (
	_ ContentItem = Article{}
	_ ContentItem = Tutorial{}
	_ ContentItem = LearningPath{}
)

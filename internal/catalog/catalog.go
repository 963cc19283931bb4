// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Catalog is a read-only snapshot of all content available for
// recommendation. Slices are in catalog order, which is the stable
// tie-break order used by the ranking pipeline.
type Catalog struct {
	Articles  []Article      `json:"articles"`
	Tutorials []Tutorial     `json:"tutorials"`
	Paths     []LearningPath `json:"paths"`
}

// Empty reports whether the catalog contains no items of any kind.
func (c *Catalog) Empty() bool {
	return c == nil || (len(c.Articles) == 0 && len(c.Tutorials) == 0 && len(c.Paths) == 0)
}

// Size returns the total number of items across all kinds.
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return len(c.Articles) + len(c.Tutorials) + len(c.Paths)
}

// FindArticle returns the article with the given ID, or false.
func (c *Catalog) FindArticle(id string) (Article, bool) {
	for _, a := range c.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// FindTutorial returns the tutorial with the given ID, or false.
func (c *Catalog) FindTutorial(id string) (Tutorial, bool) {
	for _, t := range c.Tutorials {
		if t.ID == id {
			return t, true
		}
	}
	return Tutorial{}, false
}

// FindPath returns the learning path with the given ID, or false.
func (c *Catalog) FindPath(id string) (LearningPath, bool) {
	for _, p := range c.Paths {
		if p.ID == id {
			return p, true
		}
	}
	return LearningPath{}, false
}

// Load reads a catalog snapshot from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog snapshot from JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate rejects snapshots with duplicate or empty IDs within a kind.
func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, c.Size())

	check := func(kind Kind, id string) error {
		if id == "" {
			return fmt.Errorf("catalog: %s with empty id", kind)
		}
		key := kind.String() + ":" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("catalog: duplicate %s id %q", kind, id)
		}
		seen[key] = struct{}{}
		return nil
	}

	for _, a := range c.Articles {
		if err := check(KindArticle, a.ID); err != nil {
			return err
		}
	}
	for _, t := range c.Tutorials {
		if err := check(KindTutorial, t.ID); err != nil {
			return err
		}
	}
	for _, p := range c.Paths {
		if err := check(KindPath, p.ID); err != nil {
			return err
		}
	}
	return nil
}

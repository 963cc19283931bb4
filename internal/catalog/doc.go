// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package catalog defines the content model for the learning platform.
//
// Content comes in three kinds: articles, tutorials, and multi-step learning
// paths. The kinds form a closed sum type: every item implements the sealed
// ContentItem interface, so consumers can type-switch exhaustively over the
// three concrete variants.
//
// The catalog is a read-only snapshot. The recommendation engine never
// mutates catalog data; any ordering it needs is done on copies.
package catalog

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package progress tracks per-user learning history.
//
// UserProgress is the aggregate the recommendation engine reads: completed
// item sets, in-progress state, points, and streaks. The engine treats it as
// an immutable snapshot; only the Store mutates persisted state.
//
// Store persists progress records in BadgerDB, keyed by user ID. Records are
// serialized with goccy/go-json.
package progress

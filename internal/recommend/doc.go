// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package recommend implements the personalized content-recommendation
// engine for the learning platform.
//
// # Architecture
//
// Given a user's progress history the engine derives a lightweight
// behavioral profile, scores every not-yet-completed candidate item with a
// set of additive heuristic signals, applies a greedy diversity pass, and
// returns a ranked, explainable list with confidence values:
//
//   - Profile Builder: full rebuild of a UserProfile from history
//   - Item Scorer: weighted multi-signal scoring with independent
//     evidence-based confidence and a labeled reason per item
//   - Ranking Orchestrator: per-kind filtering, scoring, diversity
//     reranking, and truncation
//   - Cross-Kind Selector: union, single-best, and time-bucketed views
//   - Explainer: reason and confidence rendered as human-readable text
//   - Profile Updater: incremental EMA adjustment after a single activity
//
// # Design Principles
//
//   - Deterministic: identical inputs produce identical rankings; ties
//     break by catalog order
//   - Stateless: every call works on the snapshots it is given; the
//     engine holds no mutable state between calls
//   - Graceful: empty catalogs and brand-new users yield empty results or
//     popularity fallbacks, never errors
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    ...
//	}
//
//	recs := engine.RecommendedArticles(userProgress, articles, recommend.DefaultOptions())
//	for _, rec := range recs {
//	    fmt.Println(rec.Item.Metadata().Title, rec.Score, engine.Explain(rec).Details)
//	}
//
// # Thread Safety
//
// All engine methods are safe for concurrent use provided each call is
// given its own progress/catalog snapshot. Catalog arguments are read-only;
// sorting happens on copies.
package recommend

// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package metrics exposes Prometheus metrics for engine and store
// observability. All metrics are registered on the default registry via
// promauto at package load.
package metrics

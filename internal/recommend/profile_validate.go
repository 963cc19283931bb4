// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package recommend

import (
	"math"

	"github.com/courselab/courselab-go/internal/validation"
)

// ValidateUserProfile reports whether a profile is structurally sound:
// a recognized skill level, at most the interest cap of interests, and a
// content-type distribution that either sums to 1 or is all zero.
//
// Use this on profiles deserialized from storage; profiles produced by
// BuildProfile always validate.
func ValidateUserProfile(p *UserProfile) bool {
	if p == nil {
		return false
	}
	if err := validation.ValidateStruct(p); err != nil {
		return false
	}

	sum := p.PreferredContentTypes.Sum()
	if sum != 0 && math.Abs(sum-1) > 1e-9 {
		return false
	}
	return true
}

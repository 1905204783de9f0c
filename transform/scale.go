// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// scale.go — min-max rescaling and interpolation between schedules.

package transform

import (
	"math"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
)

const invLerpEpsilon = 1e-5

// Rescale maps max(s) to start and min(s) to end. Swapping start and end
// flips the direction of the schedule.
//
// Errors:
//   - min(s) == max(s) → sigma.ErrDegenerateRange.
func Rescale(s sigma.Sequence, start, end float64) (sigma.Sequence, error) {
	vals, err := rescaleValues("Rescale", s.Values(), start, end)
	if err != nil {
		return sigma.Sequence{}, err
	}
	return s.Derive(vals), nil
}

// Lerp returns (1−t)·a + t·b. With ensureLength the shorter input is first
// linearly resampled to the longer one's length; without it the lengths
// must match.
func Lerp(a, b sigma.Sequence, t float64, ensureLength bool) (sigma.Sequence, error) {
	if ensureLength && a.Len() != b.Len() {
		var err error
		if a.Len() < b.Len() {
			a, _, err = resample.Pair(a, b, resample.Linear)
		} else {
			b, _, err = resample.Pair(b, a, resample.Linear)
		}
		if err != nil {
			return sigma.Sequence{}, err
		}
	}
	return zip("Lerp", a, b, func(x, y float64) float64 { return (1-t)*x + t*y })
}

// InvLerp maps [lo, hi] onto [0, 1] and clamps. lo == hi is widened by 1e-5.
func InvLerp(s sigma.Sequence, lo, hi float64) (sigma.Sequence, error) {
	if lo == hi {
		hi = lo + invLerpEpsilon
	}
	return mapValues(s, func(v float64) float64 {
		return math.Min(math.Max((v-lo)/(hi-lo), 0), 1)
	}), nil
}

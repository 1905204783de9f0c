// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// floor.go — floor clamping and value filtering.

package transform

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

// DefaultFloor is the smallest σ of the reference noise table.
const DefaultFloor = 0.0291675

// VarianceFloorMargin is added to every value VarianceFloor raises.
const VarianceFloorMargin = 0.001

// SetFloor replaces every value <= floor with newFloor.
func SetFloor(s sigma.Sequence, floor, newFloor float64) (sigma.Sequence, error) {
	return mapValues(s, func(v float64) float64 {
		if v <= floor {
			return newFloor
		}
		return v
	}), nil
}

// VarianceFloorNext is the smallest σ that may follow σ under
// variance-locked SDE sampling: (√(1+4σ) − 1)/2.
func VarianceFloorNext(sig float64) float64 {
	return (math.Sqrt(1+4*sig) - 1) / 2
}

// VarianceFloor raises every positive s[i+1] below VarianceFloorNext(s[i])
// to that bound plus VarianceFloorMargin. The scan uses the already
// adjusted s[i]. Zeros are left alone.
func VarianceFloor(s sigma.Sequence) (sigma.Sequence, error) {
	vals := s.Values()
	for i := 0; i+1 < len(vals); i++ {
		next := VarianceFloorNext(vals[i])
		if vals[i+1] < next && vals[i+1] > 0 {
			vals[i+1] = next + VarianceFloorMargin
		}
	}
	return s.Derive(vals), nil
}

// DeleteBelowFloor keeps values >= floor.
func DeleteBelowFloor(s sigma.Sequence, floor float64) (sigma.Sequence, error) {
	return filter(s, func(v float64) bool { return v >= floor }), nil
}

// DeleteValue drops every value exactly equal to v.
func DeleteValue(s sigma.Sequence, v float64) (sigma.Sequence, error) {
	return filter(s, func(x float64) bool { return x != v }), nil
}

// DeleteConsecutiveDuplicates keeps the last value of every run of equal
// neighbours.
func DeleteConsecutiveDuplicates(s sigma.Sequence) (sigma.Sequence, error) {
	return s.Derive(dedupRuns(s.Values())), nil
}

// Cleanup drops values below sigmaMin, collapses equal neighbours and
// appends a terminal 0.
func Cleanup(s sigma.Sequence, sigmaMin float64) (sigma.Sequence, error) {
	kept := filter(s, func(v float64) bool { return v >= sigmaMin })
	return s.Derive(append(dedupRuns(kept.Values()), 0)), nil
}

func filter(s sigma.Sequence, keep func(float64) bool) sigma.Sequence {
	vals := s.Values()
	out := vals[:0]
	for _, v := range vals {
		if keep(v) {
			out = append(out, v)
		}
	}
	return s.Derive(out)
}

func dedupRuns(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for i, v := range vals {
		if i+1 < len(vals) && vals[i+1] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

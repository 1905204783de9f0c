// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// resample.go — validation and dispatch.
//
// Validation order (first failure wins, nothing is allocated before it):
//   1. targetLength < 0                      → ErrInvalidArgument
//   2. unknown mode                          → ErrInvalidArgument
//   3. source too short for the mode         → ErrInsufficientData
//   4. non-positive sample for log-space fits → ErrDomain
//   5. targetLength == 0                     → empty result

package resample

import (
	"strconv"

	"github.com/katalvlaran/sigmakit/sigma"
)

const opResample = "Resample"

// Resample maps src onto exactly targetLength samples using mode.
// The result inherits src's precision and execution target.
//
// Complexity (n = src.Len(), m = targetLength):
//   - Linear, Nearest, Exponential: O(n + m).
//   - Spline: O(n + m).
//   - Polynomial: O(n·d²) with d = min(order, n-1)+1.
//   - Power: O(n + m).
//   - Model: O(epochs·n) with a fixed network width.
func Resample(src sigma.Sequence, targetLength int, mode Mode, opts ...Option) (sigma.Sequence, error) {
	if targetLength < 0 {
		return sigma.Sequence{}, sigma.Errorf(opResample, "targetLength", targetLength, ">= 0", sigma.ErrInvalidArgument)
	}
	if !mode.Valid() {
		return sigma.Sequence{}, sigma.Errorf(opResample, "mode", mode, "known mode", sigma.ErrInvalidArgument)
	}

	values := src.Values()
	n := len(values)
	if need := mode.minSource(); n < need && (need > 1 || targetLength > 0) {
		return sigma.Sequence{}, sigma.Errorf(opResample+"/"+mode.String(), "len(source)", n, ">= "+strconv.Itoa(need), sigma.ErrInsufficientData)
	}
	if mode == Exponential || mode == Power {
		for i, v := range values {
			if !(v > 0) {
				return sigma.Sequence{}, sigma.Errorf(opResample+"/"+mode.String(), "source["+strconv.Itoa(i)+"]", v, "> 0", sigma.ErrDomain)
			}
		}
	}
	if targetLength == 0 {
		return src.Derive(nil), nil
	}

	o := gatherOptions(opts...)
	var out []float64
	switch mode {
	case Linear:
		out = linear(values, targetLength)
	case Nearest:
		out = nearest(values, targetLength)
	case Exponential:
		out = logLinear(values, targetLength)
	case Polynomial:
		var err error
		if out, err = polynomial(values, targetLength, o); err != nil {
			return sigma.Sequence{}, err
		}
	case Spline:
		var err error
		if out, err = clampedSpline(values, targetLength); err != nil {
			return sigma.Sequence{}, err
		}
	case Power:
		var err error
		if out, err = powerLaw(values, targetLength); err != nil {
			return sigma.Sequence{}, err
		}
	case Model:
		out = trainedFit(values, targetLength, o)
	}

	return src.Derive(out), nil
}

// Pair resamples a to b's length and returns both; b is passed through.
func Pair(a, b sigma.Sequence, mode Mode, opts ...Option) (sigma.Sequence, sigma.Sequence, error) {
	out, err := Resample(a, b.Len(), mode, opts...)
	if err != nil {
		return sigma.Sequence{}, sigma.Sequence{}, err
	}
	return out, b, nil
}

// gridPositions returns m positions evenly spanning [0, n-1] with aligned
// corners; the last position is exactly n-1.
func gridPositions(n, m int) []float64 {
	pos := make([]float64, m)
	if m == 1 || n == 1 {
		return pos
	}
	scale := float64(n-1) / float64(m-1)
	for i := 0; i < m-1; i++ {
		pos[i] = float64(i) * scale
	}
	pos[m-1] = float64(n - 1)
	return pos
}

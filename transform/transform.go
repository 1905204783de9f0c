// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// transform.go — Func, Chain and shared helpers.

package transform

import (
	"math"
	"strconv"

	"github.com/katalvlaran/sigmakit/sigma"
)

// Func is a single-input transform.
type Func func(s sigma.Sequence) (sigma.Sequence, error)

// With binds the trailing scalar argument of a two-argument transform.
func With(fn func(sigma.Sequence, float64) (sigma.Sequence, error), v float64) Func {
	return func(s sigma.Sequence) (sigma.Sequence, error) { return fn(s, v) }
}

// Chain applies fns left to right and stops at the first error.
func Chain(s sigma.Sequence, fns ...Func) (sigma.Sequence, error) {
	var err error
	for _, fn := range fns {
		if s, err = fn(s); err != nil {
			return sigma.Sequence{}, err
		}
	}
	return s, nil
}

// mapValues applies f element-wise.
func mapValues(s sigma.Sequence, f func(float64) float64) sigma.Sequence {
	vals := s.Values()
	for i, v := range vals {
		vals[i] = f(v)
	}
	return s.Derive(vals)
}

// minMax returns the extremes of vals; NaN entries are skipped.
func minMax(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// rescaleValues maps max(vals) to start and min(vals) to end.
func rescaleValues(op string, vals []float64, start, end float64) ([]float64, error) {
	if len(vals) == 0 {
		return []float64{}, nil
	}
	lo, hi := minMax(vals)
	if !(hi > lo) {
		return nil, sigma.Errorf(op, "range", "min==max=="+strconv.FormatFloat(lo, 'g', -1, 64), "distinct extremes", sigma.ErrDegenerateRange)
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v-lo)*(start-end)/(hi-lo) + end
	}
	return out, nil
}

// normalizeLike maps result onto [min(ref), max(ref)], preserving order.
func normalizeLike(op string, result, ref []float64) ([]float64, error) {
	lo, hi := minMax(ref)
	return rescaleValues(op, result, hi, lo)
}

func checkSameLength(op string, a, b sigma.Sequence) error {
	if a.Len() != b.Len() {
		return sigma.Errorf(op, "len(b)", b.Len(), "== len(a) = "+strconv.Itoa(a.Len()), sigma.ErrInvalidArgument)
	}
	return nil
}

func checkCount(op, param string, n int) error {
	if n < 0 {
		return sigma.Errorf(op, param, n, ">= 0", sigma.ErrInvalidArgument)
	}
	return nil
}

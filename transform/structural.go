// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// structural.go — slicing, joining and padding.
//
// Index arguments follow slice semantics clamped to [0, Len]: asking for
// more than is there returns what is there. Negative indices are rejected.

package transform

import (
	"github.com/katalvlaran/sigmakit/sigma"
)

// Concat returns a followed by b.
func Concat(a, b sigma.Sequence) (sigma.Sequence, error) {
	vals := append(a.Values(), b.Values()...)
	return a.Derive(vals), nil
}

// Truncate keeps the first n values.
func Truncate(s sigma.Sequence, n int) (sigma.Sequence, error) {
	if err := checkCount("Truncate", "n", n); err != nil {
		return sigma.Sequence{}, err
	}
	vals := s.Values()
	return s.Derive(vals[:min(n, len(vals))]), nil
}

// Start drops the first n values.
func Start(s sigma.Sequence, n int) (sigma.Sequence, error) {
	if err := checkCount("Start", "n", n); err != nil {
		return sigma.Sequence{}, err
	}
	vals := s.Values()
	return s.Derive(vals[min(n, len(vals)):]), nil
}

// Split returns s[start:end]. end < start yields an empty sequence.
func Split(s sigma.Sequence, start, end int) (sigma.Sequence, error) {
	if err := checkCount("Split", "start", start); err != nil {
		return sigma.Sequence{}, err
	}
	if err := checkCount("Split", "end", end); err != nil {
		return sigma.Sequence{}, err
	}
	vals := s.Values()
	lo, hi := min(start, len(vals)), min(end, len(vals))
	if hi < lo {
		hi = lo
	}
	return s.Derive(vals[lo:hi]), nil
}

// Pad appends one v.
func Pad(s sigma.Sequence, v float64) (sigma.Sequence, error) {
	return s.Derive(append(s.Values(), v)), nil
}

// Unpad drops the last value; an empty sequence stays empty.
func Unpad(s sigma.Sequence) (sigma.Sequence, error) {
	vals := s.Values()
	if len(vals) == 0 {
		return s.Derive(nil), nil
	}
	return s.Derive(vals[:len(vals)-1]), nil
}

// Append adds count copies of v, then the values of extra (which may be empty).
func Append(s sigma.Sequence, v float64, count int, extra sigma.Sequence) (sigma.Sequence, error) {
	if err := checkCount("Append", "count", count); err != nil {
		return sigma.Sequence{}, err
	}
	vals := s.Values()
	for i := 0; i < count; i++ {
		vals = append(vals, v)
	}
	return s.Derive(append(vals, extra.Values()...)), nil
}

// Flip reverses s.
func Flip(s sigma.Sequence) (sigma.Sequence, error) {
	vals := s.Values()
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	return s.Derive(vals), nil
}

// NoiseInversion builds the schedule pair used for unsampling:
//
//	forward = reverse(s) + [0]
//	reverse = [0] + s + [0]
//
// forward drives the inversion pass and reverse the resampling pass.
func NoiseInversion(s sigma.Sequence) (forward, reverse sigma.Sequence, err error) {
	flipped, _ := Flip(s)
	forward, _ = Pad(flipped, 0)
	reverse = s.Derive(append(append([]float64{0}, s.Values()...), 0))
	return forward, reverse, nil
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// interp.go — index-domain linear, nearest and log-space interpolation.

package resample

import "math"

// linear interpolates values at gridPositions(n, m).
// When m == n every position is an integer and the source is reproduced.
func linear(values []float64, m int) []float64 {
	n := len(values)
	out := make([]float64, m)
	var i int
	var frac float64
	for k, p := range gridPositions(n, m) {
		i = int(p)
		if i >= n-1 {
			out[k] = values[n-1]
			continue
		}
		frac = p - float64(i)
		out[k] = values[i] + frac*(values[i+1]-values[i])
	}
	return out
}

// nearest picks the closest source sample; exact half-way ties resolve to
// the lower index.
func nearest(values []float64, m int) []float64 {
	n := len(values)
	out := make([]float64, m)
	for k, p := range gridPositions(n, m) {
		idx := int(math.Ceil(p - 0.5))
		if idx < 0 {
			idx = 0
		} else if idx > n-1 {
			idx = n - 1
		}
		out[k] = values[idx]
	}
	return out
}

// logLinear interpolates log(values) linearly and exponentiates back.
// Callers guarantee every value is > 0.
func logLinear(values []float64, m int) []float64 {
	logs := make([]float64, len(values))
	for i, v := range values {
		logs[i] = math.Log(v)
	}
	out := linear(logs, m)
	for i := range out {
		out[i] = math.Exp(out[i])
	}
	return out
}

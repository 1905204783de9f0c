// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// sanitize.go — non-finite replacement.

package transform

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

// SanitizeLimit is the magnitude substituted for ±Inf.
const SanitizeLimit = 1e10

// Sanitize replaces +Inf with SanitizeLimit, −Inf with −SanitizeLimit and
// NaN with 0.
func Sanitize(s sigma.Sequence) (sigma.Sequence, error) {
	return s.Derive(sanitizeValues(s.Values())), nil
}

func sanitizeValues(vals []float64) []float64 {
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
			vals[i] = 0
		case math.IsInf(v, 1):
			vals[i] = SanitizeLimit
		case math.IsInf(v, -1):
			vals[i] = -SanitizeLimit
		}
	}
	return vals
}

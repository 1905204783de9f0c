// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// spline.go — clamped cubic spline with zero end slopes.
//
// Knots sit at x_i = i/(n-1) on [0,1]. The fit is gonum's ClampedCubic,
// whose boundary conditions are Y′(0) = Y′(1) = 0.

package resample

import (
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/sigmakit/sigma"
)

// clampedSpline fits the spline and samples it on m points over [0,1].
// The knot values at t = 0 and t = 1 are returned verbatim.
func clampedSpline(values []float64, m int) ([]float64, error) {
	n := len(values)
	var cc interp.ClampedCubic
	if err := cc.Fit(sigma.LinspaceValues(0, 1, n), values); err != nil {
		return nil, sigma.Errorf(opResample+"/spline", "source", n, "solvable spline system: "+err.Error(), sigma.ErrInsufficientData)
	}

	out := make([]float64, m)
	for i, t := range sigma.LinspaceValues(0, 1, m) {
		out[i] = cc.Predict(t)
	}
	out[0] = values[0]
	if m > 1 {
		out[m-1] = values[n-1]
	}
	return out, nil
}

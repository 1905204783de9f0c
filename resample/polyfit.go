// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// polyfit.go — least-squares polynomial and power-law fits.
//
// Both fits build a Vandermonde design matrix and solve it with the
// Householder least-squares kernel from package matrix, which scales columns
// and reports rank instead of failing on tiny pivots.

package resample

import (
	"errors"
	"math"

	"github.com/katalvlaran/sigmakit/matrix"
	"github.com/katalvlaran/sigmakit/sigma"
)

// fitPolynomial returns coefficients c[0..degree] (ascending powers) of the
// least-squares polynomial through (xs, ys).
func fitPolynomial(op string, xs, ys []float64, degree int) ([]float64, int, error) {
	v, err := matrix.Vandermonde(xs, degree)
	if err != nil {
		return nil, 0, sigma.Errorf(op, "degree", degree, "valid design matrix: "+err.Error(), sigma.ErrInvalidArgument)
	}
	coef, rank, err := matrix.LeastSquares(v, ys, 0)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, 0, sigma.Errorf(op, "source", len(ys), "finite samples: "+err.Error(), sigma.ErrDomain)
	}
	if err != nil {
		return nil, 0, sigma.Errorf(op, "source", len(ys), "solvable least-squares system: "+err.Error(), sigma.ErrInsufficientData)
	}
	return coef, rank, nil
}

// horner evaluates Σ c[k]·x^k.
func horner(coef []float64, x float64) float64 {
	acc := 0.0
	for k := len(coef) - 1; k >= 0; k-- {
		acc = acc*x + coef[k]
	}
	return acc
}

// polynomial fits a polynomial of degree min(order, n-1) over [0,1] and
// evaluates it on m evenly spaced points.
func polynomial(values []float64, m int, o Options) ([]float64, error) {
	n := len(values)
	degree := o.Order
	if degree > n-1 {
		o.Logger.Warn("polynomial order clamped to source length",
			"requested", o.Order,
			"degree", n-1,
			"source_len", n,
		)
		degree = n - 1
	}

	xs := sigma.LinspaceValues(0, 1, n)
	coef, rank, err := fitPolynomial(opResample+"/polynomial", xs, values, degree)
	if err != nil {
		return nil, err
	}
	if rank < degree+1 {
		o.Logger.Warn("polynomial fit is rank deficient",
			"degree", degree,
			"rank", rank,
		)
	}

	out := make([]float64, m)
	for i, x := range sigma.LinspaceValues(0, 1, m) {
		out[i] = horner(coef, x)
	}
	return out, nil
}

// powerLaw fits log(y) = log(a) + b·log(x) over x = 1..n and evaluates
// a·x^b on linspace(1, n, m). Callers guarantee every value is > 0.
func powerLaw(values []float64, m int) ([]float64, error) {
	n := len(values)
	logX := make([]float64, n)
	logY := make([]float64, n)
	for i, v := range values {
		logX[i] = math.Log(float64(i + 1))
		logY[i] = math.Log(v)
	}
	coef, _, err := fitPolynomial(opResample+"/power", logX, logY, 1)
	if err != nil {
		return nil, err
	}
	a, b := math.Exp(coef[0]), coef[1]

	out := make([]float64, m)
	for i, x := range sigma.LinspaceValues(1, float64(n), m) {
		out[i] = a * math.Pow(x, b)
	}
	return out, nil
}

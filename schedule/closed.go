// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// closed.go — Constant, Karras and PolyExponential families.

package schedule

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

const (
	opConstant        = "Constant"
	opKarras          = "Karras"
	opPolyExponential = "PolyExponential"
)

// Constant returns steps+1 values: start up to the cutoff step, end after it.
// The cutoff step is round(steps·cutoff)+1 with ties to even, so
// Constant(4, 1, 0, 0.5) is [1 1 1 0 0].
//
// Errors:
//   - steps < 0 or cutoff outside [0,1] → sigma.ErrInvalidArgument.
func Constant(steps int, start, end, cutoff float64, opts ...sigma.Option) (sigma.Sequence, error) {
	if steps < 0 {
		return sigma.Sequence{}, sigma.Errorf(opConstant, "steps", steps, ">= 0", sigma.ErrInvalidArgument)
	}
	if !(cutoff >= 0 && cutoff <= 1) {
		return sigma.Sequence{}, sigma.Errorf(opConstant, "cutoff", cutoff, "in [0,1]", sigma.ErrInvalidArgument)
	}
	cut := int(math.RoundToEven(float64(steps)*cutoff)) + 1
	out := make([]float64, steps+1)
	for i := range out {
		if i < cut {
			out[i] = start
		} else {
			out[i] = end
		}
	}
	return sigma.New(out, opts...)
}

func checkSigmaBounds(op string, sigmaMin, sigmaMax, rho float64) error {
	if !(sigmaMin > 0) {
		return sigma.Errorf(op, "sigmaMin", sigmaMin, "> 0", sigma.ErrDomain)
	}
	if !(sigmaMax > 0) {
		return sigma.Errorf(op, "sigmaMax", sigmaMax, "> 0", sigma.ErrDomain)
	}
	if rho == 0 || math.IsNaN(rho) {
		return sigma.Errorf(op, "rho", rho, "non-zero", sigma.ErrInvalidArgument)
	}
	return nil
}

// karrasValues is the raw Karras spacing: n values from sigmaMax down to
// sigmaMin plus a terminal zero.
func karrasValues(n int, sigmaMin, sigmaMax, rho float64) []float64 {
	minInv := math.Pow(sigmaMin, 1/rho)
	maxInv := math.Pow(sigmaMax, 1/rho)
	out := make([]float64, n+1)
	for i, r := range sigma.LinspaceValues(0, 1, n) {
		out[i] = math.Pow(maxInv+r*(minInv-maxInv), rho)
	}
	return out
}

// polyExpValues is the raw poly-exponential spacing plus a terminal zero.
func polyExpValues(n int, sigmaMin, sigmaMax, rho float64) []float64 {
	lo, hi := math.Log(sigmaMin), math.Log(sigmaMax)
	out := make([]float64, n+1)
	for i, r := range sigma.LinspaceValues(1, 0, n) {
		out[i] = math.Exp(math.Pow(r, rho)*(hi-lo) + lo)
	}
	return out
}

// Karras returns the Karras et al. spacing
//
//	σ_i = (σmax^(1/ρ) + i/(n−1)·(σmin^(1/ρ) − σmax^(1/ρ)))^ρ
//
// for i in [0,n), followed by a terminal 0 (n+1 values in total).
//
// Errors:
//   - n < 0 or ρ == 0 → sigma.ErrInvalidArgument.
//   - σmin <= 0 or σmax <= 0 → sigma.ErrDomain.
func Karras(n int, sigmaMin, sigmaMax, rho float64, opts ...sigma.Option) (sigma.Sequence, error) {
	if n < 0 {
		return sigma.Sequence{}, sigma.Errorf(opKarras, "n", n, ">= 0", sigma.ErrInvalidArgument)
	}
	if err := checkSigmaBounds(opKarras, sigmaMin, sigmaMax, rho); err != nil {
		return sigma.Sequence{}, err
	}
	return sigma.New(karrasValues(n, sigmaMin, sigmaMax, rho), opts...)
}

// PolyExponential returns exp(r_i^ρ·(log σmax − log σmin) + log σmin) for
// r = linspace(1, 0, n), followed by a terminal 0.
//
// Errors: as Karras.
func PolyExponential(n int, sigmaMin, sigmaMax, rho float64, opts ...sigma.Option) (sigma.Sequence, error) {
	if n < 0 {
		return sigma.Sequence{}, sigma.Errorf(opPolyExponential, "n", n, ">= 0", sigma.ErrInvalidArgument)
	}
	if err := checkSigmaBounds(opPolyExponential, sigmaMin, sigmaMax, rho); err != nil {
		return sigma.Sequence{}, err
	}
	return sigma.New(polyExpValues(n, sigmaMin, sigmaMax, rho), opts...)
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// arith.go — element-wise arithmetic.

package transform

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

// Mult scales every value by k.
func Mult(s sigma.Sequence, k float64) (sigma.Sequence, error) {
	return mapValues(s, func(v float64) float64 { return v * k }), nil
}

// Add shifts every value by d.
func Add(s sigma.Sequence, d float64) (sigma.Sequence, error) {
	return mapValues(s, func(v float64) float64 { return v + d }), nil
}

// Power raises every value to p. Negative bases with fractional p give NaN.
func Power(s sigma.Sequence, p float64) (sigma.Sequence, error) {
	return mapValues(s, func(v float64) float64 { return math.Pow(v, p) }), nil
}

// Abs takes the absolute value of every element.
func Abs(s sigma.Sequence) (sigma.Sequence, error) {
	return mapValues(s, math.Abs), nil
}

// Modulus is the floored remainder, carrying the sign of divisor.
//
// Errors:
//   - divisor == 0 → sigma.ErrInvalidArgument.
func Modulus(s sigma.Sequence, divisor float64) (sigma.Sequence, error) {
	if divisor == 0 {
		return sigma.Sequence{}, sigma.Errorf("Modulus", "divisor", divisor, "!= 0", sigma.ErrInvalidArgument)
	}
	return mapValues(s, func(v float64) float64 {
		m := math.Mod(v, divisor)
		if m != 0 && (m < 0) != (divisor < 0) {
			m += divisor
		}
		return m
	}), nil
}

// Quotient is the floored division ⌊v/divisor⌋.
//
// Errors:
//   - divisor == 0 → sigma.ErrInvalidArgument.
func Quotient(s sigma.Sequence, divisor float64) (sigma.Sequence, error) {
	if divisor == 0 {
		return sigma.Sequence{}, sigma.Errorf("Quotient", "divisor", divisor, "!= 0", sigma.ErrInvalidArgument)
	}
	return mapValues(s, func(v float64) float64 { return math.Floor(v / divisor) }), nil
}

// Mult2 multiplies a and b element-wise.
func Mult2(a, b sigma.Sequence) (sigma.Sequence, error) {
	return zip("Mult2", a, b, func(x, y float64) float64 { return x * y })
}

// Add2 adds a and b element-wise.
func Add2(a, b sigma.Sequence) (sigma.Sequence, error) {
	return zip("Add2", a, b, func(x, y float64) float64 { return x + y })
}

func zip(op string, a, b sigma.Sequence, f func(x, y float64) float64) (sigma.Sequence, error) {
	if err := checkSameLength(op, a, b); err != nil {
		return sigma.Sequence{}, err
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		av[i] = f(av[i], bv[i])
	}
	return a.Derive(av), nil
}

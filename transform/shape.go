// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// shape.go — special-function reshaping.
//
// Each function computes raw results, sanitizes them, and optionally
// normalizes them back onto [min(s), max(s)] so the output can replace the
// input in a schedule.

package transform

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/sigmakit/sigma"
)

// SigmoidVariant selects the squashing function of Sigmoid.
type SigmoidVariant string

// Sigmoid variants.
const (
	Logistic  SigmoidVariant = "logistic"
	Tanh      SigmoidVariant = "tanh"
	Softsign  SigmoidVariant = "softsign"
	Hardswish SigmoidVariant = "hardswish"
	Mish      SigmoidVariant = "mish"
	Swish     SigmoidVariant = "swish"
)

// HyperbolicFunc selects the function of Hyperbolic.
type HyperbolicFunc string

// Hyperbolic functions. Acosh clamps its argument to >= 1 and Atanh to
// [−0.99, 0.99].
const (
	Sinh  HyperbolicFunc = "sinh"
	Cosh  HyperbolicFunc = "cosh"
	TanhH HyperbolicFunc = "tanh"
	Asinh HyperbolicFunc = "asinh"
	Acosh HyperbolicFunc = "acosh"
	Atanh HyperbolicFunc = "atanh"
)

// GaussianOp selects what Gaussian computes.
type GaussianOp string

// Gaussian operations.
const (
	GaussPDF        GaussianOp = "pdf"         // N(mean, std) density at each value
	GaussCDF        GaussianOp = "cdf"         // N(mean, std) cumulative probability
	GaussInverseCDF GaussianOp = "inverse_cdf" // quantile of min-max(s) squeezed into [0.01, 0.99]
	GaussTransform  GaussianOp = "transform"   // z-score of s, rescaled to mean and std
	GaussModulate   GaussianOp = "modulate"    // s weighted by an unnormalized bell at mean
)

func softplus(x float64) float64 {
	if x > 30 {
		return x
	}
	return math.Log1p(math.Exp(x))
}

func logistic(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Sigmoid applies variant to gain·(v + offset).
//
// Errors:
//   - unknown variant → sigma.ErrInvalidArgument.
//   - normalize with a constant result → sigma.ErrDegenerateRange.
func Sigmoid(s sigma.Sequence, variant SigmoidVariant, gain, offset float64, normalize bool) (sigma.Sequence, error) {
	var f func(float64) float64
	switch variant {
	case Logistic:
		f = logistic
	case Tanh:
		f = math.Tanh
	case Softsign:
		f = func(x float64) float64 { return x / (1 + math.Abs(x)) }
	case Hardswish:
		f = func(x float64) float64 { return x * math.Min(math.Max(x+3, 0), 6) / 6 }
	case Mish:
		f = func(x float64) float64 { return x * math.Tanh(softplus(x)) }
	case Swish:
		f = func(x float64) float64 { return x * logistic(x) }
	default:
		return sigma.Sequence{}, sigma.Errorf("Sigmoid", "variant", variant, "logistic|tanh|softsign|hardswish|mish|swish", sigma.ErrInvalidArgument)
	}
	return shape("Sigmoid", s, normalize, func(v float64) float64 { return f(gain * (v + offset)) })
}

// Hyperbolic applies fn to scale·v.
//
// Errors: as Sigmoid.
func Hyperbolic(s sigma.Sequence, fn HyperbolicFunc, scale float64, normalize bool) (sigma.Sequence, error) {
	var f func(float64) float64
	switch fn {
	case Sinh:
		f = math.Sinh
	case Cosh:
		f = math.Cosh
	case TanhH:
		f = math.Tanh
	case Asinh:
		f = math.Asinh
	case Acosh:
		f = func(x float64) float64 { return math.Acosh(math.Max(x, 1)) }
	case Atanh:
		f = func(x float64) float64 { return math.Atanh(math.Min(math.Max(x, -0.99), 0.99)) }
	default:
		return sigma.Sequence{}, sigma.Errorf("Hyperbolic", "function", fn, "sinh|cosh|tanh|asinh|acosh|atanh", sigma.ErrInvalidArgument)
	}
	return shape("Hyperbolic", s, normalize, func(v float64) float64 { return f(scale * v) })
}

// Gaussian applies op with the normal distribution N(mean, std).
//
// Errors:
//   - std <= 0 or unknown op → sigma.ErrInvalidArgument.
//   - transform on fewer than 2 values or constant input,
//     inverse_cdf on constant input → sigma.ErrDegenerateRange.
//   - normalize with a constant result → sigma.ErrDegenerateRange.
func Gaussian(s sigma.Sequence, mean, std float64, op GaussianOp, normalize bool) (sigma.Sequence, error) {
	const opName = "Gaussian"
	if !(std > 0) {
		return sigma.Sequence{}, sigma.Errorf(opName, "std", std, "> 0", sigma.ErrInvalidArgument)
	}
	dist := distuv.Normal{Mu: mean, Sigma: std}
	vals := s.Values()

	switch op {
	case GaussPDF:
		return shape(opName, s, normalize, dist.Prob)
	case GaussCDF:
		return shape(opName, s, normalize, dist.CDF)
	case GaussModulate:
		return shape(opName, s, normalize, func(v float64) float64 {
			z := (v - mean) / std
			return v * math.Exp(-0.5*z*z)
		})
	case GaussTransform:
		if len(vals) == 0 {
			return s.Derive(nil), nil
		}
		m, sd, err := meanStdDev(opName, vals)
		if err != nil {
			return sigma.Sequence{}, err
		}
		return shape(opName, s, normalize, func(v float64) float64 { return (v-m)/sd*std + mean })
	case GaussInverseCDF:
		if len(vals) == 0 {
			return s.Derive(nil), nil
		}
		unit, err := rescaleValues(opName, vals, 0.99, 0.01)
		if err != nil {
			return sigma.Sequence{}, err
		}
		for i, p := range unit {
			vals[i] = dist.Quantile(p)
		}
		return finishShape(opName, s, vals, normalize)
	}
	return sigma.Sequence{}, sigma.Errorf(opName, "operation", op, "pdf|cdf|inverse_cdf|transform|modulate", sigma.ErrInvalidArgument)
}

// Percentile maps [P(pMin), P(pMax)] of s onto [targetMin, targetMax],
// clipping values outside the percentile band when clip is set.
// Percentiles are given in [0, 100] and use linear interpolation between
// order statistics (gonum stat.LinInterp).
//
// Errors:
//   - pMin or pMax outside [0, 100], pMin > pMax → sigma.ErrInvalidArgument.
//   - P(pMin) == P(pMax) → sigma.ErrDegenerateRange.
func Percentile(s sigma.Sequence, pMin, pMax, targetMin, targetMax float64, clip bool) (sigma.Sequence, error) {
	const opName = "Percentile"
	if !(pMin >= 0 && pMin <= 100) {
		return sigma.Sequence{}, sigma.Errorf(opName, "pMin", pMin, "in [0,100]", sigma.ErrInvalidArgument)
	}
	if !(pMax >= pMin && pMax <= 100) {
		return sigma.Sequence{}, sigma.Errorf(opName, "pMax", pMax, "in [pMin,100]", sigma.ErrInvalidArgument)
	}
	vals := s.Values()
	if len(vals) == 0 {
		return s.Derive(nil), nil
	}

	sorted := s.Values()
	sort.Float64s(sorted)
	lo := stat.Quantile(pMin/100, stat.LinInterp, sorted, nil)
	hi := stat.Quantile(pMax/100, stat.LinInterp, sorted, nil)
	if !(hi > lo) {
		return sigma.Sequence{}, sigma.Errorf(opName, "band", "["+strconv.FormatFloat(lo, 'g', -1, 64)+","+strconv.FormatFloat(hi, 'g', -1, 64)+"]", "non-empty", sigma.ErrDegenerateRange)
	}
	for i, v := range vals {
		if clip {
			v = math.Min(math.Max(v, lo), hi)
		}
		vals[i] = (v-lo)/(hi-lo)*(targetMax-targetMin) + targetMin
	}
	return s.Derive(vals), nil
}

// Standardize returns the z-scores (v − mean)/std with the sample standard
// deviation.
//
// Errors:
//   - fewer than 2 values or zero deviation → sigma.ErrDegenerateRange.
func Standardize(s sigma.Sequence) (sigma.Sequence, error) {
	vals := s.Values()
	m, sd, err := meanStdDev("Standardize", vals)
	if err != nil {
		return sigma.Sequence{}, err
	}
	for i, v := range vals {
		vals[i] = (v - m) / sd
	}
	return s.Derive(vals), nil
}

func meanStdDev(op string, vals []float64) (mean, std float64, err error) {
	if len(vals) < 2 {
		return 0, 0, sigma.Errorf(op, "len", len(vals), ">= 2", sigma.ErrDegenerateRange)
	}
	mean, std = stat.MeanStdDev(vals, nil)
	if !(std > 0) {
		return 0, 0, sigma.Errorf(op, "std", std, "> 0", sigma.ErrDegenerateRange)
	}
	return mean, std, nil
}

// shape evaluates f element-wise and finishes the result.
func shape(op string, s sigma.Sequence, normalize bool, f func(float64) float64) (sigma.Sequence, error) {
	vals := s.Values()
	for i, v := range vals {
		vals[i] = f(v)
	}
	return finishShape(op, s, vals, normalize)
}

// finishShape sanitizes result and, when asked, normalizes it onto the
// range of s.
func finishShape(op string, s sigma.Sequence, result []float64, normalize bool) (sigma.Sequence, error) {
	result = sanitizeValues(result)
	if normalize && len(result) > 0 {
		var err error
		if result, err = normalizeLike(op, result, s.Values()); err != nil {
			return sigma.Sequence{}, err
		}
	}
	return s.Derive(result), nil
}

// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	s := seq(math.Inf(1), math.Inf(-1), math.NaN(), 2)
	out, err := transform.Sanitize(s)
	assert.Equal(t, []float64{1e10, -1e10, 0, 2}, values(t, out, err))
	assert.True(t, math.IsInf(s.First(), 1), "input must not change")
}

func TestSigmoid(t *testing.T) {
	t.Parallel()

	s := seq(-2, 0, 2)
	out, err := transform.Sigmoid(s, transform.Logistic, 1, 0, false)
	got := values(t, out, err)
	assert.InDelta(t, 0.5, got[1], tol)
	assert.InDelta(t, 1-got[0], got[2], tol)

	for _, v := range []transform.SigmoidVariant{
		transform.Logistic, transform.Tanh, transform.Softsign,
		transform.Hardswish, transform.Mish, transform.Swish,
	} {
		out, err := transform.Sigmoid(s, v, 1, 0, true)
		require.NoError(t, err, v)
		assert.InDelta(t, -2.0, out.Min(), tol, v)
		assert.InDelta(t, 2.0, out.Max(), tol, v)
	}

	// Hardswish is flat below −3: a constant result cannot be normalized.
	_, err = transform.Sigmoid(seq(-9, -8), transform.Hardswish, 1, 0, true)
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)

	_, err = transform.Sigmoid(s, "relu", 1, 0, false)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
}

func TestHyperbolic(t *testing.T) {
	t.Parallel()

	out, err := transform.Hyperbolic(seq(0, 1), transform.Sinh, 2, false)
	assert.InDeltaSlice(t, []float64{0, math.Sinh(2)}, values(t, out, err), tol)

	out, err = transform.Hyperbolic(seq(0.5, 3), transform.Acosh, 1, false)
	assert.InDeltaSlice(t, []float64{0, math.Acosh(3)}, values(t, out, err), tol)

	out, err = transform.Hyperbolic(seq(-5, 5), transform.Atanh, 1, false)
	assert.InDeltaSlice(t, []float64{math.Atanh(-0.99), math.Atanh(0.99)}, values(t, out, err), tol)

	// sinh overflows to +Inf and is sanitized before normalization.
	out, err = transform.Hyperbolic(seq(0, 1000), transform.Sinh, 1, false)
	assert.Equal(t, []float64{0, transform.SanitizeLimit}, values(t, out, err))

	_, err = transform.Hyperbolic(seq(1), "sech", 1, false)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
}

func TestGaussian(t *testing.T) {
	t.Parallel()

	s := seq(-1, 0, 1)

	out, err := transform.Gaussian(s, 0, 1, transform.GaussPDF, false)
	got := values(t, out, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), got[1], tol)
	assert.InDelta(t, got[0], got[2], tol)

	out, err = transform.Gaussian(s, 0, 1, transform.GaussCDF, false)
	got = values(t, out, err)
	assert.InDelta(t, 0.5, got[1], tol)
	assert.InDelta(t, 1, got[0]+got[2], tol)

	out, err = transform.Gaussian(s, 10, 2, transform.GaussTransform, false)
	got = values(t, out, err)
	assert.InDeltaSlice(t, []float64{8, 10, 12}, got, tol)

	out, err = transform.Gaussian(s, 0, 1, transform.GaussInverseCDF, false)
	got = values(t, out, err)
	assert.InDelta(t, 0.0, got[1], 1e-9)
	assert.InDelta(t, -got[0], got[2], 1e-9)
	assert.InDelta(t, 2.3263478740408408, got[2], 1e-6) // Φ⁻¹(0.99)

	out, err = transform.Gaussian(s, 0, 1, transform.GaussModulate, false)
	got = values(t, out, err)
	assert.InDelta(t, math.Exp(-0.5), got[2], tol)
	assert.Equal(t, 0.0, got[1])

	_, err = transform.Gaussian(s, 0, 0, transform.GaussPDF, false)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = transform.Gaussian(s, 0, 1, "laplace", false)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = transform.Gaussian(seq(1, 1), 0, 1, transform.GaussTransform, false)
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	s := seq(0, 1, 2, 3, 100)

	// The full band is a plain min-max map.
	out, err := transform.Percentile(s, 0, 100, 0, 1, true)
	assert.InDeltaSlice(t, []float64{0, 0.01, 0.02, 0.03, 1}, values(t, out, err), tol)

	// A narrower band clips the outlier to the target maximum.
	out, err = transform.Percentile(s, 0, 80, -1, 1, true)
	got := values(t, out, err)
	assert.Equal(t, -1.0, got[0])
	assert.Equal(t, 1.0, got[4])
	for _, v := range got {
		assert.True(t, v >= -1 && v <= 1, "%g outside target", v)
	}

	out, err = transform.Percentile(s, 0, 80, -1, 1, false)
	got = values(t, out, err)
	assert.Greater(t, got[4], 1.0)

	_, err = transform.Percentile(s, 60, 40, 0, 1, true)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = transform.Percentile(s, -1, 40, 0, 1, true)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = transform.Percentile(seq(2, 2, 2), 0, 100, 0, 1, true)
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)
}

func TestStandardize(t *testing.T) {
	t.Parallel()

	out, err := transform.Standardize(seq(1, 2, 3))
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, values(t, out, err), tol)

	_, err = transform.Standardize(seq(1))
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)
	_, err = transform.Standardize(seq(4, 4))
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)
}

// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()

	s := seq(-3, -0.5, 2, 4)

	out, err := transform.Mult(s, 2)
	assert.Equal(t, []float64{-6, -1, 4, 8}, values(t, out, err))

	out, err = transform.Add(s, 1)
	assert.Equal(t, []float64{-2, 0.5, 3, 5}, values(t, out, err))

	out, err = transform.Power(seq(2, 3), 2)
	assert.Equal(t, []float64{4, 9}, values(t, out, err))

	out, err = transform.Abs(s)
	assert.Equal(t, []float64{3, 0.5, 2, 4}, values(t, out, err))

	out, err = transform.Modulus(s, 3)
	assert.InDeltaSlice(t, []float64{0, 2.5, 2, 1}, values(t, out, err), tol)

	out, err = transform.Modulus(s, -3)
	assert.InDeltaSlice(t, []float64{0, -0.5, -1, -2}, values(t, out, err), tol)

	out, err = transform.Quotient(s, 2)
	assert.Equal(t, []float64{-2, -1, 1, 2}, values(t, out, err))

	_, err = transform.Quotient(s, 0)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	out, err = transform.Power(seq(-8), 1.0/3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.First()))

	assert.Equal(t, []float64{-3, -0.5, 2, 4}, s.Values())
}

func TestPairwise(t *testing.T) {
	t.Parallel()

	a, b := seq(1, 2, 3), seq(4, 5, 6)

	out, err := transform.Mult2(a, b)
	assert.Equal(t, []float64{4, 10, 18}, values(t, out, err))

	out, err = transform.Add2(a, b)
	assert.Equal(t, []float64{5, 7, 9}, values(t, out, err))

	_, err = transform.Add2(a, seq(1))
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
}

func TestRescale(t *testing.T) {
	t.Parallel()

	s := seq(10, 5, 0)
	out, err := transform.Rescale(s, 1, 0)
	assert.Equal(t, []float64{1, 0.5, 0}, values(t, out, err))

	// Swapping start and end flips the direction.
	out, err = transform.Rescale(s, 0, 1)
	assert.Equal(t, []float64{0, 0.5, 1}, values(t, out, err))

	_, err = transform.Rescale(seq(2, 2, 2), 1, 0)
	assert.ErrorIs(t, err, sigma.ErrDegenerateRange)

	out, err = transform.Rescale(seq(), 1, 0)
	assert.Empty(t, values(t, out, err))
}

func TestLerp(t *testing.T) {
	t.Parallel()

	out, err := transform.Lerp(seq(0, 0, 0), seq(2, 4, 6), 0.25, false)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5}, values(t, out, err), tol)

	_, err = transform.Lerp(seq(0, 0), seq(2, 4, 6), 0.5, false)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	// The shorter input is stretched to the longer one.
	short := seq(0, 2)
	out, err = transform.Lerp(short, seq(0, 0, 0), 0, true)
	require.NoError(t, err)
	want, err := resample.Resample(short, 3, resample.Linear)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.Values(), out.Values(), tol)

	out, err = transform.Lerp(seq(4, 4, 4), seq(0, 2), 1, true)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, values(t, out, err), tol)
}

func TestInvLerp(t *testing.T) {
	t.Parallel()

	out, err := transform.InvLerp(seq(-1, 0, 5, 10, 11), 0, 10)
	assert.Equal(t, []float64{0, 0, 0.5, 1, 1}, values(t, out, err))

	out, err = transform.InvLerp(seq(1, 1.00001, 2), 1, 1)
	got := values(t, out, err)
	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 1.0, got[1], 1e-6)
	assert.Equal(t, 1.0, got[2])
}

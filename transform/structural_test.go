// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

const tol = 1e-12

func seq(vals ...float64) sigma.Sequence { return sigma.MustNew(vals) }

func values(t *testing.T, s sigma.Sequence, err error) []float64 {
	t.Helper()
	require.NoError(t, err)
	return s.Values()
}

func TestStructural(t *testing.T) {
	t.Parallel()

	s := seq(5, 4, 3, 2, 1)

	out, err := transform.Concat(s, seq(0.5, 0))
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0.5, 0}, values(t, out, err))

	out, err = transform.Truncate(s, 2)
	assert.Equal(t, []float64{5, 4}, values(t, out, err))
	out, err = transform.Truncate(s, 99)
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, values(t, out, err))

	out, err = transform.Start(s, 3)
	assert.Equal(t, []float64{2, 1}, values(t, out, err))
	out, err = transform.Start(s, 9)
	assert.Empty(t, values(t, out, err))

	out, err = transform.Split(s, 1, 3)
	assert.Equal(t, []float64{4, 3}, values(t, out, err))
	out, err = transform.Split(s, 3, 1)
	assert.Empty(t, values(t, out, err))
	out, err = transform.Split(s, 2, 1000)
	assert.Equal(t, []float64{3, 2, 1}, values(t, out, err))

	out, err = transform.Pad(s, 0)
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0}, values(t, out, err))

	out, err = transform.Unpad(s)
	assert.Equal(t, []float64{5, 4, 3, 2}, values(t, out, err))
	out, err = transform.Unpad(sigma.Sequence{})
	assert.Empty(t, values(t, out, err))

	out, err = transform.Append(s, 0.1, 2, seq(7))
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0.1, 0.1, 7}, values(t, out, err))

	out, err = transform.Flip(s)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, values(t, out, err))

	for _, err := range []error{
		func() error { _, err := transform.Truncate(s, -1); return err }(),
		func() error { _, err := transform.Start(s, -1); return err }(),
		func() error { _, err := transform.Split(s, -1, 2); return err }(),
		func() error { _, err := transform.Append(s, 0, -2, sigma.Sequence{}); return err }(),
	} {
		assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	}
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, s.Values())
}

func TestNoiseInversion(t *testing.T) {
	t.Parallel()

	fwd, rev, err := transform.NoiseInversion(seq(3, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 0}, fwd.Values())
	assert.Equal(t, []float64{0, 3, 2, 1, 0}, rev.Values())
}

func TestStructural_KeepsPrecisionAndTarget(t *testing.T) {
	t.Parallel()

	s := sigma.MustNew([]float64{1, 0.5}, sigma.WithPrecision(sigma.Float32), sigma.WithTarget("cuda:1"))
	out, err := transform.Concat(s, seq(0.1))
	require.NoError(t, err)
	assert.Equal(t, sigma.Float32, out.Precision())
	assert.Equal(t, sigma.Target("cuda:1"), out.Target())
	assert.Equal(t, float64(float32(0.1)), out.Last())
}

func TestChain(t *testing.T) {
	t.Parallel()

	out, err := transform.Chain(seq(1, 2, 3),
		transform.With(transform.Mult, 2),
		transform.With(transform.Add, -1),
		transform.Flip,
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, out.Values())

	_, err = transform.Chain(seq(1, 2), transform.With(transform.Modulus, 0), transform.Flip)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
}

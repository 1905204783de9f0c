// SPDX-License-Identifier: MIT

package resample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
)

// TestModel_FitsRamp: a seeded network reproduces a descending ramp to
// within 0.1 at every target position.
func TestModel_FitsRamp(t *testing.T) {
	if testing.Short() {
		t.Skip("trains for the default epoch count")
	}
	t.Parallel()

	src, err := sigma.Linspace(1, 0, 10)
	require.NoError(t, err)

	out, err := resample.Resample(src, 19, resample.Model, resample.WithSeed(1))
	require.NoError(t, err)
	assertValuesInDelta(t, sigma.LinspaceValues(1, 0, 19), out.Values(), 0.1)
}

func TestModel_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	opts := []resample.Option{resample.WithSeed(7), resample.WithEpochs(200), resample.WithLearningRate(0.02)}
	a, err := resample.Resample(karrasLike, 12, resample.Model, opts...)
	require.NoError(t, err)
	b, err := resample.Resample(karrasLike, 12, resample.Model, opts...)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())

	// Seed 0 is the default seed.
	c, err := resample.Resample(karrasLike, 12, resample.Model, resample.WithSeed(0), resample.WithEpochs(50))
	require.NoError(t, err)
	d, err := resample.Resample(karrasLike, 12, resample.Model, resample.WithEpochs(50))
	require.NoError(t, err)
	assert.Equal(t, c.Values(), d.Values())
}

func TestModel_ConstantSource(t *testing.T) {
	t.Parallel()

	out, err := resample.Resample(sigma.MustNew([]float64{2, 2, 2}), 4, resample.Model)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2, 2}, out.Values())
}

// SPDX-License-Identifier: MIT

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

func TestDefaultDiscreteSampling(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	assert.InDelta(t, 0.0291675, ms.SigmaMin(), 1e-5)
	assert.InDelta(t, 14.6146, ms.SigmaMax(), 0.01)

	sig := ms.Sigmas()
	require.Len(t, sig, schedule.DefaultTimesteps)
	for i := 1; i < len(sig); i++ {
		require.Greater(t, sig[i], sig[i-1], "table must ascend at %d", i)
	}

	sig[0] = -1
	assert.Greater(t, ms.Sigmas()[0], 0.0, "Sigmas returns a copy")
}

func TestDiscreteSampling_SigmaTimestep(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	sig := ms.Sigmas()

	for _, ts := range []int{0, 1, 250, 500, 999} {
		assert.InDelta(t, sig[ts], ms.Sigma(float64(ts)), 1e-12)
		assert.Equal(t, float64(ts), ms.Timestep(sig[ts]))
	}

	mid := ms.Sigma(499.5)
	assert.Greater(t, mid, sig[499])
	assert.Less(t, mid, sig[500])

	assert.InDelta(t, ms.SigmaMax(), ms.Sigma(5000), 1e-12, "timesteps are clamped")
	assert.Equal(t, 0.0, ms.Timestep(1e-9))
	assert.Equal(t, 999.0, ms.Timestep(1e9))
}

func TestNewDiscreteSampling_Errors(t *testing.T) {
	t.Parallel()

	_, err := schedule.NewDiscreteSampling(1, 0.1, 0.2)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	_, err = schedule.NewDiscreteSampling(10, 0.2, 0.1)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
}

// SPDX-License-Identifier: MIT

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

func TestRegistry_BuiltIns(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	reg := schedule.DefaultRegistry()
	assert.Equal(t, []string{
		"beta", "beta57", "ddim_uniform", "exponential", "karras", "kl_optimal",
		"linear_quadratic", "normal", "sgm_uniform", "simple", "simple_exponential",
	}, reg.Names())

	for _, name := range reg.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn, ok := reg.Lookup(name)
			require.True(t, ok)
			vals, err := fn(ms, 10)
			require.NoError(t, err)
			require.LessOrEqual(t, len(vals), 11)
			require.GreaterOrEqual(t, len(vals), 2)
			assertNonIncreasing(t, vals, name)
			assert.InDelta(t, 0.0, vals[len(vals)-1], 1e-9, "terminal entry")
			assert.LessOrEqual(t, vals[0], ms.SigmaMax()+1e-9)
		})
	}
}

func TestRegistry_FullLengthSchedulers(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	reg := schedule.DefaultRegistry()
	for _, name := range []string{"normal", "karras", "exponential", "sgm_uniform", "simple", "ddim_uniform", "linear_quadratic", "kl_optimal", "simple_exponential"} {
		fn, ok := reg.Lookup(name)
		require.True(t, ok, name)
		vals, err := fn(ms, 10)
		require.NoError(t, err, name)
		assert.Len(t, vals, 11, name)
	}
}

// tableSampling serves a fixed ascending σ table.
type tableSampling []float64

func (s tableSampling) Sigmas() []float64              { return append([]float64(nil), s...) }
func (s tableSampling) SigmaMin() float64              { return s[0] }
func (s tableSampling) SigmaMax() float64              { return s[len(s)-1] }
func (s tableSampling) Sigma(timestep float64) float64 { return s[int(timestep)] }
func (s tableSampling) Timestep(float64) float64       { return 0 }

// TestDDIMUniform_ZeroSecondEntry: a table whose second σ is 0 provides the
// terminal 0 itself and strides over steps+1.
func TestDDIMUniform_ZeroSecondEntry(t *testing.T) {
	t.Parallel()

	vals, err := schedule.DDIMUniformScheduler(tableSampling{0.1, 0, 1, 2, 3, 4, 5, 6, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 0}, vals)

	vals, err = schedule.DDIMUniformScheduler(tableSampling{0.1, 0.5, 1, 2, 3, 4, 5, 6, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0.5, 0}, vals)
}

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "beta57", schedule.CanonicalName(" Beta57 "))
	assert.Equal(t, "sgm_uniform", schedule.CanonicalName("SGM-Uniform"))
	assert.Equal(t, "karras", schedule.CanonicalName("ｋａｒｒａｓ"), "fullwidth letters fold under NFKC")

	reg := schedule.DefaultRegistry()
	_, ok := reg.Lookup("Linear Quadratic")
	assert.True(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := schedule.NewRegistry()
	reg.Register("Flat-Line", func(ms schedule.Sampling, steps int) ([]float64, error) {
		out := make([]float64, steps+1)
		for i := 0; i < steps; i++ {
			out[i] = 1
		}
		return out, nil
	})
	assert.Equal(t, []string{"flat_line"}, reg.Names())

	r := schedule.NewResolver(schedule.WithRegistry(reg))
	s, err := r.Resolve(schedule.DefaultDiscreteSampling(), "flat_line", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0}, s.Values())
}

func TestResolver_Denoise(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	r := schedule.NewResolver()

	full, err := r.Resolve(ms, "normal", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, full.Len())
	assert.InDelta(t, ms.SigmaMax(), full.First(), 1e-9)

	half, err := r.Resolve(ms, "normal", 10, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 11, half.Len())
	assert.Less(t, half.First(), ms.SigmaMax(), "partial denoise starts lower")
	assert.Equal(t, 0.0, half.Last())

	twenty, err := r.Resolve(ms, "normal", 20, 1)
	require.NoError(t, err)
	assert.True(t, half.Equal(twenty.Derive(twenty.Values()[10:]), 1e-12), "denoise keeps the tail of the longer schedule")

	for _, d := range []float64{0, -0.5} {
		empty, err := r.Resolve(ms, "normal", 10, d)
		require.NoError(t, err)
		assert.True(t, empty.IsEmpty())
	}
}

func TestResolver_Errors(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	r := schedule.NewResolver()

	_, err := r.Resolve(ms, "normal", 0, 1)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	_, err = r.Resolve(nil, "normal", 10, 1)
	assert.ErrorIs(t, err, schedule.ErrNoModel)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	_, err = r.Resolve(ms, "cosine", 10, 1)
	assert.ErrorIs(t, err, schedule.ErrUnknownScheduler)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	noLinear := schedule.NewResolver(schedule.WithInflection(0))
	_, err = noLinear.Resolve(ms, "linear_quadratic", 10, 1)
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)

	assert.Panics(t, func() { schedule.WithInflection(1.5) })
	assert.Panics(t, func() { schedule.WithRegistry(nil) })
}

func TestResolver_Inflection(t *testing.T) {
	t.Parallel()

	ms := schedule.DefaultDiscreteSampling()
	a, err := schedule.NewResolver().Resolve(ms, "linear_quadratic", 10, 1)
	require.NoError(t, err)
	b, err := schedule.NewResolver(schedule.WithInflection(0.3)).Resolve(ms, "linear_quadratic", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Len(), b.Len())
	assert.False(t, a.Equal(b, 1e-9))
}

func TestResolver_Precision(t *testing.T) {
	t.Parallel()

	s, err := schedule.NewResolver().Resolve(schedule.DefaultDiscreteSampling(), "karras", 5, 1,
		sigma.WithPrecision(sigma.Float16), sigma.WithTarget("cuda:1"))
	require.NoError(t, err)
	assert.Equal(t, sigma.Float16, s.Precision())
	assert.Equal(t, sigma.Target("cuda:1"), s.Target())
}

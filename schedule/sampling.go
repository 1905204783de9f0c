// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// sampling.go — the model noise-table contract and a discrete reference table.

package schedule

import (
	"math"
	"sort"

	"github.com/katalvlaran/sigmakit/sigma"
)

// Sampling is the model-side noise table that named schedulers read.
//
// Sigmas is ascending by timestep (index 0 is the least noisy). Sigma maps a
// possibly fractional timestep to a sigma; Timestep is its nearest inverse.
type Sampling interface {
	Sigmas() []float64
	SigmaMin() float64
	SigmaMax() float64
	Sigma(timestep float64) float64
	Timestep(sigma float64) float64
}

const (
	// DefaultTimesteps is the length of the reference noise table.
	DefaultTimesteps = 1000
	// DefaultLinearStart and DefaultLinearEnd bound the scaled-linear betas.
	DefaultLinearStart = 0.00085
	DefaultLinearEnd   = 0.012
)

// DiscreteSampling is a discrete-time noise table built from scaled-linear
// betas: β_i = (√start + i·(√end − √start)/(T−1))², ᾱ = Π(1 − β),
// σ_i = sqrt((1 − ᾱ_i)/ᾱ_i).
type DiscreteSampling struct {
	sigmas    []float64
	logSigmas []float64
}

var _ Sampling = (*DiscreteSampling)(nil)

// NewDiscreteSampling builds a table of the given length.
//
// Errors:
//   - timesteps < 2, or bounds outside 0 < start < end < 1 → sigma.ErrInvalidArgument.
func NewDiscreteSampling(timesteps int, linearStart, linearEnd float64) (*DiscreteSampling, error) {
	const op = "NewDiscreteSampling"
	if timesteps < 2 {
		return nil, sigma.Errorf(op, "timesteps", timesteps, ">= 2", sigma.ErrInvalidArgument)
	}
	if !(linearStart > 0 && linearStart < linearEnd && linearEnd < 1) {
		return nil, sigma.Errorf(op, "linearStart/linearEnd", [2]float64{linearStart, linearEnd}, "0 < start < end < 1", sigma.ErrInvalidArgument)
	}

	d := &DiscreteSampling{
		sigmas:    make([]float64, timesteps),
		logSigmas: make([]float64, timesteps),
	}
	cum := 1.0
	for i, r := range sigma.LinspaceValues(math.Sqrt(linearStart), math.Sqrt(linearEnd), timesteps) {
		cum *= 1 - r*r
		d.sigmas[i] = math.Sqrt((1 - cum) / cum)
		d.logSigmas[i] = math.Log(d.sigmas[i])
	}
	return d, nil
}

// DefaultDiscreteSampling returns the 1000-step reference table
// (σmin ≈ 0.0292, σmax ≈ 14.61).
func DefaultDiscreteSampling() *DiscreteSampling {
	d, err := NewDiscreteSampling(DefaultTimesteps, DefaultLinearStart, DefaultLinearEnd)
	if err != nil {
		panic(err) // constants are valid
	}
	return d
}

// Sigmas returns a copy of the table.
func (d *DiscreteSampling) Sigmas() []float64 {
	out := make([]float64, len(d.sigmas))
	copy(out, d.sigmas)
	return out
}

// SigmaMin is the first (smallest) sigma.
func (d *DiscreteSampling) SigmaMin() float64 { return d.sigmas[0] }

// SigmaMax is the last (largest) sigma.
func (d *DiscreteSampling) SigmaMax() float64 { return d.sigmas[len(d.sigmas)-1] }

// Sigma interpolates log σ between the neighbouring integer timesteps.
// Timesteps are clamped to [0, T−1].
func (d *DiscreteSampling) Sigma(timestep float64) float64 {
	last := float64(len(d.sigmas) - 1)
	t := math.Min(math.Max(timestep, 0), last)
	lo := math.Floor(t)
	hi := math.Ceil(t)
	w := t - lo
	ls := (1-w)*d.logSigmas[int(lo)] + w*d.logSigmas[int(hi)]
	return math.Exp(ls)
}

// Timestep returns the integer timestep whose log σ is closest to log sigma.
func (d *DiscreteSampling) Timestep(s float64) float64 {
	ls := math.Log(s)
	n := len(d.logSigmas)
	i := sort.SearchFloat64s(d.logSigmas, ls)
	switch {
	case i <= 0:
		return 0
	case i >= n:
		return float64(n - 1)
	}
	if math.Abs(ls-d.logSigmas[i-1]) <= math.Abs(d.logSigmas[i]-ls) {
		return float64(i - 1)
	}
	return float64(i)
}

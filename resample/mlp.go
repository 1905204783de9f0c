// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// mlp.go — trained interpolator for Model mode.
//
// Network: x → Linear(1,16) → ReLU → Linear(16,32) → ReLU → Linear(32,1).
// Training: full-batch MSE on (linspace(0,1,n), normalized y), Adam
// (β1 0.9, β2 0.999, ε 1e-8). Weights and biases start uniform in
// ±1/√fan_in from a seeded source, so a fixed seed gives identical output.

package resample

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sigmakit/sigma"
)

const (
	hidden1 = 16
	hidden2 = 32

	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
)

// Flat parameter layout.
const (
	offW1   = 0
	offB1   = offW1 + hidden1
	offW2   = offB1 + hidden1
	offB2   = offW2 + hidden2*hidden1
	offW3   = offB2 + hidden2
	offB3   = offW3 + hidden2
	nParams = offB3 + 1
)

// mlp is the 1→16→32→1 regressor with its Adam state.
type mlp struct {
	p    []float64 // parameters
	g    []float64 // gradient accumulator
	m, v []float64 // Adam moments
	t    int

	h1 [hidden1]float64
	h2 [hidden2]float64
}

func newMLP(seed int64) *mlp {
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	net := &mlp{
		p: make([]float64, nParams),
		g: make([]float64, nParams),
		m: make([]float64, nParams),
		v: make([]float64, nParams),
	}
	fill := func(from, to, fanIn int) {
		bound := 1 / math.Sqrt(float64(fanIn))
		for i := from; i < to; i++ {
			net.p[i] = (rng.Float64()*2 - 1) * bound
		}
	}
	fill(offW1, offW2, 1)
	fill(offW2, offW3, hidden1)
	fill(offW3, nParams, hidden2)
	return net
}

// forward evaluates the network at x, leaving activations in h1/h2.
func (net *mlp) forward(x float64) float64 {
	p := net.p
	for i := 0; i < hidden1; i++ {
		net.h1[i] = math.Max(0, p[offW1+i]*x+p[offB1+i])
	}
	var s float64
	for j := 0; j < hidden2; j++ {
		s = p[offB2+j]
		row := offW2 + j*hidden1
		for i := 0; i < hidden1; i++ {
			s += p[row+i] * net.h1[i]
		}
		net.h2[j] = math.Max(0, s)
	}
	s = p[offB3]
	for j := 0; j < hidden2; j++ {
		s += p[offW3+j] * net.h2[j]
	}
	return s
}

// backward accumulates ∂L/∂p for one sample given d = ∂L/∂output.
// Must follow forward(x) for the same x.
func (net *mlp) backward(x, d float64) {
	p, g := net.p, net.g
	var dh1 [hidden1]float64

	g[offB3] += d
	for j := 0; j < hidden2; j++ {
		if net.h2[j] <= 0 {
			continue
		}
		g[offW3+j] += d * net.h2[j]
		dz := d * p[offW3+j]
		g[offB2+j] += dz
		row := offW2 + j*hidden1
		for i := 0; i < hidden1; i++ {
			g[row+i] += dz * net.h1[i]
			dh1[i] += dz * p[row+i]
		}
	}
	for i := 0; i < hidden1; i++ {
		if net.h1[i] <= 0 {
			continue
		}
		g[offB1+i] += dh1[i]
		g[offW1+i] += dh1[i] * x
	}
}

// step applies one Adam update and clears the gradient.
func (net *mlp) step(lr float64) {
	net.t++
	c1 := 1 - math.Pow(adamBeta1, float64(net.t))
	c2 := 1 - math.Pow(adamBeta2, float64(net.t))
	for k, gk := range net.g {
		net.m[k] = adamBeta1*net.m[k] + (1-adamBeta1)*gk
		net.v[k] = adamBeta2*net.v[k] + (1-adamBeta2)*gk*gk
		mhat := net.m[k] / c1
		vhat := net.v[k] / c2
		net.p[k] -= lr * mhat / (math.Sqrt(vhat) + adamEps)
		net.g[k] = 0
	}
}

// train runs full-batch MSE gradient descent for the given epochs.
func (net *mlp) train(xs, ys []float64, epochs int, lr float64) {
	scale := 2 / float64(len(xs))
	for e := 0; e < epochs; e++ {
		for k, x := range xs {
			net.backward(x, scale*(net.forward(x)-ys[k]))
		}
		net.step(lr)
	}
}

// trainedFit fits the network to values and samples it at m points.
// A constant source short-circuits to a constant result.
func trainedFit(values []float64, m int, o Options) []float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	out := make([]float64, m)
	if hi == lo {
		for i := range out {
			out[i] = lo
		}
		return out
	}

	span := hi - lo
	ys := make([]float64, len(values))
	for i, v := range values {
		ys[i] = (v - lo) / span
	}
	net := newMLP(o.Seed)
	net.train(sigma.LinspaceValues(0, 1, len(values)), ys, o.Epochs, o.LearningRate)

	for i, x := range sigma.LinspaceValues(0, 1, m) {
		out[i] = lo + span*net.forward(x)
	}
	o.Logger.Debug("model interpolator trained",
		"epochs", o.Epochs,
		"seed", o.Seed,
		"source_len", len(values),
	)
	return out
}

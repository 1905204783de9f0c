// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// schedulers.go — named schedulers over a Sampling and their Registry.
//
// Every SchedulerFunc returns a non-increasing list ending in (or near) 0,
// normally steps+1 long. Beta-quantile schedulers may return fewer entries
// because repeated timesteps are collapsed.

package schedule

import (
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/sigmakit/sigma"
)

// SchedulerFunc turns a noise table into a schedule of (about) steps+1 values.
// steps is always >= 1.
type SchedulerFunc func(ms Sampling, steps int) ([]float64, error)

const (
	// DefaultKarrasRho is the ρ used by the "karras" named scheduler.
	DefaultKarrasRho = 7.0
	// DefaultLinearQuadraticThreshold is the noise level where the linear
	// segment hands over to the quadratic one.
	DefaultLinearQuadraticThreshold = 0.025
	// DefaultInflection is the linear fraction of linear_quadratic.
	DefaultInflection = 0.5
)

// Registry is a concurrency-safe name → SchedulerFunc table. Names are
// canonicalized by CanonicalName on both Register and Lookup.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]SchedulerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]SchedulerFunc)}
}

// DefaultRegistry returns a registry with every built-in named scheduler.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("normal", NormalScheduler)
	r.Register("karras", KarrasScheduler)
	r.Register("exponential", ExponentialScheduler)
	r.Register("sgm_uniform", SGMUniformScheduler)
	r.Register("simple", SimpleScheduler)
	r.Register("ddim_uniform", DDIMUniformScheduler)
	r.Register("beta", BetaScheduler(0.6, 0.6))
	r.Register("beta57", BetaScheduler(0.5, 0.7))
	r.Register("linear_quadratic", LinearQuadraticScheduler(DefaultInflection))
	r.Register("kl_optimal", KLOptimalScheduler)
	r.Register("simple_exponential", SimpleExponentialScheduler)
	return r
}

// CanonicalName applies NFKC, trims, lower-cases and maps '-' and ' ' to '_'.
func CanonicalName(name string) string {
	s := strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// Register adds or replaces fn under name.
func (r *Registry) Register(name string, fn SchedulerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[CanonicalName(name)] = fn
}

// Lookup returns the scheduler registered under name.
func (r *Registry) Lookup(name string) (SchedulerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[CanonicalName(name)]
	return fn, ok
}

// Names returns the registered canonical names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.funcs))
	for k := range r.funcs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// normal samples the table uniformly in timestep space between σmax and σmin.
// sgm drops the final point of a steps+1 grid instead of hitting σmin.
func normal(ms Sampling, steps int, sgm bool) []float64 {
	start := ms.Timestep(ms.SigmaMax())
	end := ms.Timestep(ms.SigmaMin())
	appendZero := true
	var ts []float64
	if sgm {
		ts = sigma.LinspaceValues(start, end, steps+1)[:steps]
	} else {
		if math.Abs(ms.Sigma(end)) <= 1e-5 {
			steps++
			appendZero = false
		}
		ts = sigma.LinspaceValues(start, end, steps)
	}
	out := make([]float64, 0, len(ts)+1)
	for _, t := range ts {
		out = append(out, ms.Sigma(t))
	}
	if appendZero {
		out = append(out, 0)
	}
	return out
}

// NormalScheduler is uniform in timestep space.
func NormalScheduler(ms Sampling, steps int) ([]float64, error) {
	return normal(ms, steps, false), nil
}

// SGMUniformScheduler is NormalScheduler on a steps+1 grid without its last point.
func SGMUniformScheduler(ms Sampling, steps int) ([]float64, error) {
	return normal(ms, steps, true), nil
}

// KarrasScheduler is Karras spacing (ρ = 7) between the table's σmin and σmax.
func KarrasScheduler(ms Sampling, steps int) ([]float64, error) {
	return karrasValues(steps, ms.SigmaMin(), ms.SigmaMax(), DefaultKarrasRho), nil
}

// ExponentialScheduler is uniform in log σ from σmax to σmin, plus 0.
func ExponentialScheduler(ms Sampling, steps int) ([]float64, error) {
	out := sigma.LinspaceValues(math.Log(ms.SigmaMax()), math.Log(ms.SigmaMin()), steps)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	return append(out, 0), nil
}

// SimpleScheduler walks the table backwards in len/steps strides, plus 0.
func SimpleScheduler(ms Sampling, steps int) ([]float64, error) {
	sig := ms.Sigmas()
	stride := float64(len(sig)) / float64(steps)
	out := make([]float64, 0, steps+1)
	for x := 0; x < steps; x++ {
		out = append(out, sig[len(sig)-1-int(float64(x)*stride)])
	}
	return append(out, 0), nil
}

// SimpleExponentialScheduler is SimpleScheduler scaled by linspace(1, 0, steps+1).
func SimpleExponentialScheduler(ms Sampling, steps int) ([]float64, error) {
	out, err := SimpleScheduler(ms, steps)
	if err != nil {
		return nil, err
	}
	for i, w := range sigma.LinspaceValues(1, 0, len(out)) {
		out[i] *= w
	}
	return out, nil
}

// DDIMUniformScheduler takes every ⌊T/steps⌋-th table entry from index 1 up,
// reversed, with a leading 0 (trailing after the reversal). A table whose
// second entry is already 0 supplies that 0 itself and strides over steps+1.
func DDIMUniformScheduler(ms Sampling, steps int) ([]float64, error) {
	sig := ms.Sigmas()
	var out []float64
	if math.Abs(sig[1]) > 1e-5 {
		out = append(out, 0)
	} else {
		steps++
	}
	stride := len(sig) / steps
	if stride < 1 {
		stride = 1
	}
	for x := 1; x < len(sig); x += stride {
		out = append(out, sig[x])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// BetaScheduler places timesteps at the Beta(alpha, beta) quantiles of
// 1 − linspace(0, 1, steps, endpoint=false), rounded half-to-even.
// Consecutive duplicates are collapsed; a terminal 0 is appended.
func BetaScheduler(alpha, beta float64) SchedulerFunc {
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	return func(ms Sampling, steps int) ([]float64, error) {
		sig := ms.Sigmas()
		total := float64(len(sig) - 1)
		out := make([]float64, 0, steps+1)
		last := -1.0
		for i := 0; i < steps; i++ {
			p := 1 - float64(i)/float64(steps)
			t := math.RoundToEven(dist.Quantile(p) * total)
			if t != last {
				out = append(out, sig[int(t)])
				last = t
			}
		}
		return append(out, 0), nil
	}
}

// LinearQuadraticScheduler is linear up to the threshold noise for the first
// ⌊steps·inflection⌋ steps and quadratic afterwards, flipped and scaled by σmax.
func LinearQuadraticScheduler(inflection float64) SchedulerFunc {
	return func(ms Sampling, steps int) ([]float64, error) {
		const threshold = DefaultLinearQuadraticThreshold
		if steps == 1 {
			return []float64{ms.SigmaMax(), 0}, nil
		}
		linearSteps := int(float64(steps) * inflection)
		if linearSteps < 1 || linearSteps >= steps {
			return nil, sigma.Errorf("LinearQuadratic", "inflection", inflection,
				"leaves at least one linear and one quadratic step", sigma.ErrInvalidArgument)
		}
		ls, qs := float64(linearSteps), float64(steps-linearSteps)
		diff := ls - threshold*float64(steps)
		quadCoef := diff / (ls * qs * qs)
		linCoef := threshold/ls - 2*diff/(qs*qs)
		constant := quadCoef * ls * ls

		out := make([]float64, 0, steps+1)
		for i := 0; i < linearSteps; i++ {
			out = append(out, float64(i)*threshold/ls)
		}
		for i := linearSteps; i < steps; i++ {
			fi := float64(i)
			out = append(out, quadCoef*fi*fi+linCoef*fi+constant)
		}
		out = append(out, 1)
		smax := ms.SigmaMax()
		for i, v := range out {
			out[i] = (1 - v) * smax
		}
		return out, nil
	}
}

// KLOptimalScheduler interpolates atan(σ) linearly from σmax to σmin, plus 0.
// A single step yields [σmax, 0].
func KLOptimalScheduler(ms Sampling, steps int) ([]float64, error) {
	lo, hi := math.Atan(ms.SigmaMin()), math.Atan(ms.SigmaMax())
	out := make([]float64, steps+1)
	for i, w := range sigma.LinspaceValues(0, 1, steps) {
		out[i] = math.Tan(w*lo + (1-w)*hi)
	}
	return out, nil
}

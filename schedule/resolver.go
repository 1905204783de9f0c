// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// resolver.go — named-scheduler resolution with denoise handling.

package schedule

import (
	"log/slog"

	"github.com/katalvlaran/sigmakit/sigma"
)

const opResolve = "Resolve"

// Resolver turns (model, name, steps, denoise) into a schedule.
// It is safe for concurrent use.
type Resolver struct {
	registry   *Registry
	inflection float64
	logger     *slog.Logger
}

// NewResolver builds a Resolver over the default registry unless
// WithRegistry is given.
func NewResolver(opts ...Option) *Resolver {
	o := gatherOptions(opts...)
	return &Resolver{registry: o.registry, inflection: o.inflection, logger: o.logger}
}

// Registry exposes the resolver's registry.
func (r *Resolver) Registry() *Registry { return r.registry }

// Has reports whether name resolves to a registered scheduler.
func (r *Resolver) Has(name string) bool {
	_, ok := r.registry.Lookup(name)
	return ok
}

// Resolve computes the named schedule.
//
// Steps:
//  1. denoise <= 0 → empty sequence.
//  2. denoise < 1  → the scheduler runs on ⌊steps/denoise⌋ steps.
//  3. only the last steps+1 entries are kept.
//
// "linear_quadratic" uses the resolver's inflection instead of the registered
// default.
//
// Errors:
//   - steps < 1 → sigma.ErrInvalidArgument.
//   - ms == nil → ErrNoModel.
//   - unregistered name → ErrUnknownScheduler.
//   - scheduler failures propagate unchanged.
func (r *Resolver) Resolve(ms Sampling, name string, steps int, denoise float64, opts ...sigma.Option) (sigma.Sequence, error) {
	if steps < 1 {
		return sigma.Sequence{}, sigma.Errorf(opResolve, "steps", steps, ">= 1", sigma.ErrInvalidArgument)
	}
	if !(denoise > 0) {
		return sigma.New(nil, opts...)
	}
	if ms == nil {
		return sigma.Sequence{}, sigma.Errorf(opResolve, "model", "nil", "Sampling", ErrNoModel)
	}

	canonical := CanonicalName(name)
	fn, ok := r.registry.Lookup(canonical)
	if !ok {
		return sigma.Sequence{}, sigma.Errorf(opResolve, "scheduler", name, "registered name", ErrUnknownScheduler)
	}
	if canonical == "linear_quadratic" && r.inflection != DefaultInflection {
		fn = LinearQuadraticScheduler(r.inflection)
	}

	total := steps
	if denoise < 1 {
		total = int(float64(steps) / denoise)
	}
	vals, err := fn(ms, total)
	if err != nil {
		return sigma.Sequence{}, err
	}
	if keep := steps + 1; len(vals) > keep {
		vals = vals[len(vals)-keep:]
	}

	r.logger.Debug("scheduler resolved",
		"scheduler", canonical,
		"steps", steps,
		"denoise", denoise,
		"total_steps", total,
		"len", len(vals),
	)
	return sigma.New(vals, opts...)
}

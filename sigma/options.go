// SPDX-License-Identifier: MIT
// Package: sigmakit/sigma
//
// options.go — functional options for Sequence construction.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (programmer error); constructors themselves return errors.
//   • No hidden globals: precision and target flow through Options only.

package sigma

// DefaultTarget is the execution target assigned when none is given.
const DefaultTarget Target = "cpu"

const (
	panicPrecisionInvalid = "sigma: WithPrecision: precision must be 16, 32 or 64"
	panicTargetEmpty      = "sigma: WithTarget: target must be non-empty"
)

// Target is an opaque execution-target label ("cpu", "cuda:0", ...).
// sigmakit never interprets it; it is carried from inputs to outputs.
type Target string

// Option mutates construction options.
type Option func(*Options)

// Options is the resolved construction policy.
type Options struct {
	precision   Precision
	target      Target
	finiteCheck bool
}

// WithPrecision sets the storage precision. Panics on anything but 16/32/64.
func WithPrecision(p Precision) Option {
	if !p.Valid() {
		panic(panicPrecisionInvalid)
	}
	return func(o *Options) { o.precision = p }
}

// WithTarget sets the opaque execution target. Panics on "".
func WithTarget(t Target) Option {
	if t == "" {
		panic(panicTargetEmpty)
	}
	return func(o *Options) { o.target = t }
}

// WithFiniteCheck makes New/Parse reject NaN and ±Inf with ErrInvalidArgument.
func WithFiniteCheck() Option {
	return func(o *Options) { o.finiteCheck = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{precision: DefaultPrecision, target: DefaultTarget}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

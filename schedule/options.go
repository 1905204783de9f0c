// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// options.go — functional options for Resolver and Synthesizer.

package schedule

import (
	"io"
	"log/slog"
)

const (
	panicNilRegistry = "schedule: WithRegistry: registry must be non-nil"
	panicInflection  = "schedule: WithInflection: inflection must be in [0,1]"
	panicNilLogger   = "schedule: WithLogger: logger must be non-nil"
)

// Option configures a Resolver or Synthesizer.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	registry   *Registry
	inflection float64
	logger     *slog.Logger
}

// WithRegistry replaces the built-in registry.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic(panicNilRegistry)
	}
	return func(o *Options) { o.registry = r }
}

// WithInflection sets the linear fraction used by "linear_quadratic".
// Panics outside [0,1]; a fraction that leaves no linear step fails at
// resolve time with sigma.ErrInvalidArgument.
func WithInflection(f float64) Option {
	if !(f >= 0 && f <= 1) {
		panic(panicInflection)
	}
	return func(o *Options) { o.inflection = f }
}

// WithLogger routes debug and warning records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{inflection: DefaultInflection}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

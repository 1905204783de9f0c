// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// options.go — functional options for Composer.

package compose

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/sigmakit/schedule"
)

const (
	panicNilSynthesizer = "compose: WithSynthesizer: synthesizer must be non-nil"
	panicNilObserver    = "compose: WithObserver: observer must be non-nil"
	panicNilLogger      = "compose: WithLogger: logger must be non-nil"
)

// Option configures a Composer.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	synth    *schedule.Synthesizer
	observer Observer
	logger   *slog.Logger
}

// WithSynthesizer replaces the default schedule.Synthesizer.
func WithSynthesizer(s *schedule.Synthesizer) Option {
	if s == nil {
		panic(panicNilSynthesizer)
	}
	return func(o *Options) { o.synth = s }
}

// WithObserver registers a state observer.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic(panicNilObserver)
	}
	return func(o *Options) { o.observer = fn }
}

// WithLogger routes debug and warning records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.synth == nil {
		o.synth = schedule.NewSynthesizer(schedule.WithLogger(o.logger))
	}
	if o.observer == nil {
		o.observer = func(State, Plan) {}
	}
	return o
}

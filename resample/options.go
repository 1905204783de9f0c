// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// options.go — functional options for Resample.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (programmer error).
//   • Resample itself never panics; it returns sentinel-wrapped errors.
//   • Defaults are documented constants; there is no package-level state.

package resample

import (
	"io"
	"log/slog"
)

const (
	// DefaultOrder is the polynomial order used when WithOrder is not given.
	DefaultOrder = 8
	// MinOrder and MaxOrder bound WithOrder.
	MinOrder = 1
	MaxOrder = 64

	// DefaultEpochs is the number of full-batch training passes in Model mode.
	DefaultEpochs = 5000
	// DefaultLearningRate is the Adam step size in Model mode.
	DefaultLearningRate = 0.01
	// DefaultSeed seeds the Model initializer; seed 0 maps to it.
	DefaultSeed int64 = 1
)

const (
	panicOrderRange   = "resample: WithOrder: order must be in [1,64]"
	panicEpochs       = "resample: WithEpochs: epochs must be > 0"
	panicLearningRate = "resample: WithLearningRate: rate must be > 0"
	panicNilLogger    = "resample: WithLogger: logger must be non-nil"
)

// Option configures a Resample call.
type Option func(*Options)

// Options is the resolved configuration of a Resample call.
type Options struct {
	Order        int          // polynomial order before clamping
	Epochs       int          // Model training passes
	LearningRate float64      // Model Adam step size
	Seed         int64        // Model weight-init seed
	Logger       *slog.Logger // receives clamp warnings
}

// DefaultOptions returns the configuration used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Order:        DefaultOrder,
		Epochs:       DefaultEpochs,
		LearningRate: DefaultLearningRate,
		Seed:         DefaultSeed,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOrder sets the polynomial order. Panics outside [MinOrder, MaxOrder].
func WithOrder(order int) Option {
	if order < MinOrder || order > MaxOrder {
		panic(panicOrderRange)
	}
	return func(o *Options) { o.Order = order }
}

// WithEpochs sets the number of Model training passes. Panics if epochs <= 0.
func WithEpochs(epochs int) Option {
	if epochs <= 0 {
		panic(panicEpochs)
	}
	return func(o *Options) { o.Epochs = epochs }
}

// WithLearningRate sets the Model Adam step size. Panics if lr <= 0.
func WithLearningRate(lr float64) Option {
	if !(lr > 0) {
		panic(panicLearningRate)
	}
	return func(o *Options) { o.LearningRate = lr }
}

// WithSeed fixes the Model initializer seed. Seed 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = DefaultSeed
		}
		o.Seed = seed
	}
}

// WithLogger routes warnings (e.g. polynomial degree clamping) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.Logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

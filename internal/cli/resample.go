// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// resample.go — `sigmactl resample`.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
)

// ResampleOptions holds flags for the resample command.
type ResampleOptions struct {
	*RootOptions
	Mode         string
	Steps        int
	Order        int
	Epochs       int
	LearningRate float64
	Seed         int64
}

// NewResampleCommand creates the resample command.
func NewResampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResampleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resample [values...]",
		Short: "Map a schedule onto a new length",
		Long: `Resample a schedule to exactly --steps values.

Values come from the arguments or, when there are none, from stdin,
separated by whitespace or commas.

Modes: linear, nearest, polynomial, spline (alias constrained),
exponential, power, model.

Examples:
  sigmactl resample --steps 5 14.6 7 3 1 0.03
  sigmactl resample --mode spline --steps 40 < karras.txt
  sigmactl resample --mode model --steps 10 --seed 7 --format json 1 0.5 0.1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResample(opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "linear", "resampling mode")
	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 0, "target length (required)")
	_ = cmd.MarkFlagRequired("steps")
	cmd.Flags().IntVar(&opts.Order, "order", resample.DefaultOrder, "polynomial order")
	cmd.Flags().IntVar(&opts.Epochs, "epochs", resample.DefaultEpochs, "model training passes")
	cmd.Flags().Float64Var(&opts.LearningRate, "lr", resample.DefaultLearningRate, "model learning rate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", resample.DefaultSeed, "model initializer seed")

	return cmd
}

func runResample(opts *ResampleOptions, cmd *cobra.Command, args []string) error {
	s := newSession(opts.RootOptions, cmd)

	mode, err := resample.ParseMode(opts.Mode)
	if err != nil {
		return s.out.Fail(ExitCommandError, err)
	}
	ropts, err := opts.resampleOptions(s)
	if err != nil {
		return s.out.Fail(ExitCommandError, err)
	}
	src, err := s.readValues(cmd, args)
	if err != nil {
		return err
	}

	s.logger.Debug("resampling", "mode", mode, "source", src.Len(), "target", opts.Steps)
	out, err := resample.Resample(src, opts.Steps, mode, ropts...)
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	return s.out.Success(newSequenceResult(out))
}

// resampleOptions checks the numeric flags before building options, whose
// constructors panic on out-of-range values.
func (o *ResampleOptions) resampleOptions(s *session) ([]resample.Option, error) {
	const op = "resample"
	if o.Order < resample.MinOrder || o.Order > resample.MaxOrder {
		return nil, sigma.Errorf(op, "order", o.Order, "in [1,64]", sigma.ErrInvalidArgument)
	}
	if o.Epochs <= 0 {
		return nil, sigma.Errorf(op, "epochs", o.Epochs, "> 0", sigma.ErrInvalidArgument)
	}
	if !(o.LearningRate > 0) {
		return nil, sigma.Errorf(op, "lr", o.LearningRate, "> 0", sigma.ErrInvalidArgument)
	}
	return []resample.Option{
		resample.WithOrder(o.Order),
		resample.WithEpochs(o.Epochs),
		resample.WithLearningRate(o.LearningRate),
		resample.WithSeed(o.Seed),
		resample.WithLogger(s.logger),
	}, nil
}

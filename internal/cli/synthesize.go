// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// synthesize.go — `sigmactl synthesize`.

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

// SynthesizeOptions holds flags for the synthesize command.
type SynthesizeOptions struct {
	*RootOptions
	Steps      int
	Start      float64
	End        float64
	Model      bool
	Inflection float64
	List       bool

	params schedule.Params
	klKind string
}

// NewSynthesizeCommand creates the synthesize command.
func NewSynthesizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SynthesizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "synthesize <name>",
		Short: "Generate a schedule by family or scheduler name",
		Long: `Generate a schedule by name.

Closed-form families (constant, tangent, tangent_2stage,
tangent_2stage_simple, karras, polyexponential, kl_optimal) span
[--start, --end]. Named schedulers (normal, simple, beta57, ...) need
--model, which samples the reference discrete model.

Examples:
  sigmactl synthesize karras --steps 10 --rho 7
  sigmactl synthesize kl_optimal --steps 20 --kl-kind standard
  sigmactl synthesize beta57 --steps 30 --model --denoise 0.6
  sigmactl synthesize --list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynthesize(opts, cmd, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Steps, "steps", "n", 20, "number of steps")
	f.Float64Var(&opts.Start, "start", schedule.DefaultValueRange.Start, "first (highest) value")
	f.Float64Var(&opts.End, "end", schedule.DefaultValueRange.End, "last (lowest) value")
	f.BoolVar(&opts.Model, "model", false, "sample the reference discrete model")
	f.Float64Var(&opts.Inflection, "inflection", schedule.DefaultInflection, "linear fraction of linear_quadratic")
	f.BoolVar(&opts.List, "list", false, "list known names and exit")

	p := &opts.params
	f.Float64Var(&p.Cutoff, "cutoff", 0, "constant: fraction of steps held at start")
	f.Float64Var(&p.Slope, "slope", 0, "tangent: slope")
	f.Float64Var(&p.Offset, "offset", 0, "tangent: pivot step")
	f.BoolVar(&p.SGM, "sgm", false, "tangent: drop the terminal value")
	f.BoolVar(&p.Pad, "pad", false, "tangent families: append 0")
	f.IntVar(&p.Midpoint, "midpoint", 0, "tangent_2stage: split step")
	f.Float64Var(&p.Pivot1, "pivot1", 0, "two-stage: first pivot")
	f.Float64Var(&p.Pivot2, "pivot2", 0, "two-stage: second pivot")
	f.Float64Var(&p.Slope1, "slope1", 0, "two-stage: first slope")
	f.Float64Var(&p.Slope2, "slope2", 0, "two-stage: second slope")
	f.Float64Var(&p.Middle, "middle", 0, "two-stage: value at the split")
	f.Float64Var(&p.Rho, "rho", 0, "karras/polyexponential: rho")
	f.StringVar(&opts.klKind, "kl-kind", "", "kl_optimal: standard|mutual_information|elbo_optimal")
	f.Float64Var(&p.Beta, "beta", 0, "kl_optimal: beta")
	f.BoolVar(&p.PadEnd, "pad-end", false, "kl_optimal: append 0")
	f.BoolVar(&p.Normalize, "normalize", false, "kl_optimal: pin both endpoints")
	f.Float64Var(&p.Denoise, "denoise", 0, "named schedulers: denoise in (0,1]")

	return cmd
}

// NameList is the payload of `synthesize --list`.
type NameList struct {
	Families   []string `json:"families"`
	Schedulers []string `json:"schedulers"`
}

func (l NameList) String() string {
	return "families:   " + strings.Join(l.Families, " ") + "\nschedulers: " + strings.Join(l.Schedulers, " ")
}

func runSynthesize(opts *SynthesizeOptions, cmd *cobra.Command, args []string) error {
	s := newSession(opts.RootOptions, cmd)

	if !(opts.Inflection >= 0 && opts.Inflection <= 1) {
		return s.out.Fail(ExitCommandError, sigma.Errorf("synthesize", "inflection", opts.Inflection, "in [0,1]", sigma.ErrInvalidArgument))
	}
	synth := schedule.NewSynthesizer(schedule.WithLogger(s.logger), schedule.WithInflection(opts.Inflection))

	if opts.List {
		return s.out.Success(NameList{
			Families:   schedule.Families(),
			Schedulers: synth.Resolver().Registry().Names(),
		})
	}
	if len(args) != 1 {
		return s.out.Fail(ExitCommandError, sigma.Errorf("synthesize", "name", "", "a family or scheduler name", sigma.ErrInvalidArgument))
	}

	params := opts.params
	if opts.klKind != "" {
		kind, err := schedule.ParseKLKind(opts.klKind)
		if err != nil {
			return s.out.Fail(ExitCommandError, err)
		}
		params.KLKind = kind
	}
	if opts.Model {
		params.Model = schedule.DefaultDiscreteSampling()
	}

	out, err := synth.Synthesize(args[0], opts.Steps,
		schedule.ValueRange{Start: opts.Start, End: opts.End}, params,
		sigma.WithPrecision(s.precision))
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	return s.out.Success(newSequenceResult(out))
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// compose.go — `sigmactl compose`.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/compose"
	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

// ComposeOptions holds flags for the compose command.
type ComposeOptions struct {
	*RootOptions
	Config      string
	Model       bool
	DumpRequest bool

	req        compose.Request
	endStep    int
	totalSteps int
	target     string
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a padded schedule from a request",
		Long: `Compose a schedule: head padding, a synthesized interior rescaled into
[start, end], and tail padding, total_steps values in all.

The request comes from --config (YAML, validated against the embedded
schema) or from flags. Of --end-step and --total-steps at least one is
required; the absent one is derived from the other.

Examples:
  sigmactl compose --config request.yaml
  sigmactl compose --scheduler karras --start 14 --end 0.5 --start-step 5 --end-step 25 --total-steps 40
  sigmactl compose --scheduler beta57 --model --denoise 0.5 --end-step 20
  sigmactl compose --scheduler karras --end-step 10 --dump-request`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Config, "config", "c", "", "YAML request file")
	f.BoolVar(&opts.Model, "model", false, "sample the reference discrete model for named schedulers")
	f.BoolVar(&opts.DumpRequest, "dump-request", false, "print the effective request as YAML and exit")

	r := &opts.req
	f.Float64Var(&r.PadStartValue, "pad-start", 1, "head padding value")
	f.Float64Var(&r.StartValue, "start", 1, "first interior value")
	f.Float64Var(&r.EndValue, "end", 0, "last interior value")
	f.Float64Var(&r.PadEndValue, "pad-end", 0, "tail padding value")
	f.StringVar(&r.Scheduler, "scheduler", "karras", "family or scheduler name")
	f.IntVar(&r.StartStep, "start-step", 0, "first interior index")
	f.IntVar(&opts.endStep, "end-step", 0, "interior end index (default total-steps)")
	f.IntVar(&opts.totalSteps, "total-steps", 0, "output length (default start-step + end-step)")
	f.Float64Var(&r.Denoise, "denoise", 1, "denoise in (0,1]")
	f.BoolVar(&r.FlipSchedule, "flip", false, "reverse the interior")
	f.Float64Var(&r.Params.Rho, "rho", 0, "karras/polyexponential rho")
	f.StringVar(&r.Params.KLKind, "kl-kind", "", "kl_optimal kind")
	f.StringVar(&opts.target, "target", "", "execution target tag")

	return cmd
}

// ComposeResult is the payload of the compose command.
type ComposeResult struct {
	SequenceResult
	Plan PlanResult `json:"plan"`
}

// PlanResult mirrors compose.Plan for output.
type PlanResult struct {
	StartStep      int `json:"scheduler_start_step"`
	EndStep        int `json:"scheduler_end_step"`
	TotalSteps     int `json:"total_steps"`
	SchedulerSteps int `json:"scheduler_steps"`
	EndPadSteps    int `json:"end_pad_steps"`
}

func runCompose(opts *ComposeOptions, cmd *cobra.Command) error {
	s := newSession(opts.RootOptions, cmd)

	req, err := opts.request(cmd, s)
	if err != nil {
		return s.out.Fail(ExitCommandError, err)
	}
	if opts.DumpRequest {
		if err := req.Encode(s.out.Writer); err != nil {
			return WrapExitError(ExitCommandError, "writing request", err)
		}
		return nil
	}
	if opts.Model {
		req.Model = schedule.DefaultDiscreteSampling()
	}

	composer := compose.NewComposer(
		compose.WithLogger(s.logger),
		compose.WithSynthesizer(schedule.NewSynthesizer(schedule.WithLogger(s.logger))),
		compose.WithObserver(func(st compose.State, p compose.Plan) {
			s.out.VerboseLog("%-18s interior=%d", st, len(p.Interior))
		}),
	)
	res, err := composer.Compose(req)
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	return s.out.Success(ComposeResult{
		SequenceResult: newSequenceResult(res.Sigmas),
		Plan: PlanResult{
			StartStep:      res.Plan.StartStep,
			EndStep:        res.Plan.EndStep,
			TotalSteps:     res.Plan.TotalSteps,
			SchedulerSteps: res.Plan.SchedulerSteps,
			EndPadSteps:    res.Plan.EndPadSteps,
		},
	})
}

// request loads --config or assembles the request from flags. Only flags
// the user set fill the optional step fields.
func (o *ComposeOptions) request(cmd *cobra.Command, s *session) (compose.Request, error) {
	if o.Config != "" {
		req, err := compose.LoadRequest(o.Config)
		if err != nil {
			return compose.Request{}, err
		}
		if req.Precision == 0 || cmd.Flags().Changed("precision") {
			req.Precision = s.precision
		}
		return req, nil
	}

	req := o.req
	if cmd.Flags().Changed("end-step") {
		req.EndStep = compose.Step(o.endStep)
	}
	if cmd.Flags().Changed("total-steps") {
		req.TotalSteps = compose.Step(o.totalSteps)
	}
	req.Precision = s.precision
	req.Target = sigma.Target(o.target)
	return req, nil
}

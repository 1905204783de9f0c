// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// composer.go — the Compose state machine.
//
// Contract:
//   • Compose never mutates the Request and never returns a partial result.
//   • The output length equals the resolved TotalSteps exactly.
//   • A synthesized schedule ending in the terminal 0 loses that entry (or,
//     without one, its steps+1-th value). Any other length mismatch is
//     resampled linearly, so the interior has exactly end−start values.
//   • A single-step interior is StartValue.

package compose

import (
	"log/slog"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

const opCompose = "Compose"

// Plan is the resolved layout of a composed schedule.
type Plan struct {
	StartStep      int // head padding length
	EndStep        int // resolved end of the interior
	TotalSteps     int // output length
	SchedulerSteps int // interior length, EndStep − StartStep
	EndPadSteps    int // tail padding length, TotalSteps − EndStep

	Interior []float64 // interior values as of the current state
}

// Result is a composed schedule and the layout that produced it.
type Result struct {
	Sigmas sigma.Sequence
	Plan   Plan
}

// Composer builds schedules from Requests. It is safe for concurrent use
// when its Observer is.
type Composer struct {
	synth    *schedule.Synthesizer
	observer Observer
	logger   *slog.Logger
}

// NewComposer builds a Composer over a default schedule.Synthesizer unless
// WithSynthesizer is given.
func NewComposer(opts ...Option) *Composer {
	o := gatherOptions(opts...)
	return &Composer{synth: o.synth, observer: o.observer, logger: o.logger}
}

// run is the per-call working state.
type run struct {
	req       Request
	plan      Plan
	denoise   float64
	precision sigma.Precision
	ramp      bool // interior already spans [StartValue, EndValue]
	out       sigma.Sequence
}

// Compose walks every State in order and returns the padded schedule.
//
// Errors:
//   - ErrAmbiguousRange: EndStep and TotalSteps both nil.
//   - ErrInvalidRange: negative StartStep, EndStep, TotalSteps, interior or
//     tail length.
//   - sigma.ErrInvalidArgument: bad precision or denoise, unknown scheduler
//     (schedule.ErrUnknownScheduler), registered name without a Model
//     (schedule.ErrNoModel).
//   - sigma.ErrDegenerateRange: the synthesized interior is constant.
func (c *Composer) Compose(req Request) (Result, error) {
	r := &run{req: req}
	state := ResolveSentinels
	for {
		c.logger.Debug("compose state", "state", state.String())
		c.observer(state, r.plan)
		if state == Done {
			break
		}
		next, err := c.step(state, r)
		if err != nil {
			return Result{}, err
		}
		state = next
	}

	c.logger.Debug("schedule composed",
		"scheduler", req.Scheduler,
		"total_steps", r.plan.TotalSteps,
		"scheduler_steps", r.plan.SchedulerSteps,
		"end_pad_steps", r.plan.EndPadSteps,
	)
	return Result{Sigmas: r.out, Plan: r.plan}, nil
}

func (c *Composer) step(s State, r *run) (State, error) {
	switch s {
	case ResolveSentinels:
		return ComputeBounds, c.resolveSentinels(r)
	case ComputeBounds:
		return SynthesizeInterior, c.computeBounds(r)
	case SynthesizeInterior:
		return RescaleRange, c.synthesizeInterior(r)
	case RescaleRange:
		return OptionalFlip, c.rescaleRange(r)
	case OptionalFlip:
		if r.req.FlipSchedule {
			r.plan.Interior = reversed(r.plan.Interior)
		}
		return Pad, nil
	case Pad:
		return Done, c.pad(r)
	}
	return Done, sigma.Errorf(opCompose, "state", s, "known state", sigma.ErrInvalidArgument)
}

func (c *Composer) resolveSentinels(r *run) error {
	req := r.req
	r.precision = req.Precision
	if r.precision == 0 {
		r.precision = sigma.DefaultPrecision
	}
	if !r.precision.Valid() {
		return sigma.Errorf(opCompose, "precision", int(req.Precision), "one of 16, 32, 64", sigma.ErrInvalidArgument)
	}
	r.denoise = req.Denoise
	if r.denoise == 0 {
		r.denoise = 1
	}
	if !(r.denoise > 0 && r.denoise <= 1) {
		return sigma.Errorf(opCompose, "denoise", req.Denoise, "in (0,1]", sigma.ErrInvalidArgument)
	}

	if req.StartStep < 0 {
		return sigma.Errorf(opCompose, "scheduler_start_step", req.StartStep, ">= 0", ErrInvalidRange)
	}
	if req.EndStep != nil && *req.EndStep < 0 {
		return sigma.Errorf(opCompose, "scheduler_end_step", *req.EndStep, ">= 0", ErrInvalidRange)
	}
	if req.TotalSteps != nil && *req.TotalSteps < 0 {
		return sigma.Errorf(opCompose, "total_steps", *req.TotalSteps, ">= 0", ErrInvalidRange)
	}

	switch {
	case req.EndStep == nil && req.TotalSteps == nil:
		return sigma.Errorf(opCompose, "", nil, "", ErrAmbiguousRange)
	case req.EndStep == nil:
		r.plan.TotalSteps = *req.TotalSteps
		r.plan.EndStep = r.plan.TotalSteps
	case req.TotalSteps == nil:
		r.plan.EndStep = *req.EndStep
		r.plan.TotalSteps = req.StartStep + r.plan.EndStep
	default:
		r.plan.EndStep = *req.EndStep
		r.plan.TotalSteps = *req.TotalSteps
	}
	r.plan.StartStep = req.StartStep
	return nil
}

func (c *Composer) computeBounds(r *run) error {
	p := &r.plan
	p.SchedulerSteps = p.EndStep - p.StartStep
	p.EndPadSteps = p.TotalSteps - p.EndStep
	if p.SchedulerSteps < 0 {
		return sigma.Errorf(opCompose, "scheduler_total_steps", p.SchedulerSteps, ">= 0", ErrInvalidRange)
	}
	if p.EndPadSteps < 0 {
		return sigma.Errorf(opCompose, "end_pad_steps", p.EndPadSteps, ">= 0", ErrInvalidRange)
	}
	return nil
}

func (c *Composer) synthesizeInterior(r *run) error {
	n := r.plan.SchedulerSteps
	if n == 0 {
		r.plan.Interior = []float64{}
		return nil
	}
	name := schedule.CanonicalName(r.req.Scheduler)
	if name == schedule.FamilyConstant {
		r.plan.Interior = sigma.LinspaceValues(r.req.StartValue, r.req.EndValue, n)
		r.ramp = true
		return nil
	}

	params, err := r.req.Params.scheduleParams()
	if err != nil {
		return err
	}
	params.Model = r.req.Model
	params.Denoise = r.denoise
	vr := schedule.DefaultValueRange
	if r.req.Model != nil {
		vr = schedule.ValueRange{Start: r.req.Model.SigmaMax(), End: r.req.Model.SigmaMin()}
	}

	seq, err := c.synth.Synthesize(name, n, vr, params)
	if err != nil {
		return err
	}
	vals := seq.Values()
	if k := len(vals); k > 1 && vals[k-1] == 0 {
		vals = vals[:k-1]
	} else if k == n+1 {
		vals = vals[:n]
	}
	if len(vals) != n {
		c.logger.Warn("synthesized length differs from interior length; resampling",
			"scheduler", name, "got", len(vals), "want", n)
		rs, err := resample.Resample(seq.Derive(vals), n, resample.Linear, resample.WithLogger(c.logger))
		if err != nil {
			return err
		}
		vals = rs.Values()
	}
	r.plan.Interior = vals
	return nil
}

// rescaleRange maps the native maximum to StartValue and the native minimum
// to EndValue. A single value is the maximum.
func (c *Composer) rescaleRange(r *run) error {
	if r.ramp || len(r.plan.Interior) == 0 {
		return nil
	}
	if len(r.plan.Interior) == 1 {
		r.plan.Interior = []float64{r.req.StartValue}
		return nil
	}
	native, err := sigma.New(r.plan.Interior)
	if err != nil {
		return err
	}
	scaled, err := transform.Rescale(native, r.req.StartValue, r.req.EndValue)
	if err != nil {
		return err
	}
	r.plan.Interior = scaled.Values()
	return nil
}

func (c *Composer) pad(r *run) error {
	p := r.plan
	values := make([]float64, 0, p.TotalSteps)
	for i := 0; i < p.StartStep; i++ {
		values = append(values, r.req.PadStartValue)
	}
	values = append(values, p.Interior...)
	for i := 0; i < p.EndPadSteps; i++ {
		values = append(values, r.req.PadEndValue)
	}

	opts := []sigma.Option{sigma.WithPrecision(r.precision)}
	if r.req.Target != "" {
		opts = append(opts, sigma.WithTarget(r.req.Target))
	}
	out, err := sigma.New(values, opts...)
	if err != nil {
		return err
	}
	r.out = out
	return nil
}

func reversed(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v
	}
	return out
}

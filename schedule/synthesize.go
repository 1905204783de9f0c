// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// synthesize.go — one entry point over closed-form families and named schedulers.
//
// Dispatch order for Synthesize(name, ...):
//   1. a Model is set and the name is registered → Resolver.
//   2. the name is a closed-form family           → computed in-process.
//   3. the name is registered but Model is nil    → ErrNoModel.
//   4. otherwise                                  → ErrUnknownScheduler.

package schedule

import (
	"log/slog"

	"github.com/katalvlaran/sigmakit/sigma"
)

const opSynthesize = "Synthesize"

// Closed-form family names accepted by Synthesize.
const (
	FamilyConstant              = "constant"
	FamilyTangent               = "tangent"
	FamilyTangentTwoStage       = "tangent_2stage"
	FamilyTangentTwoStageSimple = "tangent_2stage_simple"
	FamilyKarras                = "karras"
	FamilyPolyExponential       = "polyexponential"
	FamilyKLOptimal             = "kl_optimal"
)

// Families lists the closed-form family names.
func Families() []string {
	return []string{
		FamilyConstant, FamilyTangent, FamilyTangentTwoStage, FamilyTangentTwoStageSimple,
		FamilyKarras, FamilyPolyExponential, FamilyKLOptimal,
	}
}

// ValueRange is the [Start, End] pair a family spans. For Karras and
// PolyExponential Start is σmax and End is σmin.
type ValueRange struct {
	Start float64
	End   float64
}

// DefaultValueRange is the σ span of DefaultDiscreteSampling, rounded.
var DefaultValueRange = ValueRange{Start: 14.614642, End: 0.0291675}

// Params carries family-specific knobs. Zero values select the documented
// defaults; fields unrelated to the requested family are ignored.
type Params struct {
	// constant
	Cutoff float64 // fraction of steps kept at Start; 0 selects 1

	// tangent
	Slope  float64 // 0 selects 1
	Offset float64 // pivot in steps; 0 selects steps/2
	SGM    bool
	Pad    bool

	// tangent_2stage / tangent_2stage_simple
	Midpoint int     // 0 selects steps/2
	Pivot1   float64 // steps (2stage) or fraction (simple); 0 selects steps/4 or 0.25
	Pivot2   float64 // steps (2stage) or fraction (simple); 0 selects 3·steps/4 or 0.75
	Slope1   float64 // 0 selects 1
	Slope2   float64 // 0 selects 1
	Middle   float64 // 0 selects the mean of Start and End

	// karras / polyexponential
	Rho float64 // 0 selects 7 (karras) or 1 (polyexponential)

	// kl_optimal
	KLKind    KLKind  // "" selects elbo_optimal
	Beta      float64 // 0 selects DefaultKLBeta
	PadEnd    bool
	Normalize bool

	// named schedulers
	Model   Sampling
	Denoise float64 // 0 selects 1
}

// Synthesizer produces base schedules by name. It is safe for concurrent use.
type Synthesizer struct {
	resolver *Resolver
	logger   *slog.Logger
}

// NewSynthesizer builds a Synthesizer; options configure its Resolver.
func NewSynthesizer(opts ...Option) *Synthesizer {
	o := gatherOptions(opts...)
	return &Synthesizer{
		resolver: &Resolver{registry: o.registry, inflection: o.inflection, logger: o.logger},
		logger:   o.logger,
	}
}

// Resolver exposes the named-scheduler resolver.
func (s *Synthesizer) Resolver() *Resolver { return s.resolver }

// Synthesize produces the named schedule. See the file header for dispatch.
func (s *Synthesizer) Synthesize(name string, steps int, vr ValueRange, p Params, opts ...sigma.Option) (sigma.Sequence, error) {
	canonical := CanonicalName(name)
	if p.Model != nil && s.resolver.Has(canonical) {
		denoise := p.Denoise
		if denoise == 0 {
			denoise = 1
		}
		return s.resolver.Resolve(p.Model, canonical, steps, denoise, opts...)
	}

	s.logger.Debug("synthesizing closed-form family", "family", canonical, "steps", steps)
	switch canonical {
	case FamilyConstant:
		cutoff := orDefault(p.Cutoff, 1)
		return Constant(steps, vr.Start, vr.End, cutoff, opts...)

	case FamilyTangent:
		return Tangent(TangentParams{
			Steps:  steps,
			Slope:  orDefault(p.Slope, 1),
			Offset: orDefault(p.Offset, float64(steps)/2),
			Start:  vr.Start,
			End:    vr.End,
			SGM:    p.SGM,
			Pad:    p.Pad,
		}, opts...)

	case FamilyTangentTwoStage:
		mid := p.Midpoint
		if mid == 0 {
			mid = steps / 2
		}
		return TangentTwoStage(TwoStageParams{
			Steps:    steps,
			Midpoint: mid,
			Pivot1:   int(orDefault(p.Pivot1, float64(steps)/4)),
			Pivot2:   int(orDefault(p.Pivot2, 3*float64(steps)/4)),
			Slope1:   orDefault(p.Slope1, 1),
			Slope2:   orDefault(p.Slope2, 1),
			Start:    vr.Start,
			Middle:   orDefault(p.Middle, (vr.Start+vr.End)/2),
			End:      vr.End,
			Pad:      p.Pad,
		}, opts...)

	case FamilyTangentTwoStageSimple:
		return TangentTwoStageSimple(TwoStageSimpleParams{
			Steps:  steps,
			Pivot1: orDefault(p.Pivot1, 0.25),
			Pivot2: orDefault(p.Pivot2, 0.75),
			Slope1: orDefault(p.Slope1, 1),
			Slope2: orDefault(p.Slope2, 1),
			Start:  vr.Start,
			Middle: orDefault(p.Middle, (vr.Start+vr.End)/2),
			End:    vr.End,
			Pad:    p.Pad,
		}, opts...)

	case FamilyKarras:
		return Karras(steps, vr.End, vr.Start, orDefault(p.Rho, DefaultKarrasRho), opts...)

	case FamilyPolyExponential:
		return PolyExponential(steps, vr.End, vr.Start, orDefault(p.Rho, 1), opts...)

	case FamilyKLOptimal:
		kind := p.KLKind
		if kind == "" {
			kind = KLElboOptimal
		}
		return KLOptimal(KLParams{
			Steps:     steps,
			Start:     vr.Start,
			End:       vr.End,
			Kind:      kind,
			Beta:      orDefault(p.Beta, DefaultKLBeta),
			PadEnd:    p.PadEnd,
			Normalize: p.Normalize,
		}, opts...)
	}

	if s.resolver.Has(canonical) {
		return sigma.Sequence{}, sigma.Errorf(opSynthesize, "model", "nil", "Sampling for "+canonical, ErrNoModel)
	}
	return sigma.Sequence{}, sigma.Errorf(opSynthesize, "name", name, "closed-form family or registered scheduler", ErrUnknownScheduler)
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

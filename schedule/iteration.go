// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// iteration.go — up/down "iteration" schedules with momentum.

package schedule

import (
	"github.com/katalvlaran/sigmakit/sigma"
)

const (
	opIterationKarras  = "IterationKarras"
	opIterationPolyExp = "IterationPolyExp"

	// DefaultIterationSigmaMin is the lower sigma of both ramps.
	DefaultIterationSigmaMin = 0.0291675
	// DefaultIterationSigmaMax is the shared peak of both ramps.
	DefaultIterationSigmaMax = 2.0
	// DefaultIterationSteps is the length of each ramp.
	DefaultIterationSteps = 30
)

// IterationParams configures IterationKarras and IterationPolyExp.
//
// The up ramp climbs from SigmaMinStart to SigmaMax over StepsUp points, the
// down ramp falls from SigmaMax to SigmaMinEnd over StepsDown points. Prior
// sequences, when non-empty, are prepended to the respective outputs.
type IterationParams struct {
	StepsUp        int
	StepsDown      int
	RhoUp          float64
	RhoDown        float64
	SigmaMinStart  float64
	SigmaMax       float64
	SigmaMinEnd    float64
	PriorSigmas    sigma.Sequence
	PriorMomentums sigma.Sequence
}

// DefaultIterationKarras returns the Karras defaults (ρ up 3, ρ down 4).
func DefaultIterationKarras() IterationParams {
	return IterationParams{
		StepsUp:       DefaultIterationSteps,
		StepsDown:     DefaultIterationSteps,
		RhoUp:         3,
		RhoDown:       4,
		SigmaMinStart: DefaultIterationSigmaMin,
		SigmaMax:      DefaultIterationSigmaMax,
		SigmaMinEnd:   DefaultIterationSigmaMin,
	}
}

// DefaultIterationPolyExp returns the poly-exponential defaults (ρ up 0.6, ρ down 0.8).
func DefaultIterationPolyExp() IterationParams {
	p := DefaultIterationKarras()
	p.RhoUp, p.RhoDown = 0.6, 0.8
	return p
}

type rampFunc func(n int, sigmaMin, sigmaMax, rho float64) []float64

// IterationKarras builds an up/down Karras schedule.
//
// Returns:
//   - sigmas:    reversed up ramp followed by the down ramp, each without its
//     terminal zero (StepsUp+StepsDown values plus any prior).
//   - momentums: the same concatenation with the down half negated.
func IterationKarras(p IterationParams, opts ...sigma.Option) (sigmas, momentums sigma.Sequence, err error) {
	return iteration(opIterationKarras, karrasValues, p, opts...)
}

// IterationPolyExp is IterationKarras with poly-exponential ramps.
func IterationPolyExp(p IterationParams, opts ...sigma.Option) (sigmas, momentums sigma.Sequence, err error) {
	return iteration(opIterationPolyExp, polyExpValues, p, opts...)
}

func iteration(op string, ramp rampFunc, p IterationParams, opts ...sigma.Option) (sigma.Sequence, sigma.Sequence, error) {
	if p.StepsUp < 0 {
		return sigma.Sequence{}, sigma.Sequence{}, sigma.Errorf(op, "stepsUp", p.StepsUp, ">= 0", sigma.ErrInvalidArgument)
	}
	if p.StepsDown < 0 {
		return sigma.Sequence{}, sigma.Sequence{}, sigma.Errorf(op, "stepsDown", p.StepsDown, ">= 0", sigma.ErrInvalidArgument)
	}
	if err := checkSigmaBounds(op, p.SigmaMinStart, p.SigmaMax, p.RhoUp); err != nil {
		return sigma.Sequence{}, sigma.Sequence{}, err
	}
	if err := checkSigmaBounds(op, p.SigmaMinEnd, p.SigmaMax, p.RhoDown); err != nil {
		return sigma.Sequence{}, sigma.Sequence{}, err
	}

	up := ramp(p.StepsUp, p.SigmaMinStart, p.SigmaMax, p.RhoUp)
	down := ramp(p.StepsDown, p.SigmaMinEnd, p.SigmaMax, p.RhoDown)
	up, down = up[:len(up)-1], down[:len(down)-1]

	prevS, prevM := p.PriorSigmas.Values(), p.PriorMomentums.Values()
	sig := make([]float64, 0, len(prevS)+len(up)+len(down))
	mom := make([]float64, 0, len(prevM)+len(up)+len(down))
	sig = append(sig, prevS...)
	mom = append(mom, prevM...)
	for i := len(up) - 1; i >= 0; i-- {
		sig = append(sig, up[i])
		mom = append(mom, up[i])
	}
	for _, v := range down {
		sig = append(sig, v)
		mom = append(mom, -v)
	}

	sigmas, err := sigma.New(sig, opts...)
	if err != nil {
		return sigma.Sequence{}, sigma.Sequence{}, err
	}
	momentums, err := sigma.New(mom, opts...)
	if err != nil {
		return sigma.Sequence{}, sigma.Sequence{}, err
	}
	return sigmas, momentums, nil
}

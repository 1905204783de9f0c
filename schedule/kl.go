// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// kl.go — KL-optimal schedule profiles.

package schedule

import (
	"math"
	"strings"

	"github.com/katalvlaran/sigmakit/sigma"
)

const opKLOptimal = "KLOptimal"

// KLKind selects the KL-optimal profile.
type KLKind string

const (
	// KLStandard: σ(t) = sqrt(start·e^(−βt) + end·(1 − e^(−βt))).
	KLStandard KLKind = "standard"
	// KLMutualInformation decays geometrically at rate sqrt(β(1 − e^(−2βt)))/steps,
	// then rescales into [end, start].
	KLMutualInformation KLKind = "mutual_information"
	// KLElboOptimal follows the squared-cosine ELBO profile from high to low noise.
	KLElboOptimal KLKind = "elbo_optimal"
)

// DefaultKLBeta is the profile parameter used when none is given.
const DefaultKLBeta = 0.5

// ParseKLKind maps a name to a KLKind.
func ParseKLKind(s string) (KLKind, error) {
	k := KLKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KLStandard, KLMutualInformation, KLElboOptimal:
		return k, nil
	}
	return "", sigma.Errorf("ParseKLKind", "kind", s, "standard|mutual_information|elbo_optimal", sigma.ErrInvalidArgument)
}

// KLParams configures KLOptimal.
type KLParams struct {
	Steps     int
	Start     float64
	End       float64
	Kind      KLKind
	Beta      float64
	PadEnd    bool // append a terminal 0
	Normalize bool // min-max into [End, Start] with both endpoints pinned
}

// KLOptimal returns Steps values (Steps+1 with PadEnd) of the chosen profile.
//
// Errors:
//   - Steps < 2, Beta < 0 or an unknown Kind → sigma.ErrInvalidArgument.
//   - KLStandard with a negative Start or End → sigma.ErrDomain.
//   - a zero-width profile that must be rescaled → sigma.ErrDegenerateRange.
func KLOptimal(p KLParams, opts ...sigma.Option) (sigma.Sequence, error) {
	if p.Steps < 2 {
		return sigma.Sequence{}, sigma.Errorf(opKLOptimal, "steps", p.Steps, ">= 2", sigma.ErrInvalidArgument)
	}
	if !(p.Beta >= 0) {
		return sigma.Sequence{}, sigma.Errorf(opKLOptimal, "beta", p.Beta, ">= 0", sigma.ErrInvalidArgument)
	}

	var vals []float64
	var err error
	switch p.Kind {
	case KLStandard:
		vals, err = klStandard(p)
	case KLMutualInformation:
		vals, err = klMutualInformation(p)
	case KLElboOptimal:
		vals, err = klElbo(p)
	default:
		err = sigma.Errorf(opKLOptimal, "kind", p.Kind, "standard|mutual_information|elbo_optimal", sigma.ErrInvalidArgument)
	}
	if err != nil {
		return sigma.Sequence{}, err
	}

	if p.Normalize {
		if vals, err = rescaleInto(opKLOptimal, vals, p.End, p.Start); err != nil {
			return sigma.Sequence{}, err
		}
		vals[0], vals[len(vals)-1] = p.Start, p.End
	}
	if p.PadEnd {
		vals = append(vals, 0)
	}
	return sigma.New(vals, opts...)
}

func klStandard(p KLParams) ([]float64, error) {
	if p.Start < 0 || p.End < 0 {
		return nil, sigma.Errorf(opKLOptimal, "start/end", [2]float64{p.Start, p.End}, ">= 0", sigma.ErrDomain)
	}
	out := sigma.LinspaceValues(0, 1, p.Steps)
	for i, t := range out {
		e := math.Exp(-p.Beta * t)
		out[i] = math.Sqrt(p.Start*e + p.End*(1-e))
	}
	return out, nil
}

func klMutualInformation(p KLParams) ([]float64, error) {
	n := p.Steps
	out := make([]float64, n)
	out[0] = p.Start
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n-1)
		rate := math.Sqrt(p.Beta * (1 - math.Exp(-2*p.Beta*t)))
		out[i] = out[i-1] * math.Exp(-rate/float64(n))
	}
	first, last := out[0], out[n-1]
	if first == last {
		return nil, sigma.Errorf(opKLOptimal, "beta", p.Beta, "profile with distinct endpoints", sigma.ErrDegenerateRange)
	}
	for i, v := range out {
		out[i] = (v-last)/(first-last)*(p.Start-p.End) + p.End
	}
	return out, nil
}

// klElbo evaluates r(t) = sqrt((1 − α(t))/α(t)), α(t) = cos²((t+β)/(1+β)·π/2)/α(0)
// on t = i/steps (the singular t = 1 is never reached), runs it from high
// noise to low and maps it affinely onto [End, Start].
func klElbo(p KLParams) ([]float64, error) {
	n := p.Steps
	alpha := func(t float64) float64 {
		c := math.Cos((t + p.Beta) / (1 + p.Beta) * math.Pi / 2)
		return c * c
	}
	a0 := alpha(0)
	if a0 == 0 {
		return nil, sigma.Errorf(opKLOptimal, "beta", p.Beta, "finite profile", sigma.ErrDomain)
	}
	raw := make([]float64, n)
	for i := range raw {
		a := alpha(float64(i)/float64(n)) / a0
		raw[n-1-i] = math.Sqrt(math.Max(0, (1-a)/a))
	}
	out, err := rescaleInto(opKLOptimal, raw, p.End, p.Start)
	if err != nil {
		return nil, err
	}
	out[0], out[n-1] = p.Start, p.End
	return out, nil
}

// rescaleInto maps vals affinely so that min → lo and max → hi.
func rescaleInto(op string, vals []float64, lo, hi float64) ([]float64, error) {
	mn, mx := vals[0], vals[0]
	for _, v := range vals[1:] {
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}
	if mx == mn || math.IsNaN(mx-mn) || math.IsInf(mx-mn, 0) {
		return nil, sigma.Errorf(op, "range", [2]float64{mn, mx}, "max > min", sigma.ErrDegenerateRange)
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v-mn)/(mx-mn)*(hi-lo) + lo
	}
	return out, nil
}

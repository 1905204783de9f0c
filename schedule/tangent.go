// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// tangent.go — arctangent profiles.
//
// Every tangent curve is f(x) = ((2/π)·atan(−slope·(x − pivot)) + 1)/2,
// normalized so that f(0) maps to start and f(last) maps to end.

package schedule

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

const (
	opTangent               = "Tangent"
	opTangentTwoStage       = "TangentTwoStage"
	opTangentTwoStageSimple = "TangentTwoStageSimple"
)

// TangentParams configures a single-stage tangent profile.
type TangentParams struct {
	Steps  int     // number of samples before padding
	Slope  float64 // steepness; sign flips the direction of the S-curve
	Offset float64 // pivot position in step units
	Start  float64 // value at step 0
	End    float64 // value at the last normalization step
	SGM    bool    // normalize over Steps+1 positions and drop the last one
	Pad    bool    // append a terminal 0
}

// TwoStageParams configures TangentTwoStage. Pivots are in step units.
type TwoStageParams struct {
	Steps    int
	Midpoint int
	Pivot1   int
	Pivot2   int
	Slope1   float64
	Slope2   float64
	Start    float64
	Middle   float64
	End      float64
	Pad      bool
}

// TwoStageSimpleParams configures TangentTwoStageSimple. Pivots are fractions
// of the step count and slopes are given per 40 steps.
type TwoStageSimpleParams struct {
	Steps  int
	Pivot1 float64
	Pivot2 float64
	Slope1 float64
	Slope2 float64
	Start  float64
	Middle float64
	End    float64
	Pad    bool
}

func tanCurve(x, slope, pivot float64) float64 {
	return ((2/math.Pi)*math.Atan(-slope*(x-pivot)) + 1) / 2
}

// tanSegment evaluates count points of the curve normalized over span
// positions (f(0) → start, f(span−1) → end).
func tanSegment(op string, count, span int, slope, pivot, start, end float64) ([]float64, error) {
	smax := tanCurve(0, slope, pivot)
	smin := tanCurve(float64(span-1), slope, pivot)
	srange := smax - smin
	if count > 0 && (srange == 0 || math.IsNaN(srange)) {
		return nil, sigma.Errorf(op, "slope", slope, "non-flat curve over the step range", sigma.ErrDegenerateRange)
	}
	scale := start - end
	out := make([]float64, count)
	for x := range out {
		out[x] = (tanCurve(float64(x), slope, pivot)-smin)/srange*scale + end
	}
	return out, nil
}

// Tangent returns Steps values (Steps+1 with Pad) following the arctangent
// profile from Start toward End.
//
// Errors:
//   - Steps < 0 → sigma.ErrInvalidArgument.
//   - a curve that is flat over the range (e.g. Slope 0, or a single step
//     without SGM) → sigma.ErrDegenerateRange.
func Tangent(p TangentParams, opts ...sigma.Option) (sigma.Sequence, error) {
	if p.Steps < 0 {
		return sigma.Sequence{}, sigma.Errorf(opTangent, "steps", p.Steps, ">= 0", sigma.ErrInvalidArgument)
	}
	span := p.Steps
	if p.SGM {
		span++
	}
	vals, err := tanSegment(opTangent, p.Steps, span, p.Slope, p.Offset, p.Start, p.End)
	if err != nil {
		return sigma.Sequence{}, err
	}
	if p.Pad {
		vals = append(vals, 0)
	}
	return sigma.New(vals, opts...)
}

// twoStage joins two tangent segments that meet at middle. The first
// segment's last point is dropped so middle appears once.
func twoStage(op string, steps, midpoint, pivot1, pivot2 int, slope1, slope2, start, middle, end float64, pad bool) ([]float64, error) {
	steps += 2
	stage2 := steps - midpoint
	stage1 := steps - stage2
	if stage1 < 2 {
		return nil, sigma.Errorf(op, "midpoint", midpoint, ">= 2", sigma.ErrInvalidArgument)
	}
	if stage2 < 2 {
		return nil, sigma.Errorf(op, "midpoint", midpoint, "<= steps", sigma.ErrInvalidArgument)
	}

	first, err := tanSegment(op, stage1, stage1, slope1, float64(pivot1), start, middle)
	if err != nil {
		return nil, err
	}
	second, err := tanSegment(op, stage2, stage2, slope2, float64(pivot2-stage1), middle, end)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, stage1-1+stage2+1)
	out = append(out, first[:stage1-1]...)
	out = append(out, second...)
	if pad {
		out = append(out, 0)
	}
	return out, nil
}

// TangentTwoStage returns Steps+1 values (Steps+2 with Pad): a Start→Middle
// tangent over the first Midpoint positions and a Middle→End tangent over
// the rest. Pivot2 is measured from step 0 of the whole schedule.
//
// Errors:
//   - Steps < 0, Midpoint < 2 or Midpoint > Steps → sigma.ErrInvalidArgument.
//   - a flat segment → sigma.ErrDegenerateRange.
func TangentTwoStage(p TwoStageParams, opts ...sigma.Option) (sigma.Sequence, error) {
	if p.Steps < 0 {
		return sigma.Sequence{}, sigma.Errorf(opTangentTwoStage, "steps", p.Steps, ">= 0", sigma.ErrInvalidArgument)
	}
	vals, err := twoStage(opTangentTwoStage, p.Steps, p.Midpoint, p.Pivot1, p.Pivot2,
		p.Slope1, p.Slope2, p.Start, p.Middle, p.End, p.Pad)
	if err != nil {
		return sigma.Sequence{}, err
	}
	return sigma.New(vals, opts...)
}

// TangentTwoStageSimple derives the two-stage layout from fractions:
// with s = Steps+2, midpoint = ⌊s·(Pivot1+Pivot2)/2⌋, pivots ⌊s·Pivot⌋ and
// slopes divided by s/40.
func TangentTwoStageSimple(p TwoStageSimpleParams, opts ...sigma.Option) (sigma.Sequence, error) {
	if p.Steps < 0 {
		return sigma.Sequence{}, sigma.Errorf(opTangentTwoStageSimple, "steps", p.Steps, ">= 0", sigma.ErrInvalidArgument)
	}
	s := float64(p.Steps + 2)
	midpoint := int((s*p.Pivot1 + s*p.Pivot2) / 2)
	pivot1 := int(s * p.Pivot1)
	pivot2 := int(s * p.Pivot2)
	slope1 := p.Slope1 / (s / 40)
	slope2 := p.Slope2 / (s / 40)

	vals, err := twoStage(opTangentTwoStageSimple, p.Steps, midpoint, pivot1, pivot2,
		slope1, slope2, p.Start, p.Middle, p.End, p.Pad)
	if err != nil {
		return sigma.Sequence{}, err
	}
	return sigma.New(vals, opts...)
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/transform
//
// formula.go — element-wise evaluation of compiled formulas.

package transform

import (
	"strconv"

	"github.com/katalvlaran/sigmakit/expr"
	"github.com/katalvlaran/sigmakit/sigma"
)

// Inputs binds the formula variables. A, B and C are per-element; X, Y
// and Z are scalars; s is the element index within the window.
type Inputs struct {
	A, B, C sigma.Sequence
	X, Y, Z float64

	// Length is the output length when A, B and C are all empty.
	Length int

	// Start, Stop and Trim select the window [Start, end) of the inputs.
	// end is Stop+1 when Stop > 0 and the full length otherwise; Trim (<= 0)
	// is then added to end.
	Start, Stop, Trim int
}

// DefaultInputs sets the scalars to 1, as the formula node's defaults do.
func DefaultInputs() Inputs { return Inputs{X: 1, Y: 1, Z: 1} }

// Range is a min-max target for a formula's output.
type Range struct {
	Min, Max float64
}

// Term is one formula of a Formulas call. A non-nil Rescale maps the
// output's minimum to Rescale.Min and its maximum to Rescale.Max.
type Term struct {
	Program *expr.Program
	Rescale *Range
}

// Formula evaluates prog once per element. The output length is the
// shortest non-empty input among A, B and C, or Length when all are empty,
// narrowed by the window. The result inherits the precision of the first
// non-empty input.
//
// Errors:
//   - prog == nil, Length < 0 → sigma.ErrInvalidArgument.
//   - prog reads a, b or c but that input is empty → sigma.ErrInvalidArgument.
//   - a window outside the inputs → sigma.ErrInvalidArgument.
func Formula(prog *expr.Program, in Inputs) (sigma.Sequence, error) {
	out, err := Formulas(in, Term{Program: prog})
	if err != nil {
		return sigma.Sequence{}, err
	}
	return out[0], nil
}

// Formulas evaluates every term over the same inputs and window and
// returns one sequence per term, in order.
//
// Errors: as Formula, plus sigma.ErrDegenerateRange when a term with
// Rescale produces a constant output.
func Formulas(in Inputs, terms ...Term) ([]sigma.Sequence, error) {
	const op = "Formula"
	if len(terms) == 0 {
		return nil, sigma.Errorf(op, "terms", 0, ">= 1", sigma.ErrInvalidArgument)
	}
	for _, t := range terms {
		if t.Program == nil {
			return nil, sigma.Errorf(op, "program", "nil", "compiled formula", sigma.ErrInvalidArgument)
		}
	}
	if err := checkCount(op, "Length", in.Length); err != nil {
		return nil, err
	}

	bound := []struct {
		v   expr.Var
		seq sigma.Sequence
	}{{expr.VarA, in.A}, {expr.VarB, in.B}, {expr.VarC, in.C}}

	n := -1
	var proto sigma.Sequence
	for _, b := range bound {
		if b.seq.IsEmpty() {
			for _, t := range terms {
				if t.Program.Uses(b.v) {
					return nil, sigma.Errorf(op, b.v.String(), "empty", "non-empty sequence", sigma.ErrInvalidArgument)
				}
			}
			continue
		}
		if n < 0 {
			proto = b.seq
		}
		if n < 0 || b.seq.Len() < n {
			n = b.seq.Len()
		}
	}
	if n < 0 {
		n = in.Length
	}
	start, end, err := formulaWindow(op, in, n)
	if err != nil {
		return nil, err
	}

	a, bv, c := in.A.Values(), in.B.Values(), in.C.Values()
	outs := make([]sigma.Sequence, len(terms))
	for k, t := range terms {
		env := expr.Env{X: in.X, Y: in.Y, Z: in.Z}
		vals := make([]float64, end-start)
		for i := range vals {
			j := start + i
			if j < len(a) {
				env.A = a[j]
			}
			if j < len(bv) {
				env.B = bv[j]
			}
			if j < len(c) {
				env.C = c[j]
			}
			env.S = float64(i)
			vals[i] = t.Program.Eval(env)
		}
		if t.Rescale != nil {
			if vals, err = rescaleValues(op, vals, t.Rescale.Max, t.Rescale.Min); err != nil {
				return nil, err
			}
		}
		outs[k] = proto.Derive(vals)
	}
	return outs, nil
}

// formulaWindow resolves [start, end) over n elements.
func formulaWindow(op string, in Inputs, n int) (int, int, error) {
	if in.Start < 0 {
		return 0, 0, sigma.Errorf(op, "Start", in.Start, ">= 0", sigma.ErrInvalidArgument)
	}
	if in.Stop < 0 {
		return 0, 0, sigma.Errorf(op, "Stop", in.Stop, ">= 0", sigma.ErrInvalidArgument)
	}
	if in.Trim > 0 {
		return 0, 0, sigma.Errorf(op, "Trim", in.Trim, "<= 0", sigma.ErrInvalidArgument)
	}
	end := n
	if in.Stop > 0 {
		end = in.Stop + 1
	}
	end += in.Trim
	if end > n || end < in.Start {
		return 0, 0, sigma.Errorf(op, "window", [2]int{in.Start, end}, "inside [0, "+strconv.Itoa(n)+"]", sigma.ErrInvalidArgument)
	}
	return in.Start, end, nil
}

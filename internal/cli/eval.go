// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// eval.go — `sigmactl eval`.

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/expr"
	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Formulas          []string
	B                 string
	C                 string
	X, Y, Z           float64
	Length            int
	Start, Stop, Trim int
	Rescale           bool
	Min, Max          float64
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [a-values...]",
		Short: "Evaluate a formula element-wise",
		Long: `Evaluate --formula once per element.

Variables: a, b, c (per-element inputs), x, y, z (scalars, default 1) and
s (the element index). Operators: + - * / % ^ (or **), unary minus and
parentheses. Functions: sin cos tan asin acos atan sinh cosh tanh exp log
log2 log10 sqrt abs floor ceil round pow atan2 clamp min max.

The output is as long as the shortest of a, b and c, or --length when
none is given. --start, --stop and --trim narrow it to the elements
[start, stop] with trim (<= 0) more dropped from the end; s counts from 0
inside that window. --rescale maps each output onto [--min, --max].

--formula may be repeated; every formula sees the same inputs and each
result is printed on its own line.

Examples:
  sigmactl eval --formula "a * 0.5 ^ s" 8 8 8 8
  sigmactl eval --formula "x * (1 - s / 10)" --x 14.6 --length 10
  sigmactl eval --formula "(a + b) / 2" --b "1 2 3" 4 5 6
  sigmactl eval -e "a" -e "a ^ 2" --rescale --min 0 --max 1 --start 2 3 2 1 0.5 0.1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.Formulas, "formula", "e", nil, "expression to evaluate, repeatable (required)")
	_ = cmd.MarkFlagRequired("formula")
	f.StringVar(&opts.B, "b", "", "values bound to b")
	f.StringVar(&opts.C, "c", "", "values bound to c")
	f.Float64Var(&opts.X, "x", 1, "scalar x")
	f.Float64Var(&opts.Y, "y", 1, "scalar y")
	f.Float64Var(&opts.Z, "z", 1, "scalar z")
	f.IntVar(&opts.Length, "length", 0, "output length when a, b and c are empty")
	f.IntVar(&opts.Start, "start", 0, "first element of the window")
	f.IntVar(&opts.Stop, "stop", 0, "last element of the window, 0 for the end")
	f.IntVar(&opts.Trim, "trim", 0, "elements (<= 0) removed from the window's end")
	f.BoolVar(&opts.Rescale, "rescale", false, "min-max rescale each output onto [--min, --max]")
	f.Float64Var(&opts.Min, "min", schedule.DefaultValueRange.End, "rescale target minimum")
	f.Float64Var(&opts.Max, "max", schedule.DefaultValueRange.Start, "rescale target maximum")

	return cmd
}

// SequenceList is the payload of an eval with several formulas.
type SequenceList []SequenceResult

// String renders one sequence per line.
func (l SequenceList) String() string {
	lines := make([]string, len(l))
	for i, r := range l {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func runEval(opts *EvalOptions, cmd *cobra.Command, args []string) error {
	s := newSession(opts.RootOptions, cmd)

	terms := make([]transform.Term, len(opts.Formulas))
	usesA := false
	for i, src := range opts.Formulas {
		prog, err := expr.Compile(src)
		if err != nil {
			return s.out.Fail(ExitCommandError, err)
		}
		terms[i].Program = prog
		if opts.Rescale {
			terms[i].Rescale = &transform.Range{Min: opts.Min, Max: opts.Max}
		}
		usesA = usesA || prog.Uses(expr.VarA)
	}

	in := transform.Inputs{
		X: opts.X, Y: opts.Y, Z: opts.Z,
		Length: opts.Length,
		Start:  opts.Start, Stop: opts.Stop, Trim: opts.Trim,
	}
	var err error
	// a is read from stdin only when a formula needs it.
	if len(args) > 0 || (usesA && opts.Length == 0) {
		if in.A, err = s.readValues(cmd, args); err != nil {
			return err
		}
	}
	if in.B, err = s.optionalValues(opts.B); err != nil {
		return err
	}
	if in.C, err = s.optionalValues(opts.C); err != nil {
		return err
	}

	s.logger.Debug("evaluating formulas", "count", len(terms), "a", in.A.Len(), "b", in.B.Len(), "c", in.C.Len())
	outs, err := transform.Formulas(in, terms...)
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	results := make(SequenceList, len(outs))
	for i, out := range outs {
		if out.Precision() != s.precision {
			if out, err = out.WithPrecision(s.precision); err != nil {
				return s.out.Fail(ExitFailure, err)
			}
		}
		results[i] = newSequenceResult(out)
	}
	if len(results) == 1 {
		return s.out.Success(results[0])
	}
	return s.out.Success(results)
}

func (s *session) optionalValues(text string) (sigma.Sequence, error) {
	if text == "" {
		return sigma.Sequence{}, nil
	}
	return s.parseValues(text)
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// compare.go — `sigmactl compare`.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/dtw"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Reference string
	Window    int
	Penalty   float64
	Path      bool
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare [values...]",
		Short: "Measure the DTW distance between two schedules",
		Long: `Compare a schedule with --ref using Dynamic Time Warping, which aligns
sequences of different lengths before summing their differences.

The normalized distance divides by the combined length, so it can be
compared across resampling targets.

Examples:
  sigmactl compare --ref "14.6 7 3 1 0.03" 14.6 3 0.03
  sigmactl resample --mode spline --steps 40 14.6 7 3 1 0.03 | sigmactl compare --ref "14.6 7 3 1 0.03"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Reference, "ref", "", "reference schedule (required)")
	_ = cmd.MarkFlagRequired("ref")
	f.IntVar(&opts.Window, "window", dtw.NoWindow, "Sakoe-Chiba band, -1 for none")
	f.Float64Var(&opts.Penalty, "penalty", 0, "cost of each non-diagonal step")
	f.BoolVar(&opts.Path, "path", false, "include the alignment path")

	return cmd
}

// CompareResult is the payload of the compare command.
type CompareResult struct {
	Distance   float64     `json:"distance"`
	Normalized float64     `json:"normalized"`
	Path       []dtw.Coord `json:"path,omitempty"`
}

func (r CompareResult) String() string {
	s := fmt.Sprintf("distance=%g normalized=%g", r.Distance, r.Normalized)
	for _, c := range r.Path {
		s += fmt.Sprintf("\n%d %d", c.I, c.J)
	}
	return s
}

func runCompare(opts *CompareOptions, cmd *cobra.Command, args []string) error {
	s := newSession(opts.RootOptions, cmd)

	ref, err := s.parseValues(opts.Reference)
	if err != nil {
		return err
	}
	seq, err := s.readValues(cmd, args)
	if err != nil {
		return err
	}

	dopts := dtw.DefaultOptions()
	dopts.Window = opts.Window
	dopts.SlopePenalty = opts.Penalty
	dopts.ReturnPath = opts.Path
	if !opts.Path && ref.Len() > 1 && seq.Len() > 1 {
		dopts.MemoryMode = dtw.TwoRows
	}

	s.logger.Debug("comparing schedules", "ref", ref.Len(), "other", seq.Len(), "mode", dopts.MemoryMode)
	res, err := dtw.Distance(ref, seq, dopts)
	if err != nil {
		return s.out.Fail(ExitFailure, err)
	}
	return s.out.Success(CompareResult{Distance: res.Distance, Normalized: res.Normalized, Path: res.Path})
}

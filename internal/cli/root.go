// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// root.go — root command, global flags and per-command plumbing.

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigmakit/sigma"
)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json"
	Precision string // "16" | "32" | "64"

	// NewTraceID stamps each invocation; tests replace it for stable output.
	NewTraceID func() string
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand builds the sigmactl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{NewTraceID: newTraceID})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sigmactl",
		Short: "Resample, synthesize and compose noise schedules",
		Long: `sigmactl works with sigma schedules: monotone sequences of noise levels
used by diffusion samplers.

It resamples schedules to new lengths, synthesizes closed-form and named
schedules, composes padded schedules from YAML requests, evaluates formulas
element-wise, compares schedules of different lengths and plots them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := sigma.ParsePrecision(opts.Precision); err != nil {
				return WrapExitError(ExitCommandError, "invalid --precision", err)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Precision, "precision", "64", "value precision (16|32|64)")

	cmd.AddCommand(NewResampleCommand(opts))
	cmd.AddCommand(NewSynthesizeCommand(opts))
	cmd.AddCommand(NewComposeCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewPlotCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func newTraceID() string { return uuid.Must(uuid.NewV7()).String() }

// session bundles what a single command run needs.
type session struct {
	out       *OutputFormatter
	logger    *slog.Logger
	precision sigma.Precision
}

func newSession(opts *RootOptions, cmd *cobra.Command) *session {
	traceID := ""
	if opts.NewTraceID != nil {
		traceID = opts.NewTraceID()
	}
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if traceID != "" {
		logger = logger.With("trace_id", traceID)
	}
	// Validated in PersistentPreRunE; commands run directly in tests fall
	// back to the default.
	p, err := sigma.ParsePrecision(opts.Precision)
	if err != nil {
		p = sigma.DefaultPrecision
	}
	return &session{
		out: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
			TraceID:   traceID,
		},
		logger:    logger,
		precision: p,
	}
}

// readValues parses positional arguments, or stdin when there are none.
func (s *session) readValues(cmd *cobra.Command, args []string) (sigma.Sequence, error) {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return sigma.Sequence{}, WrapExitError(ExitCommandError, "reading stdin", err)
		}
		text = string(raw)
	}
	return s.parseValues(text)
}

func (s *session) parseValues(text string) (sigma.Sequence, error) {
	seq, err := sigma.Parse(text, sigma.WithPrecision(s.precision), sigma.WithFiniteCheck())
	if err != nil {
		return sigma.Sequence{}, s.out.Fail(ExitCommandError, err)
	}
	return seq, nil
}

// SequenceResult is the payload of every command that yields a schedule.
type SequenceResult struct {
	Sigmas    []float64 `json:"sigmas"`
	Length    int       `json:"length"`
	Precision int       `json:"precision"`
	Target    string    `json:"execution_target"`
}

func newSequenceResult(s sigma.Sequence) SequenceResult {
	return SequenceResult{
		Sigmas:    s.Values(),
		Length:    s.Len(),
		Precision: int(s.Precision()),
		Target:    string(s.Target()),
	}
}

// String renders the sigmas on one line, space separated.
func (r SequenceResult) String() string {
	parts := make([]string, len(r.Sigmas))
	for i, v := range r.Sigmas {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

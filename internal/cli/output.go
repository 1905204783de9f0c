// SPDX-License-Identifier: MIT
// Package: sigmakit/internal/cli
//
// output.go — exit codes, response envelope and the text/JSON formatter.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sigmakit/compose"
	"github.com/katalvlaran/sigmakit/expr"
	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // the computation rejected its input
	ExitCommandError = 2 // bad flags, unreadable files, unwritable output
)

// Error codes carried in the JSON envelope.
const (
	ErrCodeGeneric          = "E001" // unclassified failure
	ErrCodeInvalidArgument  = "E002" // sigma.ErrInvalidArgument
	ErrCodeInsufficientData = "E003" // sigma.ErrInsufficientData
	ErrCodeDomain           = "E004" // sigma.ErrDomain
	ErrCodeDegenerateRange  = "E005" // sigma.ErrDegenerateRange
	ErrCodeUnknownScheduler = "E006" // schedule.ErrUnknownScheduler
	ErrCodeNoModel          = "E007" // schedule.ErrNoModel
	ErrCodeInvalidRequest   = "E101" // compose request rejected by schema or decoder
	ErrCodeInvalidRange     = "E102" // compose.ErrInvalidRange, compose.ErrAmbiguousRange
	ErrCodeFormula          = "E201" // expr syntax or unknown identifier
	ErrCodeIO               = "E301" // file read or write failure
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // human-readable summary
	Err     error  // underlying error, optional
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError returns an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err; plain errors map to
// ExitFailure and nil to ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errorCode classifies err by the sentinel it wraps. Specific sentinels are
// tested before the generic taxonomy they themselves wrap.
func errorCode(err error) string {
	switch {
	case errors.Is(err, schedule.ErrUnknownScheduler):
		return ErrCodeUnknownScheduler
	case errors.Is(err, schedule.ErrNoModel):
		return ErrCodeNoModel
	case errors.Is(err, compose.ErrInvalidRequest):
		return ErrCodeInvalidRequest
	case errors.Is(err, compose.ErrInvalidRange), errors.Is(err, compose.ErrAmbiguousRange):
		return ErrCodeInvalidRange
	case errors.Is(err, expr.ErrSyntax), errors.Is(err, expr.ErrUnknownIdent):
		return ErrCodeFormula
	case errors.Is(err, sigma.ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, sigma.ErrInsufficientData):
		return ErrCodeInsufficientData
	case errors.Is(err, sigma.ErrDomain):
		return ErrCodeDomain
	case errors.Is(err, sigma.ErrDegenerateRange):
		return ErrCodeDegenerateRange
	}
	return ErrCodeGeneric
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status  string    `json:"status"`             // "ok" or "error"
	Data    any       `json:"data,omitempty"`     // success payload
	Error   *CLIError `json:"error,omitempty"`    // failure details
	TraceID string    `json:"trace_id,omitempty"` // correlates with stderr logs
}

// CLIError is the failure half of CLIResponse.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// OutputFormatter writes results as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics; keeps JSON on Writer parseable
	Verbose   bool
	TraceID   string
}

// Success writes data. Text mode prints data with fmt.Fprintln, so payloads
// implement fmt.Stringer to control their text form.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: data, TraceID: f.TraceID})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes a failure report.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status:  "error",
			Error:   &CLIError{Code: code, Message: message, Details: details},
			TraceID: f.TraceID,
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and returns it as an ExitError with exitCode.
func (f *OutputFormatter) Fail(exitCode int, err error) error {
	_ = f.Error(errorCode(err), err.Error(), nil)
	return WrapExitError(exitCode, "command failed", err)
}

// VerboseLog prints to ErrWriter (or Writer) when Verbose is set.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

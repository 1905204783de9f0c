// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/compose"
	"github.com/katalvlaran/sigmakit/expr"
	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf, TraceID: testTraceID}

	require.NoError(t, f.Success(map[string]int{"n": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, testTraceID, resp.TraceID)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeDomain, "log of zero", map[string]float64{"value": 0}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeDomain, resp.Error.Code)
	assert.Equal(t, "log of zero", resp.Error.Message)
	assert.NotNil(t, resp.Error.Details)
	assert.Empty(t, resp.TraceID)
}

func TestOutputFormatter_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf, Verbose: true}

	require.NoError(t, f.Success(SequenceResult{Sigmas: []float64{1, 0}}))
	require.NoError(t, f.Error(ErrCodeGeneric, "boom", "context"))
	assert.Equal(t, "1 0\nError [E001]: boom\nDetails: context\n", buf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: diag}

	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, diag.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", diag.String())
	assert.Empty(t, out.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	cause := sigma.Errorf("Resample", "targetLength", -1, ">= 0", sigma.ErrInvalidArgument)
	err := f.Fail(ExitFailure, cause)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorIs(t, err, sigma.ErrInvalidArgument)
	assert.Contains(t, buf.String(), "Error [E002]")
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad flag")
	assert.Equal(t, "bad flag", plain.Error())
	assert.Nil(t, plain.Unwrap())

	wrapped := WrapExitError(ExitFailure, "failed", errors.New("cause"))
	assert.Equal(t, "failed: cause", wrapped.Error())

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("outer: %w", plain)))
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New("other"), ErrCodeGeneric},
		{sigma.ErrInvalidArgument, ErrCodeInvalidArgument},
		{sigma.ErrInsufficientData, ErrCodeInsufficientData},
		{sigma.ErrDomain, ErrCodeDomain},
		{sigma.ErrDegenerateRange, ErrCodeDegenerateRange},
		{schedule.ErrUnknownScheduler, ErrCodeUnknownScheduler},
		{schedule.ErrNoModel, ErrCodeNoModel},
		{compose.ErrInvalidRequest, ErrCodeInvalidRequest},
		{compose.ErrInvalidRange, ErrCodeInvalidRange},
		{compose.ErrAmbiguousRange, ErrCodeInvalidRange},
		{expr.ErrSyntax, ErrCodeFormula},
		{expr.ErrUnknownIdent, ErrCodeFormula},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorCode(fmt.Errorf("wrapped: %w", tt.err)), tt.err.Error())
	}
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/sigma
//
// errors.go — sentinel errors and the contextual *Error wrapper.
//
// Error policy:
//   • Only sentinel variables are used for branching: errors.Is(err, ErrX).
//   • Context (operation, parameter, actual vs expected) travels in *Error,
//     which unwraps to the sentinel.
//   • Every failure is detected before a result is built; callers never see a
//     half-written sequence.

package sigma

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an out-of-range or malformed parameter,
	// e.g. a negative target length or an unknown precision.
	ErrInvalidArgument = errors.New("sigma: invalid argument")

	// ErrInsufficientData indicates the source sequence is too short for the
	// requested fit (spline, polynomial, power-law).
	ErrInsufficientData = errors.New("sigma: insufficient data")

	// ErrDomain indicates a log/power operation saw non-positive samples.
	ErrDomain = errors.New("sigma: value outside function domain")

	// ErrDegenerateRange indicates min==max during a min-max rescale.
	ErrDegenerateRange = errors.New("sigma: degenerate value range")
)

// Error attaches operation context to a sentinel.
type Error struct {
	Op    string // operation, e.g. "Resample"
	Param string // offending parameter, e.g. "targetLength"
	Got   string // actual value, formatted
	Want  string // expected constraint, e.g. ">= 0"
	Err   error  // sentinel
}

// Error formats as "<Op>: <Param>=<Got> (want <Want>): <sentinel>".
func (e *Error) Error() string {
	switch {
	case e.Param == "":
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Want == "":
		return fmt.Sprintf("%s: %s=%s: %v", e.Op, e.Param, e.Got, e.Err)
	default:
		return fmt.Sprintf("%s: %s=%s (want %s): %v", e.Op, e.Param, e.Got, e.Want, e.Err)
	}
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error. got is formatted with %v.
func Errorf(op, param string, got any, want string, sentinel error) error {
	return &Error{Op: op, Param: param, Got: fmt.Sprint(got), Want: want, Err: sentinel}
}

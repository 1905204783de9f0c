// SPDX-License-Identifier: MIT
// Package: sigmakit/expr
//
// errors.go — sentinels and the positioned *Error.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed input or a function called with the
	// wrong number of arguments.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdent indicates a name that is neither a variable, a
	// constant nor an allowed function.
	ErrUnknownIdent = errors.New("expr: unknown identifier")
)

// Error reports a compile failure at a byte offset of the source.
type Error struct {
	Pos int    // 0-based byte offset
	Msg string // human-readable detail
	Err error  // ErrSyntax or ErrUnknownIdent
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Pos, e.Msg)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }

func syntaxErrorf(pos int, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...), Err: ErrSyntax}
}

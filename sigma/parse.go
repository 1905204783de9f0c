// SPDX-License-Identifier: MIT
// Package: sigmakit/sigma
//
// parse.go — literal text input ("1.0, 0.5 0.25\n0").

package sigma

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse reads whitespace- or comma-separated decimal numbers.
// Empty or blank text yields an empty sequence.
func Parse(text string, opts ...Option) (Sequence, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	vals := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Sequence{}, Errorf("Parse", "field["+strconv.Itoa(i)+"]", strconv.Quote(f), "decimal number", ErrInvalidArgument)
		}
		vals = append(vals, v)
	}
	return New(vals, opts...)
}

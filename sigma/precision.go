// SPDX-License-Identifier: MIT
// Package: sigmakit/sigma
//
// precision.go — numeric precision carried by every Sequence.
//
// Precision is an explicit per-value attribute. Converting a sequence to a
// different precision is a call on that sequence; nothing here sets a
// process-wide default.

package sigma

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

// Precision is the storage width of sequence values, in bits.
type Precision int

const (
	// Float16 rounds values to IEEE-754 half precision.
	Float16 Precision = 16
	// Float32 rounds values to single precision.
	Float32 Precision = 32
	// Float64 keeps full double precision.
	Float64 Precision = 64
)

// DefaultPrecision is used when no WithPrecision option is given.
const DefaultPrecision = Float64

// Valid reports whether p is one of 16, 32, 64.
func (p Precision) Valid() bool {
	return p == Float16 || p == Float32 || p == Float64
}

// String returns "float16", "float32" or "float64".
func (p Precision) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Precision(%d)", int(p))
	}
	return "float" + strconv.Itoa(int(p))
}

// Quantize rounds v to the precision. Non-finite values pass through
// unchanged in width-preserving form (Inf stays Inf, NaN stays NaN).
func (p Precision) Quantize(v float64) float64 {
	switch p {
	case Float16:
		return float64(float16.Fromfloat32(toOddFloat32(v)).Float32())
	case Float32:
		return float64(float32(v))
	default:
		return v
	}
}

// toOddFloat32 narrows v with round-to-odd: truncate toward zero and set the
// last mantissa bit when inexact. The following float32 → float16 rounding
// then equals a single correctly rounded float64 → float16 step.
func toOddFloat32(v float64) float32 {
	f := float32(v)
	r := float64(f)
	if r == v || math.IsNaN(v) || math.IsInf(r, 0) {
		return f
	}
	b := math.Float32bits(f)
	if math.Abs(r) > math.Abs(v) {
		b--
	}
	return math.Float32frombits(b | 1)
}

// ParsePrecision accepts "16", "32", "64", "float16", "fp32", "f64", ...
func ParsePrecision(s string) (Precision, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"float", "fp", "f"} {
		if strings.HasPrefix(t, prefix) {
			t = strings.TrimPrefix(t, prefix)
			break
		}
	}
	n, err := strconv.Atoi(t)
	if err != nil || !Precision(n).Valid() {
		return 0, Errorf("ParsePrecision", "precision", s, "one of 16, 32, 64", ErrInvalidArgument)
	}
	return Precision(n), nil
}

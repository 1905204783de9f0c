// SPDX-License-Identifier: MIT
// Package: sigmakit/sigma
//
// sequence.go — the Sequence value type.
//
// Purpose:
//   - Hold an ordered list of sigmas with its precision and execution target.
//   - Guarantee value semantics: constructors copy, accessors copy, Derive copies.
//
// Complexity quicksheet:
//   - New/Derive/Values/WithPrecision: O(n); Len/At/First/Last: O(1).

package sigma

import (
	"math"
	"strconv"
	"strings"
)

// Sequence is an immutable-by-convention sigma sequence.
// The zero value is an empty float64 sequence on DefaultTarget.
type Sequence struct {
	values    []float64
	precision Precision
	target    Target
}

// New copies values into a Sequence, rounding each to the configured
// precision. With WithFiniteCheck, NaN/±Inf are rejected.
func New(values []float64, opts ...Option) (Sequence, error) {
	o := gatherOptions(opts...)
	if o.finiteCheck {
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Sequence{}, Errorf("New", "values["+strconv.Itoa(i)+"]", v, "finite", ErrInvalidArgument)
			}
		}
	}

	return build(values, o.precision, o.target), nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(values []float64, opts ...Option) Sequence {
	s, err := New(values, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Filled returns n copies of v.
func Filled(n int, v float64, opts ...Option) (Sequence, error) {
	if n < 0 {
		return Sequence{}, Errorf("Filled", "n", n, ">= 0", ErrInvalidArgument)
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return New(vals, opts...)
}

// Linspace returns n evenly spaced values from start to end inclusive.
// n==1 yields [start].
func Linspace(start, end float64, n int, opts ...Option) (Sequence, error) {
	if n < 0 {
		return Sequence{}, Errorf("Linspace", "n", n, ">= 0", ErrInvalidArgument)
	}
	return New(LinspaceValues(start, end, n), opts...)
}

// LinspaceValues is the raw-slice form of Linspace. The last element is
// exactly end when n > 1.
func LinspaceValues(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

func build(values []float64, p Precision, t Target) Sequence {
	vals := make([]float64, len(values))
	for i, v := range values {
		vals[i] = p.Quantize(v)
	}
	return Sequence{values: vals, precision: p, target: t}
}

// Derive builds a new Sequence from values, inheriting s's precision and
// target. values is copied and quantized.
func (s Sequence) Derive(values []float64) Sequence {
	return build(values, s.Precision(), s.Target())
}

// Len returns the number of sigmas.
func (s Sequence) Len() int { return len(s.values) }

// IsEmpty reports Len()==0.
func (s Sequence) IsEmpty() bool { return len(s.values) == 0 }

// Precision returns the storage precision.
func (s Sequence) Precision() Precision {
	if s.precision == 0 {
		return DefaultPrecision
	}
	return s.precision
}

// Target returns the opaque execution target.
func (s Sequence) Target() Target {
	if s.target == "" {
		return DefaultTarget
	}
	return s.target
}

// At returns the i-th sigma.
func (s Sequence) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, Errorf("At", "i", i, "in [0,"+strconv.Itoa(len(s.values))+")", ErrInvalidArgument)
	}
	return s.values[i], nil
}

// First returns s[0], or 0 for an empty sequence.
func (s Sequence) First() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[0]
}

// Last returns s[n-1], or 0 for an empty sequence.
func (s Sequence) Last() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Values returns a copy of the underlying values.
func (s Sequence) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// WithPrecision returns a copy converted to p.
func (s Sequence) WithPrecision(p Precision) (Sequence, error) {
	if !p.Valid() {
		return Sequence{}, Errorf("WithPrecision", "precision", int(p), "one of 16, 32, 64", ErrInvalidArgument)
	}
	return build(s.values, p, s.Target()), nil
}

// WithTarget returns a copy labelled with target t.
func (s Sequence) WithTarget(t Target) Sequence {
	return build(s.values, s.Precision(), t)
}

// Min returns the smallest value, or NaN for an empty sequence.
func (s Sequence) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, or NaN for an empty sequence.
func (s Sequence) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	m := s.values[0]
	for _, v := range s.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// IsNonIncreasing reports whether s[i+1] <= s[i] for all i.
func (s Sequence) IsNonIncreasing() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i] > s.values[i-1] {
			return false
		}
	}
	return true
}

// Equal reports equal lengths and |s[i]-o[i]| <= tol everywhere.
// Precision and target are not compared.
func (s Sequence) Equal(o Sequence, tol float64) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if math.Abs(s.values[i]-o.values[i]) > tol {
			return false
		}
	}
	return true
}

// String renders "[a, b, c]" with the shortest round-trip formatting.
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

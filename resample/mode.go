// SPDX-License-Identifier: MIT
// Package: sigmakit/resample
//
// mode.go — interpolation policy enumeration and its wire names.

package resample

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/sigmakit/sigma"
)

// Mode selects the interpolation policy.
type Mode int

const (
	// Linear is index-domain linear interpolation with aligned corners.
	Linear Mode = iota
	// Nearest picks the closest source sample, ties toward the lower index.
	Nearest
	// Polynomial is a least-squares polynomial fit over [0,1].
	Polynomial
	// Spline is a clamped cubic spline with f'(0) = f'(1) = 0.
	Spline
	// Exponential resamples linearly in log space.
	Exponential
	// Power fits y = a·x^b over 1-indexed positions.
	Power
	// Model fits a small trained regressor.
	Model
)

var modeNames = [...]string{
	Linear:      "linear",
	Nearest:     "nearest",
	Polynomial:  "polynomial",
	Spline:      "spline",
	Exponential: "exponential",
	Power:       "power",
	Model:       "model",
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Linear, Nearest, Polynomial, Spline, Exponential, Power, Model}
}

// String returns the wire name, or "Mode(n)" for unknown values.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m >= Linear && m <= Model }

// minSource is the shortest source the mode can fit when a non-empty result
// is requested.
func (m Mode) minSource() int {
	switch m {
	case Polynomial, Spline, Power:
		return 2
	default:
		return 1
	}
}

// ParseMode maps a wire name (case-insensitive) to a Mode. "constrained" is
// accepted as an alias of "spline".
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "constrained" {
		return Spline, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, sigma.Errorf("ParseMode", "mode", s, strings.Join(modeNames[:], "|"), sigma.ErrInvalidArgument)
}

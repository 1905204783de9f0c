// SPDX-License-Identifier: MIT
// Package: sigmakit/dtw
//
// types.go — options, memory modes and results.

package dtw

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/sigma"
)

// MemoryMode controls how the DP matrix is stored.
type MemoryMode int

const (
	// FullMatrix keeps all (n+1)×(m+1) cells and supports ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps the current and previous rows only.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures Distance.
type Options struct {
	Window       int     // max |i−j|; NoWindow for none
	SlopePenalty float64 // added to every insertion or deletion, >= 0
	ReturnPath   bool    // requires FullMatrix
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unbanded, unpenalized, full-matrix setup
// without path recovery.
func DefaultOptions() Options {
	return Options{Window: NoWindow, MemoryMode: FullMatrix}
}

// Coord is one aligned pair of indices, I into a and J into b.
type Coord struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Result is the outcome of Distance.
type Result struct {
	Distance float64 // summed absolute difference along the best alignment
	// Normalized is Distance/(n+m), comparable across lengths.
	Normalized float64
	Path       []Coord // nil unless ReturnPath
}

var (
	// ErrEmptyInput indicates an empty sequence.
	ErrEmptyInput = fmt.Errorf("dtw: empty input: %w", sigma.ErrInsufficientData)
	// ErrBadInput indicates an invalid window, penalty or memory mode, or a
	// window too narrow to align sequences of the given lengths.
	ErrBadInput = fmt.Errorf("dtw: bad input: %w", sigma.ErrInvalidArgument)
	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix.
	ErrPathNeedsMatrix = fmt.Errorf("dtw: path recovery requires FullMatrix: %w", sigma.ErrInvalidArgument)
)

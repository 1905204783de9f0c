// SPDX-License-Identifier: MIT
// Package: sigmakit/dtw
//
// dtw.go — Dynamic Time Warping distance between schedules.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +Inf):
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j-1], D[i-1][j] + p, D[i][j-1] + p)
//
// with cells outside the band fixed at +Inf.

package dtw

import (
	"math"

	"github.com/katalvlaran/sigmakit/sigma"
)

const opDistance = "dtw.Distance"

// Distance aligns a and b and returns the DTW distance.
//
// Errors:
//   - either input empty → ErrEmptyInput.
//   - Window < NoWindow, negative or NaN SlopePenalty, unknown MemoryMode,
//     or Window < |len(a) − len(b)| → ErrBadInput.
//   - ReturnPath with TwoRows → ErrPathNeedsMatrix.
func Distance(a, b sigma.Sequence, opts Options) (Result, error) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return Result{}, sigma.Errorf(opDistance, "len", [2]int{n, m}, "both > 0", ErrEmptyInput)
	}
	if opts.Window < NoWindow {
		return Result{}, sigma.Errorf(opDistance, "Window", opts.Window, ">= -1", ErrBadInput)
	}
	if opts.Window != NoWindow && opts.Window < abs(n-m) {
		return Result{}, sigma.Errorf(opDistance, "Window", opts.Window, ">= |n-m|", ErrBadInput)
	}
	if !(opts.SlopePenalty >= 0) {
		return Result{}, sigma.Errorf(opDistance, "SlopePenalty", opts.SlopePenalty, ">= 0", ErrBadInput)
	}
	switch opts.MemoryMode {
	case FullMatrix:
	case TwoRows:
		if opts.ReturnPath {
			return Result{}, sigma.Errorf(opDistance, "MemoryMode", "TwoRows", "FullMatrix", ErrPathNeedsMatrix)
		}
	default:
		return Result{}, sigma.Errorf(opDistance, "MemoryMode", int(opts.MemoryMode), "FullMatrix|TwoRows", ErrBadInput)
	}

	av, bv := a.Values(), b.Values()
	var res Result
	if opts.MemoryMode == FullMatrix {
		dp := fillMatrix(av, bv, opts)
		res.Distance = dp[n][m]
		if opts.ReturnPath {
			res.Path = backtrack(dp, opts.SlopePenalty)
		}
	} else {
		res.Distance = fillRows(av, bv, opts)
	}
	res.Normalized = res.Distance / float64(n+m)
	return res, nil
}

func inBand(i, j, window int) bool {
	return window == NoWindow || abs(i-j) <= window
}

func fillMatrix(a, b []float64, opts Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0
	p := opts.SlopePenalty
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, opts.Window) {
				continue
			}
			best := math.Min(dp[i-1][j-1], math.Min(dp[i-1][j]+p, dp[i][j-1]+p))
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	return dp
}

// fillRows runs the recurrence over the shorter sequence's axis.
func fillRows(a, b []float64, opts Options) float64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev, curr := make([]float64, m+1), make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	p := opts.SlopePenalty
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, opts.Window) {
				curr[j] = inf
				continue
			}
			best := math.Min(prev[j-1], math.Min(prev[j]+p, curr[j-1]+p))
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// backtrack walks from (n, m) to (1, 1) through the cheapest predecessor,
// preferring the diagonal on ties, and returns 0-based pairs in order.
func backtrack(dp [][]float64, p float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+p, dp[i][j-1]+p
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

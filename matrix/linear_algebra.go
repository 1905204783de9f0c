// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the fitting code:
// products, Householder QR, least squares and a tridiagonal solver.
//
// Notes:
//   - Inputs are never mutated; every kernel works on a private copy.
//   - Loop orders are fixed (i→k→j for products, k→{i,j} for reflectors).

package matrix

import (
	"fmt"
	"math"
)

// Mul performs C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ.
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}
	return res, nil
}

// MatVec computes y = A·x.
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), a.c, ErrDimensionMismatch))
	}
	y := make([]float64, a.r)
	var sum float64
	for i := 0; i < a.r; i++ {
		sum = 0
		for j := 0; j < a.c; j++ {
			sum += a.data[i*a.c+j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}

// householder builds the reflector for column k of r (rows k..m-1) into v and
// returns tau = 2/(vᵀv). tau == 0 means the column is already zero below k.
func householder(r *Dense, k int, v []float64) float64 {
	var norm float64
	for i := k; i < r.r; i++ {
		x := r.data[i*r.c+k]
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return 0
	}
	alpha := -math.Copysign(norm, r.data[k*r.c+k])
	for i := 0; i < k; i++ {
		v[i] = 0
	}
	for i := k; i < r.r; i++ {
		v[i] = r.data[i*r.c+k]
	}
	v[k] -= alpha

	var beta float64
	for i := k; i < r.r; i++ {
		beta += v[i] * v[i]
	}
	if beta == 0 {
		return 0
	}
	return 2.0 / beta
}

// reflectColumns applies H = I − tau·v·vᵀ from the left to columns [from, c) of r.
func reflectColumns(r *Dense, v []float64, tau float64, k, from int) {
	var sum float64
	for j := from; j < r.c; j++ {
		sum = 0
		for i := k; i < r.r; i++ {
			sum += v[i] * r.data[i*r.c+j]
		}
		if sum == 0 {
			continue
		}
		sum *= tau
		for i := k; i < r.r; i++ {
			r.data[i*r.c+j] -= sum * v[i]
		}
	}
}

// QR computes a Householder factorization A = Q·R of a tall matrix
// (rows >= cols). Q is rows×rows orthogonal, R is rows×cols upper triangular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wide input).
//
// Complexity:
//   - Time O(m²·n), Space O(m² + m·n).
func QR(a *Dense) (q, r *Dense, err error) {
	if a == nil {
		return nil, nil, matrixErrorf(opQR, ErrNilMatrix)
	}
	if a.r < a.c {
		return nil, nil, matrixErrorf(opQR, ErrDimensionMismatch)
	}
	m, n := a.r, a.c
	r = a.Clone()
	q, err = NewDense(m, m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < m; i++ {
		q.data[i*m+i] = 1
	}

	v := make([]float64, m)
	steps := n
	if m-1 < steps {
		steps = m - 1
	}
	var sum, tau float64
	for k := 0; k < steps; k++ {
		tau = householder(r, k, v)
		if tau == 0 {
			continue
		}
		reflectColumns(r, v, tau, k, k)
		// Q ← Q·H, touching columns k..m-1 of every row.
		for i := 0; i < m; i++ {
			sum = 0
			for l := k; l < m; l++ {
				sum += q.data[i*m+l] * v[l]
			}
			if sum == 0 {
				continue
			}
			sum *= tau
			for l := k; l < m; l++ {
				q.data[i*m+l] -= sum * v[l]
			}
		}
		// Clean exact zeros below the diagonal.
		for i := k + 1; i < m; i++ {
			r.data[i*n+k] = 0
		}
	}

	return q, r, nil
}

// LeastSquares solves min‖A·x − b‖₂ for a tall A (rows >= cols).
//
// Implementation:
//   - Stage 1: scale each column of A to unit norm (conditioning, as numpy.polyfit does).
//   - Stage 2: apply Householder reflectors to [A | b] in place of an explicit Q.
//   - Stage 3: back-substitute on the leading cols×cols block of R. Pivots with
//     |R[k,k]| <= rcond·max|R[j,j]| are treated as zero (coefficient 0) and
//     reduce the reported rank instead of failing.
//   - Stage 4: undo the column scaling.
//
// Inputs:
//   - rcond: relative pivot cutoff; <= 0 selects max(rows,cols)·machine-epsilon.
//
// Returns:
//   - x: solution of length cols.
//   - rank: effective rank (== cols for a well-posed fit).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wide A or len(b) != rows),
//     ErrNaNInf (non-finite b), ErrSingular (rank 0).
func LeastSquares(a *Dense, b []float64, rcond float64) (x []float64, rank int, err error) {
	if a == nil {
		return nil, 0, matrixErrorf(opLeastSquares, ErrNilMatrix)
	}
	if a.r < a.c || len(b) != a.r {
		return nil, 0, matrixErrorf(opLeastSquares, ErrDimensionMismatch)
	}
	for _, bv := range b {
		if math.IsNaN(bv) || math.IsInf(bv, 0) {
			return nil, 0, matrixErrorf(opLeastSquares, ErrNaNInf)
		}
	}
	m, n := a.r, a.c
	if rcond <= 0 {
		rcond = float64(max(m, n)) * epsilon
	}

	// Stage 1: column scaling.
	r := a.Clone()
	scale := make([]float64, n)
	for j := 0; j < n; j++ {
		var s float64
		for i := 0; i < m; i++ {
			s += r.data[i*n+j] * r.data[i*n+j]
		}
		s = math.Sqrt(s)
		if s == 0 {
			s = 1
		}
		scale[j] = s
		for i := 0; i < m; i++ {
			r.data[i*n+j] /= s
		}
	}
	y := make([]float64, m)
	copy(y, b)

	// Stage 2: reflect A and b together.
	v := make([]float64, m)
	var tau, sum float64
	for k := 0; k < n && k < m-1; k++ {
		tau = householder(r, k, v)
		if tau == 0 {
			continue
		}
		reflectColumns(r, v, tau, k, k)
		sum = 0
		for i := k; i < m; i++ {
			sum += v[i] * y[i]
		}
		sum *= tau
		for i := k; i < m; i++ {
			y[i] -= sum * v[i]
		}
	}

	// Stage 3: back substitution with a rank cutoff.
	var maxDiag float64
	for k := 0; k < n; k++ {
		maxDiag = math.Max(maxDiag, math.Abs(r.data[k*n+k]))
	}
	if maxDiag == 0 {
		return nil, 0, matrixErrorf(opLeastSquares, ErrSingular)
	}
	cutoff := rcond * maxDiag
	x = make([]float64, n)
	for k := n - 1; k >= 0; k-- {
		piv := r.data[k*n+k]
		if math.Abs(piv) <= cutoff {
			x[k] = 0
			continue
		}
		rank++
		sum = y[k]
		for j := k + 1; j < n; j++ {
			sum -= r.data[k*n+j] * x[j]
		}
		x[k] = sum / piv
	}

	// Stage 4: unscale.
	for j := 0; j < n; j++ {
		x[j] /= scale[j]
	}

	return x, rank, nil
}

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 2.220446049250313e-16

// Vandermonde returns the len(x)×(degree+1) design matrix with columns
// x^0, x^1, …, x^degree.
func Vandermonde(x []float64, degree int) (*Dense, error) {
	if degree < 0 {
		return nil, matrixErrorf(opVandermonde, ErrInvalidDimensions)
	}
	v, err := NewDense(len(x), degree+1)
	if err != nil {
		return nil, matrixErrorf(opVandermonde, err)
	}
	cols := degree + 1
	for i, xi := range x {
		p := 1.0
		for j := 0; j < cols; j++ {
			v.data[i*cols+j] = p
			p *= xi
		}
	}
	return v, nil
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigmakit/matrix"
)

const tol = 1e-9

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

func TestDense_Basics(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0.0, mustAt(t, m, 1, 2))

	require.NoError(t, m.Set(1, 2, 7))
	assert.Equal(t, 7.0, mustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, -1))
	assert.Equal(t, 7.0, mustAt(t, m, 1, 2), "Clone must not alias")
}

func TestNewFromRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{1, math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMulTransposeMatVec(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 6.0, mustAt(t, at, 2, 1))

	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	assert.Equal(t, 14.0, mustAt(t, p, 0, 0))
	assert.Equal(t, 32.0, mustAt(t, p, 0, 1))
	assert.Equal(t, 77.0, mustAt(t, p, 1, 1))

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestQR_Reconstructs checks A = Q·R, QᵀQ = I and that R is upper triangular.
func TestQR_Reconstructs(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{
		{12, -51, 4},
		{6, 167, -68},
		{-4, 24, -41},
		{1, 2, 3},
	})
	q, r, err := matrix.QR(a)
	require.NoError(t, err)

	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.InDelta(t, mustAt(t, a, i, j), mustAt(t, qr, i, j), 1e-9, "A[%d,%d]", i, j)
			if i > j {
				assert.Equal(t, 0.0, mustAt(t, r, i, j), "R[%d,%d] below diagonal", i, j)
			}
		}
	}

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	for i := 0; i < q.Rows(); i++ {
		for j := 0; j < q.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, mustAt(t, qtq, i, j), 1e-12)
		}
	}

	_, _, err = matrix.QR(mustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLeastSquares_ExactLine(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 0.25, 0.5, 0.75, 1}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 - 2*x
	}
	v, err := matrix.Vandermonde(xs, 1)
	require.NoError(t, err)

	coef, rank, err := matrix.LeastSquares(v, ys, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.InDelta(t, 3.0, coef[0], tol)
	assert.InDelta(t, -2.0, coef[1], tol)
}

func TestLeastSquares_Overdetermined(t *testing.T) {
	t.Parallel()

	// Mean of {1, 2, 6} minimizes the residual for a constant model.
	a := mustRows(t, [][]float64{{1}, {1}, {1}})
	coef, rank, err := matrix.LeastSquares(a, []float64{1, 2, 6}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.InDelta(t, 3.0, coef[0], tol)
}

func TestLeastSquares_RankDeficient(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	coef, rank, err := matrix.LeastSquares(a, []float64{2, 2, 2}, 1e-10)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.Equal(t, 0.0, coef[1])
	assert.InDelta(t, 2.0, coef[0], tol)
}

func TestLeastSquares_Errors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	_, _, err := matrix.LeastSquares(nil, nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.LeastSquares(a, []float64{1}, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.LeastSquares(a, []float64{1, math.NaN()}, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	zero, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, _, err = matrix.LeastSquares(zero, []float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestVandermonde(t *testing.T) {
	t.Parallel()

	v, err := matrix.Vandermonde([]float64{2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Cols())
	assert.Equal(t, 1.0, mustAt(t, v, 0, 0))
	assert.Equal(t, 8.0, mustAt(t, v, 0, 3))
	assert.Equal(t, 9.0, mustAt(t, v, 1, 2))

	_, err = matrix.Vandermonde([]float64{1}, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Vandermonde(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestKernels_DoNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
	b := []float64{1, 2, 4}
	_, _, err := matrix.LeastSquares(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, b)
	assert.Equal(t, 2.0, mustAt(t, a, 2, 1))

	_, _, err = matrix.QR(a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustAt(t, a, 1, 0))
}

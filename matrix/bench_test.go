// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the fitting kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sigmakit/matrix"
)

var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func randomTall(b *testing.B, rows, cols int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
	}
	return m
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomTall(b, n, n/2+1, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, _, err := matrix.QR(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = q
			}
		})
	}
}

func BenchmarkLeastSquares_Polyfit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			xs := make([]float64, n)
			ys := make([]float64, n)
			for i := range xs {
				xs[i] = float64(i) / float64(n-1)
				ys[i] = 1 - xs[i]*xs[i]
			}
			v, err := matrix.Vandermonde(xs, 8)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, _, err := matrix.LeastSquares(v, ys, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

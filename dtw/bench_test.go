// SPDX-License-Identifier: MIT

package dtw_test

import (
	"testing"

	"github.com/katalvlaran/sigmakit/dtw"
	"github.com/katalvlaran/sigmakit/sigma"
)

var benchSink dtw.Result

func benchmarkDistance(b *testing.B, n, m int, opts dtw.Options) {
	x := sigma.MustNew(sigma.LinspaceValues(14.6, 0.03, n))
	y := sigma.MustNew(sigma.LinspaceValues(14.6, 0.03, m))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := dtw.Distance(x, y, opts)
		if err != nil {
			b.Fatalf("Distance: %v", err)
		}
		benchSink = res
	}
}

func BenchmarkDistance_FullMatrix(b *testing.B) {
	benchmarkDistance(b, 200, 300, dtw.DefaultOptions())
}

func BenchmarkDistance_TwoRows(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDistance(b, 200, 300, opts)
}

func BenchmarkDistance_Banded(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 120
	benchmarkDistance(b, 200, 300, opts)
}

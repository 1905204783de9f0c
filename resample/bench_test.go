// SPDX-License-Identifier: MIT

package resample_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
)

var sinkSeq sigma.Sequence

func BenchmarkResample(b *testing.B) {
	src, err := sigma.Linspace(14.6, 0.03, 64)
	if err != nil {
		b.Fatal(err)
	}
	for _, mode := range []resample.Mode{resample.Linear, resample.Polynomial, resample.Spline, resample.Power} {
		b.Run(fmt.Sprintf("mode=%s", mode), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := resample.Resample(src, 256, mode)
				if err != nil {
					b.Fatal(err)
				}
				sinkSeq = out
			}
		})
	}
}

func BenchmarkResample_Model(b *testing.B) {
	src, err := sigma.Linspace(14.6, 0.03, 30)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := resample.Resample(src, 60, resample.Model, resample.WithEpochs(500))
		if err != nil {
			b.Fatal(err)
		}
		sinkSeq = out
	}
}

// SPDX-License-Identifier: MIT

package resample_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/resample"
	"github.com/katalvlaran/sigmakit/sigma"
)

// ExampleResample stretches a 3-step schedule to 5 steps in log space.
func ExampleResample() {
	src := sigma.MustNew([]float64{16, 4, 1})
	out, err := resample.Resample(src, 5, resample.Exponential)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, v := range out.Values() {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 16.00 8.00 4.00 2.00 1.00
}

// ExampleResample_spline shows that the clamped spline keeps both endpoints.
func ExampleResample_spline() {
	src := sigma.MustNew([]float64{14.61, 3.07, 0.99, 0.03})
	out, err := resample.Resample(src, 7, resample.Spline)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Len(), out.First(), out.Last())
	// Output:
	// 7 14.61 0.03
}

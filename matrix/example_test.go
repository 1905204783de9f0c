// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/matrix"
)

// ExampleLeastSquares fits y = 1 + 2x through three collinear points.
func ExampleLeastSquares() {
	v, err := matrix.Vandermonde([]float64{0, 0.5, 1}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	coef, rank, err := matrix.LeastSquares(v, []float64{1, 2, 3}, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("rank=%d a=%.3f b=%.3f\n", rank, coef[0], coef[1])
	// Output:
	// rank=2 a=1.000 b=2.000
}

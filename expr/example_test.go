// SPDX-License-Identifier: MIT

package expr_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/expr"
)

// ExampleCompile evaluates one formula over three elements.
func ExampleCompile() {
	p, err := expr.Compile("a * x ^ s")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, a := range []float64{1, 1, 1} {
		fmt.Println(p.Eval(expr.Env{A: a, X: 0.5, S: float64(i)}))
	}
	// Output:
	// 1
	// 0.5
	// 0.25
}

// ExampleCompile_unknown shows that names outside the grammar are rejected.
func ExampleCompile_unknown() {
	_, err := expr.Compile("open(1)")
	fmt.Println(err)
	// Output:
	// expr: unknown identifier at offset 0: "open" is not an allowed function
}

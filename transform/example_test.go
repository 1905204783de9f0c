// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/expr"
	"github.com/katalvlaran/sigmakit/sigma"
	"github.com/katalvlaran/sigmakit/transform"
)

// ExampleChain doubles a schedule, drops the values under the floor and
// re-terminates it with 0.
func ExampleChain() {
	s := sigma.MustNew([]float64{4, 2, 1, 0.01, 0})
	out, err := transform.Chain(s,
		transform.With(transform.Mult, 2),
		func(s sigma.Sequence) (sigma.Sequence, error) { return transform.Cleanup(s, 0.5) },
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Values())
	// Output:
	// [8 4 2 0]
}

// ExampleFormula builds a geometric ramp from the element index alone.
func ExampleFormula() {
	prog, err := expr.Compile("x * 0.5 ^ s")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	in := transform.DefaultInputs()
	in.X = 8
	in.Length = 4
	out, err := transform.Formula(prog, in)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out.Values())
	// Output:
	// [8 4 2 1]
}

// ExampleNoiseInversion prints both halves of an inversion pair.
func ExampleNoiseInversion() {
	fwd, rev, err := transform.NoiseInversion(sigma.MustNew([]float64{3, 1}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(fwd.Values(), rev.Values())
	// Output:
	// [1 3 0] [0 3 1 0]
}

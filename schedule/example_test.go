// SPDX-License-Identifier: MIT

package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/schedule"
)

// ExampleConstant holds the start value up to the cutoff step.
func ExampleConstant() {
	s, err := schedule.Constant(4, 1, 0, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// [1, 1, 1, 0, 0]
}

// ExampleKarras prints a short Karras schedule with ρ = 1 (linear spacing).
func ExampleKarras() {
	s, err := schedule.Karras(3, 1, 8, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// [8, 4.5, 1, 0]
}

// ExampleResolver_Resolve resolves a named scheduler against the reference
// noise table with a partial denoise.
func ExampleResolver_Resolve() {
	ms := schedule.DefaultDiscreteSampling()
	s, err := schedule.NewResolver().Resolve(ms, "beta57", 8, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s.Len() <= 9, s.Last(), s.IsNonIncreasing())
	// Output:
	// true 0 true
}

package sigma_test

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/sigma"
)

// ExampleParse reads a literal schedule and inspects it.
func ExampleParse() {
	seq, err := sigma.Parse("14.61, 7.49, 3.07, 0.99, 0.03, 0")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq.Len(), seq.First(), seq.Last(), seq.IsNonIncreasing())
	// Output:
	// 6 14.61 0 true
}

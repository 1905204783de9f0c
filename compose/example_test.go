// SPDX-License-Identifier: MIT

package compose_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sigmakit/compose"
)

// ExampleComposer_Compose pads a linear ramp with two head and one tail value.
func ExampleComposer_Compose() {
	req := compose.Request{
		PadStartValue: 1,
		StartValue:    0.8,
		EndValue:      0.2,
		PadEndValue:   0,
		Scheduler:     "constant",
		StartStep:     2,
		EndStep:       compose.Step(6),
		TotalSteps:    compose.Step(7),
	}
	res, err := compose.NewComposer().Compose(req)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	parts := make([]string, 0, res.Sigmas.Len())
	for _, v := range res.Sigmas.Values() {
		parts = append(parts, fmt.Sprintf("%.1f", v))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println(res.Plan.SchedulerSteps, res.Plan.EndPadSteps)
	// Output:
	// 1.0 1.0 0.8 0.6 0.4 0.2 0.0
	// 4 1
}

// ExampleDecodeRequest shows a request rejected by the schema.
func ExampleDecodeRequest() {
	_, err := compose.DecodeRequest(strings.NewReader("scheduler: karras\ntotal_steps: -3\n"))
	fmt.Println(err != nil)
	// Output:
	// true
}

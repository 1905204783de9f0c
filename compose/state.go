// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// state.go — composer states.

package compose

import "strconv"

// State is one step of Composer.Compose.
type State int

const (
	// ResolveSentinels derives the absent EndStep or TotalSteps.
	ResolveSentinels State = iota
	// ComputeBounds computes the interior and tail padding lengths.
	ComputeBounds
	// SynthesizeInterior produces the raw interior values.
	SynthesizeInterior
	// RescaleRange maps the interior into [StartValue, EndValue].
	RescaleRange
	// OptionalFlip reverses the interior when FlipSchedule is set.
	OptionalFlip
	// Pad surrounds the interior with the padding values.
	Pad
	// Done is terminal.
	Done
)

var stateNames = [...]string{
	ResolveSentinels:   "ResolveSentinels",
	ComputeBounds:      "ComputeBounds",
	SynthesizeInterior: "SynthesizeInterior",
	RescaleRange:       "RescaleRange",
	OptionalFlip:       "OptionalFlip",
	Pad:                "Pad",
	Done:               "Done",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// States lists every state in execution order.
func States() []State {
	return []State{ResolveSentinels, ComputeBounds, SynthesizeInterior, RescaleRange, OptionalFlip, Pad, Done}
}

// Observer is called when Compose enters a state. p holds what has been
// computed so far; its Interior slice must not be retained.
type Observer func(s State, p Plan)

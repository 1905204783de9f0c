// SPDX-License-Identifier: MIT

// Package transform is a library of stateless sequence transforms.
//
// Every function takes its input by value and returns a fresh Sequence;
// the caller's backing array is never written, including by the floor
// operations (SetFloor, VarianceFloor) that other tools implement in place.
// Results inherit the precision and execution target of the first input.
//
// Families:
//   - Structural: Concat, Truncate, Start, Split, Pad, Unpad, Append, Flip,
//     NoiseInversion.
//   - Filtering: SetFloor, VarianceFloor, DeleteBelowFloor, DeleteValue,
//     DeleteConsecutiveDuplicates, Cleanup.
//   - Arithmetic: Mult, Add, Power, Abs, Modulus, Quotient, Mult2, Add2.
//   - Range: Rescale, Lerp, InvLerp.
//   - Shape: Sigmoid, Hyperbolic, Gaussian, Percentile, Standardize.
//   - Formula: element-wise evaluation of a compiled expr.Program.
//
// Shape functions pass their raw results through Sanitize before any
// requested normalization, so overflow never turns into NaN downstream.
//
// Funcs compose with Chain:
//
//	out, err := transform.Chain(s,
//		transform.With(transform.Mult, 2.0),
//		transform.Flip,
//	)
package transform

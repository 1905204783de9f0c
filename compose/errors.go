// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// errors.go — composer sentinels. Numeric failures from synthesis and
// rescaling surface as the sigma sentinels (ErrDegenerateRange, ...).

package compose

import "errors"

var (
	// ErrAmbiguousRange indicates neither EndStep nor TotalSteps was given.
	ErrAmbiguousRange = errors.New("compose: ambiguous range: end_step and total_steps both absent")

	// ErrInvalidRange indicates a negative step, interior or padding count.
	ErrInvalidRange = errors.New("compose: invalid range")

	// ErrInvalidRequest indicates a request document that fails to parse or
	// does not satisfy the request schema.
	ErrInvalidRequest = errors.New("compose: invalid request")
)

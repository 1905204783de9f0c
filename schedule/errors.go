// SPDX-License-Identifier: MIT
// Package: sigmakit/schedule
//
// errors.go — package sentinels. Both refine sigma.ErrInvalidArgument so
// callers can branch on either level with errors.Is.

package schedule

import (
	"fmt"

	"github.com/katalvlaran/sigmakit/sigma"
)

var (
	// ErrUnknownScheduler indicates a name that is neither a closed-form
	// family nor registered in the Registry.
	ErrUnknownScheduler = fmt.Errorf("schedule: unknown scheduler: %w", sigma.ErrInvalidArgument)

	// ErrNoModel indicates a named scheduler was requested without a Sampling.
	ErrNoModel = fmt.Errorf("schedule: named scheduler requires a model sampling: %w", sigma.ErrInvalidArgument)
)

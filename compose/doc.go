// SPDX-License-Identifier: MIT

// Package compose builds padded sigma schedules from a declarative Request.
//
// A composed schedule has three parts laid end to end:
//
//	[ pad_start × start_step | interior × (end_step − start_step) | pad_end × (total − end_step) ]
//
// The interior is either a linear ramp ("constant") or a synthesized schedule
// min-max rescaled from its native range into [start_value, end_value].
// The result always holds exactly total_steps values.
//
// Composer.Compose walks an explicit state machine:
//
//	ResolveSentinels → ComputeBounds → SynthesizeInterior → RescaleRange → OptionalFlip → Pad → Done
//
// An Observer registered with WithObserver sees every state as it is entered.
//
// Requests can be written in YAML. LoadRequest and DecodeRequest check the
// document against an embedded CUE schema before decoding it, so unknown
// keys and negative step counts are rejected with ErrInvalidRequest.
//
// Absent step fields are represented by nil pointers, never by -1:
//   - EndStep nil   → the interior extends to TotalSteps.
//   - TotalSteps nil → TotalSteps = StartStep + EndStep.
//   - both nil      → ErrAmbiguousRange.
package compose

// SPDX-License-Identifier: MIT

// Package dtw measures how far apart two sigma schedules are when their
// lengths differ, using Dynamic Time Warping.
//
// A resampled schedule cannot be compared with its source element by
// element. DTW instead finds the monotone alignment of the two sequences
// that minimizes the summed absolute difference, so a faithful resampling
// scores close to zero whatever its length.
//
// Features:
//   - full-matrix mode with an optional alignment path
//   - two-row mode using O(min(n, m)) memory, distance only
//   - optional Sakoe–Chiba band (|i−j| ≤ Window)
//   - slope penalty on non-diagonal moves to discourage stretching
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	res, err := dtw.Distance(src, resampled, opts)
//
// Complexity: O(n·m) time; O(n·m) or O(min(n, m)) memory.
package dtw

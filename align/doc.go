// SPDX-License-Identifier: MIT

// Package align scores recorded speed traces against minimum-jerk model
// profiles with Dynamic Time Warping (DTW).
//
// Recorded reaches rarely share the model's time base: onset detection
// jitters, sampling clocks drift, and subjects move a little faster or
// slower than the fitted duration. DTW warps the time axis before
// summing |observed − model|, so a well-shaped but slightly late reach
// still scores close to zero.
//
// ✨ Key features:
//   - FullMatrix mode: O(N·M) memory, supports ReturnPath
//   - TwoRows mode: O(M) memory, distance only
//   - Sakoe–Chiba window (|i−j| ≤ Window), −1 means unlimited
//   - SlopePenalty added to every non-diagonal step
//   - CompareSpeed: DTW distance, RMSE and peak timing offset in one call
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.Window = 10
//	res, err := align.CompareSpeed(recorded, params, times, &opts)
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package align

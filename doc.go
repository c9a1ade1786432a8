// SPDX-License-Identifier: MIT

// Package lvmotion is a small toolkit for smooth point-to-point movement
// profiles, built around the minimum-jerk model of Flash & Hogan (1985).
//
// 🚀 What is inside?
//
//	minjerk/ — evaluate x/y velocity and tangential speed of a planar reach
//	sample/  — query-time grids and synthetic noisy recordings
//	align/   — DTW and RMSE scoring of recorded speed against the model
//
// Quick picture of a minimum-jerk speed curve (bell-shaped, at rest at both ends):
//
//	speed
//	  │        ▁▃▅▇█▇▅▃▁
//	  │     ▁▃▅         ▅▃▁
//	  └──────┴─────────────┴────── t
//	         t0          t0+D
//
//	go get github.com/katalvlaran/lvmotion/minjerk
package lvmotion

// SPDX-License-Identifier: MIT

// Package minjerk evaluates minimum-jerk velocity profiles for planar
// point-to-point movements (Flash & Hogan, 1985).
//
// 🚀 What is a minimum-jerk profile?
//
//	A reaching movement of duration D that minimizes the integral of
//	squared jerk has a bell-shaped speed curve. In normalized time
//	n = (t − t0)/D the velocity is
//
//	    v(n) = (A/D) · (30n² − 60n³ + 30n⁴),   n ∈ [0,1]
//
//	and zero outside the window. The curve starts and ends at rest and
//	peaks at n = 0.5 with value 1.875·A/D.
//
// ✨ Key features:
//   - Velocity2D: unchecked evaluation, NaN/Inf propagate like plain IEEE math
//   - Evaluate / EvaluateInto: D==0 and non-finite inputs reported as errors
//   - WithWorkers: chunked concurrent evaluation for long time grids
//   - tangential speed derived from the combined displacement, not hypot(Vx,Vy)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmotion/minjerk"
//
//	p := minjerk.Params{T0: 0, D: 1, Ax: 10, Ay: 0}
//	prof, err := minjerk.Evaluate(p, []float64{0, 0.25, 0.5, 0.75, 1})
//	// prof.Vx    = [0 10.546875 18.75 10.546875 0]
//	// prof.Speed = prof.Vx (Ay == 0)
//
// Complexity:
//
//   - Time:   O(N) in the number of query times
//   - Memory: O(N) for the three output slices
package minjerk

// SPDX-License-Identifier: MIT
// Package: lvmotion/minjerk
//
// minjerk.go — minimum-jerk velocity evaluation.
//
// Algorithm (per query time t[i]):
//  1. nt = (t[i] − T0) / D
//  2. active iff 0 ≤ nt ≤ 1 (inclusive)
//  3. inactive → Vx = Vy = Speed = 0
//  4. active   → s = Shape(nt)
//     Vx    = (Ax/D)·s
//     Vy    = (Ay/D)·s
//     Speed = A_tang·s,  A_tang = sqrt((Ax/D)² + (Ay/D)²) computed once
//
// Every index is independent of every other, so the work can be split into
// disjoint chunks without changing a single bit of the result.

package minjerk

import (
	"math"
	"sync"
)

// Shape polynomial coefficients: −60·n³ + 30·n⁴ + 30·n².
const (
	coefCubic   = -60.0
	coefQuartic = 30.0
	coefSquare  = 30.0
)

// Normalized window bounds and the peak location/value of Shape.
const (
	windowLo  = 0.0
	windowHi  = 1.0
	peakNorm  = 0.5
	peakShape = 1.875
)

// Shape returns the normalized minimum-jerk velocity shape at n.
// It is symmetric about n = 0.5 and vanishes at n = 0 and n = 1.
// Shape does not clamp: callers decide what happens outside [0,1].
func Shape(n float64) float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n

	return coefCubic*n3 + coefQuartic*n4 + coefSquare*n2
}

// Velocity2D evaluates the x-velocity, y-velocity and tangential speed of
// the movement p at every query time in t.
//
// No validation is performed: D == 0 or non-finite inputs propagate as
// IEEE special values. The three returned slices always have len(t)
// elements, including the empty case.
//
// Complexity: O(N) time, O(N) memory.
func Velocity2D(p Params, t []float64) Profile {
	n := len(t)
	out := Profile{
		Vx:    make([]float64, n),
		Vy:    make([]float64, n),
		Speed: make([]float64, n),
	}
	fill(out, newScales(p), p, t, 0, n)

	return out
}

// Evaluate is Velocity2D with input checks.
//
// Errors:
//   - ErrZeroDuration   — p.D == 0.
//   - ErrNonFiniteParam — NaN/±Inf in p (finite check enabled).
//   - ErrNonFiniteTime  — NaN/±Inf in t (finite check enabled).
//
// For valid inputs the result is bitwise identical to Velocity2D(p, t).
func Evaluate(p Params, t []float64, opts ...Option) (Profile, error) {
	var out Profile
	if err := evaluateInto(methodEvaluate, &out, p, t, opts...); err != nil {
		return Profile{}, err
	}

	return out, nil
}

// EvaluateInto behaves like Evaluate but writes into dst, reusing its
// slices when their capacity is at least len(t). On error dst is left
// untouched.
func EvaluateInto(dst *Profile, p Params, t []float64, opts ...Option) error {
	if dst == nil {
		return minjerkErrorf(methodEvaluateInto, ErrNilProfile, "dst")
	}

	return evaluateInto(methodEvaluateInto, dst, p, t, opts...)
}

// Peak returns the time and tangential speed at the top of the bell curve.
func Peak(p Params) (t, speed float64) {
	return p.T0 + peakNorm*p.D, peakShape * p.TangentialAmplitude()
}

func evaluateInto(method string, dst *Profile, p Params, t []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validate(method, p, t, o); err != nil {
		return err
	}

	n := len(t)
	dst.Vx = resize(dst.Vx, n)
	dst.Vy = resize(dst.Vy, n)
	dst.Speed = resize(dst.Speed, n)

	sc := newScales(p)
	chunks := chunkCount(n, o.workers, o.minChunk)
	if chunks <= 1 {
		fill(*dst, sc, p, t, 0, n)
		return nil
	}

	size := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(*dst, sc, p, t, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return nil
}

// scales holds the per-call amplitudes shared by every sample.
type scales struct {
	x, y, tang float64
}

func newScales(p Params) scales {
	return scales{
		x:    p.Ax / p.D,
		y:    p.Ay / p.D,
		tang: p.TangentialAmplitude(),
	}
}

// fill writes indices [lo, hi) of out. Inactive samples are set to zero
// explicitly so reused buffers never leak stale values.
func fill(out Profile, sc scales, p Params, t []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		nt := p.NormalizedTime(t[i])
		if !inWindow(nt) {
			out.Vx[i], out.Vy[i], out.Speed[i] = 0, 0, 0
			continue
		}
		s := Shape(nt)
		out.Vx[i] = sc.x * s
		out.Vy[i] = sc.y * s
		out.Speed[i] = sc.tang * s
	}
}

// inWindow reports 0 ≤ nt ≤ 1. NaN is never in the window.
func inWindow(nt float64) bool {
	return nt >= windowLo && nt <= windowHi
}

func resize(buf []float64, n int) []float64 {
	if cap(buf) >= n && buf != nil {
		return buf[:n]
	}

	return make([]float64, n)
}

// chunkCount caps the worker count so no chunk is shorter than minChunk.
func chunkCount(n, workers, minChunk int) int {
	if workers <= 1 || n < 2*minChunk {
		return 1
	}
	maxChunks := n / minChunk
	if workers < maxChunks {
		return workers
	}

	return maxChunks
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

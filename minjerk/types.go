// SPDX-License-Identifier: MIT
// Package: lvmotion/minjerk
//
// types.go — movement parameters and the evaluated velocity profile.

package minjerk

import "math"

// Params describes a single point-to-point movement.
//
// Fields:
//   - T0 — movement start time.
//   - D  — movement duration; D > 0 for a well-defined profile.
//   - Ax — net displacement along x.
//   - Ay — net displacement along y.
type Params struct {
	T0 float64
	D  float64
	Ax float64
	Ay float64
}

// NormalizedTime maps t onto the movement's unit interval: (t − T0) / D.
func (p Params) NormalizedTime(t float64) float64 {
	return (t - p.T0) / p.D
}

// Active reports whether t falls inside the movement window [T0, T0+D].
// Both bounds are inclusive.
func (p Params) Active(t float64) bool {
	return inWindow(p.NormalizedTime(t))
}

// End returns the time the movement comes to rest.
func (p Params) End() float64 {
	return p.T0 + p.D
}

// TangentialAmplitude returns sqrt((Ax/D)² + (Ay/D)²), the scale applied to
// Shape for the tangential speed curve.
func (p Params) TangentialAmplitude() float64 {
	ax, ay := p.Ax/p.D, p.Ay/p.D

	return math.Sqrt(ax*ax + ay*ay)
}

// Profile holds the evaluated curves, index-aligned with the query times.
//
//   - Vx    — x-velocity.
//   - Vy    — y-velocity.
//   - Speed — tangential speed along the straight-line path.
type Profile struct {
	Vx    []float64
	Vy    []float64
	Speed []float64
}

// Len returns the number of samples in the profile.
func (pr Profile) Len() int {
	return len(pr.Vx)
}

// SPDX-License-Identifier: MIT

// Package sample builds query-time grids for minimum-jerk evaluation and
// synthesizes noisy "recorded" speed traces for tests and demos.
//
// Determinism policy:
//   - If an *rand.Rand was supplied via WithRand/WithSeed, it is used.
//   - Otherwise a local rand.New(rand.NewSource(seed)) is created.
//
// Grids are produced with gonum's floats.Span, so the first and last
// samples are exactly the requested bounds.
package sample

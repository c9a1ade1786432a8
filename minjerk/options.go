// SPDX-License-Identifier: MIT
// Package: lvmotion/minjerk
//
// options.go — functional options for Evaluate / EvaluateInto.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Evaluation itself never panics.
//   • No option changes the numeric output for valid inputs.

package minjerk

// Defaults.
const (
	// DefaultFiniteCheck rejects NaN/±Inf in parameters and query times.
	DefaultFiniteCheck = true

	// DefaultWorkers evaluates sequentially.
	DefaultWorkers = 1

	// DefaultMinChunk is the smallest slice length handed to one worker.
	DefaultMinChunk = 4096
)

// Option customizes a single Evaluate call.
type Option func(*options)

type options struct {
	finiteCheck bool
	workers     int
	minChunk    int
}

// WithFiniteCheck enables rejection of NaN/±Inf inputs (the default).
func WithFiniteCheck() Option {
	return func(o *options) { o.finiteCheck = true }
}

// WithoutFiniteCheck lets non-finite values propagate through the arithmetic
// as Velocity2D does. D == 0 is still rejected.
func WithoutFiniteCheck() Option {
	return func(o *options) { o.finiteCheck = false }
}

// WithWorkers splits the query times into at most k disjoint chunks
// evaluated concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("minjerk: WithWorkers(k<1)")
	}
	return func(o *options) { o.workers = k }
}

// WithMinChunk sets the minimum number of samples per worker chunk.
// Panics if n < 1.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic("minjerk: WithMinChunk(n<1)")
	}
	return func(o *options) { o.minChunk = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		finiteCheck: DefaultFiniteCheck,
		workers:     DefaultWorkers,
		minChunk:    DefaultMinChunk,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

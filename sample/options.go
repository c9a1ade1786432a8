// SPDX-License-Identifier: MIT
// Package: lvmotion/sample
//
// options.go — functional options for Observe.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Observe itself never panics.

package sample

import "math/rand"

const (
	// DefaultSigma is the Gaussian noise standard deviation.
	DefaultSigma = 0.0

	// DefaultOffset is the constant sensor bias added to every sample.
	DefaultOffset = 0.0
)

// Option customizes Observe.
type Option func(*config)

type config struct {
	sigma  float64
	offset float64
	rng    *rand.Rand
}

// WithSigma sets the noise standard deviation. Panics on sigma < 0 or NaN.
func WithSigma(sigma float64) Option {
	if !(sigma >= 0) {
		panic("sample: WithSigma(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithOffset adds a constant bias to every sample.
func WithOffset(offset float64) Option {
	return func(c *config) { c.offset = offset }
}

// WithRand provides an explicit RNG shared across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG; it overrides the seed argument of Observe.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newConfig(opts ...Option) config {
	c := config{sigma: DefaultSigma, offset: DefaultOffset}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// rngFrom returns cfg.rng if present, else a local rand seeded by seed.
func rngFrom(c config, seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

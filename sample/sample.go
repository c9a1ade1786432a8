// SPDX-License-Identifier: MIT
// Package: lvmotion/sample
//
// sample.go — time grids and synthetic observations.

package sample

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmotion/minjerk"
)

const minGrid = 2

// Times returns n evenly spaced samples from start to stop, both inclusive.
// stop < start yields a descending grid.
//
// Errors: ErrBadSize (n < 2), ErrNonFinite (NaN/±Inf bound).
func Times(start, stop float64, n int) ([]float64, error) {
	return times(methodTimes, start, stop, n)
}

// Window returns an n-sample grid covering the movement p plus pad·|D| on
// each side, so pad=0.25 shows a quarter of the duration at rest before
// and after the reach.
func Window(p minjerk.Params, n int, pad float64) ([]float64, error) {
	if !(pad >= 0) {
		return nil, sampleErrorf(methodWindow, ErrBadPad, "pad=%g", pad)
	}
	lo, hi := p.T0, p.End()
	if hi < lo {
		lo, hi = hi, lo
	}
	margin := pad * math.Abs(p.D)

	return times(methodWindow, lo-margin, hi+margin, n)
}

// Observe returns a noisy copy of clean: clean[i] + offset + sigma·N(0,1).
// With sigma == 0 no random numbers are drawn. clean is never modified.
func Observe(clean []float64, seed int64, opts ...Option) []float64 {
	cfg := newConfig(opts...)
	out := make([]float64, len(clean))
	copy(out, clean)
	if cfg.offset != 0 {
		floats.AddConst(cfg.offset, out)
	}
	if cfg.sigma == 0 {
		return out
	}

	rng := rngFrom(cfg, seed)
	for i := range out {
		out[i] += cfg.sigma * rng.NormFloat64()
	}

	return out
}

func times(method string, start, stop float64, n int) ([]float64, error) {
	if n < minGrid {
		return nil, sampleErrorf(method, ErrBadSize, "n=%d", n)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, sampleErrorf(method, ErrNonFinite, "start=%g stop=%g", start, stop)
	}

	return floats.Span(make([]float64, n), start, stop), nil
}

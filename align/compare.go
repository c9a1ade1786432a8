// SPDX-License-Identifier: MIT

package align

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmotion/minjerk"
)

// CompareSpeed evaluates the model speed of p at times t and scores the
// recorded trace observed against it.
//
// Errors: ErrLengthMismatch, anything Distance returns, and the minjerk
// sentinels (ErrZeroDuration, ErrNonFinite*) from model evaluation.
func CompareSpeed(observed []float64, p minjerk.Params, t []float64, opts *Options) (Result, error) {
	if len(observed) != len(t) {
		return Result{}, alignErrorf(methodCompareSpeed, ErrLengthMismatch, "len(observed)=%d len(t)=%d", len(observed), len(t))
	}
	if len(t) == 0 {
		return Result{}, alignErrorf(methodCompareSpeed, ErrEmptyInput, "len(t)=0")
	}

	model, err := minjerk.Evaluate(p, t)
	if err != nil {
		return Result{}, alignErrorf(methodCompareSpeed, err, "model")
	}

	dist, path, err := Distance(observed, model.Speed, opts)
	if err != nil {
		return Result{}, err
	}

	peakT, _ := minjerk.Peak(p)

	return Result{
		Distance:   dist,
		Path:       path,
		RMSE:       floats.Distance(observed, model.Speed, 2) / math.Sqrt(float64(len(t))),
		PeakOffset: t[floats.MaxIdx(observed)] - peakT,
	}, nil
}

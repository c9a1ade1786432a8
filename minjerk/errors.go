// SPDX-License-Identifier: MIT
// Package minjerk: sentinel error set.
// Evaluate and EvaluateInto return these wrapped with method context;
// callers branch with errors.Is. Velocity2D never returns an error.

package minjerk

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDuration is returned when Params.D == 0.
	ErrZeroDuration = errors.New("minjerk: movement duration is zero")

	// ErrNonFiniteParam signals NaN or ±Inf in T0, D, Ax or Ay.
	ErrNonFiniteParam = errors.New("minjerk: NaN or Inf in movement parameters")

	// ErrNonFiniteTime signals NaN or ±Inf in the query times.
	ErrNonFiniteTime = errors.New("minjerk: NaN or Inf in query times")

	// ErrNilProfile indicates a nil destination passed to EvaluateInto.
	ErrNilProfile = errors.New("minjerk: nil destination profile")
)

// Method names used as error context prefixes.
const (
	methodEvaluate     = "Evaluate"
	methodEvaluateInto = "EvaluateInto"
)

// minjerkErrorf prefixes err with the calling method and a short detail,
// keeping the sentinel reachable through errors.Is.
func minjerkErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

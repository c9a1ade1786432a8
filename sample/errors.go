// SPDX-License-Identifier: MIT

package sample

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a grid with fewer than two samples was requested.
	ErrBadSize = errors.New("sample: invalid size/length")

	// ErrNonFinite indicates a NaN or ±Inf grid bound.
	ErrNonFinite = errors.New("sample: NaN or Inf bound")

	// ErrBadPad indicates a negative window padding.
	ErrBadPad = errors.New("sample: padding must be ≥ 0")
)

const (
	methodTimes  = "Times"
	methodWindow = "Window"
)

func sampleErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

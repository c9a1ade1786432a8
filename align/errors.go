// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates one or both sequences are empty.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option (Window < −1, negative or NaN
	// penalty) or a NaN/±Inf sample in either sequence.
	ErrBadInput = errors.New("align: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")

	// ErrLengthMismatch indicates observed samples and query times differ in length.
	ErrLengthMismatch = errors.New("align: observed and time slices differ in length")
)

const (
	methodDistance     = "Distance"
	methodCompareSpeed = "CompareSpeed"
)

func alignErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

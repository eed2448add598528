// SPDX-License-Identifier: MIT
// Package determinant: sentinel error set.
// Engines return these sentinels (possibly wrapped with an operation tag);
// callers match them via errors.Is.

package determinant

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

var (
	// ErrInvalidDimension is returned for non-square input or an order below
	// MinOrder. Non-square errors also match matrix.ErrNonSquare.
	ErrInvalidDimension = errors.New("determinant: invalid dimension")

	// ErrArithmeticOverflow is returned when an intermediate product or sum
	// does not fit in int64.
	ErrArithmeticOverflow = errors.New("determinant: int64 overflow")
)

// Sentinels shared with the matrix package, re-exported so callers need a
// single import to classify engine failures.
var (
	// ErrIndexOutOfRange marks a read outside the matrix (an internal contract
	// violation, or a Matrix implementation lying about its shape).
	ErrIndexOutOfRange = matrix.ErrOutOfRange

	// ErrNilMatrix marks a nil input.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Operation tags for error wrapping.
const (
	opSarrus     = "Sarrus"
	opSequential = "Sequential"
	opParallel   = "Parallel"
)

// determinantErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func determinantErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

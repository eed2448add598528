// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors return these sentinels and tests
// check them via errors.Is. No exported function panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites add context with fmt.Errorf("ctx: %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a derived matrix (e.g. the minor of a 1×1) would be empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At, Minor, With, SwapRows) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals row slices of unequal length passed to NewDenseFromRows.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a MinorArena asked for a minor of a matrix larger than it was sized for.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)


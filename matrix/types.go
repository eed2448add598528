// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, the validators and callers.
// Errors live in errors.go, constructors in builder.go.
package matrix

// Matrix represents a two-dimensional read-only grid of int64 values.
// Implementations must be safe for concurrent reads.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (int64, error)
}


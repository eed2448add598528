// Package matrix provides the immutable integer matrix model used by the
// cofactor determinant engines.
//
// The matrix package provides:
//
//   - Matrix, a read-only view over a rectangular grid of int64 values.
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - Minor and Induced, which materialize sub-matrices as new values.
//   - MinorArena, reusable per-size scratch storage for depth-first expansion.
//   - Validators returning plain sentinel errors (ErrNilMatrix, ErrNonSquare, ...).
//
// Dense values are never mutated after construction: every derived matrix
// (Minor, SwapRows, With, Clone) is a fresh copy. Sharing a *Dense between
// goroutines is therefore safe without locking.
//
// See the examples in this package and in determinant for usage patterns.
package matrix

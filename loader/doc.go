// SPDX-License-Identifier: MIT

// Package loader reads square integer matrices from files and streams.
//
// Two formats are understood:
//
//   - Text: one row per line, entries separated by whitespace. Blank lines
//     and lines starting with '#' are skipped. The number of entries on the
//     first row fixes the order n; every later row must carry n entries and
//     there must be exactly n rows.
//
//   - YAML: a sequence of integer sequences, either at the document root or
//     under a top-level "matrix" key:
//
//     matrix:
//     - [1, 2, 3]
//     - [4, 5, 6]
//     - [7, 8, 10]
//
// Every failure names the offending line and wraps one of the sentinels in
// errors.go, so callers can match on it with errors.Is. Shape failures also
// wrap the matching matrix sentinel (matrix.ErrRagged, matrix.ErrNonSquare).
//
// The loader only checks shape and syntax. Whether the order is large enough
// to take a determinant of is left to the determinant package.
package loader

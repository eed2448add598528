// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for builders and minors.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustRows copies m back into rows or fails the test.
func mustRows(tb testing.TB, m matrix.Matrix) [][]int64 {
	tb.Helper()
	rows, err := matrix.ToRows(m)
	if err != nil {
		tb.Fatalf("ToRows: %v", err)
	}

	return rows
}

// grid4 is the 4×4 fixture 1..16 in row-major order.
var grid4 = [][]int64{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
	{13, 14, 15, 16},
}

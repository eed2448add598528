// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for Dense integer matrices.
//
// Purpose:
//   - Materialize Dense values from row slices (loader, tests) and
//     well-known shapes (identity), always copying caller data.
//
// Determinism:
//   - Fixed i→j copy order; no map iteration.

package matrix

import "fmt"

const ctxFromRows = "NewDenseFromRows"

// NewDenseFromRows builds a Dense from a slice of equal-length rows.
// MAIN DESCRIPTION:
//   - Copies rows into a fresh row-major buffer; later changes to rows
//     do not affect the returned matrix.
//
// Implementation:
//   - Stage 1: require at least one row and a non-empty first row.
//   - Stage 2: require every row to match the first row's length.
//   - Stage 3: copy row by row.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty first row).
//   - ErrRagged (row i has a different length), wrapped with the row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxFromRows, i, len(row), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	m := newDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ToRows copies m into a fresh [][]int64 (row-major).
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]int64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// AsDense returns m as a *Dense. A *Dense input is returned as is (Dense is
// immutable, so sharing is safe); any other implementation is copied.
// Errors: ErrNilMatrix, ErrInvalidDimensions, or an At failure of m.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, err := ToRows(m)
	if err != nil {
		return nil, err
	}

	return NewDenseFromRows(rows)
}

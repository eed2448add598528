// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

// MinOrder is the smallest matrix the engines accept. Expansion stops at
// BaseOrder, so 1×1 and 2×2 inputs are rejected rather than special-cased.
const MinOrder = BaseOrder

// cofactorSign is the checkerboard sign (−1)^(row+col).
func cofactorSign(row, col int) int64 {
	if (row+col)%2 == 0 {
		return 1
	}

	return -1
}

// multiplier returns sign(r,j)·m[r][j], overflow-checked.
func multiplier(m *matrix.Dense, r, j int) (int64, error) {
	a, err := m.At(r, j)
	if err != nil {
		return 0, err
	}

	return mulChecked(cofactorSign(r, j), a)
}

// term is one cofactor of a fan-out level. The minor is owned exclusively by
// whichever task evaluates the term.
type term struct {
	col        int           // deleted column
	multiplier int64         // sign·entry of the expansion row
	minor      *matrix.Dense // (n−1)×(n−1), freshly allocated
}

// expansionTerms builds all n terms of m along its last row.
func expansionTerms(m *matrix.Dense) ([]term, error) {
	n := m.Rows()
	r := n - 1 // always expand along the bottom row
	terms := make([]term, n)
	for j := 0; j < n; j++ {
		mult, err := multiplier(m, r, j)
		if err != nil {
			return nil, fmt.Errorf("cofactor (%d,%d): %w", r, j, err)
		}
		minor, err := m.Minor(r, j)
		if err != nil {
			return nil, err
		}
		terms[j] = term{col: j, multiplier: mult, minor: minor}
	}

	return terms, nil
}

// prepare validates m and returns it as *Dense.
// Error priority: nil -> shape -> order.
func prepare(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	if n := m.Rows(); n < MinOrder {
		return nil, fmt.Errorf("order %d below %d: %w", n, MinOrder, ErrInvalidDimension)
	}

	return matrix.AsDense(m)
}

// SPDX-License-Identifier: MIT

package determinant

import "github.com/katalvlaran/cofactor/matrix"

// Sequential computes det(m) by depth-first cofactor expansion along the
// bottom row.
//
// Algorithm Outline:
//  1. Validate: m non-nil, square, order n ≥ 3.
//  2. n == 3: rule of Sarrus.
//  3. Otherwise, with r = n−1, for each column j:
//     det += (−1)^(r+j) · m[r][j] · Sequential(minor(m, r, j))
//
// Minors are written into a MinorArena sized for n, so the whole run
// allocates O(n³) once instead of one matrix per node.
//
// Complexity:
//
//	Time   = O(n!) (n!/6 base cases)
//	Memory = O(n³) arena + O(n) stack depth
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrArithmeticOverflow.
func Sequential(m matrix.Matrix) (int64, error) {
	d, err := prepare(m)
	if err != nil {
		return 0, determinantErrorf(opSequential, err)
	}
	det, err := sequential(d)
	if err != nil {
		return 0, determinantErrorf(opSequential, err)
	}

	return det, nil
}

// sequential runs the expansion on an already validated square *Dense.
// The parallel engine uses it below its cutoff.
func sequential(m *matrix.Dense) (int64, error) {
	arena, err := matrix.NewMinorArena(m.Rows())
	if err != nil {
		return 0, err
	}

	return expand(m, arena)
}

func expand(m *matrix.Dense, arena *matrix.MinorArena) (int64, error) {
	n := m.Rows()
	if n == BaseOrder {
		return sarrus(m)
	}

	r := n - 1
	var det int64
	for j := 0; j < n; j++ {
		mult, err := multiplier(m, r, j)
		if err != nil {
			return 0, err
		}
		// The slot for size n−1 is reused by the next column, after this
		// subtree has returned.
		minor, err := arena.Minor(m, r, j)
		if err != nil {
			return 0, err
		}
		sub, err := expand(minor, arena)
		if err != nil {
			return 0, err
		}
		t, err := mulChecked(mult, sub)
		if err != nil {
			return 0, err
		}
		if det, err = addChecked(det, t); err != nil {
			return 0, err
		}
	}

	return det, nil
}

// SPDX-License-Identifier: MIT

// Package determinant - order-3 base case (rule of Sarrus).
//
// Layout:
//
//	| a b c |
//	| d e f |   det = a(ei−fh) − b(di−fg) + c(dh−eg)
//	| g h i |
//
// which is the same six-term sum as the diagonal / anti-diagonal rule.

package determinant

import (
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

// BaseOrder is the size at which the expansion stops recursing.
const BaseOrder = 3

// Sarrus returns the determinant of a 3×3 matrix by the closed-form rule.
// MAIN DESCRIPTION:
//   - Exact int64 arithmetic; every product and sum is overflow-checked.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrInvalidDimension unless m is exactly 3×3.
//   - ErrArithmeticOverflow when an intermediate leaves int64.
//
// Complexity:
//   - Time O(1), Space O(1).
func Sarrus(m matrix.Matrix) (int64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, determinantErrorf(opSarrus, err)
	}
	if m.Rows() != BaseOrder || m.Cols() != BaseOrder {
		return 0, determinantErrorf(opSarrus,
			fmt.Errorf("%dx%d, want 3x3: %w", m.Rows(), m.Cols(), ErrInvalidDimension))
	}
	det, err := sarrus(m)
	if err != nil {
		return 0, determinantErrorf(opSarrus, err)
	}

	return det, nil
}

// sarrus assumes a 3×3 m; engines call it directly at the recursion floor.
func sarrus(m matrix.Matrix) (int64, error) {
	var e [9]int64
	var err error
	for k := range e {
		if e[k], err = m.At(k/3, k%3); err != nil {
			return 0, err
		}
	}
	a, b, c := e[0], e[1], e[2]
	d, ee, f := e[3], e[4], e[5]
	g, h, i := e[6], e[7], e[8]

	// Cofactors of the top row.
	c1, err := cross(ee, f, h, i) // ei − fh
	if err != nil {
		return 0, err
	}
	c2, err := cross(d, f, g, i) // di − fg
	if err != nil {
		return 0, err
	}
	c3, err := cross(d, ee, g, h) // dh − eg
	if err != nil {
		return 0, err
	}

	t1, err := mulChecked(a, c1)
	if err != nil {
		return 0, err
	}
	t2, err := mulChecked(b, c2)
	if err != nil {
		return 0, err
	}
	t3, err := mulChecked(c, c3)
	if err != nil {
		return 0, err
	}

	det, err := subChecked(t1, t2)
	if err != nil {
		return 0, err
	}

	return addChecked(det, t3)
}

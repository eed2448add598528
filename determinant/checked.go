// SPDX-License-Identifier: MIT

package determinant

import "math"

// mulChecked returns a*b or ErrArithmeticOverflow.
func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// MinInt64 * -1 is the one product the division test below cannot catch.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrArithmeticOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrArithmeticOverflow
	}

	return p, nil
}

// addChecked returns a+b or ErrArithmeticOverflow.
func addChecked(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrArithmeticOverflow
	}

	return s, nil
}

// subChecked returns a-b or ErrArithmeticOverflow.
func subChecked(a, b int64) (int64, error) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, ErrArithmeticOverflow
	}

	return s, nil
}

// cross returns p*s - q*r, the 2×2 determinant |p q; r s|.
func cross(p, q, r, s int64) (int64, error) {
	ps, err := mulChecked(p, s)
	if err != nil {
		return 0, err
	}
	qr, err := mulChecked(q, r)
	if err != nil {
		return 0, err
	}

	return subChecked(ps, qr)
}

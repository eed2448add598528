// SPDX-License-Identifier: MIT

// Package matrix - minors: the sub-matrix left after deleting one row and
// one column, with the remaining rows and columns in their original order.
//
// Two flavors:
//   - Minor / (*Dense).Minor allocate an independent result (safe to hand to
//     another goroutine, which then owns it exclusively).
//   - MinorArena.Minor writes into per-size scratch storage, for depth-first
//     callers that keep at most one minor per size alive.

package matrix

import "fmt"

const ctxMinor = "Minor"

// Minor returns a new (r-1)×(c-1) matrix equal to m without row delRow and
// column delCol.
// MAIN DESCRIPTION:
//   - Pure function; m is not modified; the result owns its buffer.
//
// Implementation:
//   - Stage 1: validate shape (r,c >= 2) and indices.
//   - Stage 2: allocate and copy with minorInto.
//
// Errors:
//   - ErrInvalidDimensions when m has a single row or column.
//   - ErrOutOfRange when delRow or delCol is outside m.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Minor(delRow, delCol int) (*Dense, error) {
	if err := checkMinor(m.r, m.c, delRow, delCol); err != nil {
		return nil, err
	}
	out := newDense(m.r-1, m.c-1)
	minorInto(out.data, m.data, m.r, m.c, delRow, delCol)

	return out, nil
}

// Minor is the interface-level form of (*Dense).Minor. *Dense inputs take
// the flat fast path; other implementations are read through At.
// Errors: ErrNilMatrix, plus those of (*Dense).Minor.
func Minor(m Matrix, delRow, delCol int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Minor(delRow, delCol)
	}

	r, c := m.Rows(), m.Cols()
	if err := checkMinor(r, c, delRow, delCol); err != nil {
		return nil, err
	}
	out := newDense(r-1, c-1)
	var (
		i, j, oi, oj int
		v            int64
		err          error
	)
	for i = 0; i < r; i++ {
		if i == delRow {
			continue
		}
		oj = 0
		for j = 0; j < c; j++ {
			if j == delCol {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxMinor, err)
			}
			out.data[oi*(c-1)+oj] = v
			oj++
		}
		oi++
	}

	return out, nil
}

// checkMinor validates the shape and the deleted indices.
func checkMinor(r, c, delRow, delCol int) error {
	if r < 2 || c < 2 {
		return fmt.Errorf("%s of %dx%d: %w", ctxMinor, r, c, ErrInvalidDimensions)
	}
	if delRow < 0 || delRow >= r || delCol < 0 || delCol >= c {
		return fmt.Errorf("%s(%d,%d) of %dx%d: %w", ctxMinor, delRow, delCol, r, c, ErrOutOfRange)
	}

	return nil
}

// minorInto copies src (r×c, row-major) without delRow/delCol into dst,
// which must have length (r-1)*(c-1). Indices are assumed valid.
// Whole row segments are copied with copy() on either side of delCol.
func minorInto(dst, src []int64, r, c, delRow, delCol int) {
	w := c - 1
	var i, o int
	for i = 0; i < r; i++ {
		if i == delRow {
			continue
		}
		row := src[i*c : (i+1)*c]
		out := dst[o*w : (o+1)*w]
		copy(out[:delCol], row[:delCol])
		copy(out[delCol:], row[delCol+1:])
		o++
	}
}

// MinorArena holds one scratch square matrix per size 2..n-1 so that a
// depth-first expansion of an n×n matrix never allocates after setup.
//
// The minor returned for size k stays valid until the next Minor call whose
// result has size k. A MinorArena is not safe for concurrent use; give each
// goroutine its own.
type MinorArena struct {
	n     int      // largest parent size accepted
	slots []*Dense // slots[k] is the k×k scratch buffer (nil for k<2)
}

// NewMinorArena preallocates scratch buffers for minors of square matrices
// up to n×n.
// Errors: ErrInvalidDimensions when n < 3 (no non-trivial minor to hold).
// Complexity: O(n³) space in total (sum of k² for k<n).
func NewMinorArena(n int) (*MinorArena, error) {
	if n < 3 {
		return nil, fmt.Errorf("NewMinorArena(%d): %w", n, ErrInvalidDimensions)
	}
	slots := make([]*Dense, n)
	for k := 2; k < n; k++ {
		slots[k] = newDense(k, k)
	}

	return &MinorArena{n: n, slots: slots}, nil
}

// Size returns the largest parent dimension the arena accepts.
func (a *MinorArena) Size() int { return a.n }

// Minor writes the minor of the square matrix m into the scratch slot of
// size m.Rows()-1 and returns that slot.
//
// Errors:
//   - ErrNonSquare when m is not square.
//   - ErrDimensionMismatch when m is larger than the arena or smaller than 3×3.
//   - ErrOutOfRange for invalid indices.
func (a *MinorArena) Minor(m *Dense, delRow, delCol int) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("MinorArena.%s: %w", ctxMinor, ErrNonSquare)
	}
	if m.r > a.n || m.r < 3 {
		return nil, fmt.Errorf("MinorArena.%s: %dx%d with arena size %d: %w", ctxMinor, m.r, m.c, a.n, ErrDimensionMismatch)
	}
	if err := checkMinor(m.r, m.c, delRow, delCol); err != nil {
		return nil, fmt.Errorf("MinorArena.%w", err)
	}
	dst := a.slots[m.r-1]
	minorInto(dst.data, m.data, m.r, m.c, delRow, delCol)

	return dst, nil
}

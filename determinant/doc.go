// Package determinant computes exact int64 determinants of square integer
// matrices by cofactor (Laplace) expansion along the bottom row.
//
// 🚀 What is cofactor expansion?
//
//	det(A) = Σ_j A[r][j] · (−1)^(r+j) · det(minor(A, r, j)),  r = n−1
//
//	Each minor is one size smaller; the recursion stops at 3×3, where the
//	closed-form rule of Sarrus applies. The work grows like n!, so this is a
//	tool for small exact matrices, not a general-purpose solver.
//
// ✨ Key features:
//   - Sarrus: closed-form order-3 base case.
//   - Sequential: depth-first expansion with a per-size MinorArena (no
//     allocation per node).
//   - Parallel: one task per cofactor, joined per level; bounded by a
//     worker semaphore with inline fallback, plus a size cutoff below which
//     subproblems run sequentially. WithUnboundedFanOut lifts the bound.
//   - Checked arithmetic: overflow returns ErrArithmeticOverflow instead of
//     wrapping, so every returned value is exact.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]int64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}})
//	det, err := determinant.Parallel(m, determinant.WithWorkers(4), determinant.WithSequentialCutoff(3))
//	// det == 120
//
// Errors:
//   - ErrNilMatrix          — nil input.
//   - ErrInvalidDimension   — non-square input or order below 3.
//   - ErrIndexOutOfRange    — a Matrix implementation failed a read it advertised.
//   - ErrArithmeticOverflow — an intermediate product or sum left int64.
//
// Both engines return the same value (or the same error kind) for the same input.
package determinant

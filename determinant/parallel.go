// SPDX-License-Identifier: MIT

package determinant

import "github.com/katalvlaran/cofactor/matrix"

// Parallel computes det(m) with the same bottom-row expansion as Sequential,
// evaluating the n cofactors of each level as concurrent tasks.
//
// Scheduling:
//   - Orders above the cutoff (WithSequentialCutoff, default
//     DefaultSequentialCutoff) fan out one task per column; each task owns
//     its freshly allocated minor and recurses.
//   - Orders at or below the cutoff run Sequential inside the task.
//   - Tasks take a slot from a pool of WithWorkers slots (default
//     GOMAXPROCS); with no free slot the task runs inline. Under
//     WithUnboundedFanOut every task gets its own goroutine.
//   - Each level joins all of its tasks before combining; there is no
//     cancellation and no early exit.
//
// The result always equals Sequential(m), including which inputs overflow.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrArithmeticOverflow.
func Parallel(m matrix.Matrix, opts ...Option) (int64, error) {
	o := gatherOptions(opts...)

	d, err := prepare(m)
	if err != nil {
		return 0, determinantErrorf(opParallel, err)
	}

	c := newCoordinator(o)
	det, err := c.expand(d, 0)

	st := c.stats.snapshot()
	if o.stats != nil {
		*o.stats = st
	}
	o.logger.Debug("parallel determinant done",
		"order", d.Rows(),
		"spawned", st.Spawned,
		"inline", st.Inline,
		"levels", st.Levels,
		"sequential", st.SequentialFallbacks,
		"err", err)

	if err != nil {
		return 0, determinantErrorf(opParallel, err)
	}

	return det, nil
}

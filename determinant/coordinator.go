// SPDX-License-Identifier: MIT

package determinant

import (
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/cofactor/matrix"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Stats reports how a parallel run was scheduled.
type Stats struct {
	Spawned             int64 // tasks started on their own goroutine
	Inline              int64 // tasks run on the submitting goroutine (no free slot)
	Levels              int64 // fan-out levels expanded
	SequentialFallbacks int64 // subproblems at or below the cutoff
}

// counters is the concurrent form of Stats.
type counters struct {
	spawned, inline, levels, fallbacks atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Spawned:             c.spawned.Load(),
		Inline:              c.inline.Load(),
		Levels:              c.levels.Load(),
		SequentialFallbacks: c.fallbacks.Load(),
	}
}

// coordinator spawns one task per cofactor, joins each level, and folds the
// signed contributions. Sibling tasks share nothing but their own result
// slot; the only shared state is the semaphore and the counters.
type coordinator struct {
	sem    *semaphore.Weighted // nil when fan-out is unbounded
	cutoff int
	log    *slog.Logger
	stats  counters
}

func newCoordinator(o Options) *coordinator {
	c := &coordinator{cutoff: o.cutoff, log: o.logger}
	if !o.unbounded {
		c.sem = semaphore.NewWeighted(int64(o.workers))
	}

	return c
}

// expand returns det(m) for a validated square m of order >= 3.
func (c *coordinator) expand(m *matrix.Dense, depth int) (int64, error) {
	n := m.Rows()
	if n <= c.cutoff {
		c.stats.fallbacks.Add(1)
		return sequential(m)
	}

	terms, err := expansionTerms(m)
	if err != nil {
		return 0, err
	}
	c.stats.levels.Add(1)
	if depth == 0 {
		c.log.Debug("fan-out", "order", n, "tasks", len(terms))
	}

	return c.join(terms, depth)
}

// join evaluates every term and returns Σ multiplier·det(minor).
//
// Every term runs to completion even when a sibling fails; the first error
// observed is returned only after all of them are done. Contributions are
// summed in column order so the overflow behavior matches the sequential
// engine exactly.
func (c *coordinator) join(terms []term, depth int) (int64, error) {
	results := make([]int64, len(terms))
	var (
		g         errgroup.Group
		inlineErr error
	)

	for i := range terms {
		run := func() error {
			t := &terms[i]
			sub, err := c.expand(t.minor, depth+1)
			t.minor = nil // the task owned the minor; drop it as soon as it is consumed
			if err != nil {
				return err
			}
			results[i], err = mulChecked(t.multiplier, sub)
			return err
		}

		if c.sem == nil || c.sem.TryAcquire(1) {
			c.stats.spawned.Add(1)
			g.Go(func() error {
				if c.sem != nil {
					defer c.sem.Release(1)
				}
				return run()
			})
			continue
		}

		// No free slot: do the work here instead of queueing behind our own children.
		c.stats.inline.Add(1)
		if err := run(); err != nil && inlineErr == nil {
			inlineErr = err
		}
	}

	err := g.Wait()
	if err == nil {
		err = inlineErr
	}
	if err != nil {
		return 0, err
	}

	var det int64
	for _, v := range results {
		if det, err = addChecked(det, v); err != nil {
			return 0, err
		}
	}

	return det, nil
}

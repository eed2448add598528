// SPDX-License-Identifier: MIT

// Package determinant: functional configuration for the parallel engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic results: options change scheduling, never the value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package determinant

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSequentialCutoff is the largest order solved sequentially inside
	// a parallel run. A 6×6 expansion is 120 base cases, too little work to
	// pay for goroutines.
	DefaultSequentialCutoff = 6

	// DefaultUnboundedFanOut keeps the worker bound on.
	DefaultUnboundedFanOut = false

	// DefaultWorkers == 0 resolves to runtime.GOMAXPROCS(0) in gatherOptions.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "determinant: WithWorkers: n must be >= 1"
	panicCutoffInvalid  = "determinant: WithSequentialCutoff: n must be >= 3"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers   int          // concurrent task slots beyond the caller; >= 1 once resolved
	cutoff    int          // orders <= cutoff run sequentially; >= BaseOrder
	unbounded bool         // spawn every task, ignoring workers
	logger    *slog.Logger // never nil once resolved
	stats     *Stats       // optional sink, filled when the run ends
}

// WithWorkers bounds the number of tasks running on their own goroutine.
// When all slots are busy, a task runs inline on the goroutine that
// submitted it, so a parent blocked on its children can never starve them.
//
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSequentialCutoff sets the largest order evaluated by the sequential
// engine inside a parallel run. WithSequentialCutoff(3) fans out at every
// level above the base case.
//
// Panics when n < 3.
func WithSequentialCutoff(n int) Option {
	if n < BaseOrder {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = n }
}

// WithUnboundedFanOut spawns one goroutine per cofactor at every level above
// the cutoff, ignoring the worker bound. Total goroutines grow like n!/cutoff!,
// so use it only for small n.
func WithUnboundedFanOut() Option {
	return func(o *Options) { o.unbounded = true }
}

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithStats asks the engine to copy its scheduling counters into s when the
// run ends (on success and on failure). A nil s is ignored.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

// gatherOptions applies user setters on top of the defaults and resolves
// derived values (workers==0 ⇒ GOMAXPROCS).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		cutoff:    DefaultSequentialCutoff,
		unbounded: DefaultUnboundedFanOut,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

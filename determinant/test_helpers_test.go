// SPDX-License-Identifier: MIT
// Package determinant_test contains test helpers: fixtures, an engine table
// covering every scheduling mode, and an independent reference determinant.

package determinant_test

import (
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/katalvlaran/cofactor/matrix"
)

// engine is one way of computing a determinant.
type engine struct {
	name string
	det  func(m matrix.Matrix) (int64, error)
}

// parallelWith binds options into an engine func.
func parallelWith(opts ...determinant.Option) func(matrix.Matrix) (int64, error) {
	return func(m matrix.Matrix) (int64, error) { return determinant.Parallel(m, opts...) }
}

// engines lists the sequential engine and every parallel scheduling mode.
func engines() []engine {
	return []engine{
		{"sequential", determinant.Sequential},
		{"parallel/default", parallelWith()},
		{"parallel/cutoff3", parallelWith(determinant.WithSequentialCutoff(3))},
		{"parallel/cutoff4/workers2", parallelWith(determinant.WithSequentialCutoff(4), determinant.WithWorkers(2))},
		{"parallel/workers1", parallelWith(determinant.WithSequentialCutoff(3), determinant.WithWorkers(1))},
		{"parallel/unbounded", parallelWith(determinant.WithSequentialCutoff(3), determinant.WithUnboundedFanOut())},
	}
}

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustIdentity returns the n×n identity or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		tb.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// randomRows returns an n×n grid of integers in [-span, span] from a fixed seed.
func randomRows(n int, span int64, seed int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*span+1) - span
		}
	}

	return rows
}

// leibniz computes det by summing over all permutations. It shares no code
// with the engines and is only meant for n <= 7.
func leibniz(rows [][]int64) int64 {
	n := len(rows)
	perm := make([]int, n)
	used := make([]bool, n)
	var total int64

	var walk func(i int)
	walk = func(i int) {
		if i == n {
			prod := int64(1)
			for r, c := range perm {
				prod *= rows[r][c]
			}
			if inversions(perm)%2 == 1 {
				prod = -prod
			}
			total += prod
			return
		}
		for c := 0; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			perm[i] = c
			walk(i + 1)
			used[c] = false
		}
	}
	walk(0)

	return total
}

func inversions(p []int) int {
	k := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				k++
			}
		}
	}

	return k
}

// newTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func newTestLogger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return slog.New(slog.NewTextHandler(testWriter{tb}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	tb testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.tb.Helper()
	w.tb.Log(string(p))
	return len(p), nil
}

// liar claims to be n×n but fails reads of its last cell.
type liar struct{ n int }

func (l liar) Rows() int { return l.n }
func (l liar) Cols() int { return l.n }
func (l liar) At(i, j int) (int64, error) {
	if i == l.n-1 && j == l.n-1 {
		return 0, fmt.Errorf("liar.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if i == j {
		return 1, nil
	}
	return 0, nil
}

package determinant_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/stretchr/testify/require"
)

// TestParallel_StatsUnbounded: with cutoff 3 a 5×5 spawns 5 tasks at the
// top and 4 under each, and every 3×3 leaf goes to the sequential engine.
func TestParallel_StatsUnbounded(t *testing.T) {
	m := mustDense(t, randomRows(5, 9, 11))

	var st determinant.Stats
	_, err := determinant.Parallel(m,
		determinant.WithSequentialCutoff(3),
		determinant.WithUnboundedFanOut(),
		determinant.WithStats(&st))
	require.NoError(t, err)

	require.Equal(t, determinant.Stats{
		Spawned:             25,
		Inline:              0,
		Levels:              6,
		SequentialFallbacks: 20,
	}, st)
}

// TestParallel_StatsSingleWorker: one slot still visits every task exactly
// once, splitting them between spawned and inline.
func TestParallel_StatsSingleWorker(t *testing.T) {
	m := mustDense(t, randomRows(5, 9, 12))

	var st determinant.Stats
	got, err := determinant.Parallel(m,
		determinant.WithSequentialCutoff(3),
		determinant.WithWorkers(1),
		determinant.WithStats(&st))
	require.NoError(t, err)

	want, err := determinant.Sequential(m)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.Equal(t, int64(25), st.Spawned+st.Inline)
	require.GreaterOrEqual(t, st.Spawned, int64(1))
	require.Equal(t, int64(6), st.Levels)
	require.Equal(t, int64(20), st.SequentialFallbacks)
}

// TestParallel_BelowCutoff: small inputs never fan out.
func TestParallel_BelowCutoff(t *testing.T) {
	var st determinant.Stats
	_, err := determinant.Parallel(mustIdentity(t, 5), determinant.WithStats(&st))
	require.NoError(t, err)

	require.Equal(t, int64(1), st.SequentialFallbacks)
	require.Zero(t, st.Levels)
	require.Zero(t, st.Spawned)
	require.Zero(t, st.Inline)
}

// TestParallel_StatsOnError: stats are still reported when the run fails.
func TestParallel_StatsOnError(t *testing.T) {
	m := mustDense(t, [][]int64{
		{1 << 20, 0, 0, 0, 0},
		{0, 1 << 20, 0, 0, 0},
		{0, 0, 1 << 20, 0, 0},
		{0, 0, 0, 4, 0},
		{0, 0, 0, 0, 4},
	})

	var st determinant.Stats
	_, err := determinant.Parallel(m,
		determinant.WithSequentialCutoff(3),
		determinant.WithUnboundedFanOut(),
		determinant.WithStats(&st))
	require.ErrorIs(t, err, determinant.ErrArithmeticOverflow)

	// no early exit: every task still ran
	require.Equal(t, int64(25), st.Spawned)
	require.Equal(t, int64(6), st.Levels)
}

// TestParallel_ConcurrentCallers shares one matrix between many callers.
func TestParallel_ConcurrentCallers(t *testing.T) {
	m := mustDense(t, randomRows(7, 9, 31))
	want, err := determinant.Sequential(m)
	require.NoError(t, err)

	const callers = 8
	var (
		wg   sync.WaitGroup
		got  [callers]int64
		errs [callers]error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], errs[i] = determinant.Parallel(m,
				determinant.WithSequentialCutoff(4),
				determinant.WithWorkers(3))
		}()
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i], "caller %d", i)
		require.Equal(t, want, got[i], "caller %d", i)
	}
}

// TestParallel_Logging checks the debug records emitted by a run.
func TestParallel_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := determinant.Parallel(mustIdentity(t, 5),
		determinant.WithSequentialCutoff(3),
		determinant.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "fan-out")
	require.Contains(t, out, "order=5")
	require.Contains(t, out, "parallel determinant done")
	require.Contains(t, out, "levels=6")

	// same run through the t.Log sink, visible with -v
	_, err = determinant.Parallel(mustIdentity(t, 5),
		determinant.WithSequentialCutoff(3),
		determinant.WithLogger(newTestLogger(t)))
	require.NoError(t, err)
}

// TestOptions_Panics: invalid option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { determinant.WithWorkers(0) })
	require.Panics(t, func() { determinant.WithWorkers(-3) })
	require.Panics(t, func() { determinant.WithSequentialCutoff(2) })
	require.NotPanics(t, func() { determinant.WithSequentialCutoff(3) })
	require.NotPanics(t, func() { determinant.WithWorkers(1) })
}

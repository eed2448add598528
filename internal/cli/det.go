// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/katalvlaran/cofactor/loader"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/spf13/cobra"
)

// ErrEngineMismatch is returned by --engine both when the engines disagree.
var ErrEngineMismatch = errors.New("cli: sequential and parallel results differ")

// NewDetCommand creates the det command.
func NewDetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det <file>",
		Short: "Compute the determinant of a matrix file",
		Long: `Load a square integer matrix and print its determinant.

The file is either whitespace separated rows (one row per line, '#' starts a
comment line) or YAML (a list of rows, optionally under a "matrix" key).
The order must be at least 3.`,
		Example: `  cofactor det m.txt
  cofactor det --engine both --print m.yaml
  cofactor det --cutoff 4 --workers 8 big.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDet(cmd, args[0])
		},
	}

	cmd.Flags().String("engine", DefaultEngine, "Engine: seq, par or both")
	cmd.Flags().Int("workers", determinant.DefaultWorkers, "Parallel task slots (0 = GOMAXPROCS)")
	cmd.Flags().Int("cutoff", determinant.DefaultSequentialCutoff, "Largest order solved sequentially inside a parallel run")
	cmd.Flags().Bool("unbounded", determinant.DefaultUnboundedFanOut, "One goroutine per cofactor above the cutoff")
	cmd.Flags().String("format", DefaultFormat, "Input format: auto, text or yaml")
	cmd.Flags().Bool("print", false, "Print the matrix before the determinant")

	_ = cmd.RegisterFlagCompletionFunc("engine", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{EngineSequential, EngineParallel, EngineBoth}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range loader.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runDet(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)

	format, err := loader.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	m, err := loader.Load(path, format)
	if err != nil {
		return err
	}
	logger.Debug("loaded matrix", "path", path, "format", loader.Detect(path, format), "order", m.Rows())

	out := cmd.OutOrStdout()
	if cfg.Print {
		renderMatrix(out, m)
	}

	det, err := evaluate(cfg, m, logger)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "det: %d\n", det)
	return nil
}

// evaluate runs the configured engine(s).
func evaluate(cfg *Config, m *matrix.Dense, logger *slog.Logger) (int64, error) {
	seq := func() (int64, error) {
		start := time.Now()
		det, err := determinant.Sequential(m)
		logger.Debug("sequential engine", "elapsed", time.Since(start), "err", err)
		return det, err
	}
	par := func() (int64, error) {
		start := time.Now()
		opts := append(cfg.ParallelOptions(), determinant.WithLogger(logger))
		det, err := determinant.Parallel(m, opts...)
		logger.Debug("parallel engine", "elapsed", time.Since(start), "err", err)
		return det, err
	}

	switch cfg.Engine {
	case EngineSequential:
		return seq()
	case EngineBoth:
		s, err := seq()
		if err != nil {
			return 0, err
		}
		p, err := par()
		if err != nil {
			return 0, err
		}
		if s != p {
			return 0, fmt.Errorf("%w: sequential=%d parallel=%d", ErrEngineMismatch, s, p)
		}
		return s, nil
	default:
		return par()
	}
}

// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/cofactor/determinant"
)

// loggerKey is used to store the logger in the command context.
type loggerKey struct{}

// configKey is used to store the config in the command context.
type configKey struct{}

// newLogger writes Debug and above to w when verbose, and nothing otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}

	return &Config{
		Engine: DefaultEngine,
		Cutoff: determinant.DefaultSequentialCutoff,
		Format: DefaultFormat,
	}
}

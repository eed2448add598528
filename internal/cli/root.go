// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for cofactor.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cofactor",
		Short: "cofactor - exact integer determinants",
		Long: `cofactor computes the determinant of a square integer matrix by
cofactor expansion along the bottom row, sequentially or with one task
per cofactor.

Results are exact: a value that does not fit in int64 is an error.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cofactor.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log scheduling details to stderr")

	rootCmd.AddCommand(NewDetCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the cofactor version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cofactor v%s\n", version)
		},
	}
}

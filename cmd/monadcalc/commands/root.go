// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute(ctx context.Context, version string) error {
	return newRootCommand(version).ExecuteContext(ctx)
}

func newRootCommand(version string) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "monadcalc",
		Short: "Run arithmetic pipelines step by step",
		Long: `monadcalc evaluates pipelines of arithmetic steps described in YAML.

Each step either succeeds with a new running value or fails. A failing step
with a fallback continues with the fallback value; any other failure ends
the run and is reported with the trace of the steps that ran.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	defaultLevel := os.Getenv("LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = zerolog.InfoLevel.String()
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}

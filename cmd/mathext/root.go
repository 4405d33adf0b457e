// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathext/cmd/mathext/config"
)

// app is the state shared by all subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	styles styles
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: slog.Default()}
	var (
		configPath string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "mathext",
		Short:         "Explore numeric ranges, sequences and real functions",
		Long:          `mathext samples value ranges, enumerates sequences, evaluates series-based primitives and finds roots and monotonic pieces of real functions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
			a.styles = newStyles(cmd.OutOrStdout())
			a.logger.Debug("config_loaded",
				slog.String("path", configPath),
				slog.String("domain", cfg.Analyzer.Domain),
			)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the log level (debug, info, warn, error)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newSampleCmd(a),
		newSequenceCmd(a),
		newEvalCmd(a),
		newIntegralCmd(a),
	)

	return root
}

// newLogger builds the slog handler selected by the configuration.
func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

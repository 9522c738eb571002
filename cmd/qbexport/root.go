package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"questionbank/qbexport/pkg/cli"
	"questionbank/qbexport/pkg/config"
	"questionbank/qbexport/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "qbexport",
	Short: "qbexport - flatten question banks into CSV and XLSX",
	Long: `qbexport converts a question bank JSON document into a flat table of
one row per question (one row per subquestion for scenarios), then writes:

  - a CSV file (UTF-8 with BOM)
  - an XLSX workbook with "questions" and "needs_review" sheets
  - optionally a JSON file and a SQLite database

Running qbexport without a subcommand is the same as "qbexport export".`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExport,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		fmt.Sprintf("config file path (default %q when present)", config.DefaultConfigFile))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	addExportFlags(rootCmd)
}

// loadConfig reads the config file and environment, applies flag overrides
// through override, and validates once all sources are merged. An explicit
// --config file must exist; the default one is optional.
func loadConfig(override func(cfg *config.Config)) (*config.Config, error) {
	path, required := cfgFile, true
	if path == "" {
		path, required = config.DefaultConfigFile, false
	}

	cfg, err := config.ReadConfigWithEnvOverrides(path, required)
	if err != nil {
		return nil, cli.WrapConfigError("config", fmt.Sprintf("failed to load %s", path), err)
	}

	if override != nil {
		override(cfg)
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, cli.WrapConfigError("flags", "invalid configuration", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr so stdout carries
// only command output.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    os.Stderr,
	})
	if err != nil {
		return nil, cli.WrapConfigError("telemetry.logging", "failed to initialize logger", err)
	}
	slog.SetDefault(logger)
	return logger, nil
}

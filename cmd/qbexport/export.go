package main

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"questionbank/qbexport/pkg/cli"
	"questionbank/qbexport/pkg/config"
	"questionbank/qbexport/pkg/pipeline"
	"questionbank/qbexport/pkg/telemetry/metrics"
)

var exportFlags struct {
	input       string
	outCSV      string
	outXLSX     string
	outJSON     string
	outSQLite   string
	engine      string
	format      string
	schedule    string
	metricsFile string
	prettyJSON  bool
	watch       bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a question bank to CSV and XLSX",
	Long: `Export a question bank to CSV and XLSX.

Flags override the config file and QBEXPORT_* environment variables, which
override the built-in defaults.

Examples:
  # Export with default paths
  qbexport export

  # Export with explicit paths
  qbexport export --input bank.json --out-csv bank.csv --out-xlsx bank.xlsx

  # Also write JSON and SQLite artifacts
  qbexport export --out-json bank.export.json --out-sqlite bank.db

  # Print the summary as JSON
  qbexport export --format json

  # Re-export whenever the input file changes
  qbexport export --watch

  # Re-export at the top of every hour
  qbexport export --schedule "0 * * * *"`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
}

func addExportFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&exportFlags.input, "input", "i", config.DefaultInput, "question bank JSON file")
	flags.StringVar(&exportFlags.outCSV, "out-csv", config.DefaultCSVPath, "CSV output path")
	flags.StringVar(&exportFlags.outXLSX, "out-xlsx", config.DefaultXLSXPath, "XLSX output path")
	flags.StringVar(&exportFlags.outJSON, "out-json", "", "optional JSON output path")
	flags.StringVar(&exportFlags.outSQLite, "out-sqlite", "", "optional SQLite output path")
	flags.BoolVar(&exportFlags.prettyJSON, "pretty-json", false, "indent the JSON output")
	flags.StringVar(&exportFlags.engine, "xlsx-engine", config.DefaultXLSXEngine, "spreadsheet engine for the workbook")
	flags.StringVarP(&exportFlags.format, "format", "f", string(cli.FormatText), "summary format (text, json)")
	flags.BoolVarP(&exportFlags.watch, "watch", "w", false, "re-export when the input file changes")
	flags.StringVar(&exportFlags.schedule, "schedule", "", "re-export on a cron schedule (5-field syntax)")
	flags.StringVar(&exportFlags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after each run")
}

// applyExportFlags copies the flags the user set onto cfg. Unset flags leave
// config file and environment values alone.
func applyExportFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}

	set("input", &cfg.Export.Input, exportFlags.input)
	set("out-csv", &cfg.Export.CSVPath, exportFlags.outCSV)
	set("out-xlsx", &cfg.Export.XLSXPath, exportFlags.outXLSX)
	set("out-json", &cfg.Export.JSONPath, exportFlags.outJSON)
	set("out-sqlite", &cfg.Export.SQLitePath, exportFlags.outSQLite)
	set("xlsx-engine", &cfg.Export.XLSXEngine, exportFlags.engine)
	set("schedule", &cfg.Watch.Schedule, exportFlags.schedule)
	set("metrics-file", &cfg.Telemetry.Metrics.File, exportFlags.metricsFile)

	if flags.Changed("pretty-json") {
		cfg.Export.PrettyJSON = exportFlags.prettyJSON
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(exportFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(func(cfg *config.Config) { applyExportFlags(cmd, cfg) })
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	if err := exportLoop(ctx, cfg, format, exportFlags.watch, cmd.OutOrStdout(), logger); err != nil {
		return cli.NewCommandError("export", err)
	}
	return nil
}

// exportLoop runs one export and, in watch or schedule mode, keeps
// re-exporting until ctx is cancelled. Only the first run's failure is
// returned; later failures are logged.
func exportLoop(ctx context.Context, cfg *config.Config, format cli.OutputFormat, watch bool, out io.Writer, logger *slog.Logger) error {
	formatter, err := cli.NewFormatter(format)
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.File != "" {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	exp := pipeline.NewExporter(logger, collector)
	opts := pipeline.OptionsFromConfig(cfg)

	summary, err := exp.Run(ctx, opts)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(out, summary); err != nil {
		return err
	}

	if !watch && cfg.Watch.Schedule == "" {
		return nil
	}

	// Watch and schedule triggers may fire together; runs stay sequential.
	var mu sync.Mutex
	rerun := func(ctx context.Context) {
		mu.Lock()
		defer mu.Unlock()

		summary, err := exp.Run(ctx, opts)
		if err != nil {
			logger.Error("re-export failed", "error", err)
			return
		}
		if err := formatter.FormatTo(out, summary); err != nil {
			logger.Error("failed to print summary", "error", err)
		}
	}

	if cfg.Watch.Schedule != "" {
		scheduler, err := pipeline.NewScheduler(cfg.Watch.Schedule, logger)
		if err != nil {
			return err
		}
		if err := scheduler.Start(ctx, rerun); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	if watch {
		watcher, err := pipeline.NewWatcher(opts.Input, cfg.Watch.Debounce, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		return watcher.Watch(ctx, func() { rerun(ctx) })
	}

	<-ctx.Done()
	return nil
}

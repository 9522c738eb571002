package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"questionbank/qbexport/pkg/bank"
	"questionbank/qbexport/pkg/export"
	"questionbank/qbexport/pkg/flatten"
	"questionbank/qbexport/pkg/telemetry/logging"
	"questionbank/qbexport/pkg/telemetry/metrics"

	"github.com/google/uuid"
)

// Exporter runs export passes. It is safe for sequential reuse across runs;
// each Run is self-contained.
type Exporter struct {
	logger  *slog.Logger
	metrics *metrics.Collector

	csv    *export.CSVExporter
	sqlite *export.SQLiteExporter

	now      func() time.Time
	newRunID func() string
}

// NewExporter creates an exporter. A nil logger uses slog.Default(); a nil
// collector disables metrics.
func NewExporter(logger *slog.Logger, collector *metrics.Collector) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		logger:   logger.With("component", "pipeline.exporter"),
		metrics:  collector,
		csv:      export.NewCSVExporter(),
		sqlite:   export.NewSQLiteExporter(),
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run performs one export. The spreadsheet engine is resolved before the
// input is read, so a missing engine fails without touching any file.
func (e *Exporter) Run(ctx context.Context, opts Options) (summary *Summary, err error) {
	start := e.now()
	runID := e.newRunID()
	ctx = logging.WithInput(logging.WithRunID(ctx, runID), opts.Input)
	logger := logging.FromContext(ctx, e.logger)

	defer func() {
		e.recordRun(logger, opts, err, e.now().Sub(start))
	}()

	engine, err := export.LookupEngine(opts.Engine)
	if err != nil {
		return nil, err
	}

	logger.Debug("loading question bank")
	b, err := bank.Load(opts.Input)
	if err != nil {
		return nil, err
	}

	records := flatten.Flatten(b)
	review := flatten.NeedsReview(records)
	logger.Debug("flattened question bank",
		"questions", len(b.Questions),
		"rows", len(records),
		"needs_review", len(review),
	)

	outputs := []string{opts.CSVPath, opts.XLSXPath}

	if err := e.writeFile(ctx, opts.CSVPath, func(w io.Writer) error {
		return e.csv.Export(ctx, records, w)
	}); err != nil {
		return nil, err
	}

	sheets := []export.Sheet{
		{Name: export.SheetQuestions, Records: records},
		{Name: export.SheetNeedsReview, Records: review},
	}
	if err := e.writeFile(ctx, opts.XLSXPath, func(w io.Writer) error {
		return engine.WriteWorkbook(ctx, sheets, w)
	}); err != nil {
		return nil, err
	}

	if opts.JSONPath != "" {
		jsonExporter := export.NewJSONExporter(opts.PrettyJSON)
		if err := e.writeFile(ctx, opts.JSONPath, func(w io.Writer) error {
			return jsonExporter.Export(ctx, records, w)
		}); err != nil {
			return nil, err
		}
		outputs = append(outputs, opts.JSONPath)
	}

	if opts.SQLitePath != "" {
		run := export.RunInfo{RunID: runID, Input: opts.Input, ExportedAt: e.now().UTC()}
		if err := e.sqlite.ExportFile(ctx, records, opts.SQLitePath, run); err != nil {
			return nil, fmt.Errorf("write %s: %w", opts.SQLitePath, err)
		}
		outputs = append(outputs, opts.SQLitePath)
	}

	if e.metrics != nil {
		e.metrics.RecordRecords(export.SheetQuestions, len(records))
		e.metrics.RecordRecords(export.SheetNeedsReview, len(review))
	}

	summary = &Summary{
		RunID:       runID,
		Input:       opts.Input,
		CSVPath:     opts.CSVPath,
		XLSXPath:    opts.XLSXPath,
		Outputs:     outputs,
		Total:       len(records),
		NeedsReview: len(review),
		Duration:    e.now().Sub(start),
	}

	logger.Info("export complete",
		"rows", summary.Total,
		"needs_review", summary.NeedsReview,
		"outputs", len(outputs),
		"duration_ms", summary.Duration.Milliseconds(),
	)

	return summary, nil
}

// writeFile writes one artifact atomically, honoring cancellation between
// artifacts.
func (e *Exporter) writeFile(ctx context.Context, path string, write func(io.Writer) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := export.WriteFile(path, write); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// recordRun updates run metrics and writes the metrics textfile. A textfile
// failure is logged and does not fail the run.
func (e *Exporter) recordRun(logger *slog.Logger, opts Options, runErr error, duration time.Duration) {
	if e.metrics == nil {
		return
	}

	status := metrics.StatusSuccess
	if runErr != nil {
		status = metrics.StatusError
	}
	e.metrics.RecordRun(status, duration)

	if opts.MetricsFile == "" {
		return
	}
	if err := e.metrics.WriteTextfile(opts.MetricsFile); err != nil {
		logger.Warn("failed to write metrics file",
			"path", opts.MetricsFile,
			"error", err,
		)
	}
}

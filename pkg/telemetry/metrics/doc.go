// Package metrics provides Prometheus metrics collection for qbexport runs.
//
// # Overview
//
// The collector keeps its own registry so that a run can be written to a
// node-exporter textfile without pulling in Go runtime metrics. Metrics:
//
//   - <ns>_export_runs_total{status}: completed runs by status ("success", "error")
//   - <ns>_records_exported_total{sheet}: rows written per sheet
//   - <ns>_export_duration_seconds: run duration histogram
//   - <ns>_last_export_timestamp_seconds: Unix time of the last successful run
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordRun(metrics.StatusSuccess, time.Since(start))
//	collector.RecordRecords("questions", 42)
//	if err := collector.WriteTextfile(cfg.Telemetry.Metrics.File); err != nil {
//		return err
//	}
package metrics

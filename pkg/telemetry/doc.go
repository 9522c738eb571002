// Package telemetry groups the observability packages used by qbexport.
//
// # Components
//
//   - logging: Structured logging on log/slog with run-scoped fields
//   - metrics: Prometheus metrics for export runs, written as a textfile
package telemetry

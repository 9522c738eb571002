package config

import "time"

// Config is the root configuration structure for qbexport.
type Config struct {
	// Export contains input and output locations for an export run.
	Export ExportConfig `yaml:"export"`

	// Watch contains settings for repeated exports (file watching and cron
	// schedules).
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains logging and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ExportConfig contains the paths an export run reads and writes.
type ExportConfig struct {
	// Input is the question bank JSON document.
	// Default: "questions.corrected.json"
	Input string `yaml:"input" env:"QBEXPORT_INPUT"`

	// CSVPath is the CSV artifact path.
	// Default: "questions.export.csv"
	CSVPath string `yaml:"csv_path" env:"QBEXPORT_OUT_CSV"`

	// XLSXPath is the workbook artifact path.
	// Default: "questions.export.xlsx"
	XLSXPath string `yaml:"xlsx_path" env:"QBEXPORT_OUT_XLSX"`

	// JSONPath is an optional JSON artifact path. Empty disables it.
	JSONPath string `yaml:"json_path" env:"QBEXPORT_OUT_JSON"`

	// SQLitePath is an optional SQLite artifact path. Empty disables it.
	SQLitePath string `yaml:"sqlite_path" env:"QBEXPORT_OUT_SQLITE"`

	// PrettyJSON indents the JSON artifact.
	PrettyJSON bool `yaml:"pretty_json" env:"QBEXPORT_PRETTY_JSON"`

	// XLSXEngine names the spreadsheet engine used for the workbook.
	// Default: "excelize"
	XLSXEngine string `yaml:"xlsx_engine" env:"QBEXPORT_XLSX_ENGINE"`
}

// WatchConfig contains settings for repeated exports.
type WatchConfig struct {
	// Schedule is a standard 5-field cron expression. Empty disables
	// scheduled exports.
	Schedule string `yaml:"schedule" env:"QBEXPORT_SCHEDULE"`

	// Debounce is the quiet period after an input change before re-exporting.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce" env:"QBEXPORT_WATCH_DEBOUNCE"`
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level" env:"QBEXPORT_LOG_LEVEL"`

	// Format is the log output format: json, text, console.
	// Default: "text"
	Format string `yaml:"format" env:"QBEXPORT_LOG_FORMAT"`

	// AddSource includes file:line in log entries.
	AddSource bool `yaml:"add_source" env:"QBEXPORT_LOG_ADD_SOURCE"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// File is where metrics are written in text exposition format after
	// each run. Empty disables metrics output.
	File string `yaml:"file" env:"QBEXPORT_METRICS_FILE"`

	// Namespace prefixes every metric name.
	// Default: "qbexport"
	Namespace string `yaml:"namespace" env:"QBEXPORT_METRICS_NAMESPACE"`
}

package config

import (
	"time"

	"questionbank/qbexport/pkg/export"
)

// Default values for configuration fields.
const (
	// Export defaults
	DefaultInput      = "questions.corrected.json"
	DefaultCSVPath    = "questions.export.csv"
	DefaultXLSXPath   = "questions.export.xlsx"
	DefaultXLSXEngine = export.DefaultEngine

	// Watch defaults
	DefaultDebounce = 200 * time.Millisecond

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultMetricsNamespace = "qbexport"

	// DefaultConfigFile is read when present and no --config flag is given.
	DefaultConfigFile = "qbexport.yaml"
)

// ApplyDefaults fills zero-valued fields of cfg with their defaults.
// Optional artifacts (JSON, SQLite, metrics file) stay disabled.
func ApplyDefaults(cfg *Config) {
	if cfg.Export.Input == "" {
		cfg.Export.Input = DefaultInput
	}
	if cfg.Export.CSVPath == "" {
		cfg.Export.CSVPath = DefaultCSVPath
	}
	if cfg.Export.XLSXPath == "" {
		cfg.Export.XLSXPath = DefaultXLSXPath
	}
	if cfg.Export.XLSXEngine == "" {
		cfg.Export.XLSXEngine = DefaultXLSXEngine
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

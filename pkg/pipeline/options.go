package pipeline

import "questionbank/qbexport/pkg/config"

// Options are the locations and engine used by one export run. Empty
// optional paths skip that artifact.
type Options struct {
	Input    string
	CSVPath  string
	XLSXPath string

	// Optional artifacts
	JSONPath   string
	SQLitePath string
	PrettyJSON bool

	// Engine is the registered spreadsheet engine for the workbook.
	Engine string

	// MetricsFile receives the run metrics in Prometheus text format.
	MetricsFile string
}

// OptionsFromConfig builds run options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Input:       cfg.Export.Input,
		CSVPath:     cfg.Export.CSVPath,
		XLSXPath:    cfg.Export.XLSXPath,
		JSONPath:    cfg.Export.JSONPath,
		SQLitePath:  cfg.Export.SQLitePath,
		PrettyJSON:  cfg.Export.PrettyJSON,
		Engine:      cfg.Export.XLSXEngine,
		MetricsFile: cfg.Telemetry.Metrics.File,
	}
}

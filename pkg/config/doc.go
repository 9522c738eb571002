// Package config provides configuration management for qbexport.
//
// Configuration comes from an optional YAML file, environment variables and
// command-line flags, applied in that order on top of built-in defaults.
//
// # Configuration Loading
//
//	// Explicit file: a missing file is an error
//	cfg, err := config.LoadConfig("qbexport.yaml")
//
//	// File plus environment overrides; a missing file falls back to defaults
//	// when required is false
//	cfg, err := config.LoadConfigWithEnvOverrides("qbexport.yaml", false)
//
// # Environment Variable Overrides
//
// Environment variables are read with github.com/caarlos0/env and use the
// QBEXPORT_ prefix:
//
//   - QBEXPORT_INPUT overrides export.input
//   - QBEXPORT_OUT_CSV overrides export.csv_path
//   - QBEXPORT_XLSX_ENGINE overrides export.xlsx_engine
//   - QBEXPORT_LOG_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Command-line flags (applied by the caller)
//  5. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	export:
//	  input: "questions.corrected.json"
//	  csv_path: "questions.export.csv"
//	  xlsx_path: "questions.export.xlsx"
//	  sqlite_path: "questions.db"
//
//	watch:
//	  schedule: "0 * * * *"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "text"
//	  metrics:
//	    file: "/var/lib/node_exporter/qbexport.prom"
package config

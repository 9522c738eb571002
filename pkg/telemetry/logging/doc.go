// Package logging provides structured logging for qbexport.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Configurable log levels (debug, info, warn, error)
//   - Run-scoped fields carried through a context.Context
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Writer: os.Stderr,
//	})
//
//	ctx = logging.WithRunID(ctx, runID)
//	logging.FromContext(ctx, logger).Info("export complete", "rows", 42)
package logging

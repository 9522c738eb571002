package logging

import (
	"context"
	"log/slog"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for export run IDs.
	RunIDKey contextKey = "run_id"

	// InputKey is the context key for the question bank being exported.
	InputKey contextKey = "input"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithInput adds the input path to the context.
func WithInput(ctx context.Context, input string) context.Context {
	return context.WithValue(ctx, InputKey, input)
}

// GetInput retrieves the input path from the context.
func GetInput(ctx context.Context) string {
	if input, ok := ctx.Value(InputKey).(string); ok {
		return input
	}
	return ""
}

// FromContext returns logger with the run fields found in ctx attached.
// A nil logger means slog.Default().
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	args := extractContextFields(ctx)
	if len(args) == 0 {
		return logger
	}
	return logger.With(args...)
}

// extractContextFields extracts common log fields from context.
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, string(RunIDKey), runID)
	}
	if input := GetInput(ctx); input != "" {
		fields = append(fields, string(InputKey), input)
	}

	return fields
}

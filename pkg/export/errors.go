package export

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is returned when the spreadsheet engine a run needs is
// not available.
var ErrMissingDependency = errors.New("missing dependency")

// ExportError represents an error during export.
type ExportError struct {
	Format      string // Export format ("csv", "xlsx", "json", "sqlite")
	RecordCount int    // Number of records being exported
	Cause       error  // Underlying error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [format=%s, record_count=%d]: %v", e.Format, e.RecordCount, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ExportError) Unwrap() error {
	return e.Cause
}

// NewExportError creates a new ExportError.
func NewExportError(format string, recordCount int, cause error) *ExportError {
	return &ExportError{
		Format:      format,
		RecordCount: recordCount,
		Cause:       cause,
	}
}

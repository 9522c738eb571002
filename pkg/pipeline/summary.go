package pipeline

import (
	"fmt"
	"time"
)

// Summary reports the result of a successful export run.
type Summary struct {
	RunID       string        `json:"run_id"`
	Input       string        `json:"input"`
	CSVPath     string        `json:"csv_path"`
	XLSXPath    string        `json:"xlsx_path"`
	Outputs     []string      `json:"outputs"`
	Total       int           `json:"total_rows"`
	NeedsReview int           `json:"needs_review_rows"`
	Duration    time.Duration `json:"duration_ns"`
}

// String returns the console summary line.
func (s *Summary) String() string {
	return fmt.Sprintf("Export complete: %d rows, %d rows in needs_review. Files: %s and %s",
		s.Total, s.NeedsReview, s.CSVPath, s.XLSXPath)
}

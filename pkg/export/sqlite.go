package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"questionbank/qbexport/pkg/flatten"
)

// RunInfo describes the export run recorded in the export_runs table.
type RunInfo struct {
	RunID      string
	Input      string
	ExportedAt time.Time
}

// SQLiteExporter writes records into a SQLite database file.
type SQLiteExporter struct {
	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// NewSQLiteExporter creates a SQLite exporter with default settings.
func NewSQLiteExporter() *SQLiteExporter {
	return &SQLiteExporter{
		BusyTimeout: 5 * time.Second,
	}
}

// ExportFile replaces the contents of the questions table in the database at
// path with records and appends a row to export_runs, in one transaction.
// The database and schema are created when missing.
func (e *SQLiteExporter) ExportFile(ctx context.Context, records []flatten.Record, path string, run RunInfo) error {
	db, err := e.open(path)
	if err != nil {
		return NewExportError("sqlite", len(records), err)
	}
	defer db.Close()

	if err := initSchema(ctx, db); err != nil {
		return NewExportError("sqlite", len(records), fmt.Errorf("failed to initialize schema: %w", err))
	}

	if err := e.replace(ctx, db, records, run); err != nil {
		return NewExportError("sqlite", len(records), err)
	}
	return nil
}

func (e *SQLiteExporter) open(path string) (*sql.DB, error) {
	timeout := e.BusyTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, timeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	return db, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	cols := make([]string, len(flatten.Columns))
	for i, col := range flatten.Columns {
		cols[i] = quoteIdent(col)
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS questions (
		row_id INTEGER PRIMARY KEY,
		review_flag INTEGER NOT NULL,
		%s
	);

	CREATE VIEW IF NOT EXISTS needs_review AS
		SELECT * FROM questions WHERE review_flag = 1;

	CREATE TABLE IF NOT EXISTS export_runs (
		run_id TEXT PRIMARY KEY,
		input TEXT NOT NULL,
		total_rows INTEGER NOT NULL,
		review_rows INTEGER NOT NULL,
		exported_at INTEGER NOT NULL
	);
	`, strings.Join(cols, ",\n\t\t"))

	_, err := db.ExecContext(ctx, schema)
	return err
}

func (e *SQLiteExporter) replace(ctx context.Context, db *sql.DB, records []flatten.Record, run RunInfo) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuestionSQL())
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	reviewRows := 0
	args := make([]any, len(flatten.Columns)+2)
	for i := range records {
		flagged := records[i].NeedsReview()
		args[0] = i + 1
		args[1] = flagged
		for j, v := range records[i].Values() {
			args[j+2] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
		if flagged {
			reviewRows++
		}
	}

	exportedAt := run.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO export_runs (run_id, input, total_rows, review_rows, exported_at) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Input, len(records), reviewRows, exportedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record export run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func insertQuestionSQL() string {
	cols := make([]string, 0, len(flatten.Columns)+2)
	cols = append(cols, "row_id", "review_flag")
	for _, col := range flatten.Columns {
		cols = append(cols, quoteIdent(col))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO questions (%s) VALUES (%s)", strings.Join(cols, ", "), placeholders)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

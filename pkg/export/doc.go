// Package export writes flattened question bank records to tabular formats.
//
// # Export Formats
//
//   - CSV: UTF-8 with a byte order mark, header row, minimal quoting, and
//     backslashes escaped as "\\"
//   - Workbook: a spreadsheet with one sheet per record set, written by a
//     registered SheetEngine (excelize by default)
//   - JSON: an array of objects keyed by column name, in column order
//   - SQLite: a "questions" table, a "needs_review" view and an export_runs
//     history table
//
// All formats share flatten.Columns as their column order.
//
// # Spreadsheet Engines
//
// Workbook writers are looked up by name so a run can check that its engine
// is available before doing any work:
//
//	engine, err := export.LookupEngine("excelize")
//	if err != nil {
//	    return err // wraps ErrMissingDependency
//	}
//
// # Atomic Files
//
// WriteFile writes an artifact to a temporary file next to the destination
// and renames it into place, so a failed export leaves any previous artifact
// untouched.
//
// # Error Handling
//
// Exporters return ExportError if the export fails:
//
//   - CSV or JSON encoding errors
//   - Workbook engine errors
//   - SQLite errors
//   - Writer errors
package export

// qbexport flattens a question bank JSON document into spreadsheet-friendly
// artifacts.
//
// Every question becomes one row (scenario questions become one row per
// subquestion) with the choice texts for labels A-D in their own columns.
// The rows are written to a CSV file and to an XLSX workbook with a
// "questions" sheet and a "needs_review" sheet holding the rows flagged for
// human review.
//
// Usage:
//
//	# Export with default paths
//	qbexport
//
//	# Export with explicit paths
//	qbexport export --input bank.json --out-csv bank.csv --out-xlsx bank.xlsx
//
//	# Re-export whenever the input changes
//	qbexport export --watch
//
//	# Show what an export would contain
//	qbexport inspect --input bank.json
package main

func main() {
	Execute()
}

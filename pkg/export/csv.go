package export

import (
	"bufio"
	"context"
	"io"
	"strings"

	"questionbank/qbexport/pkg/flatten"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

var backslashEscaper = strings.NewReplacer(`\`, `\\`)

// CSVExporter exports records to CSV format.
type CSVExporter struct {
	// IncludeHeader includes a header row with column names.
	IncludeHeader bool

	// BOM prefixes the output with a UTF-8 byte order mark.
	BOM bool
}

// NewCSVExporter creates a CSV exporter that writes a BOM and a header row.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{
		IncludeHeader: true,
		BOM:           true,
	}
}

// Export writes records to w in CSV format. Fields are quoted only when they
// contain a comma, a quote or a line break; embedded quotes are doubled and
// backslashes are escaped with a backslash. Null cells are empty.
func (e *CSVExporter) Export(ctx context.Context, records []flatten.Record, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if e.BOM {
		if _, err := bw.WriteString(utf8BOM); err != nil {
			return NewExportError("csv", len(records), err)
		}
	}

	if e.IncludeHeader {
		if err := writeCSVRow(bw, flatten.Columns); err != nil {
			return NewExportError("csv", len(records), err)
		}
	}

	row := make([]string, len(flatten.Columns))
	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, v := range records[i].Values() {
			row[j] = v.String()
		}
		if err := writeCSVRow(bw, row); err != nil {
			return NewExportError("csv", len(records), err)
		}
	}

	if err := bw.Flush(); err != nil {
		return NewExportError("csv", len(records), err)
	}
	return nil
}

// writeCSVRow writes one "\n"-terminated row with minimal quoting.
func writeCSVRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quoteCSVField(field)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// quoteCSVField escapes backslashes and wraps the field in quotes when it
// contains a delimiter, a quote or a line break. Leading spaces do not force
// quoting.
func quoteCSVField(field string) string {
	field = backslashEscaper.Replace(field)
	if !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

package export

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"questionbank/qbexport/pkg/flatten"
)

// JSONExporter exports records as a JSON array of objects whose keys follow
// flatten.Columns order.
type JSONExporter struct {
	// Pretty puts each record on its own line.
	Pretty bool
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(pretty bool) *JSONExporter {
	return &JSONExporter{
		Pretty: pretty,
	}
}

// Export writes records to w. An empty record set is written as [].
func (e *JSONExporter) Export(ctx context.Context, records []flatten.Record, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("["); err != nil {
		return NewExportError("json", len(records), err)
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			bw.WriteString(",")
		}
		if e.Pretty {
			bw.WriteString("\n  ")
		}

		data, err := e.serializeRecord(&records[i])
		if err != nil {
			return NewExportError("json", len(records), err)
		}
		bw.Write(data)
	}

	if e.Pretty && len(records) > 0 {
		bw.WriteString("\n")
	}
	bw.WriteString("]\n")

	if err := bw.Flush(); err != nil {
		return NewExportError("json", len(records), err)
	}
	return nil
}

// serializeRecord encodes one record as a JSON object in column order.
func (e *JSONExporter) serializeRecord(r *flatten.Record) ([]byte, error) {
	values := r.Values()
	buf := []byte{'{'}
	for i, col := range flatten.Columns {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

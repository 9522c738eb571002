package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"questionbank/qbexport/pkg/flatten"
)

// Sheet names written by the export command.
const (
	SheetQuestions   = "questions"
	SheetNeedsReview = "needs_review"
)

func init() {
	RegisterEngine(DefaultEngine, func() SheetEngine { return NewXLSXExporter() })
}

// XLSXExporter writes workbooks with excelize. Each sheet gets a header row
// followed by one row per record and no index column.
type XLSXExporter struct{}

// NewXLSXExporter creates a new excelize-backed workbook exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// WriteWorkbook implements SheetEngine.
func (e *XLSXExporter) WriteWorkbook(ctx context.Context, sheets []Sheet, w io.Writer) error {
	total := 0
	for _, s := range sheets {
		total += len(s.Records)
	}
	if len(sheets) == 0 {
		return NewExportError("xlsx", 0, fmt.Errorf("workbook needs at least one sheet"))
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheets[0].Name); err != nil {
		return NewExportError("xlsx", total, err)
	}

	for i, sheet := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return NewExportError("xlsx", total, err)
			}
		}
		if err := e.writeSheet(ctx, f, sheet); err != nil {
			return NewExportError("xlsx", total, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return NewExportError("xlsx", total, err)
	}
	return nil
}

// writeSheet streams the header and rows of one sheet.
func (e *XLSXExporter) writeSheet(ctx context.Context, f *excelize.File, sheet Sheet) error {
	sw, err := f.NewStreamWriter(sheet.Name)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(flatten.Columns))
	for i, col := range flatten.Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("sheet %s header: %w", sheet.Name, err)
	}

	row := make([]interface{}, len(flatten.Columns))
	for i := range sheet.Records {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, v := range sheet.Records[i].Values() {
			row[j] = v.Interface()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet.Name, i+1, err)
		}
	}

	return sw.Flush()
}

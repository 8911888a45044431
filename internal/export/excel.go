package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Holdings"

// ExcelWriter writes the valuation report as an Excel workbook on disk.
type ExcelWriter struct {
	path string
}

// NewExcelWriter creates a writer saving to the given path.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path}
}

func (w *ExcelWriter) Write(_ context.Context, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range buildRows(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

// README: Feedback log export to an XLSX workbook.
package feedback

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Feedback"

// Exporter is the read capability the report needs from a store.
type Exporter interface {
	ListAll(ctx context.Context) ([]Record, error)
}

// ExportXLSX writes every feedback record to path as a single-sheet workbook.
func ExportXLSX(ctx context.Context, store Exporter, path string) (int, error) {
	records, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("feedback: list records: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return 0, fmt.Errorf("feedback: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Customer ID", "Sentiment", "Feedback", "Submitted At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return 0, err
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.ID,
			rec.CustomerID,
			string(rec.Sentiment),
			rec.Text,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return 0, err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("feedback: save workbook: %w", err)
	}
	return len(records), nil
}

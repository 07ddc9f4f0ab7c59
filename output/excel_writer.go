package output

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"weeklog/weekrecord"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, records []weekrecord.Record) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range tableHeaders() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, rec := range records {
		row := i + 2
		values := make([]any, 0, 9)
		values = append(values, rec.WeekStart.Format("2006-01-02"))
		for day := time.Sunday; day <= time.Saturday; day++ {
			values = append(values, rec.Hours[day])
		}
		values = append(values, rec.Total())

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}

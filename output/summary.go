package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"weeklog/weekrecord"
)

// WeekdayTotals sums each weekday column across all records, in Sunday
// through Saturday order.
func WeekdayTotals(records []weekrecord.Record) [7]float64 {
	var totals [7]float64
	for _, rec := range records {
		for day := time.Sunday; day <= time.Saturday; day++ {
			totals[day] += rec.Hours[day]
		}
	}
	return totals
}

type SummaryCSVWriter struct{}

func (w *SummaryCSVWriter) Write(path string, records []weekrecord.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Day", "TotalHours"}); err != nil {
		return fmt.Errorf("write summary csv headers: %w", err)
	}

	totals := WeekdayTotals(records)
	for day := time.Sunday; day <= time.Saturday; day++ {
		row := []string{weekrecord.DayNames[day], formatHours(totals[day])}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write summary csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush summary csv output: %w", err)
	}

	return nil
}

type SummaryExcelWriter struct{}

func (w *SummaryExcelWriter) Write(path string, records []weekrecord.Record) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	headers := []string{"Day", "TotalHours"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set summary excel header %s: %w", cell, err)
		}
	}

	totals := WeekdayTotals(records)
	for day := time.Sunday; day <= time.Saturday; day++ {
		row := int(day) + 2
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := file.SetCellValue(sheet, nameCell, weekrecord.DayNames[day]); err != nil {
			return fmt.Errorf("set summary excel value %s: %w", nameCell, err)
		}
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := file.SetCellValue(sheet, valueCell, totals[day]); err != nil {
			return fmt.Errorf("set summary excel value %s: %w", valueCell, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save summary excel output %s: %w", path, err)
	}

	return nil
}

// SummaryWriterForFormat mirrors WriterForFormat for the weekday summary mode.
func SummaryWriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &SummaryCSVWriter{}, nil
	case "excel", "xlsx":
		return &SummaryExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

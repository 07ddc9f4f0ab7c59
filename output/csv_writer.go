package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"weeklog/weekrecord"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, records []weekrecord.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(tableHeaders()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, rec := range records {
		row := make([]string, 0, 9)
		row = append(row, rec.WeekStart.Format("2006-01-02"))
		for day := time.Sunday; day <= time.Saturday; day++ {
			row = append(row, formatHours(rec.Hours[day]))
		}
		row = append(row, formatHours(rec.Total()))
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}

func formatHours(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

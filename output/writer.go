package output

import (
	"fmt"
	"strings"

	"weeklog/weekrecord"
)

type Writer interface {
	Write(path string, records []weekrecord.Record) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func tableHeaders() []string {
	headers := make([]string, 0, 9)
	headers = append(headers, "WeekStart")
	headers = append(headers, weekrecord.DayNames[:]...)
	headers = append(headers, "Total")
	return headers
}

package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Reader interface {
	Read(path string) ([]Record, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return strings.ToLower(strings.TrimSpace(format)), nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("cannot infer format from file extension %q (use --format)", extension)
	}
}

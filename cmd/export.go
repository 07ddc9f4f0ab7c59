package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"weeklog/config"
	"weeklog/output"
	"weeklog/storage"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded weeks from SQLite to CSV/Excel",
	Long: `Export recorded weeks from SQLite.

Modes:
- raw: export the week table, one row per recorded week
- summary: export per-weekday totals across all recorded weeks

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export the week table to CSV
  weeklog export --mode raw --output ./weeks.csv

  # Export the week table to Excel
  weeklog export --mode raw --output ./weeks.xlsx

  # Export per-weekday totals to CSV
  weeklog export --mode summary --output ./summary.csv

  # Force Excel format independent of extension
  weeklog export --mode summary --format excel --output ./summary.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(resolveDBPath(exportDBPath, cfg.Database.Path))
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListWeekRecords()
		if err != nil {
			return err
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, records); err != nil {
				return err
			}
			fmt.Printf("Export completed. Weeks: %d, Mode: raw, Format: %s, File: %s\n", len(records), format, exportOutput)
		case "summary":
			writer, writerErr := output.SummaryWriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, records); err != nil {
				return err
			}
			fmt.Printf("Export completed. Weeks: %d, Mode: summary, Format: %s, File: %s\n", len(records), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, summary)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default: configured database.path)")

	_ = exportCmd.MarkFlagRequired("output")
}

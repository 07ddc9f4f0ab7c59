package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"weeklog/config"
	"weeklog/importer"
	"weeklog/storage"
)

var (
	importInputs []string
	importFormat string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-load week records from CSV/Excel files",
	Long: `Read source files and persist one week record per row.

Each row carries the canonical week start (column "WeekStart", format
YYYY-MM-DD) plus one column per day, Sunday through Saturday. Rows whose week
is already on record are skipped and counted as duplicates. When --format is
omitted, format is inferred from each input file extension.`,
	Example: `
  # Import weeks from a CSV file
  weeklog import -i ./weeks.csv

  # Import multiple Excel files
  weeklog import -i ./q1.xlsx -i ./q2.xlsx

  # Import with explicit format and custom database
  weeklog import -i ./weeks.txt --format csv --db ./weeklog.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(resolveDBPath(importDBPath, cfg.Database.Path))
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := importer.Run(importInputs, importFormat, store, cfg.AnchorWeekday())
		if err != nil {
			return err
		}

		fmt.Printf(
			"Import completed. Files: %d, Rows read: %d, Imported: %d, Duplicates skipped: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsImported,
			result.Duplicates,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringSliceVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: csv|excel (optional, inferred from file extension)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default: configured database.path)")

	_ = importCmd.MarkFlagRequired("input")
}

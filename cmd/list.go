package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weeklog/config"
	"weeklog/display"
	"weeklog/storage"
)

var listDBPath string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the recorded week history as a table",
	Long: `Print all recorded weeks ordered by week start, one column per day
plus the weekly total.`,
	Example: `
  # Show the recorded history
  weeklog list
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(resolveDBPath(listDBPath, cfg.Database.Path))
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListWeekRecords()
		if err != nil {
			return err
		}

		rows := display.BuildRows(records)
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(writer, "WeekStart\t%s\tTotal\n", strings.Join(display.DayHeaders(), "\t"))
		for _, row := range rows {
			cells := make([]string, 0, 9)
			cells = append(cells, row.WeekStart)
			for _, value := range row.Hours {
				cells = append(cells, fmt.Sprintf("%.2f", value))
			}
			cells = append(cells, fmt.Sprintf("%.2f", row.Total))
			fmt.Fprintln(writer, strings.Join(cells, "\t"))
		}
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("flush table output: %w", err)
		}

		fmt.Printf("%d week(s) on record.\n", len(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDBPath, "db", "", "Path to local SQLite database (default: configured database.path)")
}

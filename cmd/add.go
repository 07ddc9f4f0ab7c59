package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"weeklog/config"
	"weeklog/refresh"
	"weeklog/storage"
	"weeklog/submitter"
	"weeklog/weekrecord"
)

var (
	addDate   string
	addDBPath string
	addHours  [7]string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one week's hours from the command line",
	Long: `Record hours worked per day for one calendar week.

The --date flag takes the week's anchor day (by default the Saturday that
closes the previous week); the record is stored under the following day.
Omitted day flags count as zero hours. A week already on record is rejected.`,
	Example: `
  # Record a full week (anchor Saturday 2024-01-06, stored week start 2024-01-07)
  weeklog add --date 2024-01-06 --sunday 8 --monday 8 --tuesday 8 --wednesday 8 --thursday 8 --friday 4
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(resolveDBPath(addDBPath, cfg.Database.Path))
		if err != nil {
			return err
		}
		defer store.Close()

		service := submitter.NewService(store, refresh.NewBus(), cfg.AnchorWeekday())

		weekStart, err := service.NormalizeSelectedDate(addDate)
		if err != nil {
			return err
		}

		rec, err := service.Submit(weekrecord.Draft{WeekStart: weekStart, Hours: addHours})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded week starting %s (%.2f hours total).\n", rec.WeekStart.Format("2006-01-02"), rec.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "Anchor date identifying the week, format YYYY-MM-DD")
	addCmd.Flags().StringVar(&addDBPath, "db", "", "Path to local SQLite database (default: configured database.path)")
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := weekrecord.DayNames[day]
		addCmd.Flags().StringVar(&addHours[day], strings.ToLower(name), "", "Hours worked on "+name)
	}

	_ = addCmd.MarkFlagRequired("date")
}

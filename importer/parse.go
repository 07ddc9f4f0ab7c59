package importer

import (
	"fmt"
	"strings"
	"time"

	"weeklog/internal/timeutil"
	"weeklog/weekrecord"
)

// Source files carry the already-canonical week start ("weekstart" or
// "week_start" column) plus one column per day, Sunday through Saturday.
var dayColumns = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func parseWeekRecord(record Record, anchor time.Weekday) (weekrecord.Record, error) {
	weekStartRaw := strings.TrimSpace(record.Values["weekstart"])
	if weekStartRaw == "" {
		weekStartRaw = strings.TrimSpace(record.Values["week_start"])
	}
	if weekStartRaw == "" {
		return weekrecord.Record{}, fmt.Errorf("row %d: missing week start", record.RowNumber)
	}

	weekStart, err := time.ParseInLocation("2006-01-02", weekStartRaw, time.Local)
	if err != nil {
		return weekrecord.Record{}, fmt.Errorf("row %d: invalid week start %q (expected YYYY-MM-DD)", record.RowNumber, weekStartRaw)
	}
	if want := timeutil.WeekStartWeekday(anchor); weekStart.Weekday() != want {
		return weekrecord.Record{}, fmt.Errorf("row %d: week start %s must fall on a %s", record.RowNumber, weekStartRaw, want)
	}

	var raw [7]string
	for day, column := range dayColumns {
		raw[day] = record.Values[column]
	}
	hours, err := weekrecord.ParseHours(raw)
	if err != nil {
		return weekrecord.Record{}, fmt.Errorf("row %d: %w", record.RowNumber, err)
	}

	return weekrecord.Record{WeekStart: weekStart, Hours: hours}, nil
}

package weekrecord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is the persisted weekly entry: one row of daily hours keyed by the
// canonical first day of the week. Records are created once and never updated.
type Record struct {
	ID        int64
	WeekStart time.Time
	Hours     [7]float64
}

// Total returns the sum of all seven daily values.
func (r Record) Total() float64 {
	total := 0.0
	for _, value := range r.Hours {
		total += value
	}
	return total
}

// Draft is the transient, user-editable form of a Record before submission.
// Hour values stay raw strings until submit time; coercion happens late so a
// bad value is attributable to its day rather than failing per keystroke.
type Draft struct {
	WeekStart string
	Hours     [7]string
}

// Empty reports whether the draft carries no user input at all.
func (d Draft) Empty() bool {
	if strings.TrimSpace(d.WeekStart) != "" {
		return false
	}
	for _, value := range d.Hours {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// DayNames lists the seven day labels in table order, Sunday through Saturday.
// The index matches time.Weekday.
var DayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type InvalidHoursError struct {
	Day   time.Weekday
	Value string
}

func (e *InvalidHoursError) Error() string {
	return fmt.Sprintf("invalid hours for %s: %q is not a non-negative number", DayNames[e.Day], e.Value)
}

// ParseHours coerces the seven raw hour strings into non-negative decimals.
// Empty fields count as zero. The first offending field fails the whole
// conversion; no partial result is returned.
func ParseHours(raw [7]string) ([7]float64, error) {
	var out [7]float64
	for day, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed < 0 {
			return [7]float64{}, &InvalidHoursError{Day: time.Weekday(day), Value: value}
		}
		out[day] = parsed
	}
	return out, nil
}

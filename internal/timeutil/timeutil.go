package timeutil

import (
	"fmt"
	"strings"
	"time"
)

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// WrongWeekdayError reports a selected date that does not fall on the
// required anchor weekday. The message is shown to the user verbatim.
type WrongWeekdayError struct {
	Selected time.Time
	Anchor   time.Weekday
}

func (e *WrongWeekdayError) Error() string {
	return fmt.Sprintf(
		"selected date %s is a %s; please pick a %s",
		e.Selected.Format("2006-01-02"),
		e.Selected.Weekday(),
		e.Anchor,
	)
}

// NormalizeWeekStart converts a user-selected anchor date into the canonical
// week-start date. The selected date must fall on the anchor weekday; the
// stored week start is the selected date shifted forward by exactly one day.
// The one-day offset reconciles the "pick the last day of the previous week"
// selection convention with the stored "first day of week" convention.
func NormalizeWeekStart(selected time.Time, anchor time.Weekday) (time.Time, error) {
	if selected.Weekday() != anchor {
		return time.Time{}, &WrongWeekdayError{Selected: selected, Anchor: anchor}
	}
	return StartOfDay(selected).AddDate(0, 0, 1), nil
}

// WeekStartWeekday returns the weekday stored week starts fall on for the
// given anchor day: the day immediately after the anchor.
func WeekStartWeekday(anchor time.Weekday) time.Weekday {
	return (anchor + 1) % 7
}

// ParseWeekday maps a case-insensitive English day name to its time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday name %q", name)
	}
}

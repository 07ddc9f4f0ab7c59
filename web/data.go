package web

import (
	"time"

	"weeklog/weekrecord"
)

// submitRequest is the JSON draft posted by the submission form. Hour values
// arrive as raw strings and are coerced at submit time.
type submitRequest struct {
	SelectedDate string     `json:"selectedDate"`
	Hours        hoursInput `json:"hours"`
}

type hoursInput struct {
	Sunday    string `json:"sunday"`
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
}

func (h hoursInput) toDraftHours() [7]string {
	return [7]string{
		time.Sunday:    h.Sunday,
		time.Monday:    h.Monday,
		time.Tuesday:   h.Tuesday,
		time.Wednesday: h.Wednesday,
		time.Thursday:  h.Thursday,
		time.Friday:    h.Friday,
		time.Saturday:  h.Saturday,
	}
}

// feedback is the notification tuple shown by the UI after a submission.
type feedback struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Variant string `json:"variant"`

	// ClearDraft tells the form to reset all fields; ClearDate only the
	// selected date.
	ClearDraft bool `json:"clearDraft,omitempty"`
	ClearDate  bool `json:"clearDate,omitempty"`
}

// weekView is one record in the JSON list response, days in fixed
// Sunday through Saturday order.
type weekView struct {
	ID        int64   `json:"id"`
	WeekStart string  `json:"weekStart"`
	Sunday    float64 `json:"sunday"`
	Monday    float64 `json:"monday"`
	Tuesday   float64 `json:"tuesday"`
	Wednesday float64 `json:"wednesday"`
	Thursday  float64 `json:"thursday"`
	Friday    float64 `json:"friday"`
	Saturday  float64 `json:"saturday"`
	Total     float64 `json:"total"`
}

func buildWeekViews(records []weekrecord.Record) []weekView {
	views := make([]weekView, 0, len(records))
	for _, rec := range records {
		views = append(views, weekView{
			ID:        rec.ID,
			WeekStart: rec.WeekStart.Format("2006-01-02"),
			Sunday:    rec.Hours[time.Sunday],
			Monday:    rec.Hours[time.Monday],
			Tuesday:   rec.Hours[time.Tuesday],
			Wednesday: rec.Hours[time.Wednesday],
			Thursday:  rec.Hours[time.Thursday],
			Friday:    rec.Hours[time.Friday],
			Saturday:  rec.Hours[time.Saturday],
			Total:     rec.Total(),
		})
	}
	return views
}

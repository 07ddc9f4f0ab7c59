// Package submitter orchestrates one week's entry: validate, persist,
// notify, reset. It owns the uniqueness-conflict error path.
package submitter

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"weeklog/internal/timeutil"
	"weeklog/refresh"
	"weeklog/storage"
	"weeklog/weekrecord"
)

// Store is the slice of the record store the service depends on.
type Store interface {
	FindByWeekStart(weekStart time.Time) (weekrecord.Record, bool, error)
	InsertWeekRecord(rec weekrecord.Record) (int64, error)
}

var ErrMissingDate = errors.New("no week selected; pick an anchor date first")

const dateLayout = "2006-01-02"

type Service struct {
	store  Store
	bus    *refresh.Bus
	anchor time.Weekday

	// Serializes check-then-insert so a rapid double submission cannot race
	// past the duplicate pre-check. The store's UNIQUE index still backstops
	// writers outside this process.
	mu sync.Mutex
}

func NewService(store Store, bus *refresh.Bus, anchor time.Weekday) *Service {
	return &Service{store: store, bus: bus, anchor: anchor}
}

// Anchor returns the weekday a user-selected date must fall on.
func (s *Service) Anchor() time.Weekday {
	return s.anchor
}

// NormalizeSelectedDate validates a user-picked anchor date and returns the
// canonical week-start value for the draft. A wrong weekday fails with a
// timeutil.WrongWeekdayError; the caller must clear the selected date and
// must not proceed to Submit.
func (s *Service) NormalizeSelectedDate(selected string) (string, error) {
	parsed, err := time.ParseInLocation(dateLayout, selected, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", selected)
	}
	weekStart, err := timeutil.NormalizeWeekStart(parsed, s.anchor)
	if err != nil {
		return "", err
	}
	return weekStart.Format(dateLayout), nil
}

// Submit persists one week's draft. Side effects are strictly ordered: no
// refresh notification is published and no success is reported before a
// confirmed write. On any failure the draft is the caller's to keep as
// entered.
func (s *Service) Submit(draft weekrecord.Draft) (weekrecord.Record, error) {
	if draft.WeekStart == "" {
		return weekrecord.Record{}, ErrMissingDate
	}

	weekStart, err := time.ParseInLocation(dateLayout, draft.WeekStart, time.Local)
	if err != nil {
		return weekrecord.Record{}, fmt.Errorf("invalid week start %q (expected YYYY-MM-DD)", draft.WeekStart)
	}
	if want := timeutil.WeekStartWeekday(s.anchor); weekStart.Weekday() != want {
		return weekrecord.Record{}, fmt.Errorf("week start %s must fall on a %s", draft.WeekStart, want)
	}

	hours, err := weekrecord.ParseHours(draft.Hours)
	if err != nil {
		return weekrecord.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.store.FindByWeekStart(weekStart)
	if err != nil {
		return weekrecord.Record{}, fmt.Errorf("check existing week record: %w", err)
	}
	if exists {
		return weekrecord.Record{}, storage.ErrDuplicateWeek
	}

	rec := weekrecord.Record{WeekStart: weekStart, Hours: hours}
	id, err := s.store.InsertWeekRecord(rec)
	if err != nil {
		// ErrDuplicateWeek surfaces here when a concurrent writer won the
		// race between the pre-check and the insert.
		return weekrecord.Record{}, err
	}
	rec.ID = id

	s.bus.Publish(refresh.Message{Refresh: true})
	return rec, nil
}

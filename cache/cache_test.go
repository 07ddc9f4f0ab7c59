package cache

import (
	"errors"
	"testing"
	"time"

	"weeklog/weekrecord"
)

type fakeLister struct {
	records []weekrecord.Record
	err     error
	calls   int
}

func (f *fakeLister) ListWeekRecords() ([]weekrecord.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]weekrecord.Record(nil), f.records...), nil
}

func record(week string) weekrecord.Record {
	start, _ := time.ParseInLocation("2006-01-02", week, time.Local)
	return weekrecord.Record{WeekStart: start}
}

func TestCache_FetchAllServesCachedValue(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{record("2024-01-07")}}
	c := New(lister)

	first, err := c.FetchAll()
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := c.FetchAll()
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if lister.calls != 1 {
		t.Fatalf("expected a single store query, got %d", lister.calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 record from both fetches, got %d and %d", len(first), len(second))
	}
	if !first[0].WeekStart.Equal(second[0].WeekStart) {
		t.Fatal("repeated fetches returned different results")
	}
}

func TestCache_InvalidateAndRefetchSeesNewRecords(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{record("2024-01-07")}}
	c := New(lister)

	if _, err := c.FetchAll(); err != nil {
		t.Fatalf("initial fetch: %v", err)
	}

	lister.records = append(lister.records, record("2024-01-14"))
	records, err := c.InvalidateAndRefetch()
	if err != nil {
		t.Fatalf("invalidate and refetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after refetch, got %d", len(records))
	}

	records, err = c.FetchAll()
	if err != nil {
		t.Fatalf("fetch after refetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected cached value to hold 2 records, got %d", len(records))
	}
}

func TestCache_FailedRefetchKeepsLastKnownGoodValue(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{record("2024-01-07")}}
	c := New(lister)

	if _, err := c.FetchAll(); err != nil {
		t.Fatalf("initial fetch: %v", err)
	}

	storeErr := errors.New("store unreachable")
	lister.err = storeErr
	if _, err := c.InvalidateAndRefetch(); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}

	cached, loaded := c.Cached()
	if !loaded {
		t.Fatal("expected cache to stay loaded after failed refetch")
	}
	if len(cached) != 1 || cached[0].WeekStart.Format("2006-01-02") != "2024-01-07" {
		t.Fatalf("expected last known-good value to survive, got %v", cached)
	}
}

func TestCache_ReturnedSliceIsACopy(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{record("2024-01-07")}}
	c := New(lister)

	records, err := c.FetchAll()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	records[0].ID = 999

	again, err := c.FetchAll()
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if again[0].ID == 999 {
		t.Fatal("mutating a returned slice leaked into the cache")
	}
}

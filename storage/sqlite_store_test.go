package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"weeklog/weekrecord"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "weeklog_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func weekStart(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func TestSQLiteStore_InsertAndFindWeekRecord(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	rec := weekrecord.Record{
		WeekStart: weekStart(t, "2024-01-07"),
		Hours:     [7]float64{8, 8, 8, 8, 8, 4, 0},
	}

	id, err := store.InsertWeekRecord(rec)
	if err != nil {
		t.Fatalf("insert week record: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive row id, got %d", id)
	}

	found, ok, err := store.FindByWeekStart(rec.WeekStart)
	if err != nil {
		t.Fatalf("find by week start: %v", err)
	}
	if !ok {
		t.Fatal("expected stored record to be found")
	}
	if found.ID != id {
		t.Fatalf("expected id %d, got %d", id, found.ID)
	}
	if found.Hours != rec.Hours {
		t.Fatalf("expected hours %v, got %v", rec.Hours, found.Hours)
	}
	if !found.WeekStart.Equal(rec.WeekStart) {
		t.Fatalf("expected week start %s, got %s", rec.WeekStart, found.WeekStart)
	}
}

func TestSQLiteStore_DuplicateWeekStartRejected(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	start := weekStart(t, "2024-01-07")

	if _, err := store.InsertWeekRecord(weekrecord.Record{WeekStart: start, Hours: [7]float64{8, 8, 8, 8, 8, 4, 0}}); err != nil {
		t.Fatalf("insert first record: %v", err)
	}

	_, err := store.InsertWeekRecord(weekrecord.Record{WeekStart: start, Hours: [7]float64{1, 1, 1, 1, 1, 1, 1}})
	if !errors.Is(err, ErrDuplicateWeek) {
		t.Fatalf("expected ErrDuplicateWeek, got %v", err)
	}

	count, err := store.CountWeekRecords()
	if err != nil {
		t.Fatalf("count week records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored record after duplicate insert, got %d", count)
	}
}

func TestSQLiteStore_ListOrdersByWeekStart(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	starts := []string{"2024-02-04", "2024-01-07", "2024-01-21", "2024-01-14"}
	for _, value := range starts {
		if _, err := store.InsertWeekRecord(weekrecord.Record{WeekStart: weekStart(t, value)}); err != nil {
			t.Fatalf("insert record for %s: %v", value, err)
		}
	}

	records, err := store.ListWeekRecords()
	if err != nil {
		t.Fatalf("list week records: %v", err)
	}
	if len(records) != len(starts) {
		t.Fatalf("expected %d records, got %d", len(starts), len(records))
	}

	wantOrder := []string{"2024-01-07", "2024-01-14", "2024-01-21", "2024-02-04"}
	for i, want := range wantOrder {
		got := records[i].WeekStart.Format("2006-01-02")
		if got != want {
			t.Fatalf("expected record %d to start %s, got %s", i, want, got)
		}
	}
}

func TestSQLiteStore_FindMissingWeekReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	_, ok, err := store.FindByWeekStart(weekStart(t, "2024-01-07"))
	if err != nil {
		t.Fatalf("find by week start: %v", err)
	}
	if ok {
		t.Fatal("expected no record for empty store")
	}
}

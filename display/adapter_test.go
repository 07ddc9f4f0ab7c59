package display

import (
	"errors"
	"testing"
	"time"

	"weeklog/cache"
	"weeklog/refresh"
	"weeklog/weekrecord"
)

type fakeLister struct {
	records []weekrecord.Record
	err     error
}

func (f *fakeLister) ListWeekRecords() ([]weekrecord.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]weekrecord.Record(nil), f.records...), nil
}

func record(id int64, week string, hours [7]float64) weekrecord.Record {
	start, _ := time.ParseInLocation("2006-01-02", week, time.Local)
	return weekrecord.Record{ID: id, WeekStart: start, Hours: hours}
}

func TestAdapter_InitialLoadBuildsRows(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{
		record(1, "2024-01-07", [7]float64{8, 8, 8, 8, 8, 4, 0}),
	}}
	adapter, err := NewAdapter(cache.New(lister), refresh.NewBus())
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer adapter.Close()

	rows := adapter.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].WeekStart != "2024-01-07" {
		t.Fatalf("expected week start 2024-01-07, got %s", rows[0].WeekStart)
	}
	if rows[0].Total != 44 {
		t.Fatalf("expected total 44, got %v", rows[0].Total)
	}
}

func TestAdapter_RefreshPropagatesToAllSubscribers(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{
		record(1, "2024-01-07", [7]float64{8, 8, 8, 8, 8, 4, 0}),
	}}
	bus := refresh.NewBus()

	// Two independent displays over the same store, each with its own cache.
	first, err := NewAdapter(cache.New(lister), bus)
	if err != nil {
		t.Fatalf("first adapter: %v", err)
	}
	defer first.Close()
	second, err := NewAdapter(cache.New(lister), bus)
	if err != nil {
		t.Fatalf("second adapter: %v", err)
	}
	defer second.Close()

	// A record inserted after both initial loads.
	lister.records = append(lister.records, record(2, "2024-01-14", [7]float64{7, 7, 7, 7, 7, 0, 0}))
	bus.Publish(refresh.Message{Refresh: true})

	for i, adapter := range []*Adapter{first, second} {
		rows := adapter.Rows()
		if len(rows) != 2 {
			t.Fatalf("adapter %d: expected 2 rows after refresh, got %d", i, len(rows))
		}
		if rows[1].WeekStart != "2024-01-14" {
			t.Fatalf("adapter %d: expected new week last, got %s", i, rows[1].WeekStart)
		}
	}
}

func TestAdapter_IgnoresNonRefreshMessages(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{}
	bus := refresh.NewBus()
	rendered := 0
	adapter, err := NewAdapter(cache.New(lister), bus, WithRenderHook(func([]Row) { rendered++ }))
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer adapter.Close()

	bus.Publish(refresh.Message{Refresh: false})
	if rendered != 0 {
		t.Fatalf("expected no render for refresh=false, got %d", rendered)
	}

	bus.Publish(refresh.Message{Refresh: true})
	if rendered != 1 {
		t.Fatalf("expected 1 render for refresh=true, got %d", rendered)
	}
}

func TestAdapter_FailedRefreshKeepsRowsAndReportsError(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{records: []weekrecord.Record{
		record(1, "2024-01-07", [7]float64{8, 0, 0, 0, 0, 0, 0}),
	}}
	bus := refresh.NewBus()
	var gotErr error
	adapter, err := NewAdapter(cache.New(lister), bus, WithErrorHook(func(err error) { gotErr = err }))
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer adapter.Close()

	storeErr := errors.New("store unreachable")
	lister.err = storeErr
	bus.Publish(refresh.Message{Refresh: true})

	if !errors.Is(gotErr, storeErr) {
		t.Fatalf("expected error hook to receive store error, got %v", gotErr)
	}
	rows := adapter.Rows()
	if len(rows) != 1 || rows[0].WeekStart != "2024-01-07" {
		t.Fatalf("expected previous rows to survive failed refresh, got %v", rows)
	}
}

func TestAdapter_CloseStopsRefreshes(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{}
	bus := refresh.NewBus()
	adapter, err := NewAdapter(cache.New(lister), bus)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}

	adapter.Close()
	lister.records = []weekrecord.Record{record(1, "2024-01-07", [7]float64{})}
	bus.Publish(refresh.Message{Refresh: true})

	if len(adapter.Rows()) != 0 {
		t.Fatal("closed adapter should not pick up refreshes")
	}
}

func TestDayHeaders_SundayThroughSaturday(t *testing.T) {
	t.Parallel()

	headers := DayHeaders()
	want := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if len(headers) != len(want) {
		t.Fatalf("expected %d headers, got %d", len(want), len(headers))
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Fatalf("expected header %d to be %s, got %s", i, want[i], headers[i])
		}
	}
}

// Package display maps stored week records into the row shape a table
// renders and keeps that row set in sync through the refresh bus.
package display

import (
	"sync"
	"time"

	"weeklog/cache"
	"weeklog/refresh"
	"weeklog/weekrecord"
)

// Row is one rendered table row: the week-start date plus one column per
// day in fixed Sunday through Saturday order.
type Row struct {
	ID        int64
	WeekStart string
	Hours     [7]float64
	Total     float64
}

// Adapter binds a query cache to the refresh bus. Each refresh message with
// Refresh set triggers an invalidate-and-refetch and replaces the full row
// set; rows are never mutated in place.
type Adapter struct {
	cache *cache.Cache
	sub   *refresh.Subscription

	onRender func([]Row)
	onError  func(error)

	mu   sync.Mutex
	rows []Row
}

type Option func(*Adapter)

// WithRenderHook invokes fn with the new row set after every refresh.
func WithRenderHook(fn func([]Row)) Option {
	return func(a *Adapter) { a.onRender = fn }
}

// WithErrorHook invokes fn when a refresh fails. The previous rows are kept.
func WithErrorHook(fn func(error)) Option {
	return func(a *Adapter) { a.onError = fn }
}

// NewAdapter loads the initial row set and subscribes to the bus.
func NewAdapter(c *cache.Cache, bus *refresh.Bus, opts ...Option) (*Adapter, error) {
	a := &Adapter{cache: c}
	for _, opt := range opts {
		opt(a)
	}

	records, err := c.FetchAll()
	if err != nil {
		return nil, err
	}
	a.rows = BuildRows(records)

	a.sub = bus.Subscribe(a.handle)
	return a, nil
}

// Rows returns the current row set.
func (a *Adapter) Rows() []Row {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Row(nil), a.rows...)
}

// Close cancels the bus subscription. The adapter keeps its last rows but
// receives no further refreshes.
func (a *Adapter) Close() {
	a.sub.Cancel()
}

func (a *Adapter) handle(msg refresh.Message) {
	if !msg.Refresh {
		return
	}

	records, err := a.cache.InvalidateAndRefetch()
	if err != nil {
		if a.onError != nil {
			a.onError(err)
		}
		return
	}

	rows := BuildRows(records)
	a.mu.Lock()
	a.rows = rows
	a.mu.Unlock()

	if a.onRender != nil {
		a.onRender(rows)
	}
}

// BuildRows maps records into display rows, preserving the store's
// ascending week-start order.
func BuildRows(records []weekrecord.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			ID:        rec.ID,
			WeekStart: rec.WeekStart.Format("2006-01-02"),
			Hours:     rec.Hours,
			Total:     rec.Total(),
		})
	}
	return rows
}

// DayHeaders returns the seven column labels in table order.
func DayHeaders() []string {
	headers := make([]string, 0, len(weekrecord.DayNames))
	for day := time.Sunday; day <= time.Saturday; day++ {
		headers = append(headers, weekrecord.DayNames[day])
	}
	return headers
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"weeklog/weekrecord"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

// ErrDuplicateWeek is returned when an insert collides with an existing
// record for the same week start. The UNIQUE index makes this authoritative
// even when two submissions race past the pre-insert existence check.
var ErrDuplicateWeek = errors.New("a record for this week already exists")

const dateLayout = "2006-01-02"

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS week_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	week_start TEXT NOT NULL UNIQUE,
	sunday REAL NOT NULL CHECK(sunday >= 0),
	monday REAL NOT NULL CHECK(monday >= 0),
	tuesday REAL NOT NULL CHECK(tuesday >= 0),
	wednesday REAL NOT NULL CHECK(wednesday >= 0),
	thursday REAL NOT NULL CHECK(thursday >= 0),
	friday REAL NOT NULL CHECK(friday >= 0),
	saturday REAL NOT NULL CHECK(saturday >= 0),
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertWeekRecord inserts one week record and returns the new row ID.
// A week-start collision returns ErrDuplicateWeek and writes nothing.
func (s *SQLiteStore) InsertWeekRecord(rec weekrecord.Record) (int64, error) {
	const insertStmt = `
INSERT OR IGNORE INTO week_records (
	week_start,
	sunday,
	monday,
	tuesday,
	wednesday,
	thursday,
	friday,
	saturday
) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	res, err := s.db.Exec(
		insertStmt,
		rec.WeekStart.Format(dateLayout),
		rec.Hours[time.Sunday],
		rec.Hours[time.Monday],
		rec.Hours[time.Tuesday],
		rec.Hours[time.Wednesday],
		rec.Hours[time.Thursday],
		rec.Hours[time.Friday],
		rec.Hours[time.Saturday],
	)
	if err != nil {
		return 0, fmt.Errorf("insert week record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read inserted row count: %w", err)
	}
	if rows == 0 {
		return 0, ErrDuplicateWeek
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid inserted row id %d", id)
	}
	return id, nil
}

// FindByWeekStart returns the record stored for the given week start, if any.
func (s *SQLiteStore) FindByWeekStart(weekStart time.Time) (weekrecord.Record, bool, error) {
	const query = `
SELECT
	id,
	week_start,
	sunday,
	monday,
	tuesday,
	wednesday,
	thursday,
	friday,
	saturday
FROM week_records
WHERE week_start = ?;
`

	rec, err := scanWeekRecord(s.db.QueryRow(query, weekStart.Format(dateLayout)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return weekrecord.Record{}, false, nil
		}
		return weekrecord.Record{}, false, fmt.Errorf("query week record %s: %w", weekStart.Format(dateLayout), err)
	}
	return rec, true, nil
}

// ListWeekRecords returns all week records ordered ascending by week start.
func (s *SQLiteStore) ListWeekRecords() ([]weekrecord.Record, error) {
	const query = `
SELECT
	id,
	week_start,
	sunday,
	monday,
	tuesday,
	wednesday,
	thursday,
	friday,
	saturday
FROM week_records
ORDER BY week_start;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query week records: %w", err)
	}
	defer rows.Close()

	records := make([]weekrecord.Record, 0, 64)
	for rows.Next() {
		rec, err := scanWeekRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan week record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate week records: %w", err)
	}

	return records, nil
}

// CountWeekRecords returns the number of stored week records.
func (s *SQLiteStore) CountWeekRecords() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM week_records;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count week records: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeekRecord(row rowScanner) (weekrecord.Record, error) {
	var (
		rec          weekrecord.Record
		weekStartRaw string
	)

	if err := row.Scan(
		&rec.ID,
		&weekStartRaw,
		&rec.Hours[time.Sunday],
		&rec.Hours[time.Monday],
		&rec.Hours[time.Tuesday],
		&rec.Hours[time.Wednesday],
		&rec.Hours[time.Thursday],
		&rec.Hours[time.Friday],
		&rec.Hours[time.Saturday],
	); err != nil {
		return weekrecord.Record{}, err
	}

	weekStart, err := time.ParseInLocation(dateLayout, weekStartRaw, time.Local)
	if err != nil {
		return weekrecord.Record{}, fmt.Errorf("parse week start %q: %w", weekStartRaw, err)
	}
	rec.WeekStart = weekStart

	return rec, nil
}

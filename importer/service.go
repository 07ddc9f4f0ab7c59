// Package importer loads week records in bulk from CSV or Excel source
// files. Rows colliding with an already stored week are counted as
// duplicates, not errors.
package importer

import (
	"errors"
	"time"

	"weeklog/storage"
	"weeklog/weekrecord"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsImported   int
	Duplicates     int
}

// Store is the slice of the record store the importer writes through.
type Store interface {
	InsertWeekRecord(rec weekrecord.Record) (int64, error)
}

// Run reads every path, parses its rows, and inserts them one by one.
// A parse error aborts the run; a duplicate week is skipped and counted.
func Run(paths []string, format string, store Store, anchor time.Weekday) (*Result, error) {
	result := &Result{}
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(records)
		for _, record := range records {
			rec, err := parseWeekRecord(record, anchor)
			if err != nil {
				return nil, err
			}

			if _, err := store.InsertWeekRecord(rec); err != nil {
				if errors.Is(err, storage.ErrDuplicateWeek) {
					result.Duplicates++
					continue
				}
				return nil, err
			}
			result.RowsImported++
		}
	}

	return result, nil
}

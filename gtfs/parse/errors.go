package parse

import "fmt"

// ErrBadCsvRow wraps a row-level parse failure with its source file and
// 1-indexed row number. Defined here, rather than in package gtfs, since
// the table parsers that construct it cannot import gtfs without
// creating an import cycle (gtfs already imports gtfs/parse).
type ErrBadCsvRow struct {
	File string
	Row  int
	Err  error
}

func (e *ErrBadCsvRow) Error() string {
	return fmt.Sprintf("%s: row %d: %s", e.File, e.Row, e.Err)
}

func (e *ErrBadCsvRow) Unwrap() error { return e.Err }

// ErrBadTimeFormat is returned when an arrival_time/departure_time value
// is not three colon-separated integer fields.
type ErrBadTimeFormat struct {
	Value string
}

func (e *ErrBadTimeFormat) Error() string {
	return fmt.Sprintf("bad time format: %q", e.Value)
}

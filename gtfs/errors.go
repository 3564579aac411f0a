package gtfs

import (
	"fmt"

	"github.com/transitdata/raptor-gtfs/gtfs/parse"
)

// ErrMissingRequiredFile is returned when one of stops.txt, routes.txt,
// trips.txt or stop_times.txt is absent from the feed directory.
type ErrMissingRequiredFile struct {
	File string
}

func (e *ErrMissingRequiredFile) Error() string {
	return fmt.Sprintf("missing required file: %s", e.File)
}

// ErrBadCsvRow wraps a row-level parse failure with its source file and
// 1-indexed row number. The type lives in gtfs/parse, which must
// construct it without importing this package; the alias keeps it
// reachable as gtfs.ErrBadCsvRow for callers that only import gtfs.
type ErrBadCsvRow = parse.ErrBadCsvRow

// ErrBadTimeFormat is returned when an arrival_time/departure_time value
// is not three colon-separated integer fields. Also defined in
// gtfs/parse for the same import-cycle reason as ErrBadCsvRow.
type ErrBadTimeFormat = parse.ErrBadTimeFormat

// ErrBadCoordinate is returned when a stop's lat/lon falls outside the
// valid WGS-84 range.
type ErrBadCoordinate struct {
	StopID string
	Lat    float64
	Lon    float64
}

func (e *ErrBadCoordinate) Error() string {
	return fmt.Sprintf("stop %q has invalid coordinate (%g, %g)", e.StopID, e.Lat, e.Lon)
}

// ErrUnknownID is returned by the internal-ID accessors when the given
// external ID was never seen while reading the feed.
type ErrUnknownID struct {
	Kind string // "stop", "route" or "trip"
	ID   string
}

func (e *ErrUnknownID) Error() string {
	return fmt.Sprintf("unknown %s id: %q", e.Kind, e.ID)
}

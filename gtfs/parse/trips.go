package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type tripCSV struct {
	ID          string `csv:"trip_id"`
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	DirectionID int8   `csv:"direction_id"`
}

// Trips parses trips.txt. direction_id is optional in GTFS; a missing
// column leaves every trip at direction 0.
func Trips(data io.Reader) ([]model.Trip, error) {
	rows := []*tripCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling trips csv")
	}

	seen := map[string]bool{}
	out := make([]model.Trip, 0, len(rows))
	for i, t := range rows {
		if t.ID == "" {
			return nil, &ErrBadCsvRow{File: "trips.txt", Row: i + 1, Err: errors.New("empty trip_id")}
		}
		if seen[t.ID] {
			return nil, &ErrBadCsvRow{File: "trips.txt", Row: i + 1, Err: errors.Errorf("repeated trip_id %q", t.ID)}
		}
		seen[t.ID] = true

		if t.RouteID == "" {
			return nil, &ErrBadCsvRow{File: "trips.txt", Row: i + 1, Err: errors.Errorf("trip_id %q has no route_id", t.ID)}
		}
		if t.DirectionID != 0 && t.DirectionID != 1 {
			return nil, &ErrBadCsvRow{File: "trips.txt", Row: i + 1, Err: errors.Errorf("trip_id %q has invalid direction_id: %d", t.ID, t.DirectionID)}
		}

		out = append(out, model.Trip{
			ID:          t.ID,
			RouteID:     t.RouteID,
			ServiceID:   t.ServiceID,
			DirectionID: t.DirectionID,
		})
	}

	return out, nil
}

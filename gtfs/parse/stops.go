package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type stopCSV struct {
	ID   string  `csv:"stop_id"`
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}

// Stops parses stops.txt.
func Stops(data io.Reader) ([]model.Stop, error) {
	rows := []*stopCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling stops csv")
	}

	seen := map[string]bool{}
	out := make([]model.Stop, 0, len(rows))
	for i, s := range rows {
		if s.ID == "" {
			return nil, &ErrBadCsvRow{File: "stops.txt", Row: i + 1, Err: errors.New("empty stop_id")}
		}
		if seen[s.ID] {
			return nil, &ErrBadCsvRow{File: "stops.txt", Row: i + 1, Err: errors.Errorf("repeated stop_id %q", s.ID)}
		}
		seen[s.ID] = true

		out = append(out, model.Stop{
			ID:   s.ID,
			Name: s.Name,
			Lat:  s.Lat,
			Lon:  s.Lon,
		})
	}

	return out, nil
}

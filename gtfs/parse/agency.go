package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type agencyCSV struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	Timezone string `csv:"agency_timezone"`
}

// Agencies parses agency.txt (or agencies.txt). A nil reader means the
// file was absent; agency.txt is conditionally required by GTFS but the
// engine only ever reads agency_id off routes, so an empty result is
// accepted here; the validator only counts agencies in its stats.
func Agencies(data io.Reader) ([]model.Agency, error) {
	if data == nil {
		return nil, nil
	}

	rows := []*agencyCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling agency csv")
	}

	seen := map[string]bool{}
	out := make([]model.Agency, 0, len(rows))
	for i, a := range rows {
		if seen[a.ID] {
			return nil, &ErrBadCsvRow{File: "agency.txt", Row: i + 1, Err: errors.Errorf("duplicated agency_id: %q", a.ID)}
		}
		seen[a.ID] = true

		out = append(out, model.Agency{
			ID:       a.ID,
			Name:     a.Name,
			URL:      a.URL,
			Timezone: a.Timezone,
		})
	}

	return out, nil
}

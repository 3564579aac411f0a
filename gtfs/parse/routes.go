package parse

import (
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type routeCSV struct {
	ID        string `csv:"route_id"`
	AgencyID  string `csv:"agency_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      string `csv:"route_type"`
}

func legalRouteType(t model.RouteType) bool {
	if t >= 0 && t <= 7 {
		return true
	}
	return t == 11 || t == 12
}

// Routes parses routes.txt.
func Routes(data io.Reader) ([]model.Route, error) {
	rows := []*routeCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling routes csv")
	}

	seen := map[string]bool{}
	out := make([]model.Route, 0, len(rows))
	for i, r := range rows {
		if r.ID == "" {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.New("route has no route_id")}
		}
		if seen[r.ID] {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.Errorf("repeated route_id %q", r.ID)}
		}
		seen[r.ID] = true

		if r.ShortName == "" && r.LongName == "" {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.Errorf("route_id %q has no short_name or long_name", r.ID)}
		}

		if r.Type == "" {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.Errorf("route_id %q has no route_type", r.ID)}
		}
		routeType, err := strconv.Atoi(r.Type)
		if err != nil {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.Wrapf(err, "route_id %q has invalid route_type", r.ID)}
		}
		if !legalRouteType(model.RouteType(routeType)) {
			return nil, &ErrBadCsvRow{File: "routes.txt", Row: i + 1, Err: errors.Errorf("route_id %q has invalid route_type: %d", r.ID, routeType)}
		}

		out = append(out, model.Route{
			ID:        r.ID,
			AgencyID:  r.AgencyID,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Type:      model.RouteType(routeType),
		})
	}

	return out, nil
}

package parse

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type calendarCSV struct {
	ServiceID string `csv:"service_id"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
	Monday    int8   `csv:"monday"`
	Tuesday   int8   `csv:"tuesday"`
	Wednesday int8   `csv:"wednesday"`
	Thursday  int8   `csv:"thursday"`
	Friday    int8   `csv:"friday"`
	Saturday  int8   `csv:"saturday"`
	Sunday    int8   `csv:"sunday"`
}

func dayFlag(v int8, name string) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Errorf("invalid %s value: %d", name, v)
	}
}

// Calendars parses calendar.txt. A nil reader (file absent) yields an
// empty result; service definitions may come entirely from
// calendar_dates.txt instead.
func Calendars(data io.Reader) ([]model.Calendar, error) {
	if data == nil {
		return nil, nil
	}

	rows := []*calendarCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling calendar csv")
	}

	seen := map[string]bool{}
	out := make([]model.Calendar, 0, len(rows))
	for i, c := range rows {
		if c.ServiceID == "" {
			return nil, &ErrBadCsvRow{File: "calendar.txt", Row: i + 1, Err: errors.New("empty service_id")}
		}
		if seen[c.ServiceID] {
			return nil, &ErrBadCsvRow{File: "calendar.txt", Row: i + 1, Err: errors.Errorf("repeated service_id %q", c.ServiceID)}
		}
		seen[c.ServiceID] = true

		var weekday [7]bool
		days := []struct {
			v    int8
			name string
		}{
			{c.Monday, "monday"}, {c.Tuesday, "tuesday"}, {c.Wednesday, "wednesday"},
			{c.Thursday, "thursday"}, {c.Friday, "friday"}, {c.Saturday, "saturday"}, {c.Sunday, "sunday"},
		}
		for j, d := range days {
			flag, err := dayFlag(d.v, d.name)
			if err != nil {
				return nil, &ErrBadCsvRow{File: "calendar.txt", Row: i + 1, Err: errors.Wrapf(err, "service_id %q", c.ServiceID)}
			}
			weekday[j] = flag
		}

		if _, err := time.ParseInLocation("20060102", c.StartDate, time.UTC); err != nil {
			return nil, &ErrBadCsvRow{File: "calendar.txt", Row: i + 1, Err: errors.Wrap(err, "parsing start_date")}
		}
		if _, err := time.ParseInLocation("20060102", c.EndDate, time.UTC); err != nil {
			return nil, &ErrBadCsvRow{File: "calendar.txt", Row: i + 1, Err: errors.Wrap(err, "parsing end_date")}
		}

		out = append(out, model.Calendar{
			ServiceID: c.ServiceID,
			Weekday:   weekday,
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
		})
	}

	return out, nil
}

package parse

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type calendarDateCSV struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int8   `csv:"exception_type"`
}

// CalendarDates parses calendar_dates.txt. A nil reader yields an empty
// result.
func CalendarDates(data io.Reader) ([]model.CalendarDate, error) {
	if data == nil {
		return nil, nil
	}

	rows := []*calendarDateCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling calendar_dates csv")
	}

	seen := map[string]bool{}
	out := make([]model.CalendarDate, 0, len(rows))
	for i, cd := range rows {
		if cd.ExceptionType != int8(model.ExceptionAdded) && cd.ExceptionType != int8(model.ExceptionRemoved) {
			return nil, &ErrBadCsvRow{File: "calendar_dates.txt", Row: i + 1, Err: errors.Errorf("illegal exception_type: %d", cd.ExceptionType)}
		}

		if _, err := time.ParseInLocation("20060102", cd.Date, time.UTC); err != nil {
			return nil, &ErrBadCsvRow{File: "calendar_dates.txt", Row: i + 1, Err: errors.Wrapf(err, "parsing date %q", cd.Date)}
		}

		key := cd.ServiceID + "\x00" + cd.Date
		if seen[key] {
			return nil, &ErrBadCsvRow{File: "calendar_dates.txt", Row: i + 1, Err: errors.Errorf("duplicate service/date: %s/%s", cd.ServiceID, cd.Date)}
		}
		seen[key] = true

		out = append(out, model.CalendarDate{
			ServiceID:     cd.ServiceID,
			Date:          cd.Date,
			ExceptionType: model.ExceptionType(cd.ExceptionType),
		})
	}

	return out, nil
}

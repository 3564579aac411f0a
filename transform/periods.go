package transform

import (
	"sort"

	"github.com/transitdata/raptor-gtfs/gtfs"
)

// Period is a named grouping of service IDs sharing a weekly pattern
// (spec §4.3's period split).
type Period struct {
	Name       string
	ServiceIDs map[string]bool
}

// weekday indices into model.Calendar.Weekday, Monday=0..Sunday=6.
const (
	monday = iota
	tuesday
	wednesday
	thursday
	friday
	saturday
	sunday
)

// classifyPeriods groups service IDs into named periods by weekday
// bitmask: every weekday active and no weekend day is "weekday", Saturday
// alone is "saturday", Sunday alone is "sunday", both weekend days and no
// weekday is "weekend", all seven days is "daily". Anything else falls
// into a "custom" bucket, since GTFS calendars are free to mix days in
// ways no single name captures. Service IDs that only appear via
// calendar_dates.txt (no calendar.txt row) each get their own period,
// named after the service ID, since there is no weekly pattern to group
// them by.
func classifyPeriods(reader *gtfs.Reader) []Period {
	byName := map[string]map[string]bool{}
	addTo := func(name, serviceID string) {
		set, ok := byName[name]
		if !ok {
			set = map[string]bool{}
			byName[name] = set
		}
		set[serviceID] = true
	}

	seen := map[string]bool{}
	for _, c := range reader.Calendars {
		seen[c.ServiceID] = true
		addTo(periodName(c.Weekday), c.ServiceID)
	}
	for _, cd := range reader.CalendarDates {
		if seen[cd.ServiceID] {
			continue
		}
		seen[cd.ServiceID] = true
		addTo(cd.ServiceID, cd.ServiceID)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	periods := make([]Period, len(names))
	for i, name := range names {
		periods[i] = Period{Name: name, ServiceIDs: byName[name]}
	}
	return periods
}

func periodName(w [7]bool) string {
	weekdaysOn := w[monday] && w[tuesday] && w[wednesday] && w[thursday] && w[friday]
	weekdaysOff := !w[monday] && !w[tuesday] && !w[wednesday] && !w[thursday] && !w[friday]
	weekendOn := w[saturday] && w[sunday]
	weekendOff := !w[saturday] && !w[sunday]

	switch {
	case weekdaysOn && weekendOn:
		return "daily"
	case weekdaysOn && weekendOff:
		return "weekday"
	case weekdaysOff && weekendOn:
		return "weekend"
	case weekdaysOff && w[saturday] && !w[sunday]:
		return "saturday"
	case weekdaysOff && w[sunday] && !w[saturday]:
		return "sunday"
	default:
		return "custom"
	}
}

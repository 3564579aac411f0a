package gtfs

import "github.com/transitdata/raptor-gtfs/gtfs/parse"

// ParseTime parses a GTFS HH:MM:SS value into seconds since service-day
// midnight. HH is unbounded (values >= 24 denote next-day service, per
// spec §4.1); any other deviation from three colon-separated integer
// fields is ErrBadTimeFormat.
func ParseTime(s string) (int, error) {
	return parse.ParseTime(s)
}

package parse

import (
	"strconv"
	"strings"
)

// ParseTime parses a GTFS HH:MM:SS value into seconds since service-day
// midnight. HH is unbounded (values >= 24 denote next-day service, per
// spec §4.1); any other deviation from three colon-separated integer
// fields is ErrBadTimeFormat.
func ParseTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, &ErrBadTimeFormat{Value: s}
	}

	hms := [3]int{}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, &ErrBadTimeFormat{Value: s}
		}
		hms[i] = v
	}

	if hms[0] < 0 || hms[1] < 0 || hms[1] > 59 || hms[2] < 0 || hms[2] > 59 {
		return 0, &ErrBadTimeFormat{Value: s}
	}

	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}

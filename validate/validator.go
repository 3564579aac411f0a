package validate

import (
	"fmt"
	"sort"

	"github.com/transitdata/raptor-gtfs/gtfs"
)

// Validator runs consistency checks over a parsed feed.
type Validator struct {
	reader *gtfs.Reader

	errors   []string
	warnings []string
}

// New builds a Validator for the given reader.
func New(reader *gtfs.Reader) *Validator {
	return &Validator{reader: reader}
}

// Validate runs every check and returns the resulting Report. It never
// returns an error itself; feed problems are reported, not raised.
func (v *Validator) Validate() *Report {
	v.validateStops()
	v.validateRoutes()
	v.validateTrips()
	v.validateStopTimes()
	v.validateTransfers()

	return &Report{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
		Stats: map[string]int{
			"agencies":   len(v.reader.Agencies),
			"stops":      len(v.reader.Stops),
			"routes":     len(v.reader.Routes),
			"trips":      len(v.reader.Trips),
			"stop_times": len(v.reader.StopTimes),
			"transfers":  len(v.reader.Transfers),
		},
	}
}

func (v *Validator) errorf(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateStops() {
	for _, s := range v.reader.Stops {
		if s.Lat < -90 || s.Lat > 90 || s.Lon < -180 || s.Lon > 180 {
			err := &gtfs.ErrBadCoordinate{StopID: s.ID, Lat: s.Lat, Lon: s.Lon}
			v.errorf("%s", err.Error())
		}
		if s.Name == "" {
			v.warnf("stop %s has empty name", s.ID)
		}
	}
}

func (v *Validator) validateRoutes() {
	if len(v.reader.Routes) == 0 {
		v.errorf("no routes found in feed")
	}
}

func (v *Validator) validateTrips() {
	routeIDs := make(map[string]bool, len(v.reader.Routes))
	for _, r := range v.reader.Routes {
		routeIDs[r.ID] = true
	}

	for _, t := range v.reader.Trips {
		if !routeIDs[t.RouteID] {
			v.errorf("trip %s references non-existent route %s", t.ID, t.RouteID)
		}
	}
}

func (v *Validator) validateStopTimes() {
	stopIDs := make(map[string]bool, len(v.reader.Stops))
	for _, s := range v.reader.Stops {
		stopIDs[s.ID] = true
	}
	tripIDs := make(map[string]bool, len(v.reader.Trips))
	for _, t := range v.reader.Trips {
		tripIDs[t.ID] = true
	}

	byTrip := map[string][]int{}
	for i, st := range v.reader.StopTimes {
		byTrip[st.TripID] = append(byTrip[st.TripID], i)
	}

	// Iterate in a stable order so error/warning ordering doesn't
	// depend on Go's randomized map iteration.
	tripOrder := make([]string, 0, len(byTrip))
	for tripID := range byTrip {
		tripOrder = append(tripOrder, tripID)
	}
	sort.Strings(tripOrder)

	for _, tripID := range tripOrder {
		indices := byTrip[tripID]

		if !tripIDs[tripID] {
			v.errorf("stop_times reference non-existent trip %s", tripID)
			continue
		}

		sequences := make([]int, len(indices))
		for i, idx := range indices {
			sequences[i] = v.reader.StopTimes[idx].StopSequence
		}
		if !sort.IntsAreSorted(sequences) {
			v.errorf("trip %s has unordered stop_sequence values: %v", tripID, sequences)
		}

		prevDeparture := -1
		for i, idx := range indices {
			st := v.reader.StopTimes[idx]

			if !stopIDs[st.StopID] {
				v.errorf("stop_time for trip %s references non-existent stop %s", tripID, st.StopID)
			}

			if st.Arrival < prevDeparture {
				v.warnf("trip %s has decreasing times at stop %s: %d -> %d", tripID, st.StopID, prevDeparture, st.Arrival)
			}
			prevDeparture = st.Departure

			if i == 0 && st.Arrival < 0 {
				v.errorf("trip %s missing first arrival time", tripID)
			}
			if i == len(indices)-1 && st.Departure < 0 {
				v.errorf("trip %s missing last departure time", tripID)
			}
		}
	}
}

func (v *Validator) validateTransfers() {
	stopIDs := make(map[string]bool, len(v.reader.Stops))
	for _, s := range v.reader.Stops {
		stopIDs[s.ID] = true
	}

	for _, t := range v.reader.Transfers {
		// Unknown endpoints don't block the run: the transformer drops
		// such transfers.
		if !stopIDs[t.FromStopID] {
			v.warnf("transfer references non-existent from_stop %s", t.FromStopID)
		}
		if !stopIDs[t.ToStopID] {
			v.warnf("transfer references non-existent to_stop %s", t.ToStopID)
		}

		if t.MinTransferTime < 0 {
			v.warnf("transfer %s->%s has negative time: %d", t.FromStopID, t.ToStopID, t.MinTransferTime)
		} else if t.MinTransferTime > 3600 {
			v.warnf("transfer %s->%s has excessive time: %ds", t.FromStopID, t.ToStopID, t.MinTransferTime)
		}
	}
}

package transform

import (
	"sort"
	"strings"

	"github.com/transitdata/raptor-gtfs/gtfs"
	"github.com/transitdata/raptor-gtfs/model"
)

type routeDirKey struct {
	routeID     string
	directionID int8
}

// buildRoutes derives one Route per (route_id, direction_id), with the
// modal stop sequence across that group's trips as its canonical
// pattern, ties broken lexicographically (spec §4.3). Internal route
// IDs are freshly assigned by sort order of the key, disambiguating
// directions of the same GTFS route_id rather than reusing the
// reader's route_id_internal (spec §9's recommended resolution).
func buildRoutes(reader *gtfs.Reader) ([]Route, error) {
	routesByID := make(map[string]model.Route, len(reader.Routes))
	for _, r := range reader.Routes {
		routesByID[r.ID] = r
	}

	tripsByKey := map[routeDirKey][]model.Trip{}
	for _, t := range reader.Trips {
		key := routeDirKey{t.RouteID, t.DirectionID}
		tripsByKey[key] = append(tripsByKey[key], t)
	}

	stopSeqByTrip := map[string][]string{}
	for _, st := range reader.StopTimes {
		stopSeqByTrip[st.TripID] = append(stopSeqByTrip[st.TripID], st.StopID)
	}

	keys := make([]routeDirKey, 0, len(tripsByKey))
	for k := range tripsByKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].routeID != keys[j].routeID {
			return keys[i].routeID < keys[j].routeID
		}
		return keys[i].directionID < keys[j].directionID
	})

	routes := make([]Route, 0, len(keys))
	for _, key := range keys {
		sequences := make([][]string, 0, len(tripsByKey[key]))
		for _, t := range tripsByKey[key] {
			if seq, ok := stopSeqByTrip[t.ID]; ok && len(seq) > 0 {
				sequences = append(sequences, seq)
			}
		}
		if len(sequences) == 0 {
			continue
		}

		canonical := canonicalSequence(sequences)

		stopIDs := make([]uint32, len(canonical))
		for i, extID := range canonical {
			id, err := reader.InternalStopID(extID)
			if err != nil {
				return nil, err
			}
			stopIDs[i] = id
		}

		gtfsRoute := routesByID[key.routeID]
		routes = append(routes, Route{
			ExternalID:  key.routeID,
			DirectionID: key.directionID,
			Name:        gtfsRoute.Name(),
			StopIDs:     stopIDs,
		})
	}

	for i := range routes {
		routes[i].ID = uint32(i)
	}

	return routes, nil
}

// canonicalSequence picks the modal stop sequence, breaking ties by
// lexicographically comparing the joined stop ID tuples.
func canonicalSequence(sequences [][]string) []string {
	counts := map[string]int{}
	order := map[string][]string{}
	for _, seq := range sequences {
		key := strings.Join(seq, "\x00")
		counts[key]++
		if _, ok := order[key]; !ok {
			order[key] = seq
		}
	}

	var best string
	bestCount := -1
	for key, count := range counts {
		switch {
		case count > bestCount:
			best = key
			bestCount = count
		case count == bestCount && key < best:
			best = key
		}
	}

	return order[best]
}

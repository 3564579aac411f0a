package transform

import (
	"sort"

	"github.com/transitdata/raptor-gtfs/gtfs"
)

// buildStops produces one Stop per reader stop (in internal-ID order),
// with RouteIDs set to the sorted list of routes whose canonical
// pattern calls at it (spec §4.3's stop index build).
func buildStops(reader *gtfs.Reader, routes []Route) []Stop {
	routesByStop := map[uint32][]uint32{}
	for _, r := range routes {
		for _, stopID := range r.StopIDs {
			routesByStop[stopID] = append(routesByStop[stopID], r.ID)
		}
	}
	for stopID, ids := range routesByStop {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		routesByStop[stopID] = dedupSortedUint32(ids)
	}

	stops := make([]Stop, len(reader.Stops))
	for i, s := range reader.Stops {
		stops[i] = Stop{
			ID:         uint32(i),
			ExternalID: s.ID,
			Name:       s.Name,
			Lat:        s.Lat,
			Lon:        s.Lon,
			RouteIDs:   routesByStop[uint32(i)],
		}
	}

	return stops
}

func dedupSortedUint32(sorted []uint32) []uint32 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

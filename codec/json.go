package codec

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/transitdata/raptor-gtfs/transform"
)

// jsonRoute and jsonStop mirror transform.Route/transform.Stop field
// for field, giving the debug JSON output stable, explicit keys
// independent of the in-memory struct's Go field names. Fields are
// declared in key order, since encoding/json writes struct fields in
// declaration order.
type jsonTrip struct {
	Times  []int32 `json:"times"`
	TripID uint32  `json:"trip_id_internal"`
}

type jsonRoute struct {
	RouteID uint32     `json:"route_id_internal"`
	Name    string     `json:"route_name"`
	StopIDs []uint32   `json:"stop_ids"`
	Trips   []jsonTrip `json:"trips"`
}

type jsonTransfer struct {
	Target   uint32 `json:"target_stop_id"`
	WalkTime int    `json:"walk_time_sec"`
}

type jsonStop struct {
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	Name      string         `json:"name"`
	RouteIDs  []uint32       `json:"route_ids"`
	StopID    uint32         `json:"stop_id_internal"`
	Transfers []jsonTransfer `json:"transfers"`
}

// WriteRoutesJSON writes routes.json: the same routes.bin content as
// pretty, sorted-key JSON for debugging (spec §6).
func WriteRoutesJSON(w io.Writer, routes []transform.Route) error {
	out := make([]jsonRoute, len(routes))
	for i, r := range routes {
		trips := make([]jsonTrip, len(r.Trips))
		for j, t := range r.Trips {
			trips[j] = jsonTrip{TripID: t.ID, Times: t.Times}
		}
		out[i] = jsonRoute{RouteID: r.ID, Name: r.Name, StopIDs: r.StopIDs, Trips: trips}
	}
	return encodeJSON(w, out)
}

// WriteStopsJSON writes stops.json.
func WriteStopsJSON(w io.Writer, stops []transform.Stop) error {
	out := make([]jsonStop, len(stops))
	for i, s := range stops {
		transfers := make([]jsonTransfer, len(s.Transfers))
		for j, t := range s.Transfers {
			transfers[j] = jsonTransfer{Target: t.Target, WalkTime: t.WalkTime}
		}
		out[i] = jsonStop{StopID: s.ID, Name: s.Name, Lat: s.Lat, Lon: s.Lon, RouteIDs: s.RouteIDs, Transfers: transfers}
	}
	return encodeJSON(w, out)
}

// WriteIndexJSON writes index.json.
func WriteIndexJSON(w io.Writer, idx *Index) error {
	stopToRoutes := make(map[string][]uint32, len(idx.StopToRoutes))
	for stopID, routeIDs := range idx.StopToRoutes {
		stopToRoutes[uint32Key(stopID)] = routeIDs
	}
	routeOffsets := make(map[string]uint64, len(idx.RouteOffsets))
	for routeID, offset := range idx.RouteOffsets {
		routeOffsets[uint32Key(routeID)] = offset
	}
	stopOffsets := make(map[string]uint64, len(idx.StopOffsets))
	for stopID, offset := range idx.StopOffsets {
		stopOffsets[uint32Key(stopID)] = offset
	}

	return encodeJSON(w, map[string]any{
		"stop_to_routes": stopToRoutes,
		"route_offsets":  routeOffsets,
		"stop_offsets":   stopOffsets,
	})
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func uint32Key(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

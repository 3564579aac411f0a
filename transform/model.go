// Package transform implements the Transformer (C3): deriving canonical
// route patterns, aligning trips to them, building the stop/route cross
// reference, and assembling footpath transfers.
package transform

import "math"

// TimeMissing is the in-memory sentinel for a canonical stop position a
// trip does not serve. It never reaches the binary codec: partial trips
// are filtered out before C4 unless AllowPartialTrips is set, per the
// conservative rule adopted for the delta-encoded time stream.
const TimeMissing = math.MaxInt32

// Transfer is a resolved, internal-ID walking edge out of a Stop.
type Transfer struct {
	Target   uint32
	WalkTime int
}

// Trip is one vehicle run aligned to its Route's canonical pattern.
// Times has the same length as the owning Route's StopIDs; an entry is
// TimeMissing wherever the trip does not serve that canonical stop.
type Trip struct {
	ID         uint32
	ExternalID string
	Times      []int32
	Partial    bool
}

// Route is one (route_id, direction_id) pair with its canonical stop
// pattern and the trips that run it, sorted by first defined time.
type Route struct {
	ID          uint32
	ExternalID  string
	DirectionID int8
	Name        string
	StopIDs     []uint32
	Trips       []Trip
}

// Stop augments a reader stop with the routes that call at it and its
// resolved outgoing transfers.
type Stop struct {
	ID         uint32
	ExternalID string
	Name       string
	Lat        float64
	Lon        float64
	RouteIDs   []uint32
	Transfers  []Transfer
}

// Network is the complete transformed graph handed to the binary codec.
type Network struct {
	Routes []Route
	Stops  []Stop
}

package raptor

import (
	"sort"

	"github.com/transitdata/raptor-gtfs/transform"
)

// Query is a single earliest-arrival request (spec §4.5).
type Query struct {
	Source    uint32
	Target    uint32
	Departure int64
	MaxRounds int
}

// Engine runs RAPTOR queries against one immutable Network. Once built,
// an Engine holds no mutable state of its own — every Query call
// allocates its own round state — so concurrent queries over the same
// Engine are race-free (spec §5).
type Engine struct {
	network     *transform.Network
	routesByID  map[uint32]*transform.Route
	stopsByID   map[uint32]*transform.Stop
	routesOfStop map[uint32][]uint32
}

// New builds an Engine from a transformed Network.
func New(network *transform.Network) *Engine {
	e := &Engine{
		network:      network,
		routesByID:   make(map[uint32]*transform.Route, len(network.Routes)),
		stopsByID:    make(map[uint32]*transform.Stop, len(network.Stops)),
		routesOfStop: make(map[uint32][]uint32, len(network.Stops)),
	}
	for i := range network.Routes {
		e.routesByID[network.Routes[i].ID] = &network.Routes[i]
	}
	for i := range network.Stops {
		s := &network.Stops[i]
		e.stopsByID[s.ID] = s
		e.routesOfStop[s.ID] = s.RouteIDs
	}
	return e
}

// Run executes the round-based earliest-arrival search and returns the
// best journey found, or nil if the target is unreachable within
// q.MaxRounds rounds (spec §4.5's NoJourneyFound — not an error).
func (e *Engine) Run(q Query) *Journey {
	maxRounds := q.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	rounds := make([]*roundState, 0, maxRounds+1)
	r0 := newRoundState()
	r0.arrival[q.Source] = q.Departure
	rounds = append(rounds, r0)
	marked := []uint32{q.Source}

	for k := 1; k <= maxRounds && len(marked) > 0; k++ {
		prev := rounds[k-1]
		cur := cloneRound(prev)

		queue := e.routeQueue(marked)
		markedThisRound := map[uint32]bool{}

		for _, routeID := range queue {
			route := e.routesByID[routeID]
			e.scanRoute(route, prev, cur, markedThisRound)
		}

		e.relaxFootpaths(cur, markedThisRound)

		rounds = append(rounds, cur)
		marked = marked[:0]
		for s := range markedThisRound {
			marked = append(marked, s)
		}
	}

	return e.bestJourney(rounds, q)
}

// Stop returns the stop with the given internal ID, for callers (query
// CLIs, debug tooling) that need to resolve a Journey's IDs back to
// names and coordinates.
func (e *Engine) Stop(id uint32) (*transform.Stop, bool) {
	s, ok := e.stopsByID[id]
	return s, ok
}

// Route returns the route with the given internal ID.
func (e *Engine) Route(id uint32) (*transform.Route, bool) {
	r, ok := e.routesByID[id]
	return r, ok
}

// StopByExternalID resolves a feed's original stop_id string to its
// internal ID, scanning the network's stop list. Used by callers that
// only know a feed's original stop identifiers, not internal IDs.
func (e *Engine) StopByExternalID(externalID string) (uint32, bool) {
	for i := range e.network.Stops {
		if e.network.Stops[i].ExternalID == externalID {
			return e.network.Stops[i].ID, true
		}
	}
	return 0, false
}

// routeQueue collects every distinct route serving at least one of the
// given stops, in ascending route ID order for determinism.
func (e *Engine) routeQueue(stops []uint32) []uint32 {
	seen := map[uint32]bool{}
	var queue []uint32
	for _, s := range stops {
		for _, routeID := range e.routesOfStop[s] {
			if seen[routeID] {
				continue
			}
			seen[routeID] = true
			queue = append(queue, routeID)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i] < queue[j] })
	return queue
}

// scanRoute implements one pass of spec §4.5 step 2: scan the
// route's canonical pattern in order, alighting the current boarding
// where it improves cur, and (re)boarding the earliest trip that can
// still be caught at each stop.
func (e *Engine) scanRoute(route *transform.Route, prev, cur *roundState, markedThisRound map[uint32]bool) {
	var (
		boarded       bool
		tripIdx       int
		boardStop     uint32
		boardStopIdx  int
	)

	for i, stopID := range route.StopIDs {
		if boarded {
			a := int64(route.Trips[tripIdx].Times[i])
			if a < cur.arrivalAt(stopID) {
				cur.arrival[stopID] = a
				cur.parent[stopID] = parentEdge{
					kind:          legTransit,
					fromStop:      boardStop,
					routeID:       route.ID,
					tripIdx:       tripIdx,
					boardStopIdx:  boardStopIdx,
					alightStopIdx: i,
				}
				markedThisRound[stopID] = true
			}
		}

		threshold := prev.arrivalAt(stopID)
		if threshold >= Infinity {
			continue
		}

		candIdx, ok := earliestBoardableTrip(route, i, threshold)
		if !ok {
			continue
		}

		candTime := route.Trips[candIdx].Times[i]
		if !boarded || int64(candTime) < int64(route.Trips[tripIdx].Times[i]) {
			boarded = true
			tripIdx = candIdx
			boardStop = stopID
			boardStopIdx = i
		}
	}
}

// earliestBoardableTrip binary-searches route's trips (sorted ascending
// by first defined time, which coincides with time at any column under
// the standard RAPTOR non-overtaking assumption) for the first one
// whose time at column i is >= threshold.
func earliestBoardableTrip(route *transform.Route, col int, threshold int64) (int, bool) {
	n := len(route.Trips)
	idx := sort.Search(n, func(i int) bool {
		return int64(route.Trips[i].Times[col]) >= threshold
	})
	if idx == n {
		return 0, false
	}
	return idx, true
}

func (e *Engine) relaxFootpaths(cur *roundState, markedThisRound map[uint32]bool) {
	seed := make([]uint32, 0, len(markedThisRound))
	for s := range markedThisRound {
		seed = append(seed, s)
	}
	sort.Slice(seed, func(i, j int) bool { return seed[i] < seed[j] })

	for _, s := range seed {
		stop := e.stopsByID[s]
		if stop == nil {
			continue
		}
		base := cur.arrivalAt(s)
		for _, t := range stop.Transfers {
			a := base + int64(t.WalkTime)
			if a < cur.arrivalAt(t.Target) {
				cur.arrival[t.Target] = a
				cur.parent[t.Target] = parentEdge{kind: legWalk, fromStop: s}
				markedThisRound[t.Target] = true
			}
		}
	}
}

func cloneRound(r *roundState) *roundState {
	cur := newRoundState()
	for s, t := range r.arrival {
		cur.arrival[s] = t
	}
	for s, p := range r.parent {
		cur.parent[s] = p
	}
	return cur
}

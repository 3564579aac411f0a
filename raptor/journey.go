package raptor

// TransitLeg is one boarding of a route between two stops on its
// canonical pattern, kept with enough detail (stop indices, trip) for a
// caller to print a human-readable itinerary.
type TransitLeg struct {
	RouteID       uint32
	TripID        uint32
	FromStop      uint32
	ToStop        uint32
	FromStopIdx   int
	ToStopIdx     int
	DepartureTime int64
	ArrivalTime   int64
}

// WalkLeg is a footpath between two stops.
type WalkLeg struct {
	FromStop uint32
	ToStop   uint32
	WalkTime int
}

// Leg is either a TransitLeg or a WalkLeg; exactly one of the two
// pointers is non-nil.
type Leg struct {
	Transit *TransitLeg
	Walk    *WalkLeg
}

// Journey is a reconstructed path from source to target: the round it
// was found in and the ordered legs of the trip.
type Journey struct {
	Source      uint32
	Target      uint32
	Rounds      int
	ArrivalTime int64
	Legs        []Leg
}

// bestJourney picks the smallest round k minimizing τ[k][target] (spec
// §4.5's dominance rule: ties favor the earlier round) and reconstructs
// the path by walking parent pointers backward, then reversing.
func (e *Engine) bestJourney(rounds []*roundState, q Query) *Journey {
	bestK := -1
	bestArrival := int64(Infinity)
	for k, rs := range rounds {
		a := rs.arrivalAt(q.Target)
		if a < bestArrival {
			bestArrival = a
			bestK = k
		}
	}
	if bestK < 0 || bestArrival >= Infinity {
		return nil
	}

	legs := e.reconstruct(rounds[bestK], q.Source, q.Target)

	return &Journey{
		Source:      q.Source,
		Target:      q.Target,
		Rounds:      bestK,
		ArrivalTime: bestArrival,
		Legs:        legs,
	}
}

func (e *Engine) reconstruct(rs *roundState, source, target uint32) []Leg {
	if target == source {
		return nil
	}

	var legs []Leg
	cursor := target

	for cursor != source {
		edge, ok := rs.parent[cursor]
		if !ok {
			break
		}

		switch edge.kind {
		case legTransit:
			route := e.routesByID[edge.routeID]
			trip := route.Trips[edge.tripIdx]
			legs = append(legs, Leg{Transit: &TransitLeg{
				RouteID:       edge.routeID,
				TripID:        trip.ID,
				FromStop:      edge.fromStop,
				ToStop:        cursor,
				FromStopIdx:   edge.boardStopIdx,
				ToStopIdx:     edge.alightStopIdx,
				DepartureTime: int64(trip.Times[edge.boardStopIdx]),
				ArrivalTime:   int64(trip.Times[edge.alightStopIdx]),
			}})
		case legWalk:
			walkTime := int(rs.arrivalAt(cursor) - rs.arrivalAt(edge.fromStop))
			legs = append(legs, Leg{Walk: &WalkLeg{
				FromStop: edge.fromStop,
				ToStop:   cursor,
				WalkTime: walkTime,
			}})
		default:
			return reverseLegs(legs)
		}

		cursor = edge.fromStop
	}

	return reverseLegs(legs)
}

func reverseLegs(legs []Leg) []Leg {
	out := make([]Leg, len(legs))
	for i, l := range legs {
		out[len(legs)-1-i] = l
	}
	return out
}

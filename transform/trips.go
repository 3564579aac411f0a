package transform

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/transitdata/raptor-gtfs/gtfs"
	"github.com/transitdata/raptor-gtfs/model"
)

// alignTrips fills in each Route's Trips by aligning every trip that
// runs it onto the route's canonical pattern (spec §4.3). When
// serviceIDs is non-nil, only trips whose service_id is in the set are
// considered — this is how a period split restricts a shared set of
// canonical routes down to one period's trips without recomputing
// patterns (spec §4.3's period split). Routes are processed
// concurrently — alignment for one route never reads another route's
// state — but each route's own trips are written in place at its own
// index, so output ordering is stable regardless of goroutine
// scheduling (spec §5).
func alignTrips(reader *gtfs.Reader, routes []Route, allowPartial bool, serviceIDs map[string]bool) error {
	tripsByRouteDir := map[routeDirKey][]model.Trip{}
	for _, t := range reader.Trips {
		if serviceIDs != nil && !serviceIDs[t.ServiceID] {
			continue
		}
		key := routeDirKey{t.RouteID, t.DirectionID}
		tripsByRouteDir[key] = append(tripsByRouteDir[key], t)
	}

	stopTimesByTrip := map[string][]model.StopTime{}
	for _, st := range reader.StopTimes {
		stopTimesByTrip[st.TripID] = append(stopTimesByTrip[st.TripID], st)
	}

	var g errgroup.Group
	for i := range routes {
		i := i
		g.Go(func() error {
			route := &routes[i]
			key := routeDirKey{route.ExternalID, route.DirectionID}

			stopPos := make(map[uint32]int, len(route.StopIDs))
			for pos, stopID := range route.StopIDs {
				stopPos[stopID] = pos
			}

			trips := make([]Trip, 0, len(tripsByRouteDir[key]))
			for _, t := range tripsByRouteDir[key] {
				sts := stopTimesByTrip[t.ID]
				if len(sts) == 0 {
					continue
				}

				times := make([]int32, len(route.StopIDs))
				for i := range times {
					times[i] = TimeMissing
				}

				partial := false
				for _, st := range sts {
					stopID, err := reader.InternalStopID(st.StopID)
					if err != nil {
						return err
					}
					pos, ok := stopPos[stopID]
					if !ok {
						partial = true
						continue
					}
					times[pos] = int32(st.Arrival)
				}
				for _, v := range times {
					if v == TimeMissing {
						partial = true
						break
					}
				}

				if partial && !allowPartial {
					continue
				}

				tripID, err := reader.InternalTripID(t.ID)
				if err != nil {
					return err
				}

				trips = append(trips, Trip{
					ID:         tripID,
					ExternalID: t.ID,
					Times:      times,
					Partial:    partial,
				})
			}

			sort.SliceStable(trips, func(a, b int) bool {
				fa, fb := firstDefined(trips[a].Times), firstDefined(trips[b].Times)
				if fa != fb {
					return fa < fb
				}
				return trips[a].ID < trips[b].ID
			})

			route.Trips = trips
			return nil
		})
	}

	return g.Wait()
}

func firstDefined(times []int32) int64 {
	for _, t := range times {
		if t != TimeMissing {
			return int64(t)
		}
	}
	return int64(TimeMissing)
}

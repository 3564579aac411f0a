package transform

import (
	"github.com/transitdata/raptor-gtfs/gtfs"
)

// Config controls a Transform run.
type Config struct {
	AllowPartialTrips bool
	Transfers         TransferConfig
	SplitByPeriods    bool
}

// Result is the output of a Transform run: one Network per period name,
// or a single entry under the empty name when period splitting is off.
type Result struct {
	Networks map[string]*Network
}

// Transform builds one or more Network graphs from a parsed feed (spec
// §4.3). Canonical route patterns are computed once, from the full trip
// set, and reused across every period: only the per-route trip list and
// the derived stop/transfer data differ per period.
func Transform(reader *gtfs.Reader, cfg Config) (*Result, error) {
	baseRoutes, err := buildRoutes(reader)
	if err != nil {
		return nil, err
	}

	if !cfg.SplitByPeriods {
		network, err := assembleNetwork(reader, baseRoutes, nil, cfg)
		if err != nil {
			return nil, err
		}
		return &Result{Networks: map[string]*Network{"": network}}, nil
	}

	periods := classifyPeriods(reader)
	networks := make(map[string]*Network, len(periods))
	for _, p := range periods {
		network, err := assembleNetwork(reader, baseRoutes, p.ServiceIDs, cfg)
		if err != nil {
			return nil, err
		}
		if len(network.Routes) == 0 {
			continue
		}
		networks[p.Name] = network
	}
	return &Result{Networks: networks}, nil
}

// assembleNetwork aligns trips onto a (possibly period-restricted) copy
// of baseRoutes, drops routes with no surviving trips, and builds the
// stop index and transfers from what remains.
func assembleNetwork(reader *gtfs.Reader, baseRoutes []Route, serviceIDs map[string]bool, cfg Config) (*Network, error) {
	routes := cloneRoutes(baseRoutes)

	if err := alignTrips(reader, routes, cfg.AllowPartialTrips, serviceIDs); err != nil {
		return nil, err
	}

	routes = dropEmptyRoutes(routes)
	renumberRoutes(routes)

	stops := buildStops(reader, routes)
	if err := buildTransfers(reader, stops, cfg.Transfers); err != nil {
		return nil, err
	}

	return &Network{Routes: routes, Stops: stops}, nil
}

func cloneRoutes(routes []Route) []Route {
	out := make([]Route, len(routes))
	for i, r := range routes {
		stopIDs := make([]uint32, len(r.StopIDs))
		copy(stopIDs, r.StopIDs)
		out[i] = Route{
			ID:          r.ID,
			ExternalID:  r.ExternalID,
			DirectionID: r.DirectionID,
			Name:        r.Name,
			StopIDs:     stopIDs,
		}
	}
	return out
}

// dropEmptyRoutes removes routes with zero surviving trips after
// alignment (spec §4.3/§8 scenario 5), preserving relative order.
func dropEmptyRoutes(routes []Route) []Route {
	out := routes[:0]
	for _, r := range routes {
		if len(r.Trips) == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// renumberRoutes reassigns sequential internal IDs after routes have
// been dropped, so a period's artifact set has no gaps.
func renumberRoutes(routes []Route) {
	for i := range routes {
		routes[i].ID = uint32(i)
	}
}

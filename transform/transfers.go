package transform

import (
	"sort"

	"github.com/umahmood/haversine"

	"github.com/transitdata/raptor-gtfs/gtfs"
)

// TransferConfig controls footpath assembly.
type TransferConfig struct {
	GenerateWalking bool
	SpeedWalkMS     float64
	CutoffM         float64
}

// buildTransfers resolves explicit GTFS transfers to internal stop IDs
// and, if enabled, synthesizes reciprocal walking transfers between
// every stop pair within CutoffM of each other. The result per stop is
// deduplicated by target (minimum time wins) and sorted ascending by
// target ID.
func buildTransfers(reader *gtfs.Reader, stops []Stop, cfg TransferConfig) error {
	for _, t := range reader.Transfers {
		from, err := reader.InternalStopID(t.FromStopID)
		if err != nil {
			continue // unknown endpoint: drop with warning upstream
		}
		to, err := reader.InternalStopID(t.ToStopID)
		if err != nil {
			continue
		}
		stops[from].Transfers = append(stops[from].Transfers, Transfer{Target: to, WalkTime: t.MinTransferTime})
	}

	if cfg.GenerateWalking {
		generateWalkingTransfers(stops, cfg.SpeedWalkMS, cfg.CutoffM)
	}

	for i := range stops {
		stops[i].Transfers = dedupTransfers(stops[i].Transfers)
	}

	return nil
}

func generateWalkingTransfers(stops []Stop, speedWalkMS, cutoffM float64) {
	for i := range stops {
		for j := i + 1; j < len(stops); j++ {
			a := haversine.Coord{Lat: stops[i].Lat, Lon: stops[i].Lon}
			b := haversine.Coord{Lat: stops[j].Lat, Lon: stops[j].Lon}
			_, km := haversine.Distance(a, b)
			distanceM := km * 1000

			if distanceM > cutoffM {
				continue
			}

			walkTime := int(distanceM / speedWalkMS)
			stops[i].Transfers = append(stops[i].Transfers, Transfer{Target: stops[j].ID, WalkTime: walkTime})
			stops[j].Transfers = append(stops[j].Transfers, Transfer{Target: stops[i].ID, WalkTime: walkTime})
		}
	}
}

func dedupTransfers(transfers []Transfer) []Transfer {
	if len(transfers) == 0 {
		return transfers
	}

	best := map[uint32]int{}
	for _, t := range transfers {
		if cur, ok := best[t.Target]; !ok || t.WalkTime < cur {
			best[t.Target] = t.WalkTime
		}
	}

	out := make([]Transfer, 0, len(best))
	for target, walkTime := range best {
		out = append(out, Transfer{Target: target, WalkTime: walkTime})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })

	return out
}

package codec

import (
	"io"
	"sort"

	"github.com/transitdata/raptor-gtfs/transform"
)

// Index is the decoded content of index.bin: the stop→routes cross
// reference plus the byte offset of every route and stop record, all
// keyed ascending (spec §4.4).
type Index struct {
	StopToRoutes map[uint32][]uint32
	RouteOffsets map[uint32]uint64
	StopOffsets  map[uint32]uint64
}

// BuildIndex assembles an Index from a transformed network and the
// offsets recorded while writing routes.bin/stops.bin.
func BuildIndex(stops []transform.Stop, routeOffsets []RouteOffset, stopOffsets []StopOffset) *Index {
	stopToRoutes := make(map[uint32][]uint32, len(stops))
	for _, s := range stops {
		stopToRoutes[s.ID] = s.RouteIDs
	}

	routeOff := make(map[uint32]uint64, len(routeOffsets))
	for _, o := range routeOffsets {
		routeOff[o.RouteID] = o.Offset
	}

	stopOff := make(map[uint32]uint64, len(stopOffsets))
	for _, o := range stopOffsets {
		stopOff[o.StopID] = o.Offset
	}

	return &Index{StopToRoutes: stopToRoutes, RouteOffsets: routeOff, StopOffsets: stopOff}
}

// WriteIndex encodes index.bin (spec §4.4). Every map is written in
// ascending key order so output is deterministic.
func WriteIndex(w io.Writer, idx *Index) error {
	bw := newWriter(w)
	bw.writeBytes(magicIndex[:])
	bw.writeUint16(SchemaVersion)

	stopIDs := sortedKeys(idx.StopToRoutes)
	bw.writeUint32(uint32(len(stopIDs)))
	for _, stopID := range stopIDs {
		routeIDs := idx.StopToRoutes[stopID]
		bw.writeUint32(stopID)
		bw.writeUint32(uint32(len(routeIDs)))
		for _, routeID := range routeIDs {
			bw.writeUint32(routeID)
		}
	}

	routeIDs := sortedKeys(idx.RouteOffsets)
	bw.writeUint32(uint32(len(routeIDs)))
	for _, routeID := range routeIDs {
		bw.writeUint32(routeID)
		bw.writeUint64(idx.RouteOffsets[routeID])
	}

	offsetStopIDs := sortedKeys(idx.StopOffsets)
	bw.writeUint32(uint32(len(offsetStopIDs)))
	for _, stopID := range offsetStopIDs {
		bw.writeUint32(stopID)
		bw.writeUint64(idx.StopOffsets[stopID])
	}

	return bw.flush()
}

// ReadIndex decodes index.bin.
func ReadIndex(r io.Reader) (*Index, error) {
	br := newReader(r, "index.bin")
	if err := br.readMagic(magicIndex); err != nil {
		return nil, err
	}
	if _, err := br.readSchema(); err != nil {
		return nil, err
	}

	idx := &Index{
		StopToRoutes: map[uint32][]uint32{},
		RouteOffsets: map[uint32]uint64{},
		StopOffsets:  map[uint32]uint64{},
	}

	n, err := br.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		stopID, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		k, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		routeIDs := make([]uint32, k)
		for j := range routeIDs {
			v, err := br.readUint32()
			if err != nil {
				return nil, err
			}
			routeIDs[j] = v
		}
		idx.StopToRoutes[stopID] = routeIDs
	}

	n, err = br.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		routeID, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		offset, err := br.readUint64()
		if err != nil {
			return nil, err
		}
		idx.RouteOffsets[routeID] = offset
	}

	n, err = br.readUint32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		stopID, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		offset, err := br.readUint64()
		if err != nil {
			return nil, err
		}
		idx.StopOffsets[stopID] = offset
	}

	return idx, nil
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

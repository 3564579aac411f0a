package codec

import (
	"io"

	"github.com/transitdata/raptor-gtfs/transform"
)

// RouteOffset records the byte offset of one route's record within
// routes.bin, used to populate index.bin.
type RouteOffset struct {
	RouteID uint32
	Offset  uint64
}

// WriteRoutes encodes routes.bin (spec §4.4) and returns each route's
// start offset in file-write order.
func WriteRoutes(w io.Writer, routes []transform.Route, compress bool) ([]RouteOffset, error) {
	bw := newWriter(w)
	bw.writeBytes(magicRoutes[:])
	bw.writeUint16(SchemaVersion)
	bw.writeUint32(uint32(len(routes)))

	offsets := make([]RouteOffset, 0, len(routes))
	for _, r := range routes {
		offsets = append(offsets, RouteOffset{RouteID: r.ID, Offset: uint64(bw.offset)})

		// Partial trips are excluded from the on-disk trip count when
		// compression is enabled: delta-encoding a row containing the
		// TimeMissing sentinel would poison every following delta
		// (spec §9's conservative default).
		trips := r.Trips
		if compress {
			trips = make([]transform.Trip, 0, len(r.Trips))
			for _, t := range r.Trips {
				if t.Partial {
					continue
				}
				trips = append(trips, t)
			}
		}

		bw.writeUint32(r.ID)
		bw.writeString(r.Name)
		bw.writeUint32(uint32(len(r.StopIDs)))
		bw.writeUint32(uint32(len(trips)))
		for _, stopID := range r.StopIDs {
			bw.writeUint32(stopID)
		}
		for _, t := range trips {
			bw.writeUint32(t.ID)
			times := t.Times
			if compress {
				times = EncodeTimes(times)
			}
			for _, v := range times {
				bw.writeInt32(v)
			}
		}
	}

	if err := bw.flush(); err != nil {
		return nil, err
	}
	return offsets, nil
}

// ReadRoutes decodes routes.bin, reversing delta encoding when present.
func ReadRoutes(r io.Reader, compressed bool) ([]transform.Route, error) {
	br := newReader(r, "routes.bin")
	if err := br.readMagic(magicRoutes); err != nil {
		return nil, err
	}
	if _, err := br.readSchema(); err != nil {
		return nil, err
	}
	count, err := br.readUint32()
	if err != nil {
		return nil, err
	}

	routes := make([]transform.Route, count)
	for i := range routes {
		id, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		name, err := br.readString()
		if err != nil {
			return nil, err
		}
		stopCount, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		tripCount, err := br.readUint32()
		if err != nil {
			return nil, err
		}

		stopIDs := make([]uint32, stopCount)
		for s := range stopIDs {
			v, err := br.readUint32()
			if err != nil {
				return nil, err
			}
			stopIDs[s] = v
		}

		trips := make([]transform.Trip, tripCount)
		for t := range trips {
			tripID, err := br.readUint32()
			if err != nil {
				return nil, err
			}
			times := make([]int32, stopCount)
			for s := range times {
				v, err := br.readInt32()
				if err != nil {
					return nil, err
				}
				times[s] = v
			}
			if compressed {
				times = DecodeTimes(times)
			}
			trips[t] = transform.Trip{ID: tripID, Times: times}
		}

		routes[i] = transform.Route{ID: id, Name: name, StopIDs: stopIDs, Trips: trips}
	}

	return routes, nil
}

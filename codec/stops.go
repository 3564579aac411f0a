package codec

import (
	"io"

	"github.com/transitdata/raptor-gtfs/transform"
)

// StopOffset records the byte offset of one stop's record within
// stops.bin, used to populate index.bin.
type StopOffset struct {
	StopID uint32
	Offset uint64
}

// WriteStops encodes stops.bin (spec §4.4) and returns each stop's
// start offset in file-write order.
func WriteStops(w io.Writer, stops []transform.Stop) ([]StopOffset, error) {
	bw := newWriter(w)
	bw.writeBytes(magicStops[:])
	bw.writeUint16(SchemaVersion)
	bw.writeUint32(uint32(len(stops)))

	offsets := make([]StopOffset, 0, len(stops))
	for _, s := range stops {
		offsets = append(offsets, StopOffset{StopID: s.ID, Offset: uint64(bw.offset)})

		bw.writeUint32(s.ID)
		bw.writeString(s.Name)
		bw.writeFloat64(s.Lat)
		bw.writeFloat64(s.Lon)

		bw.writeUint32(uint32(len(s.RouteIDs)))
		for _, routeID := range s.RouteIDs {
			bw.writeUint32(routeID)
		}

		bw.writeUint32(uint32(len(s.Transfers)))
		for _, t := range s.Transfers {
			bw.writeUint32(t.Target)
			bw.writeInt32(int32(t.WalkTime))
		}
	}

	if err := bw.flush(); err != nil {
		return nil, err
	}
	return offsets, nil
}

// ReadStops decodes stops.bin.
func ReadStops(r io.Reader) ([]transform.Stop, error) {
	br := newReader(r, "stops.bin")
	if err := br.readMagic(magicStops); err != nil {
		return nil, err
	}
	if _, err := br.readSchema(); err != nil {
		return nil, err
	}
	count, err := br.readUint32()
	if err != nil {
		return nil, err
	}

	stops := make([]transform.Stop, count)
	for i := range stops {
		id, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		name, err := br.readString()
		if err != nil {
			return nil, err
		}
		lat, err := br.readFloat64()
		if err != nil {
			return nil, err
		}
		lon, err := br.readFloat64()
		if err != nil {
			return nil, err
		}

		routeCount, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		routeIDs := make([]uint32, routeCount)
		for j := range routeIDs {
			v, err := br.readUint32()
			if err != nil {
				return nil, err
			}
			routeIDs[j] = v
		}

		transferCount, err := br.readUint32()
		if err != nil {
			return nil, err
		}
		transfers := make([]transform.Transfer, transferCount)
		for j := range transfers {
			target, err := br.readUint32()
			if err != nil {
				return nil, err
			}
			walkTime, err := br.readInt32()
			if err != nil {
				return nil, err
			}
			transfers[j] = transform.Transfer{Target: target, WalkTime: int(walkTime)}
		}

		stops[i] = transform.Stop{
			ID:        id,
			Name:      name,
			Lat:       lat,
			Lon:       lon,
			RouteIDs:  routeIDs,
			Transfers: transfers,
		}
	}

	return stops, nil
}

package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type transferCSV struct {
	FromStopID      string `csv:"from_stop_id"`
	ToStopID        string `csv:"to_stop_id"`
	MinTransferTime int    `csv:"min_transfer_time"`
}

// Transfers parses transfers.txt. A nil reader (file absent) yields an
// empty result. Walking transfers from stop coordinates are generated by
// the transformer only when walking-transfer generation is enabled,
// whether or not this file is present.
func Transfers(data io.Reader) ([]model.Transfer, error) {
	if data == nil {
		return nil, nil
	}

	rows := []*transferCSV{}
	if err := gocsv.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "unmarshaling transfers csv")
	}

	out := make([]model.Transfer, 0, len(rows))
	for i, t := range rows {
		if t.FromStopID == "" || t.ToStopID == "" {
			return nil, &ErrBadCsvRow{File: "transfers.txt", Row: i + 1, Err: errors.New("transfer missing from_stop_id or to_stop_id")}
		}
		if t.MinTransferTime < 0 {
			return nil, &ErrBadCsvRow{File: "transfers.txt", Row: i + 1, Err: errors.Errorf("transfer %s->%s has negative min_transfer_time", t.FromStopID, t.ToStopID)}
		}

		out = append(out, model.Transfer{
			FromStopID:      t.FromStopID,
			ToStopID:        t.ToStopID,
			MinTransferTime: t.MinTransferTime,
		})
	}

	return out, nil
}

package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/transitdata/raptor-gtfs/model"
)

type stopTimeCSV struct {
	TripID        string `csv:"trip_id"`
	StopID        string `csv:"stop_id"`
	StopSequence  int    `csv:"stop_sequence"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
}

// StopTimes parses stop_times.txt, preserving file order. Rows are never
// reordered here: the Transformer only ever sees a feed that has passed
// the Validator's stop_sequence-ordering check, so sorting would hide an
// out-of-order feed from the one stage meant to catch it.
func StopTimes(data io.Reader) ([]model.StopTime, error) {
	out := []model.StopTime{}

	i := 0
	err := gocsv.UnmarshalToCallbackWithError(data, func(st *stopTimeCSV) error {
		i++
		if st.TripID == "" {
			return &ErrBadCsvRow{File: "stop_times.txt", Row: i, Err: errors.New("missing trip_id")}
		}
		if st.StopID == "" {
			return &ErrBadCsvRow{File: "stop_times.txt", Row: i, Err: errors.New("missing stop_id")}
		}

		arrival, err := ParseTime(st.ArrivalTime)
		if err != nil {
			return &ErrBadCsvRow{File: "stop_times.txt", Row: i, Err: errors.Wrap(err, "parsing arrival_time")}
		}
		departure, err := ParseTime(st.DepartureTime)
		if err != nil {
			return &ErrBadCsvRow{File: "stop_times.txt", Row: i, Err: errors.Wrap(err, "parsing departure_time")}
		}
		if departure < arrival {
			return &ErrBadCsvRow{File: "stop_times.txt", Row: i, Err: errors.New("departure_time before arrival_time")}
		}

		out = append(out, model.StopTime{
			TripID:       st.TripID,
			StopID:       st.StopID,
			StopSequence: st.StopSequence,
			Arrival:      arrival,
			Departure:    departure,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling stop_times csv")
	}

	// Duplicate stop_sequence within a trip is always invalid, regardless
	// of file order, so it's still rejected here rather than left for the
	// Validator.
	seqSeen := map[string]map[int]bool{}
	for idx, st := range out {
		if seqSeen[st.TripID] == nil {
			seqSeen[st.TripID] = map[int]bool{}
		}
		if seqSeen[st.TripID][st.StopSequence] {
			return nil, &ErrBadCsvRow{File: "stop_times.txt", Row: idx + 1, Err: errors.Errorf("duplicate stop_sequence %d for trip_id %q", st.StopSequence, st.TripID)}
		}
		seqSeen[st.TripID][st.StopSequence] = true
	}

	return out, nil
}

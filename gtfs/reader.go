// Package gtfs implements the Feed Reader (C1): parsing a GTFS feed
// directory into normalized in-memory tables with deterministic internal
// integer IDs.
package gtfs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/transitdata/raptor-gtfs/gtfs/parse"
	"github.com/transitdata/raptor-gtfs/model"
)

// requiredFiles must be present in the feed directory; their absence is
// a fatal ErrMissingRequiredFile (spec §4.1).
var requiredFiles = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// Reader holds a fully parsed and ID-normalized GTFS feed. Stops, Routes
// and Trips are ordered by internal ID (i.e. Stops[i].ID is the external
// ID of internal stop i).
type Reader struct {
	Agencies      []model.Agency
	Stops         []model.Stop
	Routes        []model.Route
	Trips         []model.Trip
	StopTimes     []model.StopTime
	Calendars     []model.Calendar
	CalendarDates []model.CalendarDate
	Transfers     []model.Transfer

	stopIndex  map[string]uint32
	routeIndex map[string]uint32
	tripIndex  map[string]uint32
}

// dirOpener opens files relative to a feed directory and closes
// everything it opened when the read is done, required or not.
type dirOpener struct {
	dir     string
	opened  []*os.File
	fileErr error
}

func (o *dirOpener) required(name string) *os.File {
	for _, f := range requiredFiles {
		if f == name {
			goto known
		}
	}
	panic("reader: " + name + " is not in requiredFiles")
known:
	f, err := os.Open(filepath.Join(o.dir, name))
	if err != nil && o.fileErr == nil {
		o.fileErr = &ErrMissingRequiredFile{File: name}
		return nil
	}
	if f != nil {
		o.opened = append(o.opened, f)
	}
	return f
}

// optional returns nil (the untyped interface nil, not a typed nil
// *os.File) when the file does not exist, so callers taking an
// io.Reader parameter can compare against nil directly.
func (o *dirOpener) optional(name string) io.Reader {
	f, err := os.Open(filepath.Join(o.dir, name))
	if err != nil {
		return nil
	}
	o.opened = append(o.opened, f)
	return f
}

func (o *dirOpener) either(a, b string) io.Reader {
	if f := o.optional(a); f != nil {
		return f
	}
	return o.optional(b)
}

func (o *dirOpener) closeAll() {
	for _, f := range o.opened {
		f.Close()
	}
}

// Read parses every GTFS table under dir, in the fixed order agencies,
// stops, routes, calendars, calendar_dates, trips, stop_times, transfers
// (spec §4.1), and normalizes stop/route/trip IDs.
func Read(dir string) (*Reader, error) {
	for _, f := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			return nil, &ErrMissingRequiredFile{File: f}
		}
	}

	o := &dirOpener{dir: dir}
	defer o.closeAll()

	r := &Reader{}

	stopsFile := o.required("stops.txt")
	if o.fileErr != nil {
		return nil, o.fileErr
	}
	routesFile := o.required("routes.txt")
	if o.fileErr != nil {
		return nil, o.fileErr
	}
	tripsFile := o.required("trips.txt")
	if o.fileErr != nil {
		return nil, o.fileErr
	}
	stopTimesFile := o.required("stop_times.txt")
	if o.fileErr != nil {
		return nil, o.fileErr
	}

	var err error
	r.Agencies, err = parse.Agencies(o.either("agency.txt", "agencies.txt"))
	if err != nil {
		return nil, err
	}

	rawStops, err := parse.Stops(stopsFile)
	if err != nil {
		return nil, err
	}

	rawRoutes, err := parse.Routes(routesFile)
	if err != nil {
		return nil, err
	}

	r.Calendars, err = parse.Calendars(o.optional("calendar.txt"))
	if err != nil {
		return nil, err
	}

	r.CalendarDates, err = parse.CalendarDates(o.optional("calendar_dates.txt"))
	if err != nil {
		return nil, err
	}

	rawTrips, err := parse.Trips(tripsFile)
	if err != nil {
		return nil, err
	}

	r.StopTimes, err = parse.StopTimes(stopTimesFile)
	if err != nil {
		return nil, err
	}

	rawTransfers, err := parse.Transfers(o.optional("transfers.txt"))
	if err != nil {
		return nil, err
	}

	r.normalizeStops(rawStops)
	r.normalizeRoutes(rawRoutes)
	r.normalizeTrips(rawTrips)
	r.Transfers = rawTransfers

	return r, nil
}

// normalizeStops sorts stops lexicographically by external ID and
// assigns internal IDs i = position in that order (spec §4.1).
func (r *Reader) normalizeStops(raw []model.Stop) {
	sort.Slice(raw, func(i, j int) bool { return raw[i].ID < raw[j].ID })
	r.Stops = raw
	r.stopIndex = make(map[string]uint32, len(raw))
	for i, s := range raw {
		r.stopIndex[s.ID] = uint32(i)
	}
}

func (r *Reader) normalizeRoutes(raw []model.Route) {
	sort.Slice(raw, func(i, j int) bool { return raw[i].ID < raw[j].ID })
	r.Routes = raw
	r.routeIndex = make(map[string]uint32, len(raw))
	for i, rt := range raw {
		r.routeIndex[rt.ID] = uint32(i)
	}
}

func (r *Reader) normalizeTrips(raw []model.Trip) {
	sort.Slice(raw, func(i, j int) bool { return raw[i].ID < raw[j].ID })
	r.Trips = raw
	r.tripIndex = make(map[string]uint32, len(raw))
	for i, t := range raw {
		r.tripIndex[t.ID] = uint32(i)
	}
}

// InternalStopID returns the internal ID assigned to an external
// stop_id, or ErrUnknownID if it was never seen.
func (r *Reader) InternalStopID(id string) (uint32, error) {
	v, ok := r.stopIndex[id]
	if !ok {
		return 0, &ErrUnknownID{Kind: "stop", ID: id}
	}
	return v, nil
}

// InternalRouteID returns the internal ID assigned to an external
// route_id, or ErrUnknownID if it was never seen.
func (r *Reader) InternalRouteID(id string) (uint32, error) {
	v, ok := r.routeIndex[id]
	if !ok {
		return 0, &ErrUnknownID{Kind: "route", ID: id}
	}
	return v, nil
}

// InternalTripID returns the internal ID assigned to an external
// trip_id, or ErrUnknownID if it was never seen.
func (r *Reader) InternalTripID(id string) (uint32, error) {
	v, ok := r.tripIndex[id]
	if !ok {
		return 0, &ErrUnknownID{Kind: "trip", ID: id}
	}
	return v, nil
}

// Package model holds the raw, external-ID-keyed GTFS record types shared
// between the reader, validator and transformer.
package model

type LocationType int8

const (
	LocationTypeStop LocationType = iota
	LocationTypeStation
	LocationTypeEntranceExit
	LocationTypeGenericNode
	LocationTypeBoardingArea
)

type RouteType int

const (
	RouteTypeTram       RouteType = 0
	RouteTypeSubway     RouteType = 1
	RouteTypeRail       RouteType = 2
	RouteTypeBus        RouteType = 3
	RouteTypeFerry      RouteType = 4
	RouteTypeCable      RouteType = 5
	RouteTypeAerial     RouteType = 6
	RouteTypeFunicular  RouteType = 7
	RouteTypeTrolleybus RouteType = 11
	RouteTypeMonorail   RouteType = 12
)

type Agency struct {
	ID       string
	Name     string
	URL      string
	Timezone string
}

// Calendar is one row of calendar.txt: a weekly service pattern bounded
// by a validity date window (YYYYMMDD strings, as in the GTFS source).
type Calendar struct {
	ServiceID string
	Weekday   [7]bool // Monday=0 .. Sunday=6
	StartDate string
	EndDate   string
}

type ExceptionType int8

const (
	ExceptionAdded   ExceptionType = 1
	ExceptionRemoved ExceptionType = 2
)

type CalendarDate struct {
	ServiceID     string
	Date          string
	ExceptionType ExceptionType
}

type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

type Route struct {
	ID        string
	AgencyID  string
	ShortName string
	LongName  string
	Type      RouteType
}

// Name returns the short name if present, else the long name, per
// spec §4.4's routes.bin "route_name: short name, else long name".
func (r Route) Name() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.LongName
}

type Trip struct {
	ID          string
	RouteID     string
	ServiceID   string
	DirectionID int8
}

// StopTime is one row of stop_times.txt. Arrival/Departure are seconds
// since service-day midnight; GTFS permits values >= 86400 for
// post-midnight trips, so these are plain ints, never wall-clock times.
type StopTime struct {
	TripID       string
	StopID       string
	StopSequence int
	Arrival      int
	Departure    int
}

// Transfer is a directed walking edge between two stops, either parsed
// from transfers.txt or synthesized by the transformer.
type Transfer struct {
	FromStopID      string
	ToStopID        string
	MinTransferTime int
}

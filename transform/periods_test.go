package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/raptor-gtfs/gtfs"
	"github.com/transitdata/raptor-gtfs/model"
)

func TestClassifyPeriodsByWeekdayBitmask(t *testing.T) {
	reader := readFeed(t, map[string]string{
		"stops.txt":  linearRouteStops,
		"routes.txt": linearRouteRoutes,
		"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
			"WD,1,1,1,1,1,0,0,20260101,20261231\n" +
			"SAT,0,0,0,0,0,1,0,20260101,20261231\n" +
			"SUN,0,0,0,0,0,0,1,20260101,20261231\n" +
			"WE,0,0,0,0,0,1,1,20260101,20261231\n" +
			"DAILY,1,1,1,1,1,1,1,20260101,20261231\n" +
			"WONKY,1,0,1,0,0,1,0,20260101,20261231\n",
		"trips.txt":      "route_id,service_id,trip_id,direction_id\n" + "R1,WD,T1,0\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\nT1,A,1,08:00:00,08:00:00\n",
	})

	periods := classifyPeriods(reader)
	names := map[string]bool{}
	for _, p := range periods {
		names[p.Name] = true
	}

	assert.True(t, names["weekday"])
	assert.True(t, names["saturday"])
	assert.True(t, names["sunday"])
	assert.True(t, names["weekend"])
	assert.True(t, names["daily"])
	assert.True(t, names["custom"])
}

func TestClassifyPeriodsCalendarDatesOnly(t *testing.T) {
	reader := &gtfs.Reader{
		CalendarDates: []model.CalendarDate{
			{ServiceID: "SPECIAL1", Date: "20260101", ExceptionType: model.ExceptionAdded},
		},
	}

	periods := classifyPeriods(reader)
	names := map[string]bool{}
	for _, p := range periods {
		names[p.Name] = true
	}
	assert.True(t, names["SPECIAL1"])
}

package parse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/raptor-gtfs/model"
)

func TestTrips(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		trips   []model.Trip
		err     bool
	}{
		{
			"minimal",
			`
trip_id,route_id,service_id
t1,r1,wd`,
			[]model.Trip{{ID: "t1", RouteID: "r1", ServiceID: "wd"}},
			false,
		},
		{
			"with direction_id",
			`
trip_id,route_id,service_id,direction_id
t1,r1,wd,1`,
			[]model.Trip{{ID: "t1", RouteID: "r1", ServiceID: "wd", DirectionID: 1}},
			false,
		},
		{
			"missing route_id",
			`
trip_id,route_id,service_id
t1,,wd`,
			nil,
			true,
		},
		{
			"invalid direction_id",
			`
trip_id,route_id,service_id,direction_id
t1,r1,wd,2`,
			nil,
			true,
		},
		{
			"repeated trip_id",
			`
trip_id,route_id,service_id
t1,r1,wd
t1,r2,we`,
			nil,
			true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			trips, err := Trips(bytes.NewBufferString(tc.content))
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.trips, trips)
		})
	}
}

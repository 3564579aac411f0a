package parse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitdata/raptor-gtfs/model"
)

func TestCalendars(t *testing.T) {
	for _, tc := range []struct {
		name      string
		content   string
		calendars []model.Calendar
		err       bool
	}{
		{
			"weekday service",
			`
service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
wd,1,1,1,1,1,0,0,20240101,20241231`,
			[]model.Calendar{{
				ServiceID: "wd",
				Weekday:   [7]bool{true, true, true, true, true, false, false},
				StartDate: "20240101",
				EndDate:   "20241231",
			}},
			false,
		},
		{
			"invalid day value",
			`
service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
wd,2,1,1,1,1,0,0,20240101,20241231`,
			nil,
			true,
		},
		{
			"bad start_date",
			`
service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
wd,1,1,1,1,1,0,0,not-a-date,20241231`,
			nil,
			true,
		},
		{
			"repeated service_id",
			`
service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
wd,1,1,1,1,1,0,0,20240101,20241231
wd,0,0,0,0,0,1,1,20240101,20241231`,
			nil,
			true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			calendars, err := Calendars(bytes.NewBufferString(tc.content))
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.calendars, calendars)
		})
	}
}

func TestCalendarsNilReader(t *testing.T) {
	calendars, err := Calendars(nil)
	assert.NoError(t, err)
	assert.Nil(t, calendars)
}

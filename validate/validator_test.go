package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/raptor-gtfs/gtfs"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readFeed(t *testing.T, files map[string]string) *gtfs.Reader {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, dir, name, content)
	}
	r, err := gtfs.Read(dir)
	require.NoError(t, err)
	return r
}

func TestValidatorValidFeed(t *testing.T) {
	r := readFeed(t, map[string]string{
		"stops.txt": `
stop_id,stop_name,stop_lat,stop_lon
s1,Stop One,1.1,2.2
s2,Stop Two,1.2,2.3`,
		"routes.txt": `
route_id,route_short_name,route_type
r1,1,3`,
		"trips.txt": `
trip_id,route_id,service_id
t1,r1,wd`,
		"stop_times.txt": `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,s1,1,08:00:00,08:00:00
t1,s2,2,08:05:00,08:05:00`,
	})

	report := New(r).Validate()
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 2, report.Stats["stops"])
	assert.Equal(t, 1, report.Stats["routes"])
}

func TestValidatorInvalidCoordinates(t *testing.T) {
	r := readFeed(t, map[string]string{
		"stops.txt": `
stop_id,stop_name,stop_lat,stop_lon
s1,Stop One,91.0,2.2
s2,Stop Two,1.2,-200.0`,
		"routes.txt": `
route_id,route_short_name,route_type
r1,1,3`,
		"trips.txt": `
trip_id,route_id,service_id
t1,r1,wd`,
		"stop_times.txt": `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,s1,1,08:00:00,08:00:00
t1,s2,2,08:05:00,08:05:00`,
	})

	report := New(r).Validate()
	assert.False(t, report.Valid)
	hasS1, hasS2 := false, false
	for _, e := range report.Errors {
		if !strings.Contains(e, "invalid coordinate") {
			continue
		}
		if strings.Contains(e, `"s1"`) {
			hasS1 = true
		}
		if strings.Contains(e, `"s2"`) {
			hasS2 = true
		}
	}
	assert.True(t, hasS1, "expected an invalid-coordinate error for s1 (bad latitude)")
	assert.True(t, hasS2, "expected an invalid-coordinate error for s2 (bad longitude)")
}

func TestValidatorUnorderedStopSequence(t *testing.T) {
	r := readFeed(t, map[string]string{
		"stops.txt": `
stop_id,stop_name,stop_lat,stop_lon
s1,Stop One,1.1,2.2
s2,Stop Two,1.2,2.3
s3,Stop Three,1.3,2.4`,
		"routes.txt": `
route_id,route_short_name,route_type
r1,1,3`,
		"trips.txt": `
trip_id,route_id,service_id
t1,r1,wd`,
		"stop_times.txt": `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,s1,1,08:00:00,08:00:00
t1,s3,3,08:10:00,08:10:00
t1,s2,2,08:05:00,08:05:00`,
	})

	report := New(r).Validate()
	assert.False(t, report.Valid)
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "unordered stop_sequence") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidatorOrphanTrip(t *testing.T) {
	r := readFeed(t, map[string]string{
		"stops.txt": `
stop_id,stop_name,stop_lat,stop_lon
s1,Stop One,1.1,2.2`,
		"routes.txt": `
route_id,route_short_name,route_type
r1,1,3`,
		"trips.txt": `
trip_id,route_id,service_id
t1,r404,wd`,
		"stop_times.txt": `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,s1,1,08:00:00,08:00:00`,
	})

	report := New(r).Validate()
	assert.False(t, report.Valid)
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "non-existent route") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidatorTransferWarnings(t *testing.T) {
	r := readFeed(t, map[string]string{
		"stops.txt": `
stop_id,stop_name,stop_lat,stop_lon
s1,Stop One,1.1,2.2
s2,Stop Two,1.2,2.3`,
		"routes.txt": `
route_id,route_short_name,route_type
r1,1,3`,
		"trips.txt": `
trip_id,route_id,service_id
t1,r1,wd`,
		"stop_times.txt": `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,s1,1,08:00:00,08:00:00
t1,s2,2,08:05:00,08:05:00`,
		"transfers.txt": `
from_stop_id,to_stop_id,min_transfer_time
s1,s2,7200`,
	})

	report := New(r).Validate()
	assert.True(t, report.Valid)
	assert.NotEmpty(t, report.Warnings)
}

package gtfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func minimalFeed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFeedFile(t, dir, "stops.txt", `
stop_id,stop_name,stop_lat,stop_lon
sB,Stop B,1.2,3.4
sA,Stop A,1.1,2.2`)

	writeFeedFile(t, dir, "routes.txt", `
route_id,route_short_name,route_type
r1,1,3`)

	writeFeedFile(t, dir, "trips.txt", `
trip_id,route_id,service_id
t1,r1,wd`)

	writeFeedFile(t, dir, "stop_times.txt", `
trip_id,stop_id,stop_sequence,arrival_time,departure_time
t1,sA,1,08:00:00,08:00:00
t1,sB,2,08:05:00,08:05:00`)

	return dir
}

func TestReadMinimalFeed(t *testing.T) {
	dir := minimalFeed(t)

	r, err := Read(dir)
	require.NoError(t, err)

	require.Len(t, r.Stops, 2)
	assert.Equal(t, "sA", r.Stops[0].ID)
	assert.Equal(t, "sB", r.Stops[1].ID)

	id, err := r.InternalStopID("sA")
	require.NoError(t, err)
	assert.EqualValues(t, 0, id)

	id, err = r.InternalStopID("sB")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	_, err = r.InternalStopID("nope")
	var unknown *ErrUnknownID
	assert.ErrorAs(t, err, &unknown)

	require.Len(t, r.Trips, 1)
	require.Len(t, r.StopTimes, 2)
	assert.Equal(t, 8*3600, r.StopTimes[0].Arrival)
}

func TestReadMissingRequiredFile(t *testing.T) {
	dir := minimalFeed(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "stop_times.txt")))

	_, err := Read(dir)
	require.Error(t, err)
	var missing *ErrMissingRequiredFile
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "stop_times.txt", missing.File)
}

func TestReadOptionalFilesAbsent(t *testing.T) {
	dir := minimalFeed(t)

	r, err := Read(dir)
	require.NoError(t, err)
	assert.Empty(t, r.Calendars)
	assert.Empty(t, r.CalendarDates)
	assert.Empty(t, r.Transfers)
	assert.Empty(t, r.Agencies)
}

func TestReadTransfers(t *testing.T) {
	dir := minimalFeed(t)
	writeFeedFile(t, dir, "transfers.txt", `
from_stop_id,to_stop_id,min_transfer_time
sA,sB,90`)

	r, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, r.Transfers, 1)
	assert.Equal(t, 90, r.Transfers[0].MinTransferTime)
}

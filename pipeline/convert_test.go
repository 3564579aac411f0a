package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const feedStops = "stop_id,stop_name,stop_lat,stop_lon\n" +
	"A,Stop A,0,0\nB,Stop B,0,0.01\nC,Stop C,0,0.02\n"
const feedRoutes = "route_id,agency_id,route_short_name,route_long_name,route_type\nR1,,1,,3\n"
const feedTrips = "route_id,service_id,trip_id,direction_id\nR1,WD,T1,0\nR1,WD,T2,0\n"
const feedStopTimes = "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
	"T1,A,1,08:00:00,08:00:00\nT1,B,2,08:10:00,08:10:00\nT1,C,3,08:20:00,08:20:00\n" +
	"T2,A,1,09:00:00,09:00:00\nT2,B,2,09:10:00,09:10:00\nT2,C,3,09:20:00,09:20:00\n"

func TestConvertWritesBinaryAndManifest(t *testing.T) {
	input := writeFeed(t, map[string]string{
		"stops.txt":      feedStops,
		"routes.txt":     feedRoutes,
		"trips.txt":      feedTrips,
		"stop_times.txt": feedStopTimes,
	})
	output := t.TempDir()

	cfg := DefaultConvertConfig()
	cfg.Input = input
	cfg.Output = output
	cfg.CreatedAt = "2026-07-30T00:00:00Z"
	cfg.RunID = "test-run"

	result, err := Convert(cfg)
	require.NoError(t, err)
	require.True(t, result.Report.Valid)
	require.Contains(t, result.Manifests, "")

	for _, name := range []string{"routes.bin", "stops.bin", "index.bin", "manifest.json"} {
		_, err := os.Stat(filepath.Join(output, name))
		assert.NoError(t, err, name)
	}

	report, err := ValidateArtifacts(output)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 1, report.Stats["routes"])
	assert.Equal(t, 3, report.Stats["stops"])
}

func TestConvertRejectsLyonMode(t *testing.T) {
	cfg := DefaultConvertConfig()
	cfg.Mode = ModeLyon

	_, err := Convert(cfg)
	require.Error(t, err)
	var notImplemented *ErrModeNotImplemented
	assert.ErrorAs(t, err, &notImplemented)
}

func TestConvertFailsValidationOnOrphanTrip(t *testing.T) {
	input := writeFeed(t, map[string]string{
		"stops.txt":  feedStops,
		"routes.txt": feedRoutes,
		"trips.txt":  "route_id,service_id,trip_id,direction_id\nR404,WD,T1,0\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
			"T1,A,1,08:00:00,08:00:00\nT1,B,2,08:10:00,08:10:00\n",
	})

	cfg := DefaultConvertConfig()
	cfg.Input = input
	cfg.Output = t.TempDir()

	_, err := Convert(cfg)
	require.Error(t, err)
	var failed *ErrValidationFailed
	require.ErrorAs(t, err, &failed)
	assert.NotEmpty(t, failed.Report.Errors)
}

func TestConvertSplitByPeriodsWritesSubdirectories(t *testing.T) {
	input := writeFeed(t, map[string]string{
		"stops.txt":  feedStops,
		"routes.txt": feedRoutes,
		"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
			"WD,1,1,1,1,1,0,0,20260101,20261231\n" +
			"WE,0,0,0,0,0,1,1,20260101,20261231\n",
		"trips.txt": "route_id,service_id,trip_id,direction_id\nR1,WD,T1,0\nR1,WE,T2,0\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
			"T1,A,1,08:00:00,08:00:00\nT1,B,2,08:10:00,08:10:00\nT1,C,3,08:20:00,08:20:00\n" +
			"T2,A,1,10:00:00,10:00:00\nT2,B,2,10:10:00,10:10:00\nT2,C,3,10:20:00,10:20:00\n",
	})
	output := t.TempDir()

	cfg := DefaultConvertConfig()
	cfg.Input = input
	cfg.Output = output
	cfg.SplitByPeriods = true

	result, err := Convert(cfg)
	require.NoError(t, err)
	require.Contains(t, result.Manifests, "weekday")
	require.Contains(t, result.Manifests, "weekend")

	_, err = os.Stat(filepath.Join(output, "weekday", "routes.bin"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(output, "weekend", "routes.bin"))
	assert.NoError(t, err)
}

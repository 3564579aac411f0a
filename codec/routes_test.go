package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitdata/raptor-gtfs/transform"
)

func sampleRoutes() []transform.Route {
	return []transform.Route{
		{
			ID:      0,
			Name:    "R1",
			StopIDs: []uint32{0, 1, 2},
			Trips: []transform.Trip{
				{ID: 0, Times: []int32{28800, 29400, 30000}},
				{ID: 1, Times: []int32{32400, 33000, 33600}},
			},
		},
	}
}

func TestWriteReadRoutesRoundTripCompressed(t *testing.T) {
	var buf bytes.Buffer
	offsets, err := WriteRoutes(&buf, sampleRoutes(), true)
	require.NoError(t, err)
	require.Len(t, offsets, 1)
	// magic (4) + schema (2) + route count (4) precede the first record.
	assert.EqualValues(t, 10, offsets[0].Offset)

	got, err := ReadRoutes(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, sampleRoutes(), got)
}

func TestWriteReadRoutesRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteRoutes(&buf, sampleRoutes(), false)
	require.NoError(t, err)

	got, err := ReadRoutes(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, sampleRoutes(), got)
}

func TestReadRoutesBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	_, err := ReadRoutes(buf, true)
	require.Error(t, err)
	var badMagic *ErrBadMagic
	assert.ErrorAs(t, err, &badMagic)
}

func TestReadRoutesTruncated(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteRoutes(&buf, sampleRoutes(), true)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-5])
	_, err = ReadRoutes(truncated, true)
	require.Error(t, err)
	var trunc *ErrTruncated
	assert.ErrorAs(t, err, &trunc)
}

func TestWriteRoutesExcludesPartialTripsWhenCompressed(t *testing.T) {
	routes := []transform.Route{
		{
			ID:      0,
			Name:    "R1",
			StopIDs: []uint32{0, 1, 2},
			Trips: []transform.Trip{
				{ID: 0, Times: []int32{28800, 29400, 30000}},
				{ID: 1, Times: []int32{28800, transform.TimeMissing, 30000}, Partial: true},
			},
		},
	}

	var buf bytes.Buffer
	_, err := WriteRoutes(&buf, routes, true)
	require.NoError(t, err)

	got, err := ReadRoutes(&buf, true)
	require.NoError(t, err)
	require.Len(t, got[0].Trips, 1)
	assert.EqualValues(t, 0, got[0].Trips[0].ID)
}

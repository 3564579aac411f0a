package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoutesJSONSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRoutesJSON(&buf, sampleRoutes()))

	out := buf.String()
	assert.Contains(t, out, `"route_id_internal"`)
	assert.Contains(t, out, `"trip_id_internal"`)
	assert.Less(t, strings.Index(out, `"times"`), strings.Index(out, `"trip_id_internal"`))
}

func TestWriteStopsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStopsJSON(&buf, sampleStops()))
	assert.Contains(t, buf.String(), `"stop_id_internal"`)
}

func TestWriteIndexJSON(t *testing.T) {
	idx := BuildIndex(sampleStops(), []RouteOffset{{RouteID: 0, Offset: 6}}, []StopOffset{{StopID: 0, Offset: 6}})

	var buf bytes.Buffer
	require.NoError(t, WriteIndexJSON(&buf, idx))
	assert.Contains(t, buf.String(), `"stop_to_routes"`)
}

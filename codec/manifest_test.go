package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestChecksumRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.bin"), []byte("RRTS"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stops.bin"), []byte("RSTS"), 0o644))

	m, err := NewManifest(dir, []string{"feed/stops.txt"}, []string{"routes.bin", "stops.bin"},
		map[string]int{"routes": 1, "stops": 2}, map[string]any{"go": "go1.23"}, map[string]any{"mode": "auto"},
		"2026-07-30T00:00:00Z", "fixed-run-id")
	require.NoError(t, err)

	require.NoError(t, m.WriteFile(dir))

	loaded, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, m.Outputs, loaded.Outputs)
	assert.Equal(t, "fixed-run-id", loaded.RunID)

	problems := loaded.VerifyChecksums(dir)
	assert.Empty(t, problems)
}

func TestManifestVerifyChecksumsDetectsTamper(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.bin"), []byte("RRTS"), 0o644))

	m, err := NewManifest(dir, nil, []string{"routes.bin"}, nil, nil, nil, "2026-07-30T00:00:00Z", "run-1")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.bin"), []byte("TAMPERED"), 0o644))

	problems := m.VerifyChecksums(dir)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "checksum mismatch")
}

func TestManifestGeneratesRunIDWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManifest(dir, nil, nil, nil, nil, nil, "2026-07-30T00:00:00Z", "")
	require.NoError(t, err)
	assert.NotEmpty(t, m.RunID)
}

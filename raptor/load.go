package raptor

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bluele/gcache"

	"github.com/transitdata/raptor-gtfs/codec"
	"github.com/transitdata/raptor-gtfs/transform"
)

// Loader reads a built artifact directory into a Network and caches the
// result, so repeated queries against the same output directory don't
// re-decode routes.bin/stops.bin on every call (spec §5's "a query
// session owns a read-only view"). index.bin is not read.
type Loader struct {
	cache      gcache.Cache
	compressed bool
}

// NewLoader builds a Loader with an LRU cache of up to size artifact
// sets, each entry expiring after ttl.
func NewLoader(size int, ttl time.Duration, compressed bool) *Loader {
	return &Loader{
		cache: gcache.New(size).
			LRU().
			Expiration(ttl).
			Build(),
		compressed: compressed,
	}
}

// Load returns an Engine over the Network decoded from dir, decoding it
// on first access and serving the cached Engine on subsequent calls.
func (l *Loader) Load(dir string) (*Engine, error) {
	if cached, err := l.cache.Get(dir); err == nil {
		return cached.(*Engine), nil
	}

	network, err := decodeNetwork(dir, l.compressed)
	if err != nil {
		return nil, err
	}

	engine := New(network)
	_ = l.cache.Set(dir, engine)
	return engine, nil
}

func decodeNetwork(dir string, compressed bool) (*transform.Network, error) {
	routesFile, err := os.Open(filepath.Join(dir, "routes.bin"))
	if err != nil {
		return nil, err
	}
	defer routesFile.Close()
	routes, err := codec.ReadRoutes(routesFile, compressed)
	if err != nil {
		return nil, err
	}

	stopsFile, err := os.Open(filepath.Join(dir, "stops.bin"))
	if err != nil {
		return nil, err
	}
	defer stopsFile.Close()
	stops, err := codec.ReadStops(stopsFile)
	if err != nil {
		return nil, err
	}

	return &transform.Network{Routes: routes, Stops: stops}, nil
}

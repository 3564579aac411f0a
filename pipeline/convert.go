package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/transitdata/raptor-gtfs/codec"
	"github.com/transitdata/raptor-gtfs/gtfs"
	"github.com/transitdata/raptor-gtfs/transform"
	"github.com/transitdata/raptor-gtfs/validate"
)

// ConvertResult is what Convert hands back: one manifest per output
// target directory (period name, or "" for an unsplit run), plus the
// validation report that gated the run.
type ConvertResult struct {
	Report    *validate.Report
	Manifests map[string]*codec.Manifest
}

// Convert runs the full Read → Validate → Transform → Write → Manifest
// pipeline (spec §5). No stage starts before the previous completes.
func Convert(cfg ConvertConfig) (*ConvertResult, error) {
	if cfg.Mode == ModeLyon {
		return nil, &ErrModeNotImplemented{Mode: cfg.Mode}
	}

	reader, err := gtfs.Read(cfg.Input)
	if err != nil {
		return nil, err
	}

	report := validate.New(reader).Validate()
	if !report.Valid {
		return nil, &ErrValidationFailed{Report: report}
	}

	result, err := transform.Transform(reader, transform.Config{
		AllowPartialTrips: cfg.AllowPartialTrips,
		SplitByPeriods:    cfg.SplitByPeriods,
		Transfers: transform.TransferConfig{
			GenerateWalking: cfg.GenTransfers,
			SpeedWalkMS:     cfg.SpeedWalkMS,
			CutoffM:         cfg.TransferCutoffM,
		},
	})
	if err != nil {
		return nil, err
	}

	manifests := make(map[string]*codec.Manifest, len(result.Networks))
	for name, network := range result.Networks {
		targetDir := cfg.Output
		if name != "" {
			targetDir = filepath.Join(cfg.Output, name)
		}
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, err
		}

		manifest, err := writeNetwork(targetDir, network, cfg)
		if err != nil {
			return nil, err
		}
		manifests[name] = manifest
	}

	return &ConvertResult{Report: report, Manifests: manifests}, nil
}

func writeNetwork(dir string, network *transform.Network, cfg ConvertConfig) (*codec.Manifest, error) {
	var outputFiles []string

	if cfg.Format == FormatBinary || cfg.Format == FormatBoth {
		routeOffsets, err := writeFile(dir, "routes.bin", func(w *os.File) ([]codec.RouteOffset, error) {
			return codec.WriteRoutes(w, network.Routes, cfg.Compression)
		})
		if err != nil {
			return nil, err
		}
		stopOffsets, err := writeFile(dir, "stops.bin", func(w *os.File) ([]codec.StopOffset, error) {
			return codec.WriteStops(w, network.Stops)
		})
		if err != nil {
			return nil, err
		}

		idx := codec.BuildIndex(network.Stops, routeOffsets, stopOffsets)
		if err := writeFileNoResult(dir, "index.bin", func(w *os.File) error {
			return codec.WriteIndex(w, idx)
		}); err != nil {
			return nil, err
		}
		outputFiles = append(outputFiles, "routes.bin", "stops.bin", "index.bin")
	}

	if cfg.Format == FormatJSON || cfg.Format == FormatBoth || cfg.DebugJSON {
		if err := writeFileNoResult(dir, "routes.json", func(w *os.File) error {
			return codec.WriteRoutesJSON(w, network.Routes)
		}); err != nil {
			return nil, err
		}
		if err := writeFileNoResult(dir, "stops.json", func(w *os.File) error {
			return codec.WriteStopsJSON(w, network.Stops)
		}); err != nil {
			return nil, err
		}

		idx := codec.BuildIndex(network.Stops, nil, nil)
		if err := writeFileNoResult(dir, "index.json", func(w *os.File) error {
			return codec.WriteIndexJSON(w, idx)
		}); err != nil {
			return nil, err
		}

		if cfg.Format == FormatJSON || cfg.Format == FormatBoth {
			outputFiles = append(outputFiles, "routes.json", "stops.json", "index.json")
		}
	}

	if len(outputFiles) == 0 {
		return nil, &ErrInternalAssertion{Detail: fmt.Sprintf("writeNetwork produced no output files for format %q", cfg.Format)}
	}

	var trips, stopTimes, transfers int
	for _, r := range network.Routes {
		trips += len(r.Trips)
		stopTimes += len(r.StopIDs) * len(r.Trips)
	}
	for _, s := range network.Stops {
		transfers += len(s.Transfers)
	}
	stats := map[string]int{
		"routes":     len(network.Routes),
		"stops":      len(network.Stops),
		"trips":      trips,
		"stop_times": stopTimes,
		"transfers":  transfers,
	}

	build := map[string]any{
		"go":       runtime.Version(),
		"os":       runtime.GOOS,
		"arch":     runtime.GOARCH,
		"compiler": runtime.Compiler,
	}
	config := map[string]any{
		"mode":                string(cfg.Mode),
		"compression":         cfg.Compression,
		"gen_transfers":       cfg.GenTransfers,
		"allow_partial_trips": cfg.AllowPartialTrips,
	}

	manifest, err := codec.NewManifest(dir, []string{cfg.Input}, outputFiles, stats, build, config, cfg.CreatedAt, cfg.RunID)
	if err != nil {
		return nil, err
	}
	if err := manifest.WriteFile(dir); err != nil {
		return nil, err
	}
	return manifest, nil
}

func writeFile[T any](dir, name string, write func(*os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return write(f)
}

func writeFileNoResult(dir, name string, write func(*os.File) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

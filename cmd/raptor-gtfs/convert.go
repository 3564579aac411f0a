package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/transitdata/raptor-gtfs/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a GTFS feed directory into routing artifacts",
	RunE:  runConvert,
}

var (
	convertInput             string
	convertOutput            string
	convertFormat            string
	convertCompression       bool
	convertDebugJSON         bool
	convertGenTransfers      bool
	convertAllowPartialTrips bool
	convertSpeedWalkMS       float64
	convertTransferCutoffM   float64
	convertSplitByPeriods    bool
	convertMode              string
)

func init() {
	defaults := pipeline.DefaultConvertConfig()

	convertCmd.Flags().StringVar(&convertInput, "input", "", "GTFS feed directory (required)")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Output directory for routing artifacts (required)")
	convertCmd.Flags().StringVar(&convertFormat, "format", string(defaults.Format), "Output format: binary, json, or both")
	convertCmd.Flags().BoolVar(&convertCompression, "compression", defaults.Compression, "Delta-encode trip time rows")
	convertCmd.Flags().BoolVar(&convertDebugJSON, "debug-json", false, "Also write human-readable JSON mirrors alongside the binary output")
	convertCmd.Flags().BoolVar(&convertGenTransfers, "gen-transfers", false, "Generate walking transfers between nearby stops")
	convertCmd.Flags().BoolVar(&convertAllowPartialTrips, "allow-partial-trips", false, "Keep trips missing stops on their route's canonical pattern")
	convertCmd.Flags().Float64Var(&convertSpeedWalkMS, "speed-walk", defaults.SpeedWalkMS, "Assumed walking speed in meters/second")
	convertCmd.Flags().Float64Var(&convertTransferCutoffM, "transfer-cutoff", defaults.TransferCutoffM, "Maximum walking transfer distance in meters")
	convertCmd.Flags().BoolVar(&convertSplitByPeriods, "split-by-periods", false, "Split output into one network per service period")
	convertCmd.Flags().StringVar(&convertMode, "mode", string(defaults.Mode), "Period-split heuristic: auto or lyon")

	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var format pipeline.Format
	switch convertFormat {
	case string(pipeline.FormatBinary):
		format = pipeline.FormatBinary
	case string(pipeline.FormatJSON):
		format = pipeline.FormatJSON
	case string(pipeline.FormatBoth):
		format = pipeline.FormatBoth
	default:
		return fmt.Errorf("--format must be one of binary, json, both (got %q)", convertFormat)
	}

	var mode pipeline.Mode
	switch convertMode {
	case string(pipeline.ModeAuto):
		mode = pipeline.ModeAuto
	case string(pipeline.ModeLyon):
		mode = pipeline.ModeLyon
	default:
		return fmt.Errorf("--mode must be one of auto, lyon (got %q)", convertMode)
	}

	cfg := pipeline.ConvertConfig{
		Input:             convertInput,
		Output:            convertOutput,
		Format:            format,
		Compression:       convertCompression,
		DebugJSON:         convertDebugJSON,
		GenTransfers:      convertGenTransfers,
		AllowPartialTrips: convertAllowPartialTrips,
		SpeedWalkMS:       convertSpeedWalkMS,
		TransferCutoffM:   convertTransferCutoffM,
		SplitByPeriods:    convertSplitByPeriods,
		Mode:              mode,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
		RunID:             uuid.NewString(),
	}

	log.Info("reading feed", "input", cfg.Input)
	result, err := pipeline.Convert(cfg)
	if err != nil {
		return wrapRuntime(err)
	}

	for name, manifest := range result.Manifests {
		if name == "" {
			log.Info("wrote network", "output", cfg.Output, "routes", manifest.Stats["routes"], "stops", manifest.Stats["stops"])
			continue
		}
		log.Info("wrote period network", "period", name, "routes", manifest.Stats["routes"], "stops", manifest.Stats["stops"])
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/transitdata/raptor-gtfs/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a previously-built output directory",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVar(&validateInput, "input", "", "Output directory to validate (required)")
	_ = validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := pipeline.ValidateArtifacts(validateInput)
	if err != nil {
		return wrapRuntime(err)
	}

	for _, problem := range report.Problems {
		log.Warn(problem)
	}
	for _, problem := range report.ChecksumProblems {
		log.Warn(problem)
	}

	if !report.Valid {
		return wrapRuntime(fmt.Errorf("validation found %d problem(s)", len(report.Problems)+len(report.ChecksumProblems)))
	}

	log.Info("artifacts valid", "routes", report.Stats["routes"], "stops", report.Stats["stops"])
	return nil
}

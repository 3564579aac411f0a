package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "raptor-gtfs",
	Short:        "Builds RAPTOR routing artifacts from a GTFS feed",
	Long:         "Converts a GTFS static feed into the binary routing format the query engine loads, and validates previously-built output directories.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(exitCodeFor(err))
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/transitdata/raptor-gtfs/gtfs"
	"github.com/transitdata/raptor-gtfs/raptor"
)

var rootCmd = &cobra.Command{
	Use:          "raptor-query",
	Short:        "Runs a one-shot earliest-arrival query against built routing artifacts",
	SilenceUsage: true,
	RunE:         runQuery,
}

var (
	artifactsDir string
	fromStop     string
	toStop       string
	departure    string
	maxRounds    int
	compressed   bool
)

func init() {
	rootCmd.Flags().StringVar(&artifactsDir, "artifacts", "", "Directory containing routes.bin and stops.bin (required)")
	rootCmd.Flags().StringVar(&fromStop, "from", "", "Origin stop_id, as it appears in the source feed (required)")
	rootCmd.Flags().StringVar(&toStop, "to", "", "Destination stop_id (required)")
	rootCmd.Flags().StringVar(&departure, "departure", "", "Departure time, HH:MM:SS, may exceed 24:00:00 (required)")
	rootCmd.Flags().IntVar(&maxRounds, "max-rounds", raptor.DefaultMaxRounds, "Maximum number of RAPTOR rounds (transfer limit + 1)")
	rootCmd.Flags().BoolVar(&compressed, "compressed", true, "Whether routes.bin was written with delta compression")

	_ = rootCmd.MarkFlagRequired("artifacts")
	_ = rootCmd.MarkFlagRequired("from")
	_ = rootCmd.MarkFlagRequired("to")
	_ = rootCmd.MarkFlagRequired("departure")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	departureSec, err := gtfs.ParseTime(departure)
	if err != nil {
		return fmt.Errorf("--departure: %w", err)
	}

	loader := raptor.NewLoader(16, time.Hour, compressed)
	engine, err := loader.Load(artifactsDir)
	if err != nil {
		return fmt.Errorf("loading artifacts: %w", err)
	}

	source, ok := engine.StopByExternalID(fromStop)
	if !ok {
		return fmt.Errorf("--from: stop %q not found in network", fromStop)
	}
	target, ok := engine.StopByExternalID(toStop)
	if !ok {
		return fmt.Errorf("--to: stop %q not found in network", toStop)
	}

	journey := engine.Run(raptor.Query{
		Source:    source,
		Target:    target,
		Departure: int64(departureSec),
		MaxRounds: maxRounds,
	})
	if journey == nil {
		fmt.Println("no journey found")
		return nil
	}

	printJourney(engine, journey)
	return nil
}

func formatClockTime(sec int64) string {
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func printJourney(engine *raptor.Engine, j *raptor.Journey) {
	fmt.Printf("arrival %s, %d round(s), %d leg(s)\n", formatClockTime(j.ArrivalTime), j.Rounds, len(j.Legs))
	for _, leg := range j.Legs {
		switch {
		case leg.Transit != nil:
			t := leg.Transit
			routeName := fmt.Sprintf("route %d", t.RouteID)
			if route, ok := engine.Route(t.RouteID); ok {
				routeName = route.Name
			}
			fmt.Printf("  ride %-20s %s -> %s  %s -> %s\n",
				routeName, stopName(engine, t.FromStop), stopName(engine, t.ToStop),
				formatClockTime(t.DepartureTime), formatClockTime(t.ArrivalTime))
		case leg.Walk != nil:
			w := leg.Walk
			fmt.Printf("  walk %-20s %s -> %s  %ds\n", "", stopName(engine, w.FromStop), stopName(engine, w.ToStop), w.WalkTime)
		}
	}
}

func stopName(engine *raptor.Engine, id uint32) string {
	if s, ok := engine.Stop(id); ok {
		return s.Name
	}
	return fmt.Sprintf("stop %d", id)
}

// Package pipeline orchestrates the full Read → Validate → Transform →
// Write → Manifest stage sequence (spec §5) behind two entry points,
// Convert and ValidateArtifacts.
package pipeline

// Mode selects a calendar-grouping heuristic for period splitting.
// Only ModeAuto is implemented; ModeLyon is accepted by the CLI but
// rejected at runtime, since the Lyon TCL service-ID heuristic is
// agency-specific and out of scope for the core engine.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeLyon Mode = "lyon"
)

// Format selects which output artifacts Convert writes.
type Format string

const (
	FormatBinary Format = "binary"
	FormatJSON   Format = "json"
	FormatBoth   Format = "both"
)

// ConvertConfig mirrors the `convert` CLI flags (spec §6).
type ConvertConfig struct {
	Input             string
	Output            string
	Format            Format
	Compression       bool
	DebugJSON         bool
	GenTransfers      bool
	AllowPartialTrips bool
	SpeedWalkMS       float64
	TransferCutoffM   float64
	SplitByPeriods    bool
	Mode              Mode

	// CreatedAt and RunID are supplied by the caller (not computed here);
	// Convert never reads the clock. An empty RunID is replaced by a
	// fresh random UUID in codec.NewManifest.
	CreatedAt string
	RunID     string
}

// DefaultConvertConfig returns the flag defaults named in spec §6.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Format:          FormatBinary,
		Compression:     true,
		SpeedWalkMS:     1.33,
		TransferCutoffM: 500,
		Mode:            ModeAuto,
	}
}

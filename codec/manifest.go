package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// ToolVersion is stamped into every manifest; bump alongside on-disk
// schema changes that aren't purely additive.
const ToolVersion = "1.0.0"

// Manifest is the UTF-8 JSON artifact written alongside every output
// directory: schema/tool versions, a run identifier, input paths,
// output checksums and build stats (spec §4.4). Build holds host/runtime
// metadata the artifact was produced under (Go version, OS/arch),
// mirroring how _examples/original_source/api.py's Manifest.build
// records the interpreter version and platform it ran on — not the
// pipeline flags used for this run, which live in Config instead.
type Manifest struct {
	SchemaVersion uint16            `json:"schema_version"`
	ToolVersion   string            `json:"tool_version"`
	RunID         string            `json:"run_id"`
	CreatedAt     string            `json:"created_at"`
	Inputs        []string          `json:"inputs"`
	Outputs       map[string]string `json:"outputs"`
	Stats         map[string]int    `json:"stats"`
	Build         map[string]any    `json:"build"`
	Config        map[string]any    `json:"config"`
}

// NewManifest hashes every file named in outputs (relative to dir) and
// assembles a Manifest. createdAt is used exactly as the caller gives
// it; the clock is never read here. runID is likewise taken from the
// caller, except that an empty runID is replaced by a fresh random UUID.
func NewManifest(dir string, inputs []string, outputFiles []string, stats map[string]int, build, config map[string]any, createdAt string, runID string) (*Manifest, error) {
	if runID == "" {
		runID = uuid.NewString()
	}

	outputs := make(map[string]string, len(outputFiles))
	for _, name := range outputFiles {
		sum, err := sha256File(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		outputs[name] = sum
	}

	return &Manifest{
		SchemaVersion: SchemaVersion,
		ToolVersion:   ToolVersion,
		RunID:         runID,
		CreatedAt:     createdAt,
		Inputs:        inputs,
		Outputs:       outputs,
		Stats:         stats,
		Build:         build,
		Config:        config,
	}, nil
}

// Write serializes the manifest as sorted-key, two-space-indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	sorted := sortedManifestView(m)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sorted)
}

// WriteFile writes the manifest to <dir>/manifest.json.
func (m *Manifest) WriteFile(dir string) error {
	f, err := os.Create(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Write(f)
}

// ReadManifest loads manifest.json from dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// VerifyChecksums recomputes SHA-256 for every file named in the
// manifest's outputs and reports any mismatch or missing file.
func (m *Manifest) VerifyChecksums(dir string) []string {
	names := make([]string, 0, len(m.Outputs))
	for name := range m.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		want := m.Outputs[name]
		got, err := sha256File(filepath.Join(dir, name))
		if err != nil {
			problems = append(problems, name+": "+err.Error())
			continue
		}
		if got != want {
			problems = append(problems, name+": checksum mismatch")
		}
	}
	return problems
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// sortedManifestView re-marshals through a map so Go's JSON encoder,
// which always sorts map keys, produces the same key ordering no matter
// the struct's field declaration order.
func sortedManifestView(m *Manifest) map[string]any {
	return map[string]any{
		"schema_version": m.SchemaVersion,
		"tool_version":   m.ToolVersion,
		"run_id":         m.RunID,
		"created_at":     m.CreatedAt,
		"inputs":         m.Inputs,
		"outputs":        m.Outputs,
		"stats":          m.Stats,
		"build":          m.Build,
		"config":         m.Config,
	}
}

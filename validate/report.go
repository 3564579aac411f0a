// Package validate implements the Feed Validator (C2): a set of
// consistency checks over a parsed gtfs.Reader that produce a report of
// errors and warnings without mutating the feed.
package validate

// Report is the result of validating a feed. Valid is false whenever
// Errors is non-empty; Warnings never affect Valid.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Stats    map[string]int
}

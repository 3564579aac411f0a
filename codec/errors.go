// Package codec implements the Binary Codec (C4): little-endian
// fixed-layout readers and writers for routes.bin, stops.bin and
// index.bin, the delta encoding used for trip time rows, the manifest
// (checksums + run metadata), and debug JSON mirrors of the same data.
package codec

import "fmt"

// ErrBadMagic is returned when a file's leading 4 bytes don't match the
// expected magic for that file kind.
type ErrBadMagic struct {
	File     string
	Expected string
	Got      string
}

func (e *ErrBadMagic) Error() string {
	return fmt.Sprintf("%s: bad magic: expected %q, got %q", e.File, e.Expected, e.Got)
}

// ErrUnsupportedSchema is returned when a file's schema version is
// newer than this codec knows how to decode.
type ErrUnsupportedSchema struct {
	File    string
	Version uint16
}

func (e *ErrUnsupportedSchema) Error() string {
	return fmt.Sprintf("%s: unsupported schema version %d", e.File, e.Version)
}

// ErrTruncated is returned when a file ends before a complete record
// could be read.
type ErrTruncated struct {
	File string
	Want int
	Got  int
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("%s: truncated: wanted %d bytes, got %d", e.File, e.Want, e.Got)
}

// ErrBadEncoding is returned when a length-prefixed string's bytes are
// not valid UTF-8.
type ErrBadEncoding struct {
	File string
}

func (e *ErrBadEncoding) Error() string {
	return fmt.Sprintf("%s: string field is not valid UTF-8", e.File)
}

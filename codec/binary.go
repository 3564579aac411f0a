package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// SchemaVersion is the current on-disk schema version written to every
// file's header.
const SchemaVersion uint16 = 1

var (
	magicRoutes = [4]byte{'R', 'R', 'T', 'S'}
	magicStops  = [4]byte{'R', 'S', 'T', 'S'}
	magicIndex  = [4]byte{'R', 'I', 'D', 'X'}
)

// writer wraps a buffered byte sink with the fixed-width primitives
// shared by routes.bin, stops.bin and index.bin, tracking the running
// byte offset so callers can record record start offsets for index.bin.
type writer struct {
	w      *bufio.Writer
	offset int64
	err    error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: bufio.NewWriter(w)}
}

func (w *writer) writeBytes(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(b)
	w.offset += int64(n)
	if err != nil {
		w.err = err
	}
}

func (w *writer) writeUint16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.writeBytes(buf[:])
}

func (w *writer) writeUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.writeBytes(buf[:])
}

func (w *writer) writeUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.writeBytes(buf[:])
}

func (w *writer) writeInt32(v int32) {
	w.writeUint32(uint32(v))
}

func (w *writer) writeFloat64(v float64) {
	w.writeUint64(math.Float64bits(v))
}

func (w *writer) writeString(s string) {
	w.writeUint16(uint16(len(s)))
	w.writeBytes([]byte(s))
}

func (w *writer) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// reader mirrors writer for decoding, tracking the file name for error
// messages.
type reader struct {
	r    *bufio.Reader
	file string
}

func newReader(r io.Reader, file string) *reader {
	return &reader{r: bufio.NewReader(r), file: file}
}

func (r *reader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	if err != nil {
		return nil, &ErrTruncated{File: r.file, Want: n, Got: got}
	}
	return buf, nil
}

func (r *reader) readUint16() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) readUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) readUint64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}

func (r *reader) readFloat64() (float64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *reader) readString() (string, error) {
	n, err := r.readUint16()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &ErrBadEncoding{File: r.file}
	}
	return string(b), nil
}

func (r *reader) readMagic(want [4]byte) error {
	got, err := r.readBytes(4)
	if err != nil {
		return err
	}
	if string(got) != string(want[:]) {
		return &ErrBadMagic{File: r.file, Expected: string(want[:]), Got: string(got)}
	}
	return nil
}

func (r *reader) readSchema() (uint16, error) {
	v, err := r.readUint16()
	if err != nil {
		return 0, err
	}
	if v > SchemaVersion {
		return v, &ErrUnsupportedSchema{File: r.file, Version: v}
	}
	return v, nil
}

package codec

import (
	"bytes"
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding"
)

// textOptions controls how fixed-width string fields are cut and converted.
type textOptions struct {
	terminators []byte
	charset     encoding.Encoding // nil copies bytes verbatim
}

var defaultTerminators = []byte{0x00}

// Reader is a forward-only cursor over an in-memory little-endian buffer.
// The buffer is never modified; a failed read leaves the cursor where it was.
type Reader struct {
	data []byte
	pos  int
	text textOptions
}

// NewReader creates a Reader over data using NUL-terminated, byte-verbatim strings.
func NewReader(data []byte) *Reader {
	return newReader(data, textOptions{terminators: defaultTerminators})
}

func newReader(data []byte, text textOptions) *Reader {
	if len(text.terminators) == 0 {
		text.terminators = defaultTerminators
	}
	return &Reader{data: data, text: text}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// take returns the next n bytes without copying and advances the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, truncated(r.pos, n, r.Remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Flag reads one byte; any non-zero value is true.
func (r *Reader) Flag() (bool, error) {
	b, err := r.Uint8()
	return b != 0, err
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int32 reads a little-endian two's complement int32.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Float32 reads a little-endian IEEE-754 single precision value.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// Bytes reads n raw bytes and returns a copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// FixedString consumes exactly n bytes and returns the content before the
// first terminator. Bytes after the terminator are skipped without inspection.
func (r *Reader) FixedString(n int) (string, error) {
	start := r.pos
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	b = b[:terminatedLen(b, r.text.terminators)]
	if r.text.charset == nil {
		return string(b), nil
	}
	out, err := r.text.charset.NewDecoder().Bytes(b)
	if err != nil {
		r.pos = start
		return "", &DecodeError{Kind: KindInvalidText, Index: -1, Offset: start, Cause: err}
	}
	return string(out), nil
}

// terminatedLen returns the index of the first terminator in b, or len(b).
func terminatedLen(b, terminators []byte) int {
	end := len(b)
	for _, t := range terminators {
		if i := bytes.IndexByte(b[:end], t); i >= 0 {
			end = i
		}
	}
	return end
}

package codec

import (
	"encoding/binary"
	"math"
)

// Writer appends little-endian values to a growing buffer. It mirrors Reader
// so that every descriptor can be written back with the same widths.
type Writer struct {
	buf  []byte
	text textOptions
}

// NewWriter creates a Writer with NUL padding and byte-verbatim strings.
func NewWriter(sizeHint int) *Writer {
	return newWriter(sizeHint, textOptions{terminators: defaultTerminators})
}

func newWriter(sizeHint int, text textOptions) *Writer {
	if len(text.terminators) == 0 {
		text.terminators = defaultTerminators
	}
	return &Writer{buf: make([]byte, 0, sizeHint), text: text}
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int {
	return len(w.buf)
}

// Bytes returns the written buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Uint8 writes one byte.
func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

// Flag writes 1 for true and 0 for false.
func (w *Writer) Flag(v bool) {
	if v {
		w.Uint8(1)
		return
	}
	w.Uint8(0)
}

// Uint16 writes a little-endian uint16.
func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// Uint32 writes a little-endian uint32.
func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Int32 writes a little-endian int32.
func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

// Float32 writes a little-endian IEEE-754 single precision value.
func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

// Raw writes exactly n bytes: b zero-padded on the right. b longer than n is an overflow.
func (w *Writer) Raw(n int, b []byte) error {
	if len(b) > n {
		return &DecodeError{Kind: KindFieldOverflow, Index: -1, Offset: w.Position(), Need: len(b), Remaining: n}
	}
	w.buf = append(w.buf, b...)
	w.pad(n - len(b))
	return nil
}

// FixedString writes s into an n byte field followed by a terminator and zero
// padding. A value that fills the field exactly is written without terminator.
func (w *Writer) FixedString(n int, s string) error {
	b := []byte(s)
	if w.text.charset != nil {
		enc, err := w.text.charset.NewEncoder().Bytes(b)
		if err != nil {
			return &DecodeError{Kind: KindInvalidText, Index: -1, Offset: w.Position(), Cause: err}
		}
		b = enc
	}
	if len(b) > n {
		return &DecodeError{Kind: KindFieldOverflow, Index: -1, Offset: w.Position(), Need: len(b), Remaining: n}
	}
	w.buf = append(w.buf, b...)
	if len(b) < n {
		w.buf = append(w.buf, w.text.terminators[0])
		w.pad(n - len(b) - 1)
	}
	return nil
}

func (w *Writer) pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

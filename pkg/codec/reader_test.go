package codec

import (
	"errors"
	"math"
	"testing"
)

func TestReader_Primitives(t *testing.T) {
	data := []byte{
		0x7f,       // uint8
		0x02,       // flag
		0x34, 0x12, // uint16
		0x78, 0x56, 0x34, 0x12, // uint32
		0xfe, 0xff, 0xff, 0xff, // int32 -2
	}
	data = append(data, le32(math.Float32bits(1.5))...)

	r := NewReader(data)

	u8, err := r.Uint8()
	if err != nil || u8 != 0x7f {
		t.Fatalf("Uint8 = %d, %v", u8, err)
	}
	flag, err := r.Flag()
	if err != nil || !flag {
		t.Fatalf("Flag = %v, %v", flag, err)
	}
	u16, err := r.Uint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("Uint16 = %#x, %v", u16, err)
	}
	u32, err := r.Uint32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("Uint32 = %#x, %v", u32, err)
	}
	i32, err := r.Int32()
	if err != nil || i32 != -2 {
		t.Fatalf("Int32 = %d, %v", i32, err)
	}
	f32, err := r.Float32()
	if err != nil || f32 != 1.5 {
		t.Fatalf("Float32 = %v, %v", f32, err)
	}

	if r.Remaining() != 0 {
		t.Errorf("Expected buffer to be consumed, %d bytes remain", r.Remaining())
	}
	if r.Position() != len(data) {
		t.Errorf("Position = %d, want %d", r.Position(), len(data))
	}
}

func TestReader_TruncatedDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	if _, err := r.Uint8(); err != nil {
		t.Fatalf("Uint8 failed: %v", err)
	}

	_, err := r.Uint32()
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("Expected truncated input, got %v", err)
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Expected *DecodeError, got %T", err)
	}
	if de.Offset != 1 || de.Need != 4 || de.Remaining != 2 {
		t.Errorf("Unexpected error context: offset=%d need=%d remaining=%d", de.Offset, de.Need, de.Remaining)
	}
	if r.Position() != 1 {
		t.Errorf("Cursor moved on failed read: %d", r.Position())
	}
}

func TestReader_FixedString(t *testing.T) {
	testCases := []struct {
		name  string
		data  []byte
		width int
		want  string
	}{
		{
			name:  "terminated with zero padding",
			data:  []byte("abc\x00\x00\x00"),
			width: 6,
			want:  "abc",
		},
		{
			name:  "garbage after terminator",
			data:  []byte("abc\x00\xff\x13zz"),
			width: 8,
			want:  "abc",
		},
		{
			name:  "no terminator uses full width",
			data:  []byte("abcdef"),
			width: 6,
			want:  "abcdef",
		},
		{
			name:  "empty value",
			data:  []byte("\x00junk"),
			width: 5,
			want:  "",
		},
		{
			name:  "single byte field",
			data:  []byte("A"),
			width: 1,
			want:  "A",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := append(append([]byte(nil), tc.data...), 0xAA)
			r := NewReader(data)

			got, err := r.FixedString(tc.width)
			if err != nil {
				t.Fatalf("FixedString failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("FixedString = %q, want %q", got, tc.want)
			}
			if r.Position() != tc.width {
				t.Errorf("Cursor at %d, want %d", r.Position(), tc.width)
			}

			next, err := r.Uint8()
			if err != nil || next != 0xAA {
				t.Errorf("Next byte = %#x, %v", next, err)
			}
		})
	}
}

func TestReader_FixedStringTruncated(t *testing.T) {
	r := NewReader([]byte("ab\x00"))
	if _, err := r.FixedString(4); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("Expected truncated input, got %v", err)
	}
	if r.Position() != 0 {
		t.Errorf("Cursor moved on failed read: %d", r.Position())
	}
}

func TestReader_CustomTerminators(t *testing.T) {
	r := newReader([]byte("abc|def\x00"), textOptions{terminators: []byte{0x00, '|'}})
	got, err := r.FixedString(8)
	if err != nil {
		t.Fatalf("FixedString failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("FixedString = %q, want %q", got, "abc")
	}
}

func TestWriter_FixedString(t *testing.T) {
	w := NewWriter(8)
	if err := w.FixedString(6, "abc"); err != nil {
		t.Fatalf("FixedString failed: %v", err)
	}
	if got := string(w.Bytes()); got != "abc\x00\x00\x00" {
		t.Errorf("Encoded %q", got)
	}

	if err := w.FixedString(2, "abc"); !errors.Is(err, ErrFieldOverflow) {
		t.Errorf("Expected field overflow, got %v", err)
	}
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

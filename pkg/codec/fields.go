package codec

import "fmt"

// layout is implemented by every record and block. fields returns the
// descriptors bound to the receiver's own storage, in on-disk order.
type layout interface {
	recordName() string
	fields() []field
}

// field describes one fixed-width slot of a layout.
type field struct {
	name   string
	size   int
	decode func(r *Reader) error
	encode func(w *Writer) error
	value  func() any

	// elems is set for embedded fixed arrays of records.
	elems func() []layout
}

func decodeLayout(r *Reader, l layout) error {
	for _, f := range l.fields() {
		if err := f.decode(r); err != nil {
			return annotate(err, l.recordName(), f.name)
		}
	}
	return nil
}

func encodeLayout(w *Writer, l layout) error {
	for _, f := range l.fields() {
		if err := f.encode(w); err != nil {
			return annotate(err, l.recordName(), f.name)
		}
	}
	return nil
}

// layoutSize is the number of bytes l occupies on disk.
func layoutSize(l layout) int {
	n := 0
	for _, f := range l.fields() {
		n += f.size
	}
	return n
}

func u8Field(name string, dst *uint8) field {
	return field{
		name: name,
		size: 1,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Uint8()
			return err
		},
		encode: func(w *Writer) error {
			w.Uint8(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

func flagField(name string, dst *bool) field {
	return field{
		name: name,
		size: 1,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Flag()
			return err
		},
		encode: func(w *Writer) error {
			w.Flag(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

func u16Field(name string, dst *uint16) field {
	return field{
		name: name,
		size: 2,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Uint16()
			return err
		},
		encode: func(w *Writer) error {
			w.Uint16(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

func u32Field(name string, dst *uint32) field {
	return field{
		name: name,
		size: 4,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Uint32()
			return err
		},
		encode: func(w *Writer) error {
			w.Uint32(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

func i32Field(name string, dst *int32) field {
	return field{
		name: name,
		size: 4,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Int32()
			return err
		},
		encode: func(w *Writer) error {
			w.Int32(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

func f32Field(name string, dst *float32) field {
	return field{
		name: name,
		size: 4,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Float32()
			return err
		},
		encode: func(w *Writer) error {
			w.Float32(*dst)
			return nil
		},
		value: func() any { return *dst },
	}
}

// textField is a fixed-width terminated string of n bytes.
func textField(name string, n int, dst *string) field {
	return field{
		name: name,
		size: n,
		decode: func(r *Reader) (err error) {
			*dst, err = r.FixedString(n)
			return err
		},
		encode: func(w *Writer) error {
			return w.FixedString(n, *dst)
		},
		value: func() any { return *dst },
	}
}

// rawField keeps n undocumented bytes verbatim.
func rawField(name string, n int, dst *[]byte) field {
	return field{
		name: name,
		size: n,
		decode: func(r *Reader) (err error) {
			*dst, err = r.Bytes(n)
			return err
		},
		encode: func(w *Writer) error {
			return w.Raw(n, *dst)
		},
		value: func() any { return *dst },
	}
}

func enumField[T ~uint8](name string, table *enumTable[T], dst *T) field {
	return field{
		name: name,
		size: 1,
		decode: func(r *Reader) error {
			at := r.Position()
			b, err := r.Uint8()
			if err != nil {
				return err
			}
			if !table.accept(b) {
				return &DecodeError{Kind: KindUnmappedEnumCode, Index: -1, Offset: at, Code: b}
			}
			*dst = T(b)
			return nil
		},
		encode: func(w *Writer) error {
			if !table.accept(byte(*dst)) {
				return &DecodeError{Kind: KindUnmappedEnumCode, Index: -1, Offset: w.Position(), Code: byte(*dst)}
			}
			w.Uint8(uint8(*dst))
			return nil
		},
		value: func() any { return *dst },
	}
}

// stepsField embeds the fixed-capacity step array of the mash block.
func stepsField(name string, dst *[MashStepCapacity]Step) field {
	return field{
		name: name,
		size: MashStepCapacity * StepSize,
		decode: func(r *Reader) error {
			for i := range dst {
				if err := decodeLayout(r, &dst[i]); err != nil {
					return nest(err, fmt.Sprintf("%s[%d]", name, i))
				}
			}
			return nil
		},
		encode: func(w *Writer) error {
			for i := range dst {
				if err := encodeLayout(w, &dst[i]); err != nil {
					return nest(err, fmt.Sprintf("%s[%d]", name, i))
				}
			}
			return nil
		},
		value: func() any { return dst[:] },
		elems: func() []layout {
			out := make([]layout, len(dst))
			for i := range dst {
				out[i] = &dst[i]
			}
			return out
		},
	}
}

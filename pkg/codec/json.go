package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Float slots carry whatever bits the producer left behind, so NaN and the
// infinities are valid decoded values. JSON has no literal for them; they are
// written as the strings "NaN", "+Inf" and "-Inf". Finite values are plain numbers.

func (h Header) MarshalJSON() ([]byte, error)      { return marshalLayout(&h) }
func (s Style) MarshalJSON() ([]byte, error)       { return marshalLayout(&s) }
func (h Hop) MarshalJSON() ([]byte, error)         { return marshalLayout(&h) }
func (f Fermentable) MarshalJSON() ([]byte, error) { return marshalLayout(&f) }
func (m Misc) MarshalJSON() ([]byte, error)        { return marshalLayout(&m) }
func (y Yeast) MarshalJSON() ([]byte, error)       { return marshalLayout(&y) }
func (w Water) MarshalJSON() ([]byte, error)       { return marshalLayout(&w) }
func (m Mash) MarshalJSON() ([]byte, error)        { return marshalLayout(&m) }
func (s Step) MarshalJSON() ([]byte, error)        { return marshalLayout(&s) }

// MarshalJSON encodes the attribute as {"path": ..., "value": ...}.
func (a Attribute) MarshalJSON() ([]byte, error) {
	path, err := json.Marshal(a.Path)
	if err != nil {
		return nil, err
	}
	value, err := marshalValue(a.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"path":`)
	buf.Write(path)
	buf.WriteString(`,"value":`)
	buf.Write(value)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalLayout writes l as a JSON object in on-disk field order.
func marshalLayout(l layout) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range l.fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.name)
		if err != nil {
			return nil, err
		}
		value, err := marshalValue(f.value())
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", l.recordName(), f.name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	if x, ok := v.(float32); ok {
		return marshalFloat32(x)
	}
	return json.Marshal(v)
}

func marshalFloat32(x float32) ([]byte, error) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 32))
	}
	return json.Marshal(x)
}

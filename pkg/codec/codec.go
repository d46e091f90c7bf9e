package codec

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// State names the stage of the file layout being decoded.
type State string

const (
	StateHeader       State = "header"
	StateStyle        State = "style"
	StateHops         State = "hops"
	StateFermentables State = "fermentables"
	StateMiscs        State = "miscs"
	StateYeast        State = "yeast"
	StateWater        State = "water"
	StateMash         State = "mash"
)

// File is a fully decoded recipe. Hops, Fermentables and Miscs have exactly the
// lengths announced in Header.
type File struct {
	Header       Header
	Style        Style
	Hops         []Hop
	Fermentables []Fermentable
	Miscs        []Misc
	Yeast        Yeast
	Water        Water
	Mash         Mash
}

// Size returns the number of bytes f occupies when encoded.
func (f *File) Size() int {
	return HeaderSize + StyleSize +
		len(f.Hops)*HopSize +
		len(f.Fermentables)*FermentableSize +
		len(f.Miscs)*MiscSize +
		YeastSize + WaterSize + MashSize
}

// Option configures a RecipeCodec.
type Option func(*RecipeCodec)

// WithTerminators replaces the string terminator set (default NUL).
func WithTerminators(terminators ...byte) Option {
	return func(c *RecipeCodec) {
		if len(terminators) > 0 {
			c.text.terminators = append([]byte(nil), terminators...)
		}
	}
}

// WithCharset sets the code page used to convert text fields to UTF-8.
func WithCharset(enc encoding.Encoding) Option {
	return func(c *RecipeCodec) {
		c.text.charset = enc
	}
}

// WithRawText copies text bytes into strings without conversion.
func WithRawText() Option {
	return func(c *RecipeCodec) {
		c.text.charset = nil
	}
}

// WithLogger sets the logger used for debug tracing of decode stages.
func WithLogger(l *zap.Logger) Option {
	return func(c *RecipeCodec) {
		if l != nil {
			c.logger = l
		}
	}
}

// RecipeCodec decodes and encodes recipe files. It holds no per-call state
// and is safe for concurrent use.
type RecipeCodec struct {
	text   textOptions
	logger *zap.Logger
}

// NewRecipeCodec creates a codec with NUL terminators and Windows-1252 text.
func NewRecipeCodec(opts ...Option) *RecipeCodec {
	c := &RecipeCodec{
		text: textOptions{
			terminators: defaultTerminators,
			charset:     charmap.Windows1252,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DecodeFile reads the whole file at path and decodes it.
func (c *RecipeCodec) DecodeFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return c.Decode(data)
}

// Decode decodes data in one forward pass. Any failure aborts the whole
// decode and is returned as a *DecodeError.
func (c *RecipeCodec) Decode(data []byte) (*File, error) {
	r := newReader(data, c.text)
	f := &File{}

	if err := c.decodeBlock(r, StateHeader, &f.Header); err != nil {
		return nil, err
	}
	if err := c.decodeBlock(r, StateStyle, &f.Style); err != nil {
		return nil, err
	}

	var err error
	if f.Hops, err = decodeArray[Hop](r, StateHops, f.Header.NumHopRecs, HopSize); err != nil {
		return nil, err
	}
	if f.Fermentables, err = decodeArray[Fermentable](r, StateFermentables, f.Header.NumFermRecs, FermentableSize); err != nil {
		return nil, err
	}
	if f.Miscs, err = decodeArray[Misc](r, StateMiscs, f.Header.NumMiscRecs, MiscSize); err != nil {
		return nil, err
	}

	if err := c.decodeBlock(r, StateYeast, &f.Yeast); err != nil {
		return nil, err
	}
	if err := c.decodeBlock(r, StateWater, &f.Water); err != nil {
		return nil, err
	}
	if err := c.decodeBlock(r, StateMash, &f.Mash); err != nil {
		return nil, err
	}

	c.logger.Debug("decoded recipe",
		zap.String("name", f.Header.Name),
		zap.Int("hops", len(f.Hops)),
		zap.Int("fermentables", len(f.Fermentables)),
		zap.Int("miscs", len(f.Miscs)),
		zap.Int("consumed", r.Position()),
		zap.Int("trailing", r.Remaining()),
	)
	return f, nil
}

func (c *RecipeCodec) decodeBlock(r *Reader, state State, l layout) error {
	start := r.Position()
	if err := decodeLayout(r, l); err != nil {
		return inState(err, state, -1)
	}
	c.logger.Debug("decoded block", zap.String("state", string(state)), zap.Int("offset", start))
	return nil
}

// decodeArray decodes count records of T. The count is checked against the
// remaining input before the first record is read.
func decodeArray[T any, P interface {
	*T
	layout
}](r *Reader, state State, count uint32, size int) ([]T, error) {
	need := uint64(count) * uint64(size)
	if need > uint64(r.Remaining()) {
		return nil, &DecodeError{
			Kind:      KindInconsistentCount,
			State:     state,
			Record:    P(new(T)).recordName(),
			Index:     -1,
			Offset:    r.Position(),
			Count:     count,
			Need:      int(need),
			Remaining: r.Remaining(),
		}
	}

	out := make([]T, count)
	for i := range out {
		if err := decodeLayout(r, P(&out[i])); err != nil {
			return nil, inState(err, state, i)
		}
	}
	return out, nil
}

// Encode writes f in the legacy layout. Header counts are taken from the slice
// lengths so the output always decodes back to the same arrays.
func (c *RecipeCodec) Encode(f *File) ([]byte, error) {
	w := newWriter(f.Size(), c.text)

	header := f.Header
	header.NumHopRecs = uint32(len(f.Hops))
	header.NumFermRecs = uint32(len(f.Fermentables))
	header.NumMiscRecs = uint32(len(f.Miscs))

	if err := encodeLayout(w, &header); err != nil {
		return nil, inState(err, StateHeader, -1)
	}
	style := f.Style
	if err := encodeLayout(w, &style); err != nil {
		return nil, inState(err, StateStyle, -1)
	}
	if err := encodeArray(w, StateHops, f.Hops); err != nil {
		return nil, err
	}
	if err := encodeArray(w, StateFermentables, f.Fermentables); err != nil {
		return nil, err
	}
	if err := encodeArray(w, StateMiscs, f.Miscs); err != nil {
		return nil, err
	}
	yeast, water, mash := f.Yeast, f.Water, f.Mash
	if err := encodeLayout(w, &yeast); err != nil {
		return nil, inState(err, StateYeast, -1)
	}
	if err := encodeLayout(w, &water); err != nil {
		return nil, inState(err, StateWater, -1)
	}
	if err := encodeLayout(w, &mash); err != nil {
		return nil, inState(err, StateMash, -1)
	}
	return w.Bytes(), nil
}

func encodeArray[T any, P interface {
	*T
	layout
}](w *Writer, state State, items []T) error {
	for i := range items {
		item := items[i]
		if err := encodeLayout(w, P(&item)); err != nil {
			return inState(err, state, i)
		}
	}
	return nil
}

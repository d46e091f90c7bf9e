package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// byteBuilder assembles test buffers by hand, independent of Writer.
type byteBuilder struct {
	buf []byte
}

func (b *byteBuilder) u8(v uint8) *byteBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *byteBuilder) u16(v uint16) *byteBuilder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *byteBuilder) u32(v uint32) *byteBuilder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *byteBuilder) i32(v int32) *byteBuilder {
	return b.u32(uint32(v))
}

func (b *byteBuilder) f32(v float32) *byteBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *byteBuilder) zero(n int) *byteBuilder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

// str writes s NUL terminated into an n byte field padded with fill.
func (b *byteBuilder) str(n int, s string, fill byte) *byteBuilder {
	b.buf = append(b.buf, s...)
	if len(s) < n {
		b.buf = append(b.buf, 0)
		for i := len(s) + 1; i < n; i++ {
			b.buf = append(b.buf, fill)
		}
	}
	return b
}

// fieldOffset returns the offset of the named field inside l.
func fieldOffset(t *testing.T, l layout, name string) int {
	t.Helper()
	off := 0
	for _, f := range l.fields() {
		if f.name == name {
			return off
		}
		off += f.size
	}
	require.Failf(t, "field not found", "%s has no field %q", l.recordName(), name)
	return -1
}

// sampleFile returns a small but fully populated recipe.
func sampleFile() *File {
	f := &File{
		Header: Header{
			Name:          "Summer Pale Ale",
			BatchSize:     5,
			WortSize:      6.5,
			EstGravity:    52,
			TotalIBU:      38.5,
			EstEfficiency: 72,
			BoilTime:      60,
			Type:          1,
		},
		Style: Style{
			CatName:      "Pale Ale",
			SubCatName:   "American Pale Ale",
			CatType:      CategoryAle,
			MinSG:        1.045,
			MaxSG:        1.056,
			MinIBU:       20,
			MaxIBU:       40,
			CatNumber:    6,
			SubCatLetter: "A",
		},
		Hops: []Hop{
			{Name: "Cascade", Alpha: 5.5, Type: HopAroma, Form: 33, Ounces: 1, BoilTime: 15, IBUs: 12.1},
			{Name: "Centennial", Alpha: 10, Noble: true, Type: HopBittering, Form: 1, Ounces: 1.5, BoilTime: 60, IBUs: 26.4},
		},
		Fermentables: []Fermentable{
			{Name: "2-Row", Supplier: "Briess", Type: FermentableGrain, Potential: 1.037, Color: 2, Pounds: 9},
		},
		Miscs: []Misc{
			{Name: "Irish Moss", Type: MiscFining, Time: 15, Location: LocationBoil, TimeUnits: TimeMinutes, MeasurementUnits: UnitTsp, Amount: 1},
		},
		Yeast: Yeast{
			Name:         "American Ale",
			Lab:          "Wyeast",
			CatNumber:    "1056",
			Type:         YeastAle,
			Medium:       MediumLiquid,
			AttenLow:     73,
			AttenHigh:    77,
			Temp:         68,
			Flocculation: FlocculationMedium,
		},
		Water: Water{Name: "Burton", Calcium: 295, Sulfate: 725, PH: 7.2},
		Mash: Mash{
			RecipeSimpleMashType:     MashMultiStep,
			SaccharificationRestTemp: 152,
			SaccharificationRestTime: 60,
			Notes:                    "Mash thin.",
			MashSteps:                2,
			ScheduleName:             "Two step",
		},
	}
	f.Mash.Steps[0] = Step{Name: "Protein", Type: StepInfusion, StartTemp: 122, StopTemp: 122, RestTime: 20}
	f.Mash.Steps[1] = Step{Name: "Sacch", Type: StepDirect, StartTemp: 122, StopTemp: 152, RestTime: 60, StepColor: 0xff00ff00}
	return f
}

func encodeSample(t *testing.T, f *File) []byte {
	t.Helper()
	data, err := NewRecipeCodec().Encode(f)
	require.NoError(t, err)
	require.Len(t, data, f.Size())
	return data
}

package codec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_NonFiniteFloats(t *testing.T) {
	f := &File{}
	f.Header.Name = "Stale"
	f.Header.BatchSize = float32(math.NaN())
	f.Header.WortSize = float32(math.Inf(1))
	f.Header.EstGravity = float32(math.Inf(-1))
	f.Header.TotalIBU = 42.5
	f.Fermentables = []Fermentable{{Name: "Pale", Type: FermentableGrain}}
	f.Mash.RecipeSimpleMashType = MashSingleStep
	f.Mash.Steps[3].InfuseRatio = float32(math.NaN())

	data, err := NewRecipeCodec().Encode(f)
	require.NoError(t, err)
	decoded, err := NewRecipeCodec().Decode(data)
	require.NoError(t, err)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)

	var tree struct {
		Header struct {
			Name       string
			BatchSize  string
			WortSize   string
			EstGravity string
			TotalIBU   float64
		}
		Fermentables []struct {
			Name string
			Type string
		}
		Mash struct {
			RecipeSimpleMashType string
			Steps                []map[string]any
		}
	}
	require.NoError(t, json.Unmarshal(out, &tree))

	assert.Equal(t, "Stale", tree.Header.Name)
	assert.Equal(t, "NaN", tree.Header.BatchSize)
	assert.Equal(t, "+Inf", tree.Header.WortSize)
	assert.Equal(t, "-Inf", tree.Header.EstGravity)
	assert.Equal(t, 42.5, tree.Header.TotalIBU)
	require.Len(t, tree.Fermentables, 1)
	assert.Equal(t, "Grain", tree.Fermentables[0].Type)
	require.Len(t, tree.Mash.Steps, MashStepCapacity)
	assert.Equal(t, "NaN", tree.Mash.Steps[3]["InfuseRatio"])
	assert.Equal(t, 0.0, tree.Mash.Steps[2]["InfuseRatio"])
}

func TestMarshalJSON_FieldOrder(t *testing.T) {
	out, err := json.Marshal(Header{Name: "Ordered", BoilTime: 60})
	require.NoError(t, err)
	assert.Equal(t,
		`{"Name":"Ordered","NumHopRecs":0,"NumFermRecs":0,"NumMiscRecs":0,"BatchSize":0,"WortSize":0,`+
			`"EstGravity":0,"TotalIBU":0,"EstEfficiency":0,"BoilTime":60,"Unknown1":0,"Type":0}`,
		string(out))
}

func TestMarshalJSON_Attribute(t *testing.T) {
	testCases := []struct {
		name string
		attr Attribute
		want string
	}{
		{"float", Attribute{Path: "Hop.Alpha", Value: float32(5.5)}, `{"path":"Hop.Alpha","value":5.5}`},
		{"nan", Attribute{Path: "Hop.Beta", Value: float32(math.NaN())}, `{"path":"Hop.Beta","value":"NaN"}`},
		{"text", Attribute{Path: "Hop.Name", Value: "Saaz"}, `{"path":"Hop.Name","value":"Saaz"}`},
		{"enum", Attribute{Path: "Hop.Type", Value: HopAroma}, `{"path":"Hop.Type","value":"Aroma"}`},
		{"raw", Attribute{Path: "Hop.Unknown2", Value: []byte{1, 2}}, `{"path":"Hop.Unknown2","value":"AQI="}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.attr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

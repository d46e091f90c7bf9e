package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums_String(t *testing.T) {
	testCases := []struct {
		value fmtStringer
		want  string
	}{
		{CategoryAleLagerMixed, "AleLagerMixed"},
		{StyleCategoryType(9), "StyleCategoryType(9)"},
		{HopBoth, "Both"},
		{HopType(0), "unknown"},
		{FermentableSugar, "Sugar"},
		{MiscCoffee, "Coffee"},
		{LocationFermenter, "Fermenter"},
		{TimeDays, "Days"},
		{UnitTbsp, "Tbsp"},
		{YeastChampagne, "Champagne"},
		{MediumSlant, "Slant"},
		{FlocculationLow, "Low"},
		{StepDecoction, "Decoction"},
		{StepType(3), "unknown"},
		{MashSingleStep, "SingleStep"},
		{MashType(1), "MashType(1)"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.String())
		})
	}
}

type fmtStringer interface {
	String() string
}

func TestEnums_FallbackPolicy(t *testing.T) {
	for b := 0; b < 256; b++ {
		assert.True(t, hopTypes.accept(byte(b)), "hop type %d", b)
		assert.True(t, stepTypes.accept(byte(b)), "step type %d", b)
	}

	assert.True(t, mashTypes.accept(2))
	assert.True(t, mashTypes.accept(3))
	assert.False(t, mashTypes.accept(0))
	assert.False(t, mashTypes.accept(1))
	assert.False(t, styleCategoryTypes.accept(5))
	assert.False(t, measurementUnits.accept(7))

	assert.True(t, HopAroma.Known())
	assert.False(t, HopType(200).Known())
	assert.True(t, StepDirect.Known())
}

func TestEnums_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Hop   HopType
		Yeast YeastMedium
		Step  StepType
	}{HopAroma, MediumLiquid, StepType(77)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Hop":"Aroma","Yeast":"Liquid","Step":"unknown"}`, string(data))
}

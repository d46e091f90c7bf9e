package codec

import "fmt"

// enumTable maps single-byte codes to variant names for one field type.
// Tables with fallback accept every byte and keep it; the others reject unmapped codes.
type enumTable[T ~uint8] struct {
	typeName string
	names    map[T]string
	fallback bool
}

// accept reports whether b is a valid value for the field.
func (t *enumTable[T]) accept(b byte) bool {
	_, ok := t.names[T(b)]
	return ok || t.fallback
}

func (t *enumTable[T]) known(v T) bool {
	_, ok := t.names[v]
	return ok
}

func (t *enumTable[T]) name(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	if t.fallback {
		return "unknown"
	}
	return fmt.Sprintf("%s(%d)", t.typeName, uint8(v))
}

// StyleCategoryType is Style.CatType.
type StyleCategoryType uint8

const (
	CategoryAle           StyleCategoryType = 0
	CategoryLager         StyleCategoryType = 1
	CategoryAleLagerMixed StyleCategoryType = 2
	CategoryMead          StyleCategoryType = 3
	CategoryCider         StyleCategoryType = 4
)

var styleCategoryTypes = &enumTable[StyleCategoryType]{
	typeName: "StyleCategoryType",
	names: map[StyleCategoryType]string{
		CategoryAle:           "Ale",
		CategoryLager:         "Lager",
		CategoryAleLagerMixed: "AleLagerMixed",
		CategoryMead:          "Mead",
		CategoryCider:         "Cider",
	},
}

func (t StyleCategoryType) String() string { return styleCategoryTypes.name(t) }

func (t StyleCategoryType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// HopType is Hop.Type. Unmapped codes decode as unknown and keep the raw byte.
type HopType uint8

const (
	HopBittering HopType = 1
	HopAroma     HopType = 2
	HopBoth      HopType = 3
)

var hopTypes = &enumTable[HopType]{
	typeName: "HopType",
	names: map[HopType]string{
		HopBittering: "Bittering",
		HopAroma:     "Aroma",
		HopBoth:      "Both",
	},
	fallback: true,
}

func (t HopType) String() string { return hopTypes.name(t) }

// Known reports whether t is one of the declared hop types.
func (t HopType) Known() bool { return hopTypes.known(t) }

func (t HopType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// FermentableType is Fermentable.Type.
type FermentableType uint8

const (
	FermentableGrain   FermentableType = 1
	FermentableExtract FermentableType = 2
	FermentableSugar   FermentableType = 3
	FermentableOther   FermentableType = 4
)

var fermentableTypes = &enumTable[FermentableType]{
	typeName: "FermentableType",
	names: map[FermentableType]string{
		FermentableGrain:   "Grain",
		FermentableExtract: "Extract",
		FermentableSugar:   "Sugar",
		FermentableOther:   "Other",
	},
}

func (t FermentableType) String() string { return fermentableTypes.name(t) }

func (t FermentableType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MiscType is Misc.Type.
type MiscType uint8

const (
	MiscSpice  MiscType = 0
	MiscFruit  MiscType = 1
	MiscCoffee MiscType = 2
	MiscOther  MiscType = 3
	MiscFining MiscType = 4
	MiscHerb   MiscType = 5
)

var miscTypes = &enumTable[MiscType]{
	typeName: "MiscType",
	names: map[MiscType]string{
		MiscSpice:  "Spice",
		MiscFruit:  "Fruit",
		MiscCoffee: "Coffee",
		MiscOther:  "Other",
		MiscFining: "Fining",
		MiscHerb:   "Herb",
	},
}

func (t MiscType) String() string { return miscTypes.name(t) }

func (t MiscType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MiscLocation is Misc.Location.
type MiscLocation uint8

const (
	LocationBoil      MiscLocation = 0
	LocationFermenter MiscLocation = 1
	LocationMash      MiscLocation = 2
)

var miscLocations = &enumTable[MiscLocation]{
	typeName: "MiscLocation",
	names: map[MiscLocation]string{
		LocationBoil:      "Boil",
		LocationFermenter: "Fermenter",
		LocationMash:      "Mash",
	},
}

func (l MiscLocation) String() string { return miscLocations.name(l) }

func (l MiscLocation) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// TimeUnits is Misc.TimeUnits.
type TimeUnits uint8

const (
	TimeDays    TimeUnits = 0
	TimeMinutes TimeUnits = 1
)

var timeUnits = &enumTable[TimeUnits]{
	typeName: "TimeUnits",
	names: map[TimeUnits]string{
		TimeDays:    "Days",
		TimeMinutes: "Minutes",
	},
}

func (u TimeUnits) String() string { return timeUnits.name(u) }

func (u TimeUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// MeasurementUnits is Misc.MeasurementUnits.
type MeasurementUnits uint8

const (
	UnitOunces MeasurementUnits = 0
	UnitGrams  MeasurementUnits = 1
	UnitPounds MeasurementUnits = 2
	UnitTsp    MeasurementUnits = 3
	UnitTbsp   MeasurementUnits = 4
	UnitCups   MeasurementUnits = 5
	UnitUnits  MeasurementUnits = 6
)

var measurementUnits = &enumTable[MeasurementUnits]{
	typeName: "MeasurementUnits",
	names: map[MeasurementUnits]string{
		UnitOunces: "Ounces",
		UnitGrams:  "Grams",
		UnitPounds: "Pounds",
		UnitTsp:    "Tsp",
		UnitTbsp:   "Tbsp",
		UnitCups:   "Cups",
		UnitUnits:  "Units",
	},
}

func (u MeasurementUnits) String() string { return measurementUnits.name(u) }

func (u MeasurementUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// YeastType is Yeast.Type.
type YeastType uint8

const (
	YeastAle       YeastType = 0
	YeastLager     YeastType = 1
	YeastWine      YeastType = 2
	YeastChampagne YeastType = 3
)

var yeastTypes = &enumTable[YeastType]{
	typeName: "YeastType",
	names: map[YeastType]string{
		YeastAle:       "Ale",
		YeastLager:     "Lager",
		YeastWine:      "Wine",
		YeastChampagne: "Champagne",
	},
}

func (t YeastType) String() string { return yeastTypes.name(t) }

func (t YeastType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// YeastMedium is Yeast.Medium.
type YeastMedium uint8

const (
	MediumDry    YeastMedium = 0
	MediumLiquid YeastMedium = 1
	MediumSlant  YeastMedium = 2
)

var yeastMediums = &enumTable[YeastMedium]{
	typeName: "YeastMedium",
	names: map[YeastMedium]string{
		MediumDry:    "Dry",
		MediumLiquid: "Liquid",
		MediumSlant:  "Slant",
	},
}

func (m YeastMedium) String() string { return yeastMediums.name(m) }

func (m YeastMedium) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Flocculation is Yeast.Flocculation.
type Flocculation uint8

const (
	FlocculationHigh   Flocculation = 0
	FlocculationMedium Flocculation = 1
	FlocculationLow    Flocculation = 2
)

var flocculations = &enumTable[Flocculation]{
	typeName: "Flocculation",
	names: map[Flocculation]string{
		FlocculationHigh:   "High",
		FlocculationMedium: "Medium",
		FlocculationLow:    "Low",
	},
}

func (f Flocculation) String() string { return flocculations.name(f) }

func (f Flocculation) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// StepType is Step.Type. Unmapped codes decode as unknown and keep the raw byte.
type StepType uint8

const (
	StepInfusion  StepType = 0
	StepDirect    StepType = 1
	StepDecoction StepType = 2
)

var stepTypes = &enumTable[StepType]{
	typeName: "StepType",
	names: map[StepType]string{
		StepInfusion:  "Infusion",
		StepDirect:    "Direct",
		StepDecoction: "Decoction",
	},
	fallback: true,
}

func (t StepType) String() string { return stepTypes.name(t) }

// Known reports whether t is one of the declared step types.
func (t StepType) Known() bool { return stepTypes.known(t) }

func (t StepType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MashType is Mash.RecipeSimpleMashType. The producer numbers it from 2.
type MashType uint8

const (
	MashSingleStep MashType = 2
	MashMultiStep  MashType = 3
)

var mashTypes = &enumTable[MashType]{
	typeName: "MashType",
	names: map[MashType]string{
		MashSingleStep: "SingleStep",
		MashMultiStep:  "MultiStep",
	},
}

func (t MashType) String() string { return mashTypes.name(t) }

func (t MashType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

package codec

// On-disk sizes of the singleton blocks.
const (
	HeaderSize = 126
	StyleSize  = 1031
	YeastSize  = 473
	WaterSize  = 222
	MashSize   = 23532

	// MashStepCapacity is the number of step slots stored in every mash block,
	// independent of Mash.MashSteps.
	MashStepCapacity = 50
)

// Header opens the file. The three Num*Recs counts size the arrays that follow Style.
type Header struct {
	Name          string
	NumHopRecs    uint32
	NumFermRecs   uint32
	NumMiscRecs   uint32
	BatchSize     float32
	WortSize      float32
	EstGravity    float32 // gravity points, SG = 1 + EstGravity/1000
	TotalIBU      float32
	EstEfficiency float32
	BoilTime      int32
	Unknown1      int32
	Type          uint8
}

func (*Header) recordName() string { return "Header" }

func (h *Header) fields() []field {
	return []field{
		textField("Name", 85, &h.Name),
		u32Field("NumHopRecs", &h.NumHopRecs),
		u32Field("NumFermRecs", &h.NumFermRecs),
		u32Field("NumMiscRecs", &h.NumMiscRecs),
		f32Field("BatchSize", &h.BatchSize),
		f32Field("WortSize", &h.WortSize),
		f32Field("EstGravity", &h.EstGravity),
		f32Field("TotalIBU", &h.TotalIBU),
		f32Field("EstEfficiency", &h.EstEfficiency),
		i32Field("BoilTime", &h.BoilTime),
		i32Field("Unknown1", &h.Unknown1),
		u8Field("Type", &h.Type),
	}
}

// Style is the beer style the recipe targets.
type Style struct {
	CatName      string
	SubCatName   string
	CatType      StyleCategoryType
	MinSG        float32
	MaxSG        float32
	MinFG        float32
	MaxFG        float32
	AlcByWeight  float32
	AlcByVolume  float32
	MinIBU       float32
	MaxIBU       float32
	MinColor     float32
	MaxColor     float32
	ColorNote    string
	MaltNote     string
	HopNote      string
	YeastNote    string
	Examples     string
	Unknown1     []byte
	CatNumber    uint8
	Unknown3     uint8
	SubCatLetter string
	Unknown2     uint8
	Guidelines   uint8
}

func (*Style) recordName() string { return "Style" }

func (s *Style) fields() []field {
	return []field{
		textField("CatName", 55, &s.CatName),
		textField("SubCatName", 55, &s.SubCatName),
		enumField("CatType", styleCategoryTypes, &s.CatType),
		f32Field("MinSG", &s.MinSG),
		f32Field("MaxSG", &s.MaxSG),
		f32Field("MinFG", &s.MinFG),
		f32Field("MaxFG", &s.MaxFG),
		f32Field("AlcByWeight", &s.AlcByWeight),
		f32Field("AlcByVolume", &s.AlcByVolume),
		f32Field("MinIBU", &s.MinIBU),
		f32Field("MaxIBU", &s.MaxIBU),
		f32Field("MinColor", &s.MinColor),
		f32Field("MaxColor", &s.MaxColor),
		textField("ColorNote", 155, &s.ColorNote),
		textField("MaltNote", 155, &s.MaltNote),
		textField("HopNote", 155, &s.HopNote),
		textField("YeastNote", 155, &s.YeastNote),
		textField("Examples", 155, &s.Examples),
		rawField("Unknown1", 100, &s.Unknown1),
		u8Field("CatNumber", &s.CatNumber),
		u8Field("Unknown3", &s.Unknown3),
		textField("SubCatLetter", 1, &s.SubCatLetter),
		u8Field("Unknown2", &s.Unknown2),
		u8Field("Guidelines", &s.Guidelines),
	}
}

// Yeast is the single yeast entry of a recipe.
type Yeast struct {
	Name         string
	Lab          string
	CatNumber    string
	Type         YeastType
	Medium       YeastMedium
	Flavors      string
	Comments     string
	Unknown1     []byte
	AttenLow     uint32
	AttenHigh    uint32
	Temp         float32
	Flocculation Flocculation
	Unknown2     []byte
}

func (*Yeast) recordName() string { return "Yeast" }

func (y *Yeast) fields() []field {
	return []field{
		textField("Name", 55, &y.Name),
		textField("Lab", 55, &y.Lab),
		textField("CatNumber", 25, &y.CatNumber),
		enumField("Type", yeastTypes, &y.Type),
		enumField("Medium", yeastMediums, &y.Medium),
		textField("Flavors", 155, &y.Flavors),
		textField("Comments", 155, &y.Comments),
		rawField("Unknown1", 8, &y.Unknown1),
		u32Field("AttenLow", &y.AttenLow),
		u32Field("AttenHigh", &y.AttenHigh),
		f32Field("Temp", &y.Temp),
		enumField("Flocculation", flocculations, &y.Flocculation),
		rawField("Unknown2", 5, &y.Unknown2),
	}
}

// Water is the brewing water profile, mineral content in ppm.
type Water struct {
	Name        string
	Calcium     float32
	Magnesium   float32
	Sodium      float32
	Unknown1    []byte
	Sulfate     float32
	Chloride    float32
	Bicarbonate float32
	PH          float32
	KnownFor    string
}

func (*Water) recordName() string { return "Water" }

func (w *Water) fields() []field {
	return []field{
		textField("Name", 27, &w.Name),
		f32Field("Calcium", &w.Calcium),
		f32Field("Magnesium", &w.Magnesium),
		f32Field("Sodium", &w.Sodium),
		rawField("Unknown1", 4, &w.Unknown1),
		f32Field("Sulfate", &w.Sulfate),
		f32Field("Chloride", &w.Chloride),
		f32Field("Bicarbonate", &w.Bicarbonate),
		f32Field("PH", &w.PH),
		textField("KnownFor", 163, &w.KnownFor),
	}
}

// Mash closes the file. Steps always holds MashStepCapacity slots; MashSteps
// is what the producer reports as used and is not checked against them.
type Mash struct {
	RecipeSimpleMashType     MashType
	Chunk1                   []byte
	AcidRestTemp             uint32
	AcidRestTime             uint32
	ProteinRestTemp          uint32
	ProteinRestTime          uint32
	IntermediateRestTemp     uint32
	IntermediateRestTime     uint32
	SaccharificationRestTemp uint32
	SaccharificationRestTime uint32
	MashOutRestTemp          uint32
	MashOutRestTime          uint32
	SpargeTemp               uint32
	SpargeTime               uint32
	MashInQuarts             float32
	Properties               uint8
	Notes                    string
	Awards                   string
	Chunk2                   string
	MashSteps                uint32
	GrainTemp                uint32
	Unknown1                 []byte
	Steps                    [MashStepCapacity]Step
	Unknown2                 []byte
	ScheduleName             string
}

func (*Mash) recordName() string { return "Mash" }

func (m *Mash) fields() []field {
	return []field{
		enumField("RecipeSimpleMashType", mashTypes, &m.RecipeSimpleMashType),
		rawField("Chunk1", 8, &m.Chunk1),
		u32Field("AcidRestTemp", &m.AcidRestTemp),
		u32Field("AcidRestTime", &m.AcidRestTime),
		u32Field("ProteinRestTemp", &m.ProteinRestTemp),
		u32Field("ProteinRestTime", &m.ProteinRestTime),
		u32Field("IntermediateRestTemp", &m.IntermediateRestTemp),
		u32Field("IntermediateRestTime", &m.IntermediateRestTime),
		u32Field("SaccharificationRestTemp", &m.SaccharificationRestTemp),
		u32Field("SaccharificationRestTime", &m.SaccharificationRestTime),
		u32Field("MashOutRestTemp", &m.MashOutRestTemp),
		u32Field("MashOutRestTime", &m.MashOutRestTime),
		u32Field("SpargeTemp", &m.SpargeTemp),
		u32Field("SpargeTime", &m.SpargeTime),
		f32Field("MashInQuarts", &m.MashInQuarts),
		u8Field("Properties", &m.Properties),
		textField("Notes", 4028, &m.Notes),
		textField("Awards", 4028, &m.Awards),
		textField("Chunk2", 255, &m.Chunk2),
		u32Field("MashSteps", &m.MashSteps),
		u32Field("GrainTemp", &m.GrainTemp),
		rawField("Unknown1", 4, &m.Unknown1),
		stepsField("Steps", &m.Steps),
		rawField("Unknown2", 292, &m.Unknown2),
		textField("ScheduleName", 255, &m.ScheduleName),
	}
}

package codec

// On-disk sizes of the repeated records.
const (
	HopSize         = 635
	FermentableSize = 529
	MiscSize        = 589
	StepSize        = 292
)

// Hop is one entry of the hop array. Form is the producer's raw form code;
// several codes share a meaning (0-3 whole, 17-19 plug, 33-35 pellet) and it is kept as read.
type Hop struct {
	Name          string
	Alpha         float32
	Beta          float32
	Noble         bool
	Cohumulone    float32
	Myrcene       float32
	Humulene      float32
	Caryophyllene float32
	Type          HopType
	Form          uint8
	StorageFactor float32
	Notes         string
	Origin        string
	BestFor       string
	Substitutes   string
	Unknown2      []byte
	ActualAA      float32
	Unknown3      uint8
	Ounces        float32
	BoilTime      uint16
	IBUs          float32
}

func (*Hop) recordName() string { return "Hop" }

func (h *Hop) fields() []field {
	return []field{
		textField("Name", 55, &h.Name),
		f32Field("Alpha", &h.Alpha),
		f32Field("Beta", &h.Beta),
		flagField("Noble", &h.Noble),
		f32Field("Cohumulone", &h.Cohumulone),
		f32Field("Myrcene", &h.Myrcene),
		f32Field("Humulene", &h.Humulene),
		f32Field("Caryophyllene", &h.Caryophyllene),
		enumField("Type", hopTypes, &h.Type),
		u8Field("Form", &h.Form),
		f32Field("StorageFactor", &h.StorageFactor),
		textField("Notes", 155, &h.Notes),
		textField("Origin", 55, &h.Origin),
		textField("BestFor", 155, &h.BestFor),
		textField("Substitutes", 155, &h.Substitutes),
		rawField("Unknown2", 14, &h.Unknown2),
		f32Field("ActualAA", &h.ActualAA),
		u8Field("Unknown3", &h.Unknown3),
		f32Field("Ounces", &h.Ounces),
		u16Field("BoilTime", &h.BoilTime),
		f32Field("IBUs", &h.IBUs),
	}
}

// Fermentable is one entry of the fermentable array.
type Fermentable struct {
	Name           string
	Supplier       string
	Origin         string
	Type           FermentableType
	MustMash       uint8
	Potential      float32
	Color          float32
	Moisture       float32
	Max            float32
	DiastaticPower float32
	Protein        float32
	TSN            float32
	UseFor         string
	Comments       string
	Unknown1       float32
	Unknown2       float32
	FGDry          float32
	CGDry          float32
	Pounds         float32
	Unknown3       float32
}

func (*Fermentable) recordName() string { return "Fermentable" }

func (f *Fermentable) fields() []field {
	return []field{
		textField("Name", 55, &f.Name),
		textField("Supplier", 55, &f.Supplier),
		textField("Origin", 55, &f.Origin),
		enumField("Type", fermentableTypes, &f.Type),
		u8Field("MustMash", &f.MustMash),
		f32Field("Potential", &f.Potential),
		f32Field("Color", &f.Color),
		f32Field("Moisture", &f.Moisture),
		f32Field("Max", &f.Max),
		f32Field("DiastaticPower", &f.DiastaticPower),
		f32Field("Protein", &f.Protein),
		f32Field("TSN", &f.TSN),
		textField("UseFor", 155, &f.UseFor),
		textField("Comments", 155, &f.Comments),
		f32Field("Unknown1", &f.Unknown1),
		f32Field("Unknown2", &f.Unknown2),
		f32Field("FGDry", &f.FGDry),
		f32Field("CGDry", &f.CGDry),
		f32Field("Pounds", &f.Pounds),
		f32Field("Unknown3", &f.Unknown3),
	}
}

// Misc is one entry of the miscellaneous ingredient array.
type Misc struct {
	Name             string
	Type             MiscType
	Time             uint32
	Location         MiscLocation
	TimeUnits        TimeUnits
	MeasurementUnits MeasurementUnits
	Unknown1         uint32
	Use              string
	Comment          string
	Amount           float32
	Unknown2         []byte
}

func (*Misc) recordName() string { return "Misc" }

func (m *Misc) fields() []field {
	return []field{
		textField("Name", 55, &m.Name),
		enumField("Type", miscTypes, &m.Type),
		u32Field("Time", &m.Time),
		enumField("Location", miscLocations, &m.Location),
		enumField("TimeUnits", timeUnits, &m.TimeUnits),
		enumField("MeasurementUnits", measurementUnits, &m.MeasurementUnits),
		u32Field("Unknown1", &m.Unknown1),
		textField("Use", 255, &m.Use),
		textField("Comment", 255, &m.Comment),
		f32Field("Amount", &m.Amount),
		rawField("Unknown2", 8, &m.Unknown2),
	}
}

// Step is one slot of the mash schedule. StepColor and RestColor are RGBA
// values stored as plain integers.
type Step struct {
	Name         string
	Type         StepType
	StartTemp    int32
	StopTemp     int32
	InfuseTemp   int32
	RestTime     int32
	StepTime     int32
	InfuseRatio  float32
	InfuseAmount float32
	StepColor    uint32
	RestColor    uint32
}

func (*Step) recordName() string { return "Step" }

func (s *Step) fields() []field {
	return []field{
		textField("Name", 255, &s.Name),
		enumField("Type", stepTypes, &s.Type),
		i32Field("StartTemp", &s.StartTemp),
		i32Field("StopTemp", &s.StopTemp),
		i32Field("InfuseTemp", &s.InfuseTemp),
		i32Field("RestTime", &s.RestTime),
		i32Field("StepTime", &s.StepTime),
		f32Field("InfuseRatio", &s.InfuseRatio),
		f32Field("InfuseAmount", &s.InfuseAmount),
		u32Field("StepColor", &s.StepColor),
		u32Field("RestColor", &s.RestColor),
	}
}

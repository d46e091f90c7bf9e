package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/ssargent/promash/pkg/codec"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes rows under headers with borders and separators removed
func printTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()
}

// printKeyValues writes a two column key: value table
func printKeyValues(w io.Writer, pairs [][2]string) {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(":")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}
	table.Render()
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}

// renderFile prints a readable summary of a decoded recipe
func renderFile(w io.Writer, f *codec.File) {
	h := f.Header
	fmt.Fprintf(w, "Recipe: %s\n", h.Name)
	printKeyValues(w, [][2]string{
		{"Batch Size", ftoa(h.BatchSize)},
		{"Wort Size", ftoa(h.WortSize)},
		{"Est. Gravity", ftoa(h.EstGravity)},
		{"Total IBU", ftoa(h.TotalIBU)},
		{"Est. Efficiency", ftoa(h.EstEfficiency)},
		{"Boil Time", strconv.Itoa(int(h.BoilTime))},
	})

	s := f.Style
	section(w, "Style")
	printKeyValues(w, [][2]string{
		{"Category", fmt.Sprintf("%d%s %s", s.CatNumber, s.SubCatLetter, s.CatName)},
		{"Sub-Category", s.SubCatName},
		{"Type", s.CatType.String()},
		{"OG", ftoa(s.MinSG) + " - " + ftoa(s.MaxSG)},
		{"FG", ftoa(s.MinFG) + " - " + ftoa(s.MaxFG)},
		{"IBU", ftoa(s.MinIBU) + " - " + ftoa(s.MaxIBU)},
		{"Color", ftoa(s.MinColor) + " - " + ftoa(s.MaxColor)},
	})

	if len(f.Hops) > 0 {
		section(w, "Hops")
		rows := make([][]string, 0, len(f.Hops))
		for _, hop := range f.Hops {
			rows = append(rows, []string{hop.Name, hop.Type.String(), ftoa(hop.Alpha), ftoa(hop.Ounces), strconv.Itoa(int(hop.BoilTime)), ftoa(hop.IBUs)})
		}
		printTable(w, []string{"Name", "Type", "Alpha", "Ounces", "Boil Time", "IBUs"}, rows)
	}

	if len(f.Fermentables) > 0 {
		section(w, "Fermentables")
		rows := make([][]string, 0, len(f.Fermentables))
		for _, ferm := range f.Fermentables {
			rows = append(rows, []string{ferm.Name, ferm.Type.String(), ftoa(ferm.Pounds), ftoa(ferm.Potential), ftoa(ferm.Color)})
		}
		printTable(w, []string{"Name", "Type", "Pounds", "Potential", "Color"}, rows)
	}

	if len(f.Miscs) > 0 {
		section(w, "Misc")
		rows := make([][]string, 0, len(f.Miscs))
		for _, misc := range f.Miscs {
			rows = append(rows, []string{
				misc.Name, misc.Type.String(),
				ftoa(misc.Amount) + " " + misc.MeasurementUnits.String(),
				strconv.Itoa(int(misc.Time)) + " " + misc.TimeUnits.String(),
				misc.Location.String(),
			})
		}
		printTable(w, []string{"Name", "Type", "Amount", "Time", "Location"}, rows)
	}

	y := f.Yeast
	section(w, "Yeast")
	printKeyValues(w, [][2]string{
		{"Name", y.Name},
		{"Lab", y.Lab + " " + y.CatNumber},
		{"Type", y.Type.String() + " / " + y.Medium.String()},
		{"Attenuation", fmt.Sprintf("%d - %d", y.AttenLow, y.AttenHigh)},
		{"Flocculation", y.Flocculation.String()},
	})

	wt := f.Water
	section(w, "Water")
	printKeyValues(w, [][2]string{
		{"Name", wt.Name},
		{"Ca / Mg / Na", ftoa(wt.Calcium) + " / " + ftoa(wt.Magnesium) + " / " + ftoa(wt.Sodium)},
		{"SO4 / Cl / HCO3", ftoa(wt.Sulfate) + " / " + ftoa(wt.Chloride) + " / " + ftoa(wt.Bicarbonate)},
		{"pH", ftoa(wt.PH)},
	})

	m := &f.Mash
	section(w, "Mash: "+m.ScheduleName)
	printKeyValues(w, [][2]string{
		{"Type", m.RecipeSimpleMashType.String()},
		{"Grain Temp", strconv.Itoa(int(m.GrainTemp))},
		{"Steps", strconv.Itoa(int(m.MashSteps))},
	})
	if steps := activeSteps(m); len(steps) > 0 {
		rows := make([][]string, 0, len(steps))
		for _, st := range steps {
			rows = append(rows, []string{
				st.Name, st.Type.String(),
				strconv.Itoa(int(st.StartTemp)), strconv.Itoa(int(st.StopTemp)),
				strconv.Itoa(int(st.RestTime)),
			})
		}
		printTable(w, []string{"Step", "Type", "Start", "Stop", "Rest"}, rows)
	}
}

// activeSteps returns the steps the mash block says are in use
func activeSteps(m *codec.Mash) []codec.Step {
	n := int(m.MashSteps)
	if n > codec.MashStepCapacity {
		n = codec.MashStepCapacity
	}
	return m.Steps[:n]
}

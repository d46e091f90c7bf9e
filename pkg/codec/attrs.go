package codec

import (
	"encoding/hex"
	"fmt"
)

// Attribute is one leaf value of a decoded tree, addressed by its dotted path.
type Attribute struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Text renders the value for display. Raw byte regions are shown as hex.
func (a Attribute) Text() string {
	switch v := a.Value.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Attributes flattens a *File or any record or block into path/value pairs in
// layout order. Unsupported values yield nil.
func Attributes(v any) []Attribute {
	var out []Attribute
	switch x := v.(type) {
	case *File:
		flattenFile(x, &out)
	case File:
		flattenFile(&x, &out)
	case layout:
		flatten("", x, &out)
	case Header:
		flatten("", &x, &out)
	case Style:
		flatten("", &x, &out)
	case Hop:
		flatten("", &x, &out)
	case Fermentable:
		flatten("", &x, &out)
	case Misc:
		flatten("", &x, &out)
	case Yeast:
		flatten("", &x, &out)
	case Water:
		flatten("", &x, &out)
	case Mash:
		flatten("", &x, &out)
	case Step:
		flatten("", &x, &out)
	}
	return out
}

func flattenFile(f *File, out *[]Attribute) {
	flatten("Header", &f.Header, out)
	flatten("Style", &f.Style, out)
	for i := range f.Hops {
		flatten(fmt.Sprintf("Hops[%d]", i), &f.Hops[i], out)
	}
	for i := range f.Fermentables {
		flatten(fmt.Sprintf("Fermentables[%d]", i), &f.Fermentables[i], out)
	}
	for i := range f.Miscs {
		flatten(fmt.Sprintf("Miscs[%d]", i), &f.Miscs[i], out)
	}
	flatten("Yeast", &f.Yeast, out)
	flatten("Water", &f.Water, out)
	flatten("Mash", &f.Mash, out)
}

func flatten(prefix string, l layout, out *[]Attribute) {
	for _, f := range l.fields() {
		path := f.name
		if prefix != "" {
			path = prefix + "." + f.name
		}
		if f.elems != nil {
			for i, elem := range f.elems() {
				flatten(fmt.Sprintf("%s[%d]", path, i), elem, out)
			}
			continue
		}
		*out = append(*out, Attribute{Path: path, Value: f.value()})
	}
}

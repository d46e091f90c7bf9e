// Package codec decodes ProMash binary recipe files (.pro).
//
// The format has no tags, no magic number and no per-array length prefix. A file
// is a fixed sequence of little-endian blocks, three of which repeat a number of
// times announced earlier in the header:
//
//	[Header(126)][Style(1031)][Hop(635) x NumHopRecs][Fermentable(529) x NumFermRecs]
//	[Misc(589) x NumMiscRecs][Yeast(473)][Water(222)][Mash(23532)]
//
// The mash block embeds exactly 50 step records (292 bytes each) whatever its
// MashSteps field says.
//
// # Text Fields
//
// Every text field is a fixed-width terminated string: the field always consumes
// its declared width, and the value is the content before the first terminator.
// Bytes after the terminator are often stale data left by the producer and are
// skipped without inspection. Text is converted from Windows-1252 by default;
// see WithCharset and WithRawText.
//
// # Enumerated Fields
//
// Single-byte codes decode to per-field Go types. Hop.Type and Step.Type accept
// any byte and report unmapped codes as "unknown" while keeping the raw value.
// All other enumerated fields reject unmapped codes with ErrUnmappedEnumCode.
//
// # Usage
//
//	c := codec.NewRecipeCodec()
//
//	file, err := c.DecodeFile("pale-ale.pro")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(file.Header.Name, len(file.Hops))
//
//	for _, attr := range codec.Attributes(file) {
//	    fmt.Println(attr.Path, attr.Text())
//	}
//
// # Error Handling
//
// Decoding is all or nothing. Every failure is a *DecodeError carrying the
// layout state, array index, field name and byte offset, and matches one of
// ErrTruncatedInput, ErrUnmappedEnumCode or ErrInconsistentCount with errors.Is.
//
// # Thread Safety
//
// RecipeCodec instances are immutable after construction and safe for
// concurrent use. Decoded values share no memory with the input buffer.
package codec

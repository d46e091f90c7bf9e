package codec

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes a decode or encode failure.
type ErrorKind string

const (
	KindTruncatedInput    ErrorKind = "truncated_input"
	KindUnmappedEnumCode  ErrorKind = "unmapped_enum_code"
	KindInconsistentCount ErrorKind = "inconsistent_count"
	KindFieldOverflow     ErrorKind = "field_overflow"
	KindInvalidText       ErrorKind = "invalid_text"
)

// Sentinels for errors.Is. A *DecodeError matches any sentinel of the same kind.
var (
	ErrTruncatedInput    = &DecodeError{Kind: KindTruncatedInput}
	ErrUnmappedEnumCode  = &DecodeError{Kind: KindUnmappedEnumCode}
	ErrInconsistentCount = &DecodeError{Kind: KindInconsistentCount}
	ErrFieldOverflow     = &DecodeError{Kind: KindFieldOverflow}
)

// DecodeError is the single error type returned by the codec. Fields that do not
// apply to a given failure are left at their zero value; Index is -1 outside arrays.
type DecodeError struct {
	Kind      ErrorKind
	State     State
	Record    string
	Index     int
	Field     string
	Offset    int
	Code      byte
	Need      int
	Remaining int
	Count     uint32
	Cause     error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	var b strings.Builder

	b.WriteString("promash: ")
	b.WriteString(string(e.Kind))

	if path := e.Path(); path != "" {
		b.WriteString(" in ")
		b.WriteString(path)
	}
	if e.Record != "" {
		b.WriteString(" (")
		b.WriteString(e.Record)
		b.WriteByte(')')
	}
	fmt.Fprintf(&b, " at offset %d", e.Offset)

	switch e.Kind {
	case KindTruncatedInput:
		fmt.Fprintf(&b, ": need %d bytes, %d remain", e.Need, e.Remaining)
	case KindUnmappedEnumCode:
		fmt.Fprintf(&b, ": unmapped code %d", e.Code)
	case KindInconsistentCount:
		fmt.Fprintf(&b, ": count %d needs %d bytes, %d remain", e.Count, e.Need, e.Remaining)
	case KindFieldOverflow:
		fmt.Fprintf(&b, ": value needs %d bytes, field holds %d", e.Need, e.Remaining)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Path returns the dotted location of the failure, e.g. "hops[1].Name".
func (e *DecodeError) Path() string {
	var parts []string
	if e.State != "" {
		s := string(e.State)
		if e.Index >= 0 {
			s = fmt.Sprintf("%s[%d]", s, e.Index)
		}
		parts = append(parts, s)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	return strings.Join(parts, ".")
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *DecodeError of the same kind. An inconsistent
// count is also a truncated input: the buffer ends before the announced records.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	if e.Kind == KindInconsistentCount && t.Kind == KindTruncatedInput {
		return true
	}
	return e.Kind == t.Kind
}

func truncated(offset, need, remaining int) *DecodeError {
	return &DecodeError{
		Kind:      KindTruncatedInput,
		Index:     -1,
		Offset:    offset,
		Need:      need,
		Remaining: remaining,
	}
}

// annotate fills in the location of err if it is a *DecodeError that does not carry one yet.
func annotate(err error, record, field string) error {
	if de, ok := err.(*DecodeError); ok {
		if de.Record == "" {
			de.Record = record
		}
		if de.Field == "" {
			de.Field = field
		}
	}
	return err
}

// nest prefixes the field path of err with the element that contains it.
func nest(err error, prefix string) error {
	if de, ok := err.(*DecodeError); ok {
		if de.Field == "" {
			de.Field = prefix
		} else {
			de.Field = prefix + "." + de.Field
		}
	}
	return err
}

// inState records which top-level state and array slot a failure happened in.
func inState(err error, state State, index int) error {
	if de, ok := err.(*DecodeError); ok && de.State == "" {
		de.State = state
		de.Index = index
	}
	return err
}

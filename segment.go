package promptline

import (
	"fmt"
	"sort"
)

// Segment is a unit of prompt text with an optional style.
// A nil Style renders with the surrounding appearance; a non-nil zero Style is
// an explicit style that changes nothing.
type Segment struct {
	Text  string
	Style *Style
}

// Field is a single key/value entry of a record node.
type Field struct {
	Key   string
	Value any
}

// Record is a table-shaped configuration node with its entries in source order.
// Unlike a map it can carry repeated keys, which DecodeSegment rejects.
type Record []Field

// Keys accepted in a segment record.
const (
	fieldValue = "value"
	fieldStyle = "style"
)

// DecodeErrorKind identifies why a node could not be decoded.
type DecodeErrorKind string

// Decode error kinds.
const (
	UnknownField   DecodeErrorKind = "unknown_field"
	DuplicateField DecodeErrorKind = "duplicate_field"
	MissingField   DecodeErrorKind = "missing_field"
	InvalidShape   DecodeErrorKind = "invalid_shape"
)

// DecodeError describes a configuration node that is not a valid segment.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string // Key involved, if any
	Got   string // Kind of the offending node, for InvalidShape
	Path  string // Dotted configuration key, set by the loader
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case UnknownField:
		msg = fmt.Sprintf("unknown field %q, expected %q or %q", e.Field, fieldValue, fieldStyle)
	case DuplicateField:
		msg = fmt.Sprintf("duplicate field %q", e.Field)
	case MissingField:
		msg = fmt.Sprintf("missing field %q", e.Field)
	case InvalidShape:
		if e.Field != "" {
			msg = fmt.Sprintf("field %q: expected a string, got %s", e.Field, e.Got)
		} else {
			msg = fmt.Sprintf("expected a string or a table with %q and %q, got %s", fieldValue, fieldStyle, e.Got)
		}
	default:
		msg = fmt.Sprintf("invalid segment (%s)", e.Kind)
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// DecodeSegment converts a configuration node into a Segment.
//
// A string node becomes the segment text with no style. A Record or
// map[string]any node must hold exactly the string fields "value" and "style";
// the style is parsed with ParseStyle and may legitimately come out nil.
// Any other node, unknown or repeated key, or missing field is reported as a
// *DecodeError.
func DecodeSegment(node any) (Segment, error) {
	switch n := node.(type) {
	case string:
		return Segment{Text: n}, nil
	case Record:
		return decodeRecord(n)
	case map[string]any:
		return decodeRecord(recordFromMap(n))
	default:
		return Segment{}, &DecodeError{Kind: InvalidShape, Got: nodeKind(node)}
	}
}

func decodeRecord(rec Record) (Segment, error) {
	var value, style *string
	for _, f := range rec {
		var dst **string
		switch f.Key {
		case fieldValue:
			dst = &value
		case fieldStyle:
			dst = &style
		default:
			return Segment{}, &DecodeError{Kind: UnknownField, Field: f.Key}
		}
		if *dst != nil {
			return Segment{}, &DecodeError{Kind: DuplicateField, Field: f.Key}
		}
		s, ok := f.Value.(string)
		if !ok {
			return Segment{}, &DecodeError{Kind: InvalidShape, Field: f.Key, Got: nodeKind(f.Value)}
		}
		*dst = &s
	}
	if value == nil {
		return Segment{}, &DecodeError{Kind: MissingField, Field: fieldValue}
	}
	if style == nil {
		return Segment{}, &DecodeError{Kind: MissingField, Field: fieldStyle}
	}
	return Segment{Text: *value, Style: ParseStyle(*style)}, nil
}

// recordFromMap orders map entries by key so that diagnostics are stable.
func recordFromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rec := make(Record, 0, len(keys))
	for _, k := range keys {
		rec = append(rec, Field{Key: k, Value: m[k]})
	}
	return rec
}

// nodeKind names the kind of a decoded configuration value for diagnostics.
func nodeKind(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case Record, map[string]any:
		return "table"
	case []any, []map[string]any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

package rjson

import "fmt"

// SerializationError is returned by the encoder when a value cannot be
// represented as JSON: a non-finite float, a non-string object key, or a
// value outside the supported type set.
type SerializationError struct {
	Msg string
}

func (e *SerializationError) Error() string {
	return e.Msg
}

// ParseError is returned by the decoder for any grammar violation. Offset
// is the byte position in the input at which the violation was detected.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON parsing error: %s at offset %d", e.Msg, e.Offset)
}

func errNonFinite(f float64) *SerializationError {
	return &SerializationError{Msg: fmt.Sprintf("Cannot serialize non-finite float: %v", f)}
}

func errNonStringKey() *SerializationError {
	return &SerializationError{Msg: "Dictionary keys must be strings for JSON serialization"}
}

func errUnsupported(v any) *SerializationError {
	return &SerializationError{Msg: fmt.Sprintf("Unsupported type for JSON serialization: %T", v)}
}

func errUnsupportedValue(t Type) *SerializationError {
	return &SerializationError{Msg: fmt.Sprintf("Unsupported type for JSON serialization: %s Value", t)}
}

package serialization

import "errors"

var (
	// ErrMalformed is returned when a serialized document cannot be parsed.
	ErrMalformed = errors.New("malformed serialized record")
	// ErrEncoding is returned when a document cannot be rendered.
	ErrEncoding = errors.New("error encoding serialized record")
	// ErrUnsupportedType is returned for a value type without a normalizer.
	ErrUnsupportedType = errors.New("unsupported value type")
	// ErrBadValue is returned when a value does not match its declared type.
	ErrBadValue = errors.New("bad value for declared type")
)

package serialization

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ValueType names a safe scalar type. It is written into the type attribute
// of every serialized scalar field.
type ValueType string

const (
	TypeBoolean   ValueType = "boolean"
	TypeShort     ValueType = "short"
	TypeInteger   ValueType = "integer"
	TypeLong      ValueType = "long"
	TypeFloat     ValueType = "float"
	TypeDouble    ValueType = "double"
	TypeString    ValueType = "string"
	TypeText      ValueType = "text"
	TypeLocale    ValueType = "locale"
	TypeTimestamp ValueType = "timestamp"
)

// Timestamp masks. Values are always written with TimestampMask in UTC;
// parsing falls back to TimestampMaskBackup.
const (
	TimestampMask       = "2006-01-02 15:04:05.000"
	TimestampMaskBackup = "2006-01-02 15:04:05"
)

// Normalizer converts between a typed value and its canonical string.
type Normalizer interface {
	ToString(v any) (string, error)
	FromString(s string) (any, error)
}

var normalizers = map[ValueType]Normalizer{
	TypeBoolean:   boolNormalizer{},
	TypeShort:     intNormalizer{typ: TypeShort, bits: 16},
	TypeInteger:   intNormalizer{typ: TypeInteger, bits: 32},
	TypeLong:      intNormalizer{typ: TypeLong, bits: 64},
	TypeFloat:     floatNormalizer{typ: TypeFloat, bits: 32},
	TypeDouble:    floatNormalizer{typ: TypeDouble, bits: 64},
	TypeString:    stringNormalizer{typ: TypeString},
	TypeText:      stringNormalizer{typ: TypeText},
	TypeLocale:    localeNormalizer{},
	TypeTimestamp: timestampNormalizer{},
}

// NormalizerFor returns the normalizer registered for t.
func NormalizerFor(t ValueType) (Normalizer, bool) {
	n, ok := normalizers[t]
	return n, ok
}

// IsSafe reports whether t is one of the safe scalar types.
func IsSafe(t ValueType) bool {
	_, ok := normalizers[t]
	return ok
}

// Normalize encodes v with the normalizer of t.
func Normalize(t ValueType, v any) (string, error) {
	n, ok := normalizers[t]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return n.ToString(v)
}

// Denormalize decodes s with the normalizer of t.
func Denormalize(t ValueType, s string) (any, error) {
	n, ok := normalizers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return n.FromString(s)
}

type boolNormalizer struct{}

func (boolNormalizer) ToString(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", mismatch(TypeBoolean, v)
	}
	return strconv.FormatBool(b), nil
}

func (boolNormalizer) FromString(s string) (any, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	return b, nil
}

type intNormalizer struct {
	typ  ValueType
	bits int
}

func (n intNormalizer) ToString(v any) (string, error) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	}
	return "", mismatch(n.typ, v)
}

func (n intNormalizer) FromString(s string) (any, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, n.bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	switch n.bits {
	case 16:
		return int16(i), nil
	case 32:
		return int(i), nil
	}
	return i, nil
}

type floatNormalizer struct {
	typ  ValueType
	bits int
}

func (n floatNormalizer) ToString(v any) (string, error) {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	}
	return "", mismatch(n.typ, v)
}

func (n floatNormalizer) FromString(s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), n.bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	if n.bits == 32 {
		return float32(f), nil
	}
	return f, nil
}

type stringNormalizer struct {
	typ ValueType
}

func (n stringNormalizer) ToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", mismatch(n.typ, v)
}

func (stringNormalizer) FromString(s string) (any, error) {
	return s, nil
}

// localeNormalizer writes locales the way the clinical application stores
// them: language and region joined by an underscore ("en_US").
type localeNormalizer struct{}

func (localeNormalizer) ToString(v any) (string, error) {
	tag, ok := v.(language.Tag)
	if !ok {
		return "", mismatch(TypeLocale, v)
	}
	return strings.ReplaceAll(tag.String(), "-", "_"), nil
}

func (localeNormalizer) FromString(s string) (any, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	return tag, nil
}

type timestampNormalizer struct{}

func (timestampNormalizer) ToString(v any) (string, error) {
	t, ok := v.(time.Time)
	if !ok {
		return "", mismatch(TypeTimestamp, v)
	}
	return t.UTC().Format(TimestampMask), nil
}

func (timestampNormalizer) FromString(s string) (any, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(TimestampMask, s, time.UTC)
	if err == nil {
		return t, nil
	}
	t, backupErr := time.ParseInLocation(TimestampMaskBackup, s, time.UTC)
	if backupErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	return t, nil
}

func mismatch(t ValueType, v any) error {
	return fmt.Errorf("%w: %T is not a %s", ErrBadValue, v, t)
}

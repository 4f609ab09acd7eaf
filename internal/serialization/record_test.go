package serialization

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func patientRecord(t *testing.T) *Record {
	t.Helper()

	birth, err := Normalize(TypeTimestamp, time.Date(1980, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	r := NewRecord("Patient")
	r.Root().AppendField("uuid", string(TypeString), "5d3e8d2c-0000-7000-8000-000000000001")
	r.Root().AppendField("gender", string(TypeString), "F")
	r.Root().AppendField("birthdate", string(TypeTimestamp), birth)
	r.Root().AppendField("middleName", string(TypeString), "")
	r.Root().AppendField("creator", "User", "5d3e8d2c-0000-7000-8000-0000000000ff")
	return r
}

func TestRecord_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))

	encoded, err := patientRecord(t).Encode()
	require.NoError(t, err)

	g.Assert(t, "patient_record", []byte(encoded))
}

func TestParse_RoundTripKeepsOrderAndEmptyText(t *testing.T) {
	encoded, err := patientRecord(t).Encode()
	require.NoError(t, err)

	parsed, err := Parse(encoded)
	require.NoError(t, err)

	root := parsed.Root()
	assert.Equal(t, "Patient", root.Name())

	names := make([]string, 0, len(root.Children()))
	for _, c := range root.Children() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"uuid", "gender", "birthdate", "middleName", "creator"}, names)

	middle := root.Child("middleName")
	require.NotNil(t, middle)
	text, _ := middle.Text()
	assert.Equal(t, "", text)
	typ, ok := middle.Attribute(AttrType)
	require.True(t, ok)
	assert.Equal(t, "string", typ)

	creator := root.Child("creator")
	require.NotNil(t, creator)
	typ, _ = creator.Attribute(AttrType)
	assert.Equal(t, "User", typ)
}

func TestParse_EscapedContent(t *testing.T) {
	r := NewRecord("Obs")
	r.Root().AppendField("comment", string(TypeText), `a < b & "c"`)

	parsed, err := Parse(r.String())
	require.NoError(t, err)

	text, ok := parsed.Root().Child("comment").Text()
	require.True(t, ok)
	assert.Equal(t, `a < b & "c"`, text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "unclosed element", input: "<Patient><uuid>"},
		{name: "two roots", input: "<a/><b/>"},
		{name: "text outside root", input: "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestItem_SetAttributeReplaces(t *testing.T) {
	item := NewItem("entry").SetAttribute(AttrAction, "update").SetAttribute(AttrAction, "delete")

	assert.Equal(t, []Attr{{Name: AttrAction, Value: "delete"}}, item.Attributes())
}

// ── normalizers ──────────────────────────────────────────────────────────────

func TestTimestampNormalizer(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.FixedZone("X", 3600))

	s, err := Normalize(TypeTimestamp, ts)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06 06:08:09.123", s)

	back, err := Denormalize(TypeTimestamp, s)
	require.NoError(t, err)
	assert.True(t, ts.Equal(back.(time.Time)))

	// backup mask has no milliseconds
	back, err = Denormalize(TypeTimestamp, "2024-05-06 06:08:09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 6, 8, 9, 0, time.UTC), back)

	_, err = Denormalize(TypeTimestamp, "06/05/2024")
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestLocaleNormalizer(t *testing.T) {
	s, err := Normalize(TypeLocale, language.MustParse("en-US"))
	require.NoError(t, err)
	assert.Equal(t, "en_US", s)

	back, err := Denormalize(TypeLocale, "fr_CA")
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("fr-CA"), back)
}

func TestScalarNormalizers(t *testing.T) {
	tests := []struct {
		name  string
		typ   ValueType
		value any
		want  string
	}{
		{name: "boolean", typ: TypeBoolean, value: true, want: "true"},
		{name: "short", typ: TypeShort, value: int16(-7), want: "-7"},
		{name: "integer", typ: TypeInteger, value: 42, want: "42"},
		{name: "long", typ: TypeLong, value: int64(1) << 40, want: "1099511627776"},
		{name: "float", typ: TypeFloat, value: float32(1.5), want: "1.5"},
		{name: "double", typ: TypeDouble, value: 98.6, want: "98.6"},
		{name: "text", typ: TypeText, value: "free text", want: "free text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize(tt.typ, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)

			back, err := Denormalize(tt.typ, s)
			require.NoError(t, err)
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestNormalize_Mismatch(t *testing.T) {
	_, err := Normalize(TypeBoolean, "yes")
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = Normalize(ValueType("blob"), []byte{1})
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, IsSafe("blob"))
	assert.True(t, IsSafe(TypeLocale))
}

func TestNormalize_MismatchNamesRequestedType(t *testing.T) {
	tests := []struct {
		typ   ValueType
		value any
	}{
		{typ: TypeShort, value: "7"},
		{typ: TypeInteger, value: 1.5},
		{typ: TypeLong, value: true},
		{typ: TypeFloat, value: 3},
		{typ: TypeDouble, value: "98.6"},
		{typ: TypeText, value: 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			_, err := Normalize(tt.typ, tt.value)
			require.ErrorIs(t, err, ErrBadValue)
			assert.ErrorContains(t, err, "is not a "+string(tt.typ))
		})
	}
}

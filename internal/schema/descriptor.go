package schema

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
)

// FieldKind classifies a field for serialization.
type FieldKind int

const (
	// KindScalar is a field holding one of the safe value types.
	KindScalar FieldKind = iota
	// KindReference is a field pointing at another entity.
	KindReference
	// KindCollection is a many-to-many set of other entities.
	KindCollection
)

// Field describes one persistent property of an entity type.
type Field struct {
	Name string
	Kind FieldKind
	// ValueType is set for scalars.
	ValueType serialization.ValueType
	// RefType is the referenced type for references and the element type
	// for collections.
	RefType string

	PrimaryKey bool
	Identity   bool
	Transient  bool

	// Get returns a typed scalar (nil when unset), an Entity (nil when
	// unset), or an []Entity for collections.
	Get func(e Entity) any
	// Set stores a value of the same shape Get returns.
	Set func(e Entity, v any) error
}

// AsTransient returns a copy of f that is never serialized.
func (f Field) AsTransient() Field {
	f.Transient = true
	return f
}

// Descriptor describes one entity type.
type Descriptor struct {
	Type   string
	New    func() Entity
	Fields []Field
}

// Field returns the field called name.
func (d *Descriptor) Field(name string) (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// Accessor finds the field that should receive a serialized property called
// name whose type attribute is typeAttr. The exact name wins; failing that
// the lookup falls back to a case-insensitive name match, then to the single
// field whose declared type is compatible with typeAttr.
func (d *Descriptor) Accessor(name, typeAttr string) (*Field, bool) {
	if f, ok := d.Field(name); ok && !f.PrimaryKey && f.Set != nil {
		return f, true
	}
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.PrimaryKey || f.Set == nil {
			continue
		}
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}

	var match *Field
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.PrimaryKey || f.Identity || f.Set == nil {
			continue
		}
		if f.Kind == KindReference && f.RefType == typeAttr {
			if match != nil {
				return nil, false
			}
			match = f
		}
	}
	return match, match != nil
}

// IdentityField returns the field holding the global identity, if the type
// declares one.
func (d *Descriptor) IdentityField() (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Identity {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// Collections returns the collection fields in declaration order.
func (d *Descriptor) Collections() []*Field {
	var out []*Field
	for i := range d.Fields {
		if d.Fields[i].Kind == KindCollection {
			out = append(out, &d.Fields[i])
		}
	}
	return out
}

// ── field constructors ──────────────────────────────────────────────────────

// IDField describes the local primary key.
func IDField() Field {
	return Field{
		Name:       "id",
		Kind:       KindScalar,
		ValueType:  serialization.TypeLong,
		PrimaryKey: true,
		Get:        func(e Entity) any { return e.GetID() },
		Set: func(e Entity, v any) error {
			id, ok := v.(int64)
			if !ok {
				return typeError("id", v)
			}
			e.SetID(id)
			return nil
		},
	}
}

// UUIDField describes the global identity property.
func UUIDField() Field {
	return Field{
		Name:      "uuid",
		Kind:      KindScalar,
		ValueType: serialization.TypeString,
		Identity:  true,
		Get: func(e Entity) any {
			if e.GetUUID() == "" {
				return nil
			}
			return e.GetUUID()
		},
		Set: func(e Entity, v any) error {
			s, ok := v.(string)
			if !ok {
				return typeError("uuid", v)
			}
			e.SetUUID(s)
			return nil
		},
	}
}

// String describes a string property. An empty string is a value, not an
// absence.
func String[E Entity](name string, ptr func(E) *string) Field {
	return scalar(name, serialization.TypeString, ptr)
}

// Text describes a long free-text property.
func Text[E Entity](name string, ptr func(E) *string) Field {
	return scalar(name, serialization.TypeText, ptr)
}

// Bool describes a boolean property.
func Bool[E Entity](name string, ptr func(E) *bool) Field {
	return scalar(name, serialization.TypeBoolean, ptr)
}

// Int describes an integer property.
func Int[E Entity](name string, ptr func(E) *int) Field {
	return scalar(name, serialization.TypeInteger, ptr)
}

// Locale describes a locale property.
func Locale[E Entity](name string, ptr func(E) *language.Tag) Field {
	return scalar(name, serialization.TypeLocale, ptr)
}

// Double describes an optional floating point property.
func Double[E Entity](name string, ptr func(E) **float64) Field {
	return optional(name, serialization.TypeDouble, ptr)
}

// Timestamp describes an optional point in time.
func Timestamp[E Entity](name string, ptr func(E) **time.Time) Field {
	return optional(name, serialization.TypeTimestamp, ptr)
}

func scalar[E Entity, V any](name string, vt serialization.ValueType, ptr func(E) *V) Field {
	return Field{
		Name:      name,
		Kind:      KindScalar,
		ValueType: vt,
		Get: func(e Entity) any {
			typed, ok := e.(E)
			if !ok {
				return nil
			}
			return *ptr(typed)
		},
		Set: func(e Entity, v any) error {
			typed, ok := e.(E)
			if !ok {
				return typeError(name, e)
			}
			val, ok := v.(V)
			if !ok {
				return typeError(name, v)
			}
			*ptr(typed) = val
			return nil
		},
	}
}

func optional[E Entity, V any](name string, vt serialization.ValueType, ptr func(E) **V) Field {
	return Field{
		Name:      name,
		Kind:      KindScalar,
		ValueType: vt,
		Get: func(e Entity) any {
			typed, ok := e.(E)
			if !ok {
				return nil
			}
			p := *ptr(typed)
			if p == nil {
				return nil
			}
			return *p
		},
		Set: func(e Entity, v any) error {
			typed, ok := e.(E)
			if !ok {
				return typeError(name, e)
			}
			if v == nil {
				*ptr(typed) = nil
				return nil
			}
			val, ok := v.(V)
			if !ok {
				return typeError(name, v)
			}
			*ptr(typed) = &val
			return nil
		},
	}
}

// Ref describes a reference to another entity of type refType.
func Ref[E Entity, T any, PT interface {
	*T
	Entity
}](name, refType string, ptr func(E) *PT) Field {
	return Field{
		Name:    name,
		Kind:    KindReference,
		RefType: refType,
		Get: func(e Entity) any {
			typed, ok := e.(E)
			if !ok {
				return nil
			}
			ref := *ptr(typed)
			if ref == nil {
				return nil
			}
			return Entity(ref)
		},
		Set: func(e Entity, v any) error {
			typed, ok := e.(E)
			if !ok {
				return typeError(name, e)
			}
			if v == nil {
				*ptr(typed) = nil
				return nil
			}
			ent, ok := v.(Entity)
			if !ok {
				return typeError(name, v)
			}
			ref, ok := Concrete(ent).(PT)
			if !ok {
				return typeError(name, v)
			}
			*ptr(typed) = ref
			return nil
		},
	}
}

// Collection describes a many-to-many set of entities of type elemType.
func Collection[E Entity, T any, PT interface {
	*T
	Entity
}](name, elemType string, ptr func(E) *[]PT) Field {
	return Field{
		Name:    name,
		Kind:    KindCollection,
		RefType: elemType,
		Get: func(e Entity) any {
			typed, ok := e.(E)
			if !ok {
				return []Entity(nil)
			}
			members := *ptr(typed)
			out := make([]Entity, 0, len(members))
			for _, m := range members {
				out = append(out, m)
			}
			return out
		},
		Set: func(e Entity, v any) error {
			typed, ok := e.(E)
			if !ok {
				return typeError(name, e)
			}
			members, ok := v.([]Entity)
			if !ok {
				return typeError(name, v)
			}
			out := make([]PT, 0, len(members))
			for _, m := range members {
				pm, ok := Concrete(m).(PT)
				if !ok {
					return typeError(name, m)
				}
				out = append(out, pm)
			}
			*ptr(typed) = out
			return nil
		},
	}
}

func typeError(field string, v any) error {
	return fmt.Errorf("%w: field %s cannot hold %T", ErrFieldType, field, v)
}

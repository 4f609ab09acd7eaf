package schema

import (
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
)

// CollectionType is the type attribute of a stored collection element.
const CollectionType = "collection"

// EntryElement names one member of a serialized collection.
const EntryElement = "entry"

// Resolver loads the entity of type typ identified by uuid. It returns an
// error wrapping ErrUnresolvedRef when no such entity exists.
type Resolver func(typ, uuid string) (Entity, error)

// Encode renders every persistent field of e, collections included. The
// local primary key and transient fields are left out; references are
// written as the referenced uuid.
func Encode(d *Descriptor, e Entity) (*serialization.Record, error) {
	rec := serialization.NewRecord(d.Type)
	root := rec.Root()

	for i := range d.Fields {
		f := &d.Fields[i]
		if f.PrimaryKey || f.Transient {
			continue
		}

		switch f.Kind {
		case KindScalar:
			v := f.Get(e)
			if v == nil {
				continue
			}
			s, err := serialization.Normalize(f.ValueType, v)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", d.Type, f.Name, err)
			}
			root.AppendField(f.Name, string(f.ValueType), s)
		case KindReference:
			ref, _ := f.Get(e).(Entity)
			if ref == nil {
				continue
			}
			if ref.GetUUID() == "" {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingReference, d.Type, f.Name)
			}
			root.AppendField(f.Name, f.RefType, ref.GetUUID())
		case KindCollection:
			members, _ := f.Get(e).([]Entity)
			coll := root.CreateItem(f.Name).SetAttribute(serialization.AttrType, CollectionType)
			for _, m := range members {
				coll.CreateItem(EntryElement).
					SetAttribute(serialization.AttrType, f.RefType).
					SetAttribute(serialization.AttrUUID, m.GetUUID())
			}
		}
	}
	return rec, nil
}

// Decode applies the serialized properties under root to e. Scalars are
// decoded with the normalizer named by their type attribute; any other type
// attribute is treated as a reference and handed to resolve.
func Decode(d *Descriptor, e Entity, root *serialization.Item, resolve Resolver) error {
	for _, child := range root.Children() {
		typeAttr, _ := child.Attribute(serialization.AttrType)

		if typeAttr == CollectionType {
			if err := decodeCollection(d, e, child, resolve); err != nil {
				return err
			}
			continue
		}

		f, ok := d.Accessor(child.Name(), typeAttr)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrNoAccessor, d.Type, child.Name())
		}
		text, _ := child.Text()

		if serialization.IsSafe(serialization.ValueType(typeAttr)) {
			v, err := serialization.Denormalize(serialization.ValueType(typeAttr), text)
			if err != nil {
				return fmt.Errorf("field %s.%s: %w", d.Type, child.Name(), err)
			}
			if f.Kind != KindScalar {
				return fmt.Errorf("%w: %s.%s is not a scalar", ErrFieldType, d.Type, f.Name)
			}
			if err = f.Set(e, v); err != nil {
				return err
			}
			continue
		}

		if f.Kind != KindReference {
			return fmt.Errorf("%w: %s.%s is not a reference", ErrFieldType, d.Type, f.Name)
		}
		ref, err := resolve(typeAttr, text)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", d.Type, f.Name, err)
		}
		if err = f.Set(e, ref); err != nil {
			return err
		}
	}
	return nil
}

func decodeCollection(d *Descriptor, e Entity, item *serialization.Item, resolve Resolver) error {
	f, ok := d.Field(item.Name())
	if !ok || f.Kind != KindCollection {
		return fmt.Errorf("%w: %s.%s", ErrNoAccessor, d.Type, item.Name())
	}

	members := make([]Entity, 0, len(item.Children()))
	for _, entry := range item.Children() {
		typ, _ := entry.Attribute(serialization.AttrType)
		uuid, _ := entry.Attribute(serialization.AttrUUID)
		m, err := resolve(typ, uuid)
		if err != nil {
			return fmt.Errorf("collection %s.%s: %w", d.Type, f.Name, err)
		}
		members = append(members, m)
	}
	return f.Set(e, members)
}

// Stub returns an unloaded instance of typ carrying only uuid. The entity
// store uses stubs for references it has not loaded.
func (r *Registry) Stub(typ, uuid string) (Entity, error) {
	d, ok := r.Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	e := d.New()
	e.SetUUID(uuid)
	return e, nil
}

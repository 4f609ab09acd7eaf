package interceptor

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// assignGUID makes sure e carries the right uuid and reports whether it
// changed. It runs for every registered entity, participating or not.
func (i *Interceptor) assignGUID(ctx context.Context, uow *UnitOfWork, d *schema.Descriptor, e schema.Entity, insert bool) (bool, error) {
	if _, ok := d.IdentityField(); !ok {
		return false, nil
	}
	before := e.GetUUID()

	if insert {
		// a uuid on a new row without an inbound marker comes from a copied
		// or reattached object
		if before != "" && uow.originalUUID == "" {
			i.logger.Debug().
				Str("func", "Interceptor.assignGUID").
				Str("entity_type", d.Type).
				Str("uuid", before).
				Msg("clearing stale uuid on insert")
			e.SetUUID("")
		}
		if e.GetUUID() == "" {
			e.SetUUID(i.generator.Generate())
		}
		return e.GetUUID() != before, nil
	}

	var stored string
	if e.GetID() != 0 {
		var err error
		stored, err = i.identity.FetchUUID(ctx, d.Type, e.GetID())
		if err != nil {
			i.logger.Warn().
				Err(err).
				Str("func", "Interceptor.assignGUID").
				Str("entity_type", d.Type).
				Int64("id", e.GetID()).
				Msg("could not read stored uuid")
		}
	}

	switch {
	case stored == "" && before == "":
		e.SetUUID(i.generator.Generate())
	case stored == "":
	case before == "":
		e.SetUUID(stored)
	case before != stored:
		i.logger.Warn().
			Str("func", "Interceptor.assignGUID").
			Str("entity_type", d.Type).
			Str("stored_uuid", stored).
			Str("given_uuid", before).
			Msg("uuid differs from stored value, keeping stored")
		e.SetUUID(stored)
	}
	return e.GetUUID() != before, nil
}

// packageObject serializes e into one item of uow.
func (i *Interceptor) packageObject(ctx context.Context, uow *UnitOfWork, d *schema.Descriptor, e schema.Entity, state models.SyncItemState) error {
	uuid := e.GetUUID()
	if uuid == "" {
		return i.escalate(ctx, &CaptureError{Op: "package", EntityType: d.Type, Err: ErrNoIdentity})
	}

	rec := serialization.NewRecord(d.Type)
	root := rec.Root()

	if state == models.SyncItemStateDeleted {
		root.AppendField("uuid", string(serialization.TypeString), uuid)
	} else {
		for idx := range d.Fields {
			f := &d.Fields[idx]
			if f.PrimaryKey || f.Transient {
				continue
			}
			if err := i.packageField(ctx, root, d, f, e); err != nil {
				if escalated := i.escalate(ctx, &CaptureError{Op: "package", EntityType: d.Type, UUID: uuid, Err: err}); escalated != nil {
					return escalated
				}
			}
		}
	}

	content, err := rec.Encode()
	if err != nil {
		return i.escalate(ctx, &CaptureError{Op: "package", EntityType: d.Type, UUID: uuid, Err: err})
	}

	uow.put(models.SyncItem{
		Key:           models.SyncItemKey(uuid),
		State:         state,
		ContainedType: d.Type,
		Content:       content,
	}, d.Type)
	return nil
}

func (i *Interceptor) packageField(ctx context.Context, root *serialization.Item, d *schema.Descriptor, f *schema.Field, e schema.Entity) error {
	switch f.Kind {
	case schema.KindScalar:
		if !serialization.IsSafe(f.ValueType) {
			return nil
		}
		v := f.Get(e)
		if v == nil {
			return nil
		}
		s, err := serialization.Normalize(f.ValueType, v)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		root.AppendField(f.Name, string(f.ValueType), s)
	case schema.KindReference:
		if _, ok := i.registry.Lookup(f.RefType); !ok {
			return nil
		}
		ref, _ := f.Get(e).(schema.Entity)
		if ref == nil {
			return nil
		}
		uuid, err := i.referenceUUID(ctx, f.RefType, schema.Concrete(ref))
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		root.AppendField(f.Name, f.RefType, uuid)
	}
	// collections are captured through the collection hooks
	return nil
}

// referenceUUID returns the uuid of a referenced entity, reading it from
// storage when the in-memory object lacks it.
func (i *Interceptor) referenceUUID(ctx context.Context, refType string, ref schema.Entity) (string, error) {
	if uuid := ref.GetUUID(); uuid != "" {
		return uuid, nil
	}
	if ref.GetID() == 0 {
		return "", ErrUnresolvedReference
	}
	uuid, err := i.identity.FetchUUID(ctx, refType, ref.GetID())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolvedReference, err)
	}
	if uuid == "" {
		return "", ErrUnresolvedReference
	}
	return uuid, nil
}

package interceptor

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Collection actions written into collection items.
const (
	ActionRecreate = "recreate"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
)

// Element names of a serialized collection item.
const (
	CollectionRoot = "collection"
	OwnerElement   = "owner"
)

// OnCollectionRecreate handles a collection replaced by a new instance.
// Every current member is written as an update entry.
func (i *Interceptor) OnCollectionRecreate(ctx context.Context, uow *UnitOfWork, ev CollectionEvent) error {
	return i.processCollection(ctx, uow, ev, ActionRecreate)
}

// OnCollectionUpdate handles members added to or removed from a collection.
func (i *Interceptor) OnCollectionUpdate(ctx context.Context, uow *UnitOfWork, ev CollectionEvent) error {
	if len(ev.Members) == 0 && len(ev.Removed) == 0 {
		return nil
	}
	return i.processCollection(ctx, uow, ev, ActionUpdate)
}

// OnCollectionRemove is fired only right before a recreate, which carries
// the full content. Nothing is captured.
func (i *Interceptor) OnCollectionRemove(ctx context.Context, uow *UnitOfWork, ev CollectionEvent) error {
	i.logger.Debug().
		Str("func", "Interceptor.OnCollectionRemove").
		Str("property", ev.Property).
		Msg("collection remove")
	return nil
}

type collectionEntry struct {
	entityType string
	uuid       string
	action     string
}

func (i *Interceptor) processCollection(ctx context.Context, uow *UnitOfWork, ev CollectionEvent, action string) error {
	if !i.status.SyncStatus(ctx).IsEnabled() {
		return nil
	}

	owner := schema.Concrete(ev.Owner)
	fail := func(err error) error {
		return i.escalate(ctx, &CaptureError{Op: "collection " + action, EntityType: owner.EntityType(), UUID: owner.GetUUID(), Err: err})
	}

	d, ok := i.registry.DescriptorOf(owner)
	if !ok || !i.participates(uow, owner) {
		if uow.Suppressed() {
			return nil
		}
		return fail(ErrNotParticipating)
	}
	f, ok := d.Field(ev.Property)
	if !ok || f.Kind != schema.KindCollection {
		return fail(fmt.Errorf("%w: %s", ErrUnknownProperty, ev.Property))
	}
	if owner.GetUUID() == "" {
		return fail(ErrNoIdentity)
	}

	var entries []collectionEntry
	seen := make(map[string]struct{})
	add := func(members []schema.Entity, entryAction string) error {
		for _, m := range members {
			m = schema.Concrete(m)
			md, ok := i.registry.DescriptorOf(m)
			if !ok || !i.participates(uow, m) {
				return fmt.Errorf("%w: %s member %s", ErrNotParticipating, ev.Property, m.EntityType())
			}
			uuid, err := i.referenceUUID(ctx, md.Type, m)
			if err != nil {
				return err
			}
			key := uuid + "|" + entryAction
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			entries = append(entries, collectionEntry{entityType: md.Type, uuid: uuid, action: entryAction})
		}
		return nil
	}

	if err := add(ev.Members, ActionUpdate); err != nil {
		return fail(err)
	}
	if action != ActionRecreate {
		if err := add(ev.Removed, ActionDelete); err != nil {
			return fail(err)
		}
	}

	rec := serialization.NewRecord(CollectionRoot)
	rec.Root().CreateItem(OwnerElement).
		SetAttribute(serialization.AttrType, d.Type).
		SetAttribute(serialization.AttrProperty, ev.Property).
		SetAttribute(serialization.AttrAction, action).
		SetAttribute(serialization.AttrUUID, owner.GetUUID())
	for _, en := range entries {
		rec.Root().CreateItem(schema.EntryElement).
			SetAttribute(serialization.AttrType, en.entityType).
			SetAttribute(serialization.AttrAction, en.action).
			SetAttribute(serialization.AttrUUID, en.uuid)
	}

	content, err := rec.Encode()
	if err != nil {
		return fail(err)
	}

	types := []string{d.Type}
	for _, en := range entries {
		types = append(types, en.entityType)
	}
	uow.put(models.SyncItem{
		Key:           models.NewCollectionKey(owner.GetUUID(), ev.Property),
		State:         models.SyncItemStateUpdated,
		ContainedType: CollectionRoot,
		Content:       content,
	}, types...)
	return nil
}

package interceptor

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Interceptor receives the lifecycle hooks of an entity session.
type Interceptor struct {
	registry  *schema.Registry
	status    StatusSource
	identity  IdentityFetcher
	journal   Journal
	generator UUIDGenerator
	logger    *logger.Logger
	now       func() time.Time
}

func New(registry *schema.Registry, status StatusSource, identity IdentityFetcher,
	journal Journal, generator UUIDGenerator, log *logger.Logger) *Interceptor {
	return &Interceptor{
		registry:  registry,
		status:    status,
		identity:  identity,
		journal:   journal,
		generator: generator,
		logger:    log,
		now:       time.Now,
	}
}

// AfterTransactionBegin opens the unit of work of a new transaction.
func (i *Interceptor) AfterTransactionBegin(ctx context.Context) *UnitOfWork {
	return newUnitOfWork()
}

// OnSave handles an insert. It reports whether the entity was modified
// (a uuid was assigned) so the caller can persist the change.
func (i *Interceptor) OnSave(ctx context.Context, uow *UnitOfWork, ev EntityEvent) (bool, error) {
	return i.onEntity(ctx, uow, ev, models.SyncItemStateNew)
}

// OnFlushDirty handles an update.
func (i *Interceptor) OnFlushDirty(ctx context.Context, uow *UnitOfWork, ev EntityEvent) (bool, error) {
	return i.onEntity(ctx, uow, ev, models.SyncItemStateUpdated)
}

// OnDelete handles a delete. Only the uuid of the entity is captured.
func (i *Interceptor) OnDelete(ctx context.Context, uow *UnitOfWork, ev EntityEvent) error {
	_, err := i.onEntity(ctx, uow, ev, models.SyncItemStateDeleted)
	return err
}

func (i *Interceptor) onEntity(ctx context.Context, uow *UnitOfWork, ev EntityEvent, state models.SyncItemState) (bool, error) {
	entity := schema.Concrete(ev.Entity)
	d, ok := i.registry.DescriptorOf(entity)
	if !ok {
		return false, nil
	}

	// identities are kept up to date even while capture is off
	modified, err := i.assignGUID(ctx, uow, d, entity, state == models.SyncItemStateNew)
	if err != nil {
		return modified, i.escalate(ctx, &CaptureError{Op: "assignGUID", EntityType: d.Type, Err: err})
	}

	if !i.status.SyncStatus(ctx).IsEnabled() || !i.participates(uow, entity) {
		return modified, nil
	}

	key := d.Type + "|" + entity.GetUUID()
	if uow.seen(key) {
		i.logger.Debug().
			Str("func", "Interceptor.onEntity").
			Str("entity_type", d.Type).
			Str("uuid", entity.GetUUID()).
			Msg("entity already packaged in this flush")
		return modified, nil
	}

	if err = i.packageObject(ctx, uow, d, entity, state); err != nil {
		return modified, err
	}
	return modified, nil
}

// participates applies the participation rule. The global status is checked
// by the callers.
func (i *Interceptor) participates(uow *UnitOfWork, e schema.Entity) bool {
	if uow.Suppressed() {
		return false
	}
	if _, ok := i.registry.DescriptorOf(e); !ok {
		return false
	}
	if s, ok := e.(schema.Switchable); ok && !s.IsSynchronizable() {
		return false
	}
	return true
}

// BeforeTransactionCompletion closes the record and hands it to the journal.
// It returns nil when nothing was captured.
func (i *Interceptor) BeforeTransactionCompletion(ctx context.Context, uow *UnitOfWork) (*models.SyncRecord, error) {
	if !i.status.SyncStatus(ctx).IsEnabled() {
		return nil, nil
	}

	record := uow.record
	if !record.HasItems() {
		i.logger.Debug().
			Str("func", "Interceptor.BeforeTransactionCompletion").
			Msg("no sync items in transaction, record discarded")
		return nil, nil
	}

	record.Creator = uow.creator
	if record.Creator == "" {
		record.Creator = i.status.ServerUUID(ctx)
	}
	record.DatabaseVersion = i.status.DatabaseVersion(ctx)
	record.UUID = i.generator.Generate()
	if uow.originalUUID != "" {
		record.OriginalUUID = uow.originalUUID
	} else {
		record.OriginalUUID = record.UUID
	}
	record.State = models.SyncRecordStateNew
	record.Timestamp = i.now().UTC()
	record.RetryCount = 0

	if err := i.journal.CreateSyncRecord(ctx, record); err != nil {
		i.logger.Err(err).
			Str("func", "Interceptor.BeforeTransactionCompletion").
			Str("record_uuid", record.UUID).
			Msg("error journaling sync record")
		return nil, i.escalate(ctx, &CaptureError{Op: "journal", UUID: record.UUID, Err: fmt.Errorf("%w: %w", ErrJournal, err)})
	}

	i.logger.Info().
		Str("func", "Interceptor.BeforeTransactionCompletion").
		Str("record_uuid", record.UUID).
		Str("original_uuid", record.OriginalUUID).
		Int("items", len(record.Items)).
		Msg("sync record journaled")
	return record, nil
}

// AfterTransactionCompletion clears uow. It runs on commit and rollback.
func (i *Interceptor) AfterTransactionCompletion(ctx context.Context, uow *UnitOfWork, committed bool) {
	if !committed && uow.record.HasItems() {
		i.logger.Debug().
			Str("func", "Interceptor.AfterTransactionCompletion").
			Int("items", len(uow.record.Items)).
			Msg("transaction rolled back, captured changes discarded")
	}
	uow.record = &models.SyncRecord{}
	clear(uow.index)
	clear(uow.processed)
	uow.suppressed = 0
	uow.originalUUID = ""
	uow.creator = ""
}

// escalate applies the failure policy: strict mode returns err, lenient mode
// logs it and returns nil. The status is read at each call.
func (i *Interceptor) escalate(ctx context.Context, err *CaptureError) error {
	if i.status.SyncStatus(ctx).IsStrict() {
		return err
	}
	i.logger.Warn().
		Err(err).
		Str("func", "Interceptor.escalate").
		Str("entity_type", err.EntityType).
		Str("uuid", err.UUID).
		Msg("change not captured")
	return nil
}

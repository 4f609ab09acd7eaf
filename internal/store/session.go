package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/interceptor"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SessionFactory opens [EntitySession]s over one database.
type SessionFactory struct {
	db          *DB
	entities    EntityRepository
	registry    *schema.Registry
	interceptor *interceptor.Interceptor
	logger      *logger.Logger
}

func NewSessionFactory(db *DB, entities EntityRepository, registry *schema.Registry,
	ic *interceptor.Interceptor, logger *logger.Logger) *SessionFactory {
	return &SessionFactory{
		db:          db,
		entities:    entities,
		registry:    registry,
		interceptor: ic,
		logger:      logger,
	}
}

// EntitySession is the persistence boundary of the domain entities. Every
// write goes through the change interceptor and every transaction ends
// with its changes journaled as one sync record.
//
// A session is bound to one transaction and must not be shared between
// goroutines.
type EntitySession struct {
	*SessionFactory
	tx  *sql.Tx
	uow *interceptor.UnitOfWork
}

// Begin opens a transaction and its unit of work.
func (f *SessionFactory) Begin(ctx context.Context) (*EntitySession, error) {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SessionFactory.Begin").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	s := &EntitySession{SessionFactory: f, tx: tx}
	s.uow = f.interceptor.AfterTransactionBegin(s.Context(ctx))
	return s, nil
}

// Context returns ctx carrying the session transaction. Repository calls
// made with it join the transaction.
func (s *EntitySession) Context(ctx context.Context) context.Context {
	return withTx(ctx, s.tx)
}

// UnitOfWork exposes the change set of the open transaction.
func (s *EntitySession) UnitOfWork() *interceptor.UnitOfWork {
	return s.uow
}

func (s *EntitySession) open() error {
	if s.tx == nil {
		return ErrSessionNotStarted
	}
	return nil
}

func (s *EntitySession) descriptor(e schema.Entity) (*schema.Descriptor, error) {
	d, ok := s.registry.DescriptorOf(schema.Concrete(e))
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownType, e.EntityType())
	}
	return d, nil
}

// Save inserts entities without id and updates the others, as one flush.
func (s *EntitySession) Save(ctx context.Context, entities ...schema.Entity) error {
	if err := s.open(); err != nil {
		return err
	}
	ctx = s.Context(ctx)
	s.uow.StartFlush()

	for _, e := range entities {
		entity := schema.Concrete(e)
		d, err := s.descriptor(entity)
		if err != nil {
			return err
		}

		insert := entity.GetID() == 0
		if insert {
			_, err = s.interceptor.OnSave(ctx, s.uow, interceptor.EntityEvent{Entity: e})
		} else {
			_, err = s.interceptor.OnFlushDirty(ctx, s.uow, interceptor.EntityEvent{Entity: e})
		}
		if err != nil {
			return err
		}

		if err = s.store(ctx, d, entity, insert); err != nil {
			return err
		}
	}
	return nil
}

func (s *EntitySession) store(ctx context.Context, d *schema.Descriptor, e schema.Entity, insert bool) error {
	rec, err := schema.Encode(d, e)
	if err != nil {
		return err
	}
	content, err := rec.Encode()
	if err != nil {
		return err
	}

	row := EntityRow{ID: e.GetID(), Type: d.Type, UUID: e.GetUUID(), Content: content}
	if insert {
		if err = s.entities.InsertEntity(ctx, &row); err != nil {
			return err
		}
		e.SetID(row.ID)
		return nil
	}
	return s.entities.UpdateEntity(ctx, row)
}

// Delete removes e. An entity known only by uuid is looked up first.
func (s *EntitySession) Delete(ctx context.Context, e schema.Entity) error {
	if err := s.open(); err != nil {
		return err
	}
	ctx = s.Context(ctx)
	s.uow.StartFlush()

	entity := schema.Concrete(e)
	d, err := s.descriptor(entity)
	if err != nil {
		return err
	}

	if entity.GetID() == 0 && entity.GetUUID() != "" {
		row, err := s.entities.GetEntityByUUID(ctx, d.Type, entity.GetUUID())
		if err != nil {
			return err
		}
		entity.SetID(row.ID)
	}

	if err = s.interceptor.OnDelete(ctx, s.uow, interceptor.EntityEvent{Entity: e}); err != nil {
		return err
	}
	return s.entities.DeleteEntity(ctx, d.Type, entity.GetID())
}

// SetCollection replaces the members of a managed collection and reports
// the change as an update: members that left are listed as removed.
func (s *EntitySession) SetCollection(ctx context.Context, owner schema.Entity, property string, members []schema.Entity) error {
	return s.changeCollection(ctx, owner, property, members, false)
}

// RecreateCollection replaces the members of a managed collection and
// reports the change as a full rewrite.
func (s *EntitySession) RecreateCollection(ctx context.Context, owner schema.Entity, property string, members []schema.Entity) error {
	return s.changeCollection(ctx, owner, property, members, true)
}

func (s *EntitySession) changeCollection(ctx context.Context, owner schema.Entity, property string, members []schema.Entity, recreate bool) error {
	if err := s.open(); err != nil {
		return err
	}
	ctx = s.Context(ctx)
	s.uow.StartFlush()

	entity := schema.Concrete(owner)
	d, err := s.descriptor(entity)
	if err != nil {
		return err
	}
	f, ok := d.Field(property)
	if !ok || f.Kind != schema.KindCollection {
		return fmt.Errorf("%w: %s.%s", schema.ErrNoAccessor, d.Type, property)
	}

	previous, _ := f.Get(entity).([]schema.Entity)
	keep := make(map[string]struct{}, len(members))
	for _, m := range members {
		keep[m.GetUUID()] = struct{}{}
	}
	var removed []schema.Entity
	for _, m := range previous {
		if _, ok := keep[m.GetUUID()]; !ok {
			removed = append(removed, m)
		}
	}

	if err = f.Set(entity, members); err != nil {
		return err
	}

	ev := interceptor.CollectionEvent{Owner: owner, Property: property, Members: members, Removed: removed}
	if recreate {
		err = s.interceptor.OnCollectionRecreate(ctx, s.uow, ev)
	} else {
		err = s.interceptor.OnCollectionUpdate(ctx, s.uow, ev)
	}
	if err != nil {
		return err
	}

	return s.store(ctx, d, entity, entity.GetID() == 0)
}

// Commit journals the captured changes and commits. It returns the
// journaled record, or nil when nothing was captured.
func (s *EntitySession) Commit(ctx context.Context) (*models.SyncRecord, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	txCtx := s.Context(ctx)

	record, err := s.interceptor.BeforeTransactionCompletion(txCtx, s.uow)
	if err != nil {
		_ = s.Rollback(ctx)
		return nil, err
	}

	if err = s.tx.Commit(); err != nil {
		log.Err(err).Str("func", "EntitySession.Commit").Msg("failed to commit transaction")
		s.interceptor.AfterTransactionCompletion(txCtx, s.uow, false)
		s.tx = nil
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	s.interceptor.AfterTransactionCompletion(txCtx, s.uow, true)
	s.tx = nil
	return record, nil
}

// Rollback discards the transaction and its captured changes. Calling it
// after Commit has no effect.
func (s *EntitySession) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.interceptor.AfterTransactionCompletion(s.Context(ctx), s.uow, false)
	s.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// GetByUUID loads the entity of type typ. References of the loaded entity
// are unloaded stubs carrying their uuid.
func (s *EntitySession) GetByUUID(ctx context.Context, typ, uuid string) (schema.Entity, error) {
	row, err := s.entities.GetEntityByUUID(s.Context(ctx), typ, uuid)
	if err != nil {
		return nil, err
	}
	return s.decode(row)
}

// GetByID loads the entity of type typ by local id.
func (s *EntitySession) GetByID(ctx context.Context, typ string, id int64) (schema.Entity, error) {
	row, err := s.entities.GetEntityByID(s.Context(ctx), typ, id)
	if err != nil {
		return nil, err
	}
	return s.decode(row)
}

// FetchUUID reads the stored uuid only.
func (s *EntitySession) FetchUUID(ctx context.Context, typ string, id int64) (string, error) {
	return s.entities.FetchUUID(s.Context(ctx), typ, id)
}

// ListWithoutUUID returns the ids of the entities of typ stored without uuid.
func (s *EntitySession) ListWithoutUUID(ctx context.Context, typ string) ([]int64, error) {
	rows, err := s.entities.ListEntitiesWithoutUUID(s.Context(ctx), typ)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

func (s *EntitySession) decode(row EntityRow) (schema.Entity, error) {
	d, ok := s.registry.Lookup(row.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownType, row.Type)
	}
	rec, err := serialization.Parse(row.Content)
	if err != nil {
		return nil, err
	}

	e := d.New()
	if err = schema.Decode(d, e, rec.Root(), s.registry.Stub); err != nil {
		return nil, err
	}
	e.SetID(row.ID)
	e.SetUUID(row.UUID)
	return e, nil
}

// Resolver returns a [schema.Resolver] that loads referenced entities
// inside the session transaction. A missing entity yields an error
// wrapping [schema.ErrUnresolvedRef].
func (s *EntitySession) Resolver(ctx context.Context) schema.Resolver {
	return func(typ, uuid string) (schema.Entity, error) {
		if _, ok := s.registry.Lookup(typ); !ok {
			return nil, fmt.Errorf("%w: %s", schema.ErrUnknownType, typ)
		}
		e, err := s.GetByUUID(ctx, typ, uuid)
		if errors.Is(err, ErrEntityNotFound) {
			return nil, fmt.Errorf("%w: %s %s", schema.ErrUnresolvedRef, typ, uuid)
		}
		return e, err
	}
}

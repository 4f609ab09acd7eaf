package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/interceptor"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/serialization"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SessionFactory opens entity sessions. *store.SessionFactory satisfies it.
type SessionFactory interface {
	Begin(ctx context.Context) (*store.EntitySession, error)
}

// ingestService is the concrete implementation of IngestService.
//
// Every record is applied in its own session. The session carries the
// inbound origin marker so the changes it journals keep the original
// record identity and are not sent back to the sender.
type ingestService struct {
	properties PropertyService
	records    SyncRecordService
	imports    store.ImportRecordRepository
	sessions   SessionFactory
	registry   *schema.Registry
	dispatch   dispatchTable
	precommit  *precommitRunner
	validator  validators.Validator
	generator  *utils.UUIDGenerator
	metrics    SyncMetrics
	logger     *logger.Logger
	now        func() time.Time
}

func NewIngestService(properties PropertyService, records SyncRecordService, imports store.ImportRecordRepository,
	sessions SessionFactory, registry *schema.Registry, indexer ConceptIndexer, rebuilder FormRebuilder,
	metrics SyncMetrics, logger *logger.Logger) IngestService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &ingestService{
		properties: properties,
		records:    records,
		imports:    imports,
		sessions:   sessions,
		registry:   registry,
		dispatch:   newDispatchTable(),
		precommit:  &precommitRunner{indexer: indexer, rebuilder: rebuilder},
		validator:  validators.NewTransmissionValidator(),
		generator:  utils.NewUUIDGenerator(),
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// ProcessTransmission applies env record by record, in order. An envelope
// whose source is not the authenticated sender is answered INVALID_SERVER
// with every record REJECTED.
//
// Receipts carried by env settle the records the sender got in an earlier
// reply. Otherwise a pull-only child gets its queue in the response.
func (i *ingestService) ProcessTransmission(ctx context.Context, sender *models.RemoteServer, env *models.SyncTransmission) (*models.SyncTransmissionResponse, error) {
	log := logger.FromContext(ctx)

	if !i.properties.SyncStatus(ctx).IsEnabled() {
		return nil, ErrSyncDisabled
	}
	if sender == nil {
		return nil, ErrUnknownSender
	}
	if err := i.validator.Validate(ctx, env); err != nil {
		log.Err(err).Str("server_uuid", sender.UUID).Msg("invalid transmission")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp := &models.SyncTransmissionResponse{
		UUID:           env.UUID,
		SyncSourceUUID: i.properties.ServerUUID(ctx),
		SyncTargetUUID: env.SyncSourceUUID,
		Timestamp:      i.now().UTC(),
		State:          models.TransmissionStateOK,
		ImportRecords:  make([]models.SyncImportRecord, 0, len(env.Records)),
	}

	if env.SyncSourceUUID != sender.UUID {
		log.Warn().
			Str("server_uuid", sender.UUID).
			Str("source_uuid", env.SyncSourceUUID).
			Str("transmission_uuid", env.UUID).
			Msg("transmission source does not match the authenticated peer")
		resp.State = models.TransmissionStateInvalidServer
		resp.ErrorMessage = ErrUnknownSender.Error()
		for _, record := range env.Records {
			imp := newImportRecord(&record)
			imp.State = models.SyncRecordStateRejected
			resp.ImportRecords = append(resp.ImportRecords, *imp)
			i.metrics.RecordIngested(ctx, sender.UUID, imp.State)
		}
		return resp, nil
	}

	log.Info().
		Str("server_uuid", sender.UUID).
		Str("transmission_uuid", env.UUID).
		Int("records", len(env.Records)).
		Msg("processing transmission")

	for idx := range env.Records {
		imp := i.ProcessSyncRecord(ctx, sender, &env.Records[idx])
		resp.ImportRecords = append(resp.ImportRecords, *imp)
	}

	if len(env.ImportRecords) > 0 {
		i.applyReceipts(ctx, sender, env.ImportRecords)
		return resp, nil
	}
	if sender.PullsOnly() {
		out, err := i.outbound(ctx, sender)
		if err != nil {
			// the child asks again on its next run
			log.Err(err).
				Str("func", "ingestService.ProcessTransmission").
				Str("server_uuid", sender.UUID).
				Msg("failed to attach queued records")
			return resp, nil
		}
		resp.Transmission = out
	}
	return resp, nil
}

// outbound marks the queue of a pull-only child as sent and returns it as
// an envelope. It returns nil when nothing is queued.
func (i *ingestService) outbound(ctx context.Context, child *models.RemoteServer) (*models.SyncTransmission, error) {
	batch, err := i.records.GetSyncRecords(ctx, child, models.SyncToParentStates...)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, nil
	}

	records := make([]models.SyncRecord, 0, len(batch))
	for _, record := range batch {
		updated, err := i.records.Transition(ctx, record.UUID, child, unanswered)
		if err != nil {
			return nil, err
		}
		records = append(records, envelopeRecord(updated, child))
	}

	logger.FromContext(ctx).Info().
		Str("server_uuid", child.UUID).
		Int("records", len(records)).
		Msg("queued records attached to response")

	return &models.SyncTransmission{
		UUID:           i.generator.Generate(),
		SyncSourceUUID: i.properties.ServerUUID(ctx),
		SyncTargetUUID: child.UUID,
		Timestamp:      i.now().UTC(),
		Records:        records,
	}, nil
}

// applyReceipts settles the records sender acknowledged. A receipt for a
// record this server does not know is skipped.
func (i *ingestService) applyReceipts(ctx context.Context, sender *models.RemoteServer, receipts []models.SyncImportRecord) {
	log := logger.FromContext(ctx).With().
		Str("func", "ingestService.applyReceipts").
		Str("server_uuid", sender.UUID).
		Logger()
	maxRetry := i.properties.MaxRetryCount(ctx)

	for _, receipt := range receipts {
		record, err := i.records.GetSyncRecordByOriginalUUID(ctx, receipt.UUID)
		if err != nil {
			log.Warn().Err(err).Str("record_uuid", receipt.UUID).Msg("receipt for unknown record")
			continue
		}
		fn, accepted := receiptTransition(receipt.State, maxRetry)
		if !accepted {
			log.Warn().
				Str("record_uuid", record.UUID).
				Str("receipt_state", string(receipt.State)).
				Str("error", receipt.ErrorMessage).
				Msg("peer did not commit record")
		}
		if _, err = i.records.Transition(ctx, record.UUID, sender, fn); err != nil {
			log.Err(err).Str("record_uuid", record.UUID).Msg("failed to apply receipt")
		}
	}
}

func newImportRecord(record *models.SyncRecord) *models.SyncImportRecord {
	return &models.SyncImportRecord{
		UUID:            record.OriginalUUID,
		Creator:         record.Creator,
		DatabaseVersion: record.DatabaseVersion,
		Timestamp:       record.Timestamp,
		RetryCount:      record.RetryCount,
	}
}

// ProcessSyncRecord applies one record and returns its receipt. The
// receipt is stored locally unless the record was a duplicate.
func (i *ingestService) ProcessSyncRecord(ctx context.Context, sender *models.RemoteServer, record *models.SyncRecord) *models.SyncImportRecord {
	imp := i.processSyncRecord(ctx, sender, record)
	i.metrics.RecordIngested(ctx, sender.UUID, imp.State)
	return imp
}

func (i *ingestService) processSyncRecord(ctx context.Context, sender *models.RemoteServer, record *models.SyncRecord) *models.SyncImportRecord {
	log := logger.FromContext(ctx).With().
		Str("record_uuid", record.OriginalUUID).
		Str("server_uuid", sender.UUID).
		Logger()

	imp := newImportRecord(record)

	if i.alreadyCommitted(ctx, record.OriginalUUID) {
		log.Debug().Msg("record already committed")
		imp.State = models.SyncRecordStateAlreadyCommitted
		return imp
	}

	if !sender.ShouldReceive(record.ContainedClasses) {
		log.Debug().Str("classes", record.ContainedClasses.String()).Msg("record not supposed to sync")
		imp.State = models.SyncRecordStateNotSupposedToSync
		i.saveImportRecord(ctx, imp)
		return imp
	}

	// read before the session opens: a single-connection pool is held by
	// the session until it ends
	strict := i.properties.SyncStatus(ctx).IsStrict()
	maxRetry := i.properties.MaxRetryCount(ctx)

	fail := func(code models.ItemErrorCode, err error) *models.SyncImportRecord {
		imp.State = models.SyncRecordStateFailed
		if record.RetryCount >= maxRetry {
			imp.State = models.SyncRecordStateFailedAndStopped
		}
		imp.ErrorMessage = fmt.Sprintf("%s: %v", code, err)
		i.saveImportRecord(ctx, imp)
		return imp
	}

	session, err := i.sessions.Begin(ctx)
	if err != nil {
		log.Err(err).Str("func", "ingestService.ProcessSyncRecord").Msg("failed to open session")
		return fail(models.ItemErrorRecordUnexpected, err)
	}
	defer func() {
		_ = session.Rollback(ctx)
	}()
	session.UnitOfWork().SetOriginalUUID(models.OriginMarker(record.OriginalUUID, sender.UUID))

	queue := newPrecommitQueue()
	for _, item := range record.Items {
		result := models.SyncImportItem{Key: item.Key, State: item.State}

		err = i.processSyncItem(ctx, session, item, queue)
		if errors.Is(err, ErrUnsupportedType) {
			log.Warn().
				Str("item_key", item.Key.String()).
				Str("type", item.ContainedType).
				Msg("item of unsupported type skipped")
			err = nil
		}
		if err != nil {
			itemErr := &ItemError{Code: itemErrorCode(err), Key: item.Key, Err: err}
			log.Err(itemErr).
				Str("func", "ingestService.processSyncItem").
				Str("item_key", item.Key.String()).
				Msg("failed to apply item")

			result.ErrorCode = itemErr.Code
			result.ErrorMessage = err.Error()
			imp.Items = append(imp.Items, result)

			if strict {
				_ = session.Rollback(ctx)
				return fail(itemErr.Code, itemErr)
			}
			continue
		}
		imp.Items = append(imp.Items, result)
	}

	if queue.len() > 0 {
		if err = i.precommit.run(ctx, session, queue); err != nil {
			log.Err(err).Str("func", "ingestService.ProcessSyncRecord").Msg("precommit action failed")
			if strict {
				_ = session.Rollback(ctx)
				return fail(models.ItemErrorRecordUnexpected, err)
			}
		}
	}

	imp.State = models.SyncRecordStateCommitted
	if err = i.imports.SaveImportRecord(session.Context(ctx), imp); err != nil {
		log.Err(err).Str("func", "ingestService.ProcessSyncRecord").Msg("failed to save import record")
		_ = session.Rollback(ctx)
		return fail(models.ItemErrorRecordUnexpected, err)
	}

	if _, err = session.Commit(ctx); err != nil {
		log.Err(err).Str("func", "ingestService.ProcessSyncRecord").Msg("failed to commit ingested record")
		return fail(models.ItemErrorNotCommitted, err)
	}

	log.Debug().Int("items", len(record.Items)).Bool("with_errors", imp.HasErrors()).Msg("record committed")
	return imp
}

// alreadyCommitted reports whether the record was applied here before or
// was created here in the first place.
func (i *ingestService) alreadyCommitted(ctx context.Context, originalUUID string) bool {
	existing, err := i.imports.GetImportRecord(ctx, originalUUID)
	if err == nil && (existing.State == models.SyncRecordStateCommitted ||
		existing.State == models.SyncRecordStateAlreadyCommitted) {
		return true
	}

	if _, err = i.records.GetSyncRecordByOriginalUUID(ctx, originalUUID); err == nil {
		return true
	}
	return false
}

func (i *ingestService) saveImportRecord(ctx context.Context, imp *models.SyncImportRecord) {
	if err := i.imports.SaveImportRecord(ctx, imp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ingestService.saveImportRecord").
			Str("record_uuid", imp.UUID).
			Msg("failed to save import record")
	}
}

// processSyncItem applies one item: it resolves the type, decodes the
// content over the local instance and hands the result to the dispatch
// table.
func (i *ingestService) processSyncItem(ctx context.Context, s *store.EntitySession, item models.SyncItem, q *precommitQueue) error {
	if item.ContainedType == interceptor.CollectionRoot {
		return i.processCollection(ctx, s, item)
	}

	d, ok := i.registry.Lookup(item.ContainedType)
	if !ok {
		return fmt.Errorf("%w: %s", schema.ErrUnknownType, item.ContainedType)
	}
	h, err := i.dispatch.lookup(d.Type)
	if err != nil {
		return err
	}

	uuid := string(item.Key)
	existing, err := s.GetByUUID(ctx, d.Type, uuid)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrEntityNotFound) {
		return err
	}

	if item.State == models.SyncItemStateDeleted {
		if !found {
			logger.FromContext(ctx).Debug().
				Str("item_key", uuid).
				Str("type", d.Type).
				Msg("entity to delete does not exist")
			return nil
		}
		return h.delete(ctx, s, existing, q)
	}

	rec, err := serialization.Parse(item.Content)
	if err != nil {
		return err
	}

	entity := existing
	if !found {
		// an update for an unknown entity is applied as an insert
		entity = d.New()
	}
	if err = schema.Decode(d, entity, rec.Root(), s.Resolver(ctx)); err != nil {
		return err
	}
	entity.SetUUID(uuid)

	return h.save(ctx, s, entity, q)
}

// processCollection replays a managed collection change on its owner.
func (i *ingestService) processCollection(ctx context.Context, s *store.EntitySession, item models.SyncItem) error {
	rec, err := serialization.Parse(item.Content)
	if err != nil {
		return err
	}

	owner := rec.Root().Child(interceptor.OwnerElement)
	if owner == nil {
		return fmt.Errorf("%w: collection item without owner", serialization.ErrMalformed)
	}
	ownerType, _ := owner.Attribute(serialization.AttrType)
	property, _ := owner.Attribute(serialization.AttrProperty)
	action, _ := owner.Attribute(serialization.AttrAction)
	ownerUUID, _ := owner.Attribute(serialization.AttrUUID)

	d, ok := i.registry.Lookup(ownerType)
	if !ok {
		return fmt.Errorf("%w: %s", schema.ErrUnknownType, ownerType)
	}
	f, ok := d.Field(property)
	if !ok || f.Kind != schema.KindCollection {
		return fmt.Errorf("%w: %s.%s", schema.ErrNoAccessor, ownerType, property)
	}

	ownerEntity, err := s.GetByUUID(ctx, ownerType, ownerUUID)
	if err != nil {
		if errors.Is(err, store.ErrEntityNotFound) {
			return fmt.Errorf("%w: collection owner %s %s", schema.ErrUnresolvedRef, ownerType, ownerUUID)
		}
		return err
	}

	var members []schema.Entity
	if action != interceptor.ActionRecreate {
		current, _ := f.Get(ownerEntity).([]schema.Entity)
		members = append(members, current...)
	}

	resolve := s.Resolver(ctx)
	for _, entry := range rec.Root().Children() {
		if entry.Name() != schema.EntryElement {
			continue
		}
		typ, _ := entry.Attribute(serialization.AttrType)
		uuid, _ := entry.Attribute(serialization.AttrUUID)
		entryAction, _ := entry.Attribute(serialization.AttrAction)

		pos := -1
		for idx, m := range members {
			if m.GetUUID() == uuid {
				pos = idx
				break
			}
		}

		if entryAction == interceptor.ActionDelete {
			if pos >= 0 {
				members = append(members[:pos], members[pos+1:]...)
			}
			continue
		}
		if pos >= 0 {
			continue
		}
		m, err := resolve(typ, uuid)
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	if action == interceptor.ActionRecreate {
		return s.RecreateCollection(ctx, ownerEntity, property, members)
	}
	return s.SetCollection(ctx, ownerEntity, property, members)
}

// itemErrorCode maps an ingest failure to the code reported to the sender.
func itemErrorCode(err error) models.ItemErrorCode {
	switch {
	case errors.Is(err, serialization.ErrBadValue), errors.Is(err, serialization.ErrMalformed):
		return models.ItemErrorBadContent
	case errors.Is(err, schema.ErrUnresolvedRef), errors.Is(err, ErrMissingOwner):
		return models.ItemErrorMissing
	case errors.Is(err, schema.ErrNoAccessor), errors.Is(err, schema.ErrFieldType):
		return models.ItemErrorUnsetProperty
	case errors.Is(err, schema.ErrUnknownType), errors.Is(err, ErrNoHandler):
		return models.ItemErrorNoClass
	default:
		return models.ItemErrorUnexpected
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// transmissionService sends the queue of one peer and applies the
// receipts it gets back.
type transmissionService struct {
	properties PropertyService
	records    SyncRecordService
	servers    RemoteServerService
	lastSync   store.RemoteServerRepository
	transport  adapter.Transport
	// ingest applies the records a parent returns; nil ignores them.
	ingest IngestService
	// journal is nil when journal files are disabled.
	journal   store.JournalFileStorage
	generator *utils.UUIDGenerator
	metrics   SyncMetrics
	logger    *logger.Logger
	now       func() time.Time
}

func NewTransmissionService(properties PropertyService, records SyncRecordService, servers RemoteServerService,
	lastSync store.RemoteServerRepository, transport adapter.Transport, ingest IngestService,
	journal store.JournalFileStorage, metrics SyncMetrics, logger *logger.Logger) TransmissionService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &transmissionService{
		properties: properties,
		records:    records,
		servers:    servers,
		lastSync:   lastSync,
		transport:  transport,
		ingest:     ingest,
		journal:    journal,
		generator:  utils.NewUUIDGenerator(),
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

func (t *transmissionService) SendToParent(ctx context.Context) (*models.SyncTransmissionResponse, error) {
	parent, err := t.servers.GetParentServer(ctx)
	if err != nil {
		return nil, err
	}
	return t.SendToServer(ctx, parent)
}

// SendToServer moves the batch of server to PENDING_SEND, sends it and
// applies the outcome to every record of the batch. A parent is contacted
// even with an empty batch, since its reply may carry records for this
// server. A nil response with a nil error means there was nothing to send.
func (t *transmissionService) SendToServer(ctx context.Context, server *models.RemoteServer) (*models.SyncTransmissionResponse, error) {
	log := logger.FromContext(ctx).With().Str("server_uuid", server.UUID).Logger()

	if !t.properties.SyncStatus(ctx).IsEnabled() {
		return nil, ErrSyncDisabled
	}
	if server.Disabled {
		return nil, ErrServerDisabled
	}

	batch, err := t.records.GetSyncRecords(ctx, server, models.SyncToParentStates...)
	if err != nil {
		return nil, fmt.Errorf("failed to select batch: %w", err)
	}
	if len(batch) == 0 && !server.IsParent() {
		log.Debug().Msg("nothing to send")
		return nil, nil
	}

	// state each record was in before this run
	previous := make(map[string]models.SyncRecordState, len(batch))
	records := make([]models.SyncRecord, 0, len(batch))
	for _, record := range batch {
		updated, err := t.records.Transition(ctx, record.UUID, server, func(state models.SyncRecordState, retry int) (models.SyncRecordState, int) {
			previous[record.UUID] = state
			return models.SyncRecordStatePendingSend, retry
		})
		if err != nil {
			return nil, err
		}
		records = append(records, envelopeRecord(updated, server))
	}

	env := &models.SyncTransmission{
		UUID:           t.generator.Generate(),
		SyncSourceUUID: t.properties.ServerUUID(ctx),
		SyncTargetUUID: server.UUID,
		Timestamp:      t.now().UTC(),
		Records:        records,
	}
	t.saveTransmission(ctx, env)

	log.Info().
		Str("transmission_uuid", env.UUID).
		Int("records", len(records)).
		Msg("sending transmission")

	resp, sendErr := t.transport.Send(ctx, server, env)
	if sendErr != nil {
		state := adapter.StateOf(sendErr)
		log.Err(sendErr).
			Str("func", "transmissionService.SendToServer").
			Str("transmission_uuid", env.UUID).
			Str("state", string(state)).
			Msg("transmission failed")

		t.saveResponse(ctx, &models.SyncTransmissionResponse{
			UUID:           env.UUID,
			SyncSourceUUID: server.UUID,
			SyncTargetUUID: env.SyncSourceUUID,
			Timestamp:      t.now().UTC(),
			State:          state,
			ErrorMessage:   sendErr.Error(),
		})
		t.metrics.TransmissionSent(ctx, server.UUID, state, len(records))

		maxRetry := t.properties.MaxRetryCount(ctx)
		for _, record := range records {
			if _, err = t.records.Transition(ctx, record.UUID, server, sendFailed(maxRetry)); err != nil {
				log.Err(err).Str("record_uuid", record.UUID).Msg("failed to mark record as send failed")
			}
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrTransmissionFailed, state, sendErr)
	}

	if resp.State == "" {
		resp.State = models.TransmissionStateOK
	}
	t.saveResponse(ctx, resp)
	t.metrics.TransmissionSent(ctx, server.UUID, resp.State, len(records))

	if err = t.applyResponse(ctx, server, records, previous, resp); err != nil {
		return resp, err
	}
	if resp.Transmission != nil && resp.State == models.TransmissionStateOK {
		if err = t.receive(ctx, server, resp.Transmission); err != nil {
			return resp, err
		}
	}

	if err = t.lastSync.UpdateLastSync(ctx, server.ServerID, t.now()); err != nil {
		log.Err(err).Msg("failed to update last sync")
		return resp, err
	}
	return resp, nil
}

// envelopeRecord is the copy of record put on the wire for server. A child
// gets the retry count of its own delivery.
func envelopeRecord(record *models.SyncRecord, server *models.RemoteServer) models.SyncRecord {
	out := *record
	out.State, out.RetryCount = deliveryState(record, server)
	out.ServerRecords = nil
	return out
}

func sendFailed(maxRetry int) TransitionFunc {
	return func(_ models.SyncRecordState, retry int) (models.SyncRecordState, int) {
		retry++
		if retry >= maxRetry {
			return models.SyncRecordStateFailedAndStopped, retry
		}
		return models.SyncRecordStateSendFailed, retry
	}
}

func setState(state models.SyncRecordState) TransitionFunc {
	return func(_ models.SyncRecordState, retry int) (models.SyncRecordState, int) {
		return state, retry
	}
}

// unanswered moves a record that went out without a receipt to SENT, or to
// SENT_AGAIN when it had been sent before.
func unanswered(state models.SyncRecordState, retry int) (models.SyncRecordState, int) {
	if state == models.SyncRecordStateSent || state == models.SyncRecordStateSentAgain {
		return models.SyncRecordStateSentAgain, retry
	}
	return models.SyncRecordStateSent, retry
}

// receiptTransition maps the receipt a peer gave for a record to the move
// of that record. accepted is false when the peer wants another attempt.
func receiptTransition(state models.SyncRecordState, maxRetry int) (fn TransitionFunc, accepted bool) {
	switch state {
	case models.SyncRecordStateCommitted,
		models.SyncRecordStateAlreadyCommitted,
		models.SyncRecordStateNotSupposedToSync,
		models.SyncRecordStateFailedAndStopped:
		return setState(state), true
	default:
		// FAILED, REJECTED and anything unexpected
		return sendFailed(maxRetry), false
	}
}

// applyResponse moves every sent record according to its receipt. A
// record the peer did not answer for is SENT, or SENT_AGAIN when it was
// already sent before this run.
func (t *transmissionService) applyResponse(ctx context.Context, server *models.RemoteServer, records []models.SyncRecord,
	previous map[string]models.SyncRecordState, resp *models.SyncTransmissionResponse) error {
	log := logger.FromContext(ctx)

	receipts := make(map[string]models.SyncImportRecord, len(resp.ImportRecords))
	for _, receipt := range resp.ImportRecords {
		receipts[receipt.UUID] = receipt
	}

	maxRetry := t.properties.MaxRetryCount(ctx)
	var errs []error
	for _, record := range records {
		var fn TransitionFunc

		receipt, ok := receipts[record.OriginalUUID]
		if !ok {
			next, _ := unanswered(previous[record.UUID], 0)
			fn = setState(next)
		} else if fn, ok = receiptTransition(receipt.State, maxRetry); !ok {
			log.Warn().
				Str("record_uuid", record.UUID).
				Str("server_uuid", server.UUID).
				Str("receipt_state", string(receipt.State)).
				Str("error", receipt.ErrorMessage).
				Msg("peer did not commit record")
		}

		if _, err := t.records.Transition(ctx, record.UUID, server, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// receive applies the records a parent returned for this server and
// acknowledges them in a follow-up envelope carrying only receipts.
func (t *transmissionService) receive(ctx context.Context, server *models.RemoteServer, env *models.SyncTransmission) error {
	log := logger.FromContext(ctx).With().
		Str("server_uuid", server.UUID).
		Str("transmission_uuid", env.UUID).
		Logger()

	if t.ingest == nil {
		log.Warn().Int("records", len(env.Records)).Msg("records returned by peer ignored")
		return nil
	}

	applied, err := t.ingest.ProcessTransmission(ctx, server, env)
	if err != nil {
		log.Err(err).Str("func", "transmissionService.receive").Msg("failed to apply returned records")
		return err
	}
	if len(applied.ImportRecords) == 0 {
		return nil
	}

	ack := &models.SyncTransmission{
		UUID:           t.generator.Generate(),
		SyncSourceUUID: t.properties.ServerUUID(ctx),
		SyncTargetUUID: server.UUID,
		Timestamp:      t.now().UTC(),
		ImportRecords:  applied.ImportRecords,
	}
	t.saveTransmission(ctx, ack)

	if _, err = t.transport.Send(ctx, server, ack); err != nil {
		state := adapter.StateOf(err)
		log.Err(err).
			Str("func", "transmissionService.receive").
			Str("state", string(state)).
			Msg("failed to acknowledge returned records")
		return fmt.Errorf("%w: %s: %w", ErrTransmissionFailed, state, err)
	}

	log.Info().Int("records", len(applied.ImportRecords)).Msg("returned records applied")
	return nil
}

func (t *transmissionService) saveTransmission(ctx context.Context, env *models.SyncTransmission) {
	if t.journal == nil {
		return
	}
	if err := t.journal.SaveTransmission(ctx, env); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "transmissionService.saveTransmission").
			Str("transmission_uuid", env.UUID).
			Msg("failed to write transmission journal file")
	}
}

func (t *transmissionService) saveResponse(ctx context.Context, resp *models.SyncTransmissionResponse) {
	if t.journal == nil {
		return
	}
	if err := t.journal.SaveResponse(ctx, resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "transmissionService.saveResponse").
			Str("transmission_uuid", resp.UUID).
			Msg("failed to write response journal file")
	}
}

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Transactor runs fn in one database transaction. *store.DB satisfies it.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// syncRecordService is the concrete implementation of SyncRecordService.
// The delivery state towards the parent lives on the record itself; the
// delivery state towards each child lives on that child's server record.
type syncRecordService struct {
	records    store.SyncRecordRepository
	servers    store.RemoteServerRepository
	properties PropertyService
	tx         Transactor
	metrics    SyncMetrics
	logger     *logger.Logger
	now        func() time.Time
}

func NewSyncRecordService(records store.SyncRecordRepository, servers store.RemoteServerRepository,
	properties PropertyService, tx Transactor, metrics SyncMetrics, logger *logger.Logger) SyncRecordService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &syncRecordService{
		records:    records,
		servers:    servers,
		properties: properties,
		tx:         tx,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateSyncRecord splits the inbound origin marker off record.OriginalUUID
// and fans the record out to every child. A record that came from the
// parent is already committed upstream; the server record of the child it
// came from is committed for that child.
func (s *syncRecordService) CreateSyncRecord(ctx context.Context, record *models.SyncRecord) error {
	log := logger.FromContext(ctx)

	originalUUID, senderUUID := models.SplitOriginMarker(record.OriginalUUID)
	if originalUUID == "" {
		originalUUID = record.UUID
	}
	record.OriginalUUID = originalUUID
	if record.State == "" {
		record.State = models.SyncRecordStateNew
	}

	servers, err := s.servers.GetRemoteServers(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordService.CreateSyncRecord").
			Str("record_uuid", record.UUID).
			Msg("failed to list remote servers")
		return fmt.Errorf("failed to list remote servers: %w", err)
	}

	var origin *models.RemoteServer
	if senderUUID != "" {
		for i := range servers {
			if servers[i].UUID == senderUUID {
				origin = &servers[i]
				break
			}
		}
		if origin == nil {
			log.Warn().
				Str("func", "syncRecordService.CreateSyncRecord").
				Str("record_uuid", record.UUID).
				Str("server_uuid", senderUUID).
				Msg("record came from an unknown server")
		}
	}

	if origin.IsParent() {
		record.State = models.SyncRecordStateCommitted
	}

	record.ServerRecords = record.ServerRecords[:0]
	for _, server := range servers {
		if server.IsParent() {
			continue
		}
		sr := models.SyncServerRecord{ServerID: server.ServerID, State: models.SyncRecordStateNew}
		if origin != nil && origin.ServerID == server.ServerID {
			sr.State = models.SyncRecordStateCommitted
		}
		record.ServerRecords = append(record.ServerRecords, sr)
	}

	if err = s.records.CreateSyncRecord(ctx, record); err != nil {
		log.Err(err).
			Str("func", "syncRecordService.CreateSyncRecord").
			Str("record_uuid", record.UUID).
			Msg("failed to journal sync record")
		return err
	}
	s.metrics.RecordCaptured(ctx, len(record.Items))

	log.Debug().
		Str("record_uuid", record.UUID).
		Str("original_uuid", record.OriginalUUID).
		Str("state", string(record.State)).
		Int("items", len(record.Items)).
		Msg("sync record journaled")
	return nil
}

func (s *syncRecordService) GetSyncRecord(ctx context.Context, uuid string) (*models.SyncRecord, error) {
	return s.records.GetSyncRecord(ctx, uuid)
}

func (s *syncRecordService) GetSyncRecordByOriginalUUID(ctx context.Context, originalUUID string) (*models.SyncRecord, error) {
	return s.records.GetSyncRecordByOriginalUUID(ctx, originalUUID)
}

func (s *syncRecordService) GetFirstSyncRecordInQueue(ctx context.Context) (*models.SyncRecord, error) {
	return s.records.GetFirstSyncRecordInQueue(ctx)
}

func (s *syncRecordService) GetLatestRecord(ctx context.Context) (*models.SyncRecord, error) {
	return s.records.GetLatestRecord(ctx)
}

func (s *syncRecordService) GetSyncRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SyncRecord, error) {
	if to.Before(from) {
		return nil, ErrInvalidDataProvided
	}
	return s.records.GetSyncRecordsBetween(ctx, from, to)
}

func (s *syncRecordService) GetSyncRecords(ctx context.Context, server *models.RemoteServer, states ...models.SyncRecordState) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	if server == nil {
		return nil, ErrInvalidDataProvided
	}
	if len(states) == 0 {
		states = models.SyncToParentStates
	}

	filter := store.SyncRecordFilter{
		States: states,
		Limit:  uint64(s.properties.MaxRecords(ctx)),
	}
	if !server.IsParent() {
		filter.ServerID = server.ServerID
	}

	records, err := s.records.GetSyncRecords(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordService.GetSyncRecords").
			Str("server_uuid", server.UUID).
			Msg("failed to read queue")
		return nil, err
	}

	batch := make([]models.SyncRecord, 0, len(records))
	for _, record := range records {
		if server.ShouldSend(record.ContainedClasses) {
			batch = append(batch, record)
			continue
		}

		_, err = s.Transition(ctx, record.UUID, server, func(models.SyncRecordState, int) (models.SyncRecordState, int) {
			return models.SyncRecordStateNotSupposedToSync, 0
		})
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("record_uuid", record.UUID).
			Str("server_uuid", server.UUID).
			Str("classes", record.ContainedClasses.String()).
			Msg("record not supposed to sync with server")
	}
	return batch, nil
}

func (s *syncRecordService) UpdateSyncRecord(ctx context.Context, record *models.SyncRecord) error {
	if record == nil || record.UUID == "" {
		return ErrInvalidDataProvided
	}
	return s.records.UpdateSyncRecord(ctx, record)
}

func (s *syncRecordService) DeleteSyncRecord(ctx context.Context, uuid string) error {
	return s.records.DeleteSyncRecord(ctx, uuid)
}

// deliveryState returns the state and retry count of record towards server.
func deliveryState(record *models.SyncRecord, server *models.RemoteServer) (models.SyncRecordState, int) {
	if server.IsParent() {
		return record.State, record.RetryCount
	}
	if sr := record.ServerRecord(server.ServerID); sr != nil {
		return sr.State, sr.RetryCount
	}
	return models.SyncRecordStateNew, 0
}

func (s *syncRecordService) Transition(ctx context.Context, recordUUID string, server *models.RemoteServer, fn TransitionFunc) (*models.SyncRecord, error) {
	var record *models.SyncRecord

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		current, err := s.records.GetSyncRecord(ctx, recordUUID)
		if err != nil {
			return err
		}

		if server.IsParent() {
			current.State, current.RetryCount = fn(current.State, current.RetryCount)
		} else {
			sr := current.ServerRecord(server.ServerID)
			if sr == nil {
				current.ServerRecords = append(current.ServerRecords, models.SyncServerRecord{
					RecordID: current.RecordID,
					ServerID: server.ServerID,
					State:    models.SyncRecordStateNew,
				})
				sr = &current.ServerRecords[len(current.ServerRecords)-1]
			}
			sr.State, sr.RetryCount = fn(sr.State, sr.RetryCount)
		}

		if err = s.records.UpdateSyncRecord(ctx, current); err != nil {
			return err
		}
		record = current
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncRecordService.Transition").
			Str("record_uuid", recordUUID).
			Str("server_uuid", server.UUID).
			Msg("failed to move record to its next state")
		return nil, err
	}
	return record, nil
}

var retryableStates = []models.SyncRecordState{
	models.SyncRecordStateFailed,
	models.SyncRecordStateFailedAndStopped,
	models.SyncRecordStateSendFailed,
	models.SyncRecordStateRejected,
}

func (s *syncRecordService) RetryRecord(ctx context.Context, recordUUID string, server *models.RemoteServer) error {
	if server == nil || recordUUID == "" {
		return ErrInvalidDataProvided
	}

	var notRetryable bool
	_, err := s.Transition(ctx, recordUUID, server, func(state models.SyncRecordState, retry int) (models.SyncRecordState, int) {
		if !slices.Contains(retryableStates, state) {
			notRetryable = true
			return state, retry
		}
		return models.SyncRecordStateNew, 0
	})
	if err != nil {
		return err
	}
	if notRetryable {
		return ErrRecordNotRetryable
	}

	logger.FromContext(ctx).Info().
		Str("record_uuid", recordUUID).
		Str("server_uuid", server.UUID).
		Msg("record queued again")
	return nil
}

// GetSyncStatistics reports the backlog per peer. A peer that never synced
// is stale as soon as something waits for it.
func (s *syncRecordService) GetSyncStatistics(ctx context.Context) ([]models.SyncStatistics, error) {
	servers, err := s.servers.GetRemoteServers(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := make([]models.SyncStatistics, 0, len(servers))
	for _, server := range servers {
		var serverID int64
		if !server.IsParent() {
			serverID = server.ServerID
		}

		counts, err := s.records.CountByState(ctx, serverID)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "syncRecordService.GetSyncStatistics").
				Str("server_uuid", server.UUID).
				Msg("failed to count records")
			return nil, err
		}

		stat := models.SyncStatistics{
			ServerUUID:  server.UUID,
			Nickname:    server.Nickname,
			LastSync:    server.LastSync,
			StateCounts: counts,
		}
		for state, n := range counts {
			if !slices.Contains(models.DoneStates, state) {
				stat.PendingCount += n
			}
		}
		if server.LastSync != nil {
			stat.Stale = server.LastSync.Add(models.StaleSyncThreshold).Before(now)
		} else {
			stat.Stale = stat.PendingCount > 0
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

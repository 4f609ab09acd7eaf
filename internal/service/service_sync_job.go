package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type syncJob struct {
	properties   PropertyService
	servers      RemoteServerService
	transmission TransmissionService
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// running holds one lock per peer uuid.
	running sync.Map
}

// NewSyncJob creates a syncJob that sends the queue of every peer on a
// ticker. The job is idle until Start is called; RunOnce works either way.
func NewSyncJob(properties PropertyService, servers RemoteServerService, transmission TransmissionService, logger *logger.Logger) SyncJob {
	return &syncJob{
		properties:   properties,
		servers:      servers,
		transmission: transmission,
		logger:       logger,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs every peer each interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runAll(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// runAll sends to every enabled peer that has an address, concurrently. A
// pull-only child is served in the replies to its own transmissions.
func (j *syncJob) runAll(ctx context.Context) {
	log := j.logger.With().Str("func", "syncJob.runAll").Logger()

	if !j.properties.SyncStatus(ctx).IsEnabled() {
		log.Debug().Msg("sync disabled, run skipped")
		return
	}

	servers, err := j.servers.GetRemoteServers(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list remote servers")
		return
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, server := range servers {
		if server.Disabled || server.Address == "" {
			continue
		}
		g.Go(func() error {
			_, err := j.run(gCtx, &server)
			if err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
				log.Err(err).Str("server_uuid", server.UUID).Msg("scheduled sync failed")
			}
			// one failing peer must not cancel the others
			return nil
		})
	}
	_ = g.Wait()
}

// RunOnce implements SyncJob.
func (j *syncJob) RunOnce(ctx context.Context, serverUUID string) (*models.SyncTransmissionResponse, error) {
	server, err := j.servers.GetRemoteServer(ctx, serverUUID)
	if err != nil {
		return nil, err
	}
	return j.run(ctx, server)
}

func (j *syncJob) run(ctx context.Context, server *models.RemoteServer) (*models.SyncTransmissionResponse, error) {
	lock, _ := j.running.LoadOrStore(server.UUID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, ErrSyncAlreadyRunning
	}
	defer mu.Unlock()

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = uuid.NewString()
		ctx = utils.WithTraceID(ctx, traceID)
	}

	start := time.Now()
	resp, err := j.transmission.SendToServer(ctx, server)
	if err != nil {
		return nil, err
	}

	if resp != nil {
		logger.FromContext(ctx).Info().
			Str("trace_id", traceID).
			Str("server_uuid", server.UUID).
			Str("state", string(resp.State)).
			Int("receipts", len(resp.ImportRecords)).
			Dur("took", time.Since(start)).
			Msg("sync run finished")
	}
	return resp, nil
}

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled in cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}
	if cfg.Enabled {
		w.workers = append(w.workers, NewSyncWorker(services.SyncJob, cfg.SyncInterval))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	if len(w.workers) == 0 {
		w.logger.Info().Msg("no background workers enabled")
		return
	}
	for _, worker := range w.workers {
		w.logger.Info().Str("worker", worker.Name()).Msg("starting worker")
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.logger.Info().Str("worker", w.workers[i].Name()).Msg("stopping worker")
		w.workers[i].Stop()
	}
}

// SyncWorker sends the queue of every peer each interval.
type SyncWorker struct {
	job      service.SyncJob
	interval time.Duration
}

func NewSyncWorker(job service.SyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, interval: interval}
}

func (s *SyncWorker) Name() string { return "sync" }

func (s *SyncWorker) Start(ctx context.Context) { s.job.Start(ctx, s.interval) }

func (s *SyncWorker) Stop() { s.job.Stop() }

// Package grpc exposes the standard gRPC health service. The "sync"
// service reports SERVING while synchronization is enabled on this server,
// so load balancers and orchestrators can tell a node that stopped
// exchanging records from one that is down.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
)

// SyncServiceName is the health service name that follows the sync status.
const SyncServiceName = "sync"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Refresh sets the "sync" service status from the current sync status.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.PropertyService.SyncStatus(ctx).IsEnabled() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(SyncServiceName, status)
	return status
}

// WatchSyncStatus refreshes the "sync" status every interval until ctx is
// done, then marks every service NOT_SERVING.
func (h *Handler) WatchSyncStatus(ctx context.Context, interval time.Duration) {
	h.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			if status := h.Refresh(ctx); status != healthpb.HealthCheckResponse_SERVING {
				h.logger.Debug().Str("service", SyncServiceName).Str("status", status.String()).Msg("sync is not serving")
			}
		}
	}
}

// Shutdown marks every service NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

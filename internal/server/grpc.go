package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-sync-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// healthRefreshInterval is how often the "sync" health status is re-read.
const healthRefreshInterval = 10 * time.Second

type grpcServer struct {
	handler  *myGRPC.Handler
	server   *grpc.Server
	listener net.Listener

	mu          sync.Mutex
	cancelWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errListening, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ConnectionTimeout(cfg.RequestTimeout))
	handler.Register(server)

	return &grpcServer{
		handler:  handler,
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	g.mu.Lock()
	g.cancelWatch = cancel
	g.mu.Unlock()
	go g.handler.WatchSyncStatus(ctx, healthRefreshInterval)

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) shutdown(ctx context.Context) {
	g.mu.Lock()
	if g.cancelWatch != nil {
		g.cancelWatch()
	}
	g.mu.Unlock()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC server did not drain in time")
		g.server.Stop()
	}
	// never served listeners are not closed by grpc
	_ = g.listener.Close()
}

package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type jobDeps struct {
	properties   *mock.MockPropertyService
	servers      *mock.MockRemoteServerService
	transmission *mock.MockTransmissionService
}

func newTestJob(t *testing.T) (service.SyncJob, jobDeps) {
	ctrl := gomock.NewController(t)
	deps := jobDeps{
		properties:   mock.NewMockPropertyService(ctrl),
		servers:      mock.NewMockRemoteServerService(ctrl),
		transmission: mock.NewMockTransmissionService(ctrl),
	}
	return service.NewSyncJob(deps.properties, deps.servers, deps.transmission, logger.Nop()), deps
}

func TestSyncJob_RunOnce(t *testing.T) {
	job, deps := newTestJob(t)
	ctx := context.Background()

	parent := &models.RemoteServer{ServerID: 1, UUID: "p1", Type: models.RemoteServerTypeParent}
	want := &models.SyncTransmissionResponse{UUID: "t1", State: models.TransmissionStateOK}

	deps.servers.EXPECT().GetRemoteServer(ctx, "p1").Return(parent, nil)
	deps.transmission.EXPECT().
		SendToServer(gomock.Any(), parent).
		DoAndReturn(func(ctx context.Context, _ *models.RemoteServer) (*models.SyncTransmissionResponse, error) {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Len(t, traceID, 36)
			return want, nil
		})

	got, err := job.RunOnce(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSyncJob_RunOnce_KeepsCallerTraceID(t *testing.T) {
	job, deps := newTestJob(t)
	ctx := utils.WithTraceID(context.Background(), "cli-trace")

	parent := &models.RemoteServer{UUID: "p1"}
	deps.servers.EXPECT().GetRemoteServer(ctx, "p1").Return(parent, nil)
	deps.transmission.EXPECT().SendToServer(ctx, parent).Return(nil, nil)

	_, err := job.RunOnce(ctx, "p1")
	require.NoError(t, err)
}

func TestSyncJob_RunOnce_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown server", func(t *testing.T) {
		job, deps := newTestJob(t)
		deps.servers.EXPECT().GetRemoteServer(ctx, "nope").Return(nil, errors.New("remote server was not found"))

		_, err := job.RunOnce(ctx, "nope")
		assert.Error(t, err)
	})

	t.Run("transmission failed", func(t *testing.T) {
		job, deps := newTestJob(t)
		parent := &models.RemoteServer{UUID: "p1"}
		deps.servers.EXPECT().GetRemoteServer(ctx, "p1").Return(parent, nil)
		deps.transmission.EXPECT().SendToServer(gomock.Any(), parent).Return(nil, service.ErrTransmissionFailed)

		_, err := job.RunOnce(ctx, "p1")
		assert.ErrorIs(t, err, service.ErrTransmissionFailed)
	})
}

func TestSyncJob_RunOnce_DoesNotOverlapPerServer(t *testing.T) {
	job, deps := newTestJob(t)
	ctx := context.Background()

	parent := &models.RemoteServer{UUID: "p1"}
	child := &models.RemoteServer{UUID: "c1"}
	started := make(chan struct{})
	release := make(chan struct{})

	deps.servers.EXPECT().GetRemoteServer(ctx, "p1").Return(parent, nil).Times(2)
	deps.servers.EXPECT().GetRemoteServer(ctx, "c1").Return(child, nil)
	deps.transmission.EXPECT().
		SendToServer(gomock.Any(), parent).
		DoAndReturn(func(context.Context, *models.RemoteServer) (*models.SyncTransmissionResponse, error) {
			close(started)
			<-release
			return nil, nil
		})
	deps.transmission.EXPECT().SendToServer(gomock.Any(), child).Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := job.RunOnce(ctx, "p1")
		assert.NoError(t, err)
	}()
	<-started

	_, err := job.RunOnce(ctx, "p1")
	assert.ErrorIs(t, err, service.ErrSyncAlreadyRunning)

	// another peer is not blocked
	_, err = job.RunOnce(ctx, "c1")
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestSyncJob_StartRunsEveryEligiblePeer(t *testing.T) {
	job, deps := newTestJob(t)

	enabled := models.RemoteServer{UUID: "p1", Type: models.RemoteServerTypeParent, Address: "https://hq.example"}
	disabled := models.RemoteServer{UUID: "c1", Type: models.RemoteServerTypeChild, Address: "https://c1.example", Disabled: true}
	pullOnly := models.RemoteServer{UUID: "c2", Type: models.RemoteServerTypeChild}

	sent := make(chan string, 16)
	deps.properties.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatusStrict).AnyTimes()
	deps.servers.EXPECT().GetRemoteServers(gomock.Any()).
		Return([]models.RemoteServer{enabled, disabled, pullOnly}, nil).
		AnyTimes()
	deps.transmission.EXPECT().
		SendToServer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, server *models.RemoteServer) (*models.SyncTransmissionResponse, error) {
			select {
			case sent <- server.UUID:
			default:
			}
			return nil, errors.New("connection refused")
		}).
		MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)

	select {
	case uuid := <-sent:
		assert.Equal(t, "p1", uuid)
	case <-time.After(2 * time.Second):
		t.Fatal("no scheduled run")
	}
	job.Stop()

	close(sent)
	for uuid := range sent {
		assert.Equal(t, "p1", uuid)
	}
}

func TestSyncJob_SkipsWhenDisabled(t *testing.T) {
	job, deps := newTestJob(t)

	checked := make(chan struct{}, 16)
	deps.properties.EXPECT().
		SyncStatus(gomock.Any()).
		DoAndReturn(func(context.Context) models.SyncStatus {
			select {
			case checked <- struct{}{}:
			default:
			}
			return models.SyncStatusDisabled
		}).
		MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)
	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("no scheduled run")
	}
	job.Stop()
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job, _ := newTestJob(t)
	job.Stop()
	job.Stop()
}

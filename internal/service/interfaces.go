package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PropertyService reads and writes the synchronization settings kept in
// the global property store. Every getter reads the store: the values may
// change while the server runs.
type PropertyService interface {
	SyncStatus(ctx context.Context) models.SyncStatus
	SetSyncStatus(ctx context.Context, status models.SyncStatus) error
	ServerUUID(ctx context.Context) string
	ServerName(ctx context.Context) string
	DatabaseVersion(ctx context.Context) string
	MaxRecords(ctx context.Context) int
	MaxRetryCount(ctx context.Context) int
	CompressionEnabled(ctx context.Context) bool
	AdminEmail(ctx context.Context) string

	GetProperty(ctx context.Context, name string) (string, error)
	SetProperty(ctx context.Context, name, value string) error
	GetProperties(ctx context.Context) ([]models.GlobalProperty, error)

	// Init mints the server uuid on first start and seeds the defaults
	// that are not set yet.
	Init(ctx context.Context, serverName string) error
}

// TransitionFunc computes the next delivery state of a record from the
// current one.
type TransitionFunc func(state models.SyncRecordState, retryCount int) (models.SyncRecordState, int)

// SyncRecordService owns the outgoing journal and the per-peer queue.
type SyncRecordService interface {
	// CreateSyncRecord journals a record captured in the current
	// transaction together with one server record per child.
	CreateSyncRecord(ctx context.Context, record *models.SyncRecord) error

	GetSyncRecord(ctx context.Context, uuid string) (*models.SyncRecord, error)
	GetSyncRecordByOriginalUUID(ctx context.Context, originalUUID string) (*models.SyncRecord, error)
	GetFirstSyncRecordInQueue(ctx context.Context) (*models.SyncRecord, error)
	GetLatestRecord(ctx context.Context) (*models.SyncRecord, error)
	GetSyncRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SyncRecord, error)

	// GetSyncRecords returns the next batch for server in delivery order.
	// Records server must not receive are marked NOT_SUPPOSED_TO_SYNC for
	// it and left out.
	GetSyncRecords(ctx context.Context, server *models.RemoteServer, states ...models.SyncRecordState) ([]models.SyncRecord, error)

	UpdateSyncRecord(ctx context.Context, record *models.SyncRecord) error
	DeleteSyncRecord(ctx context.Context, uuid string) error

	// Transition re-reads the record and applies fn to its delivery state
	// for server, in its own short transaction.
	Transition(ctx context.Context, recordUUID string, server *models.RemoteServer, fn TransitionFunc) (*models.SyncRecord, error)

	// RetryRecord puts a failed record back in the queue of server with a
	// fresh retry budget.
	RetryRecord(ctx context.Context, recordUUID string, server *models.RemoteServer) error

	GetSyncStatistics(ctx context.Context) ([]models.SyncStatistics, error)
}

// RemoteServerService manages the peers of this server and authenticates
// the peers that connect to us.
type RemoteServerService interface {
	// CreateRemoteServer registers a peer. childPassword, when set, is the
	// password the peer logs in with and is stored hashed.
	CreateRemoteServer(ctx context.Context, server models.RemoteServer, childPassword string) (models.RemoteServer, error)
	UpdateRemoteServer(ctx context.Context, server models.RemoteServer, childPassword string) (models.RemoteServer, error)
	DeleteRemoteServer(ctx context.Context, uuid string) error
	GetRemoteServer(ctx context.Context, uuid string) (*models.RemoteServer, error)
	GetParentServer(ctx context.Context) (*models.RemoteServer, error)
	GetRemoteServers(ctx context.Context) ([]models.RemoteServer, error)

	Authenticate(ctx context.Context, creds models.PeerCredentials) (*models.RemoteServer, error)
	CreateToken(ctx context.Context, server *models.RemoteServer) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (*models.RemoteServer, error)
}

// TransmissionService sends the queue of one peer.
type TransmissionService interface {
	SendToServer(ctx context.Context, server *models.RemoteServer) (*models.SyncTransmissionResponse, error)
	SendToParent(ctx context.Context) (*models.SyncTransmissionResponse, error)
}

// IngestService applies envelopes received from peers.
type IngestService interface {
	// ProcessTransmission applies the records of env in order and returns
	// one receipt per record.
	ProcessTransmission(ctx context.Context, sender *models.RemoteServer, env *models.SyncTransmission) (*models.SyncTransmissionResponse, error)
	// ProcessSyncRecord applies one record in its own transaction.
	ProcessSyncRecord(ctx context.Context, sender *models.RemoteServer, record *models.SyncRecord) *models.SyncImportRecord
}

// RepairService assigns uuids to stored entities that lack one.
type RepairService interface {
	// RepairUUIDs returns the number of entities of typ that received a
	// uuid.
	RepairUUIDs(ctx context.Context, typ string) (int, error)
}

// SyncJob runs the transmission to every peer on a schedule.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
	// RunOnce sends the queue of one peer now. Runs for the same peer never
	// overlap.
	RunOnce(ctx context.Context, serverUUID string) (*models.SyncTransmissionResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServerInfo(ctx context.Context) models.ServerInfo
}

// SyncMetrics receives the outcome of every exchange. The telemetry
// package implements it with OpenTelemetry counters.
type SyncMetrics interface {
	RecordCaptured(ctx context.Context, items int)
	TransmissionSent(ctx context.Context, serverUUID string, state models.TransmissionState, records int)
	RecordIngested(ctx context.Context, serverUUID string, state models.SyncRecordState)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) RecordCaptured(context.Context, int) {}

func (NopMetrics) TransmissionSent(context.Context, string, models.TransmissionState, int) {}

func (NopMetrics) RecordIngested(context.Context, string, models.SyncRecordState) {}

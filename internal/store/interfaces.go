package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncRecordFilter narrows a queue read.
type SyncRecordFilter struct {
	// States filters on the record state, or on the server record state
	// when ServerID is set.
	States []models.SyncRecordState
	// ServerID selects the delivery sub-state of one child. Zero reads the
	// record state, which tracks delivery to the parent.
	ServerID int64
	// Limit caps the number of rows. Zero means no limit.
	Limit uint64
}

// SyncRecordRepository persists the outgoing journal.
type SyncRecordRepository interface {
	// CreateSyncRecord inserts the record with its items and server records
	// and fills in the generated ids.
	CreateSyncRecord(ctx context.Context, record *models.SyncRecord) error
	GetSyncRecord(ctx context.Context, uuid string) (*models.SyncRecord, error)
	GetSyncRecordByOriginalUUID(ctx context.Context, originalUUID string) (*models.SyncRecord, error)
	GetFirstSyncRecordInQueue(ctx context.Context) (*models.SyncRecord, error)
	GetLatestRecord(ctx context.Context) (*models.SyncRecord, error)
	GetSyncRecords(ctx context.Context, filter SyncRecordFilter) ([]models.SyncRecord, error)
	GetSyncRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SyncRecord, error)
	// UpdateSyncRecord writes the state and retry count of the record and
	// of each of its server records. Items are immutable.
	UpdateSyncRecord(ctx context.Context, record *models.SyncRecord) error
	DeleteSyncRecord(ctx context.Context, uuid string) error
	// CountByState groups the backlog towards one peer by state. serverID
	// zero counts record states.
	CountByState(ctx context.Context, serverID int64) (map[models.SyncRecordState]int64, error)
}

// ImportRecordRepository persists the receipts of ingested records.
type ImportRecordRepository interface {
	// SaveImportRecord inserts or replaces the receipt keyed by its uuid.
	SaveImportRecord(ctx context.Context, record *models.SyncImportRecord) error
	GetImportRecord(ctx context.Context, uuid string) (*models.SyncImportRecord, error)
	DeleteImportRecord(ctx context.Context, uuid string) error
}

// RemoteServerRepository persists the peers of this server.
type RemoteServerRepository interface {
	CreateRemoteServer(ctx context.Context, server *models.RemoteServer) error
	UpdateRemoteServer(ctx context.Context, server *models.RemoteServer) error
	DeleteRemoteServer(ctx context.Context, uuid string) error
	GetRemoteServer(ctx context.Context, uuid string) (*models.RemoteServer, error)
	GetRemoteServerByID(ctx context.Context, serverID int64) (*models.RemoteServer, error)
	GetRemoteServerByUsername(ctx context.Context, childUsername string) (*models.RemoteServer, error)
	GetParentServer(ctx context.Context) (*models.RemoteServer, error)
	GetRemoteServers(ctx context.Context) ([]models.RemoteServer, error)
	UpdateLastSync(ctx context.Context, serverID int64, at time.Time) error
}

// GlobalPropertyRepository is the key/value property store.
type GlobalPropertyRepository interface {
	GetGlobalProperty(ctx context.Context, name string) (string, error)
	SetGlobalProperty(ctx context.Context, name, value string) error
	GetGlobalProperties(ctx context.Context) ([]models.GlobalProperty, error)
}

// EntityRow is the stored form of one domain entity.
type EntityRow struct {
	ID      int64
	Type    string
	UUID    string
	Content string
}

// EntityRepository stores serialized domain entities.
type EntityRepository interface {
	InsertEntity(ctx context.Context, row *EntityRow) error
	UpdateEntity(ctx context.Context, row EntityRow) error
	DeleteEntity(ctx context.Context, entityType string, id int64) error
	GetEntityByUUID(ctx context.Context, entityType, uuid string) (EntityRow, error)
	GetEntityByID(ctx context.Context, entityType string, id int64) (EntityRow, error)
	// FetchUUID reads only the uuid column. An entity stored without uuid
	// yields "".
	FetchUUID(ctx context.Context, entityType string, id int64) (string, error)
	ListEntitiesWithoutUUID(ctx context.Context, entityType string) ([]EntityRow, error)
}

// ConceptWordRepository maintains the concept name search index. Entries
// are owned by the concept name they were split from.
type ConceptWordRepository interface {
	ReplaceConceptNameWords(ctx context.Context, nameUUID string, words []models.ConceptWord) error
	GetConceptWords(ctx context.Context, conceptUUID string) ([]models.ConceptWord, error)
}

// JournalFileStorage keeps a copy of every exchanged envelope on disk.
type JournalFileStorage interface {
	SaveTransmission(ctx context.Context, tx *models.SyncTransmission) error
	SaveResponse(ctx context.Context, resp *models.SyncTransmissionResponse) error
	LoadResponse(ctx context.Context, uuid string) (*models.SyncTransmissionResponse, error)
}

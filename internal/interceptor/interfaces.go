// Package interceptor turns persistence events into journaled change
// records. A [UnitOfWork] is opened at transaction begin, collects one
// [models.SyncItem] per changed entity or collection, and is handed to the
// journal right before commit.
//
// The interceptor never writes to the entity store itself; the only side
// reads it performs are projection lookups of an entity's stored uuid.
package interceptor

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// StatusSource exposes the live synchronization settings. Implementations
// must not cache the status: an administrator may change it at any time.
type StatusSource interface {
	SyncStatus(ctx context.Context) models.SyncStatus
	ServerUUID(ctx context.Context) string
	DatabaseVersion(ctx context.Context) string
}

// IdentityFetcher reads the uuid stored for a row without loading the
// entity.
type IdentityFetcher interface {
	FetchUUID(ctx context.Context, entityType string, id int64) (string, error)
}

// Journal persists a completed record inside the capturing transaction.
type Journal interface {
	CreateSyncRecord(ctx context.Context, record *models.SyncRecord) error
}

// UUIDGenerator mints global identities.
type UUIDGenerator interface {
	Generate() string
}

// EntityEvent describes one entity insert, update, or delete.
type EntityEvent struct {
	Entity schema.Entity
}

// CollectionEvent describes a mutation of a managed collection.
type CollectionEvent struct {
	Owner    schema.Entity
	Property string
	// Members is the current content of the collection.
	Members []schema.Entity
	// Removed lists members present at the last flush and gone now. It is
	// ignored on recreate.
	Removed []schema.Entity
}

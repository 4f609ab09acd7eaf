package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// newMockDB returns a postgres flavoured DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newSQLiteDB opens a migrated database file in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "sync.db"), Driver: config.DriverSQLite}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newRemoteServer(t *testing.T, db *DB, uuid string, typ models.RemoteServerType) *models.RemoteServer {
	t.Helper()

	server := &models.RemoteServer{
		UUID:     uuid,
		Nickname: uuid,
		Type:     typ,
		Address:  "http://" + uuid + ".example",
	}
	if typ == models.RemoteServerTypeChild {
		server.ChildUsername = "child-" + uuid
	}
	require.NoError(t, NewRemoteServerRepository(db, logger.Nop()).CreateRemoteServer(context.Background(), server))
	return server
}

func at(minute int) time.Time {
	return time.Date(2024, 3, 1, 10, minute, 0, 0, time.UTC)
}

func sampleRecord(uuid string, ts time.Time, state models.SyncRecordState) *models.SyncRecord {
	return &models.SyncRecord{
		UUID:             uuid,
		OriginalUUID:     uuid,
		Creator:          "server-a",
		DatabaseVersion:  "1.0",
		Timestamp:        ts,
		State:            state,
		ContainedClasses: models.ContainedClasses{"Patient", "PersonName"},
		Items: []models.SyncItem{
			{Key: "p-1", State: models.SyncItemStateNew, ContainedType: "Patient", Content: "<Patient/>"},
			{Key: "n-1", State: models.SyncItemStateNew, ContainedType: "PersonName", Content: "<PersonName/>"},
		},
	}
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

func TestNewConnectSQLite_CreatesFileAndAppliesPragmas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "node", "sync.db")

	db, err := NewConnect(ctx, config.DB{DSN: path, Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, db.dialect)

	var foreignKeys int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}

func TestEnsureSQLiteFile(t *testing.T) {
	for _, dsn := range []string{"", ":memory:", "file:sync.db?cache=shared"} {
		assert.NoError(t, ensureSQLiteFile(dsn), dsn)
	}

	path := filepath.Join(t.TempDir(), "sync.db")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))
	require.NoError(t, ensureSQLiteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content), "existing database must not be truncated")
}

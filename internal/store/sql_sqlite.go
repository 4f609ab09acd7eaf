package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// sqlitePragmas run on the single pooled connection right after it opens.
var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
}

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("error preparing sqlite database file")
		return nil, err
	}

	return openDB(ctx, connectOptions{
		driver:  config.DriverSQLite,
		dsn:     cfg.DSN,
		dialect: DialectSQLite,
		// one writer at a time; pragmas are per connection, so never
		// let the pool open a second one
		pool:       poolSettings{maxOpen: 1, maxIdle: 1},
		initSQL:    sqlitePragmas,
		classifier: NewSQLiteErrorClassifier(),
	}, log)
}

// ensureSQLiteFile creates the database file of a plain path DSN together
// with its directory. URI DSNs ("file:...") and in-memory databases are
// left to the driver.
func ensureSQLiteFile(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") {
		return nil
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	f, err := os.OpenFile(dsn, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("creating database file: %w", err)
	}
	return f.Close()
}

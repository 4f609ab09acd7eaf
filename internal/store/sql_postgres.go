package store

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// NewConnect opens the database named by cfg.Driver. An empty driver means
// Postgres.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, connectOptions{
		driver:  config.DriverPostgres,
		dsn:     cfg.DSN,
		dialect: DialectPostgres,
		pool: poolSettings{
			maxOpen:     10,
			maxIdle:     4,
			maxLifetime: 30 * time.Minute,
		},
		classifier: NewPostgresErrorClassifier(),
	}, log)
}

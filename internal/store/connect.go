package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

type connectOptions struct {
	driver     string
	dsn        string
	dialect    Dialect
	pool       poolSettings
	initSQL    []string
	classifier ErrorClassificator
}

// openDB opens and pings a pool, runs opts.initSQL on it and wraps it in a
// [DB]. The pool is closed again on any failure.
func openDB(ctx context.Context, opts connectOptions, log *logger.Logger) (*DB, error) {
	log = &logger.Logger{Logger: log.With().Str("driver", opts.driver).Logger()}

	conn, err := sql.Open(opts.driver, opts.dsn)
	if err != nil {
		log.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", opts.driver, err)
	}

	conn.SetMaxOpenConns(opts.pool.maxOpen)
	conn.SetMaxIdleConns(opts.pool.maxIdle)
	conn.SetConnMaxLifetime(opts.pool.maxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting %s database: %w", opts.driver, err)
	}

	for _, stmt := range opts.initSQL {
		if _, err = conn.ExecContext(ctx, stmt); err != nil {
			conn.Close()
			log.Err(err).Str("statement", stmt).Msg("error preparing connection")
			return nil, fmt.Errorf("%s: %w", stmt, err)
		}
	}

	log.Info().Msg("connected to database")
	return &DB{
		DB:                 conn,
		dialect:            opts.dialect,
		logger:             log,
		errorClassificator: opts.classifier,
	}, nil
}

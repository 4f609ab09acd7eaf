package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// Storages groups the repositories of one database so the service layer
// receives them as a single value.
type Storages struct {
	DB                       *DB
	SyncRecordRepository     SyncRecordRepository
	ImportRecordRepository   ImportRecordRepository
	RemoteServerRepository   RemoteServerRepository
	GlobalPropertyRepository GlobalPropertyRepository
	EntityRepository         EntityRepository
	ConceptWordRepository    ConceptWordRepository

	// JournalFileStorage is nil unless a journal directory is configured.
	JournalFileStorage JournalFileStorage
}

// NewStorages connects to the configured database, applies the migrations
// and wires every repository to it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := NewStoragesFromDB(db, logger)

	if cfg.Journal.Dir != "" {
		journal, err := NewJournalFileStorage(cfg.Journal.Dir, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.JournalFileStorage = journal
	}

	return storages, nil
}

// NewStoragesFromDB wires the repositories to an already migrated db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                       db,
		SyncRecordRepository:     NewSyncRecordRepository(db, logger),
		ImportRecordRepository:   NewImportRecordRepository(db, logger),
		RemoteServerRepository:   NewRemoteServerRepository(db, logger),
		GlobalPropertyRepository: NewGlobalPropertyRepository(db, logger),
		EntityRepository:         NewEntityRepository(db, logger),
		ConceptWordRepository:    NewConceptWordRepository(db, logger),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}

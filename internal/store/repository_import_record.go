package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// importRecordRepository persists ingest receipts in sync_import_record and
// sync_import_item.
type importRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewImportRecordRepository(db *DB, logger *logger.Logger) ImportRecordRepository {
	logger.Debug().Msg("creating import record repository")
	return &importRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveImportRecord writes the receipt. An existing receipt with the same
// uuid is overwritten together with its items.
func (r *importRecordRepository) SaveImportRecord(ctx context.Context, record *models.SyncImportRecord) error {
	log := logger.FromContext(ctx)

	return r.InTx(ctx, func(ctx context.Context) error {
		conn := r.conn(ctx)

		existing, err := r.GetImportRecord(ctx, record.UUID)
		switch {
		case err == nil:
			record.ImportID = existing.ImportID
			query, args, buildErr := r.builder().
				Update("sync_import_record").
				Set("creator", record.Creator).
				Set("database_version", record.DatabaseVersion).
				Set("timestamp", record.Timestamp.UTC()).
				Set("retry_count", record.RetryCount).
				Set("state", string(record.State)).
				Set("error_message", record.ErrorMessage).
				Where(sq.Eq{"import_id": record.ImportID}).
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = conn.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "importRecordRepository.SaveImportRecord").
					Str("record_uuid", record.UUID).
					Msg("failed to update import record")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			query, args, buildErr = r.builder().Delete("sync_import_item").Where(sq.Eq{"import_id": record.ImportID}).ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = conn.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		case errors.Is(err, ErrImportRecordNotFound):
			query, args, buildErr := r.builder().
				Insert("sync_import_record").
				Columns("uuid", "creator", "database_version", "timestamp", "retry_count", "state", "error_message").
				Values(record.UUID, record.Creator, record.DatabaseVersion, record.Timestamp.UTC(),
					record.RetryCount, string(record.State), record.ErrorMessage).
				Suffix("RETURNING import_id").
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if err = conn.QueryRowContext(ctx, query, args...).Scan(&record.ImportID); err != nil {
				log.Err(err).
					Str("func", "importRecordRepository.SaveImportRecord").
					Str("record_uuid", record.UUID).
					Msg("failed to insert import record")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		default:
			return err
		}

		for pos, item := range record.Items {
			query, args, buildErr := r.builder().
				Insert("sync_import_item").
				Columns("import_id", "position", "item_key", "state", "error_code", "error_message").
				Values(record.ImportID, pos, string(item.Key), string(item.State), string(item.ErrorCode), item.ErrorMessage).
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, err = conn.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "importRecordRepository.SaveImportRecord").
					Str("record_uuid", record.UUID).
					Int("position", pos).
					Msg("failed to insert import item")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (r *importRecordRepository) GetImportRecord(ctx context.Context, uuid string) (*models.SyncImportRecord, error) {
	log := logger.FromContext(ctx)
	conn := r.conn(ctx)

	query, args, err := r.builder().
		Select("import_id", "uuid", "creator", "database_version", "timestamp", "retry_count", "state", "error_message").
		From("sync_import_record").
		Where(sq.Eq{"uuid": uuid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record models.SyncImportRecord
		state  string
	)
	err = conn.QueryRowContext(ctx, query, args...).Scan(
		&record.ImportID,
		&record.UUID,
		&record.Creator,
		&record.DatabaseVersion,
		&record.Timestamp,
		&record.RetryCount,
		&state,
		&record.ErrorMessage,
	)
	if err != nil {
		err = notFound(err, ErrImportRecordNotFound)
		if !errors.Is(err, ErrImportRecordNotFound) {
			log.Err(err).
				Str("func", "importRecordRepository.GetImportRecord").
				Str("record_uuid", uuid).
				Msg("failed to read import record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil, err
	}
	record.State = models.SyncRecordState(state)
	record.Timestamp = record.Timestamp.UTC()

	query, args, err = r.builder().
		Select("item_key", "state", "error_code", "error_message").
		From("sync_import_item").
		Where(sq.Eq{"import_id": record.ImportID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, itemState, code string
		var item models.SyncImportItem
		if err = rows.Scan(&key, &itemState, &code, &item.ErrorMessage); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Key = models.SyncItemKey(key)
		item.State = models.SyncItemState(itemState)
		item.ErrorCode = models.ItemErrorCode(code)
		record.Items = append(record.Items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return &record, nil
}

func (r *importRecordRepository) DeleteImportRecord(ctx context.Context, uuid string) error {
	query, args, err := r.builder().Delete("sync_import_record").Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "importRecordRepository.DeleteImportRecord").
			Str("record_uuid", uuid).
			Msg("failed to delete import record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImportRecordNotFound
	}
	return nil
}

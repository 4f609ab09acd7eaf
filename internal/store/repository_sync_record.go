package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// syncRecordRepository is the SQL implementation of [SyncRecordRepository].
// It works against sync_record, sync_item and sync_server_record and joins
// the transaction carried by the context, so a record is journaled
// atomically with the entity writes that produced it.
type syncRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncRecordRepository(db *DB, logger *logger.Logger) SyncRecordRepository {
	logger.Debug().Msg("creating sync record repository")
	return &syncRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSyncRecord inserts record, its items in order and its server
// records. The inserts share one transaction.
func (r *syncRecordRepository) CreateSyncRecord(ctx context.Context, record *models.SyncRecord) error {
	log := logger.FromContext(ctx)

	return r.InTx(ctx, func(ctx context.Context) error {
		conn := r.conn(ctx)

		query, args, err := r.builder().
			Insert("sync_record").
			Columns("uuid", "original_uuid", "creator", "database_version", "timestamp", "retry_count", "state", "contained_classes").
			Values(record.UUID, record.OriginalUUID, record.Creator, record.DatabaseVersion,
				record.Timestamp.UTC(), record.RetryCount, string(record.State), record.ContainedClasses.String()).
			Suffix("RETURNING record_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = conn.QueryRowContext(ctx, query, args...).Scan(&record.RecordID); err != nil {
			log.Err(err).
				Str("func", "syncRecordRepository.CreateSyncRecord").
				Str("record_uuid", record.UUID).
				Msg("failed to insert sync record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for pos, item := range record.Items {
			query, args, err = r.builder().
				Insert("sync_item").
				Columns("record_id", "position", "item_key", "state", "contained_type", "content").
				Values(record.RecordID, pos, string(item.Key), string(item.State), item.ContainedType, item.Content).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = conn.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "syncRecordRepository.CreateSyncRecord").
					Str("record_uuid", record.UUID).
					Int("position", pos).
					Msg("failed to insert sync item")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		for i := range record.ServerRecords {
			sr := &record.ServerRecords[i]
			sr.RecordID = record.RecordID
			query, args, err = r.builder().
				Insert("sync_server_record").
				Columns("record_id", "server_id", "state", "retry_count").
				Values(sr.RecordID, sr.ServerID, string(sr.State), sr.RetryCount).
				Suffix("RETURNING server_record_id").
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if err = conn.QueryRowContext(ctx, query, args...).Scan(&sr.ServerRecordID); err != nil {
				log.Err(err).
					Str("func", "syncRecordRepository.CreateSyncRecord").
					Str("record_uuid", record.UUID).
					Int64("server_id", sr.ServerID).
					Msg("failed to insert server record")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return nil
	})
}

func (r *syncRecordRepository) GetSyncRecord(ctx context.Context, uuid string) (*models.SyncRecord, error) {
	return r.getOne(ctx, "syncRecordRepository.GetSyncRecord", sq.Eq{"r.uuid": uuid}, false)
}

func (r *syncRecordRepository) GetSyncRecordByOriginalUUID(ctx context.Context, originalUUID string) (*models.SyncRecord, error) {
	return r.getOne(ctx, "syncRecordRepository.GetSyncRecordByOriginalUUID", sq.Eq{"r.original_uuid": originalUUID}, false)
}

// GetFirstSyncRecordInQueue returns the oldest record still waiting to be
// sent, whichever peer it is waiting for.
func (r *syncRecordRepository) GetFirstSyncRecordInQueue(ctx context.Context) (*models.SyncRecord, error) {
	where := sq.Eq{"r.state": stateStrings([]models.SyncRecordState{
		models.SyncRecordStateNew,
		models.SyncRecordStatePendingSend,
	})}
	return r.getOne(ctx, "syncRecordRepository.GetFirstSyncRecordInQueue", where, false)
}

func (r *syncRecordRepository) GetLatestRecord(ctx context.Context) (*models.SyncRecord, error) {
	return r.getOne(ctx, "syncRecordRepository.GetLatestRecord", nil, true)
}

func (r *syncRecordRepository) getOne(ctx context.Context, fn string, where sq.Sqlizer, newestFirst bool) (*models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncRecordQuery(r.builder(), where, newestFirst)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, err
	}

	records, err := r.query(ctx, fn, query, args)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrSyncRecordNotFound
	}
	return &records[0], nil
}

func (r *syncRecordRepository) GetSyncRecords(ctx context.Context, filter SyncRecordFilter) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncRecordsQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordRepository.GetSyncRecords").
			Int64("server_id", filter.ServerID).
			Msg("failed to create query")
		return nil, err
	}
	return r.query(ctx, "syncRecordRepository.GetSyncRecords", query, args)
}

func (r *syncRecordRepository) GetSyncRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSyncRecordsBetweenQuery(r.builder(), from.UTC(), to.UTC())
	if err != nil {
		log.Err(err).Str("func", "syncRecordRepository.GetSyncRecordsBetween").Msg("failed to create query")
		return nil, err
	}
	return r.query(ctx, "syncRecordRepository.GetSyncRecordsBetween", query, args)
}

// query runs a sync_record select and attaches items and server records.
func (r *syncRecordRepository) query(ctx context.Context, fn, query string, args []any) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)
	conn := r.conn(ctx)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for sync records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SyncRecord, 0, 50)
	for rows.Next() {
		var (
			rec     models.SyncRecord
			state   string
			classes string
		)
		scanErr := rows.Scan(
			&rec.RecordID,
			&rec.UUID,
			&rec.OriginalUUID,
			&rec.Creator,
			&rec.DatabaseVersion,
			&rec.Timestamp,
			&rec.RetryCount,
			&state,
			&classes,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan sync record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		rec.State = models.SyncRecordState(state)
		rec.ContainedClasses = models.ParseContainedClasses(classes)
		rec.Timestamp = rec.Timestamp.UTC()
		records = append(records, rec)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	rows.Close()

	if len(records) == 0 {
		return records, nil
	}
	if err = r.attachItems(ctx, records); err != nil {
		return nil, err
	}
	if err = r.attachServerRecords(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func recordIndex(records []models.SyncRecord) ([]int64, map[int64]int) {
	ids := make([]int64, len(records))
	index := make(map[int64]int, len(records))
	for i, rec := range records {
		ids[i] = rec.RecordID
		index[rec.RecordID] = i
	}
	return ids, index
}

func (r *syncRecordRepository) attachItems(ctx context.Context, records []models.SyncRecord) error {
	log := logger.FromContext(ctx)
	ids, index := recordIndex(records)

	query, args, err := buildGetItemsQuery(r.builder(), ids)
	if err != nil {
		return err
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncRecordRepository.attachItems").Msg("failed to execute query for sync items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recordID   int64
			key, state string
			item       models.SyncItem
		)
		if err = rows.Scan(&recordID, &key, &state, &item.ContainedType, &item.Content); err != nil {
			log.Err(err).Str("func", "syncRecordRepository.attachItems").Msg("failed to scan sync item row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Key = models.SyncItemKey(key)
		item.State = models.SyncItemState(state)
		rec := &records[index[recordID]]
		rec.Items = append(rec.Items, item)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *syncRecordRepository) attachServerRecords(ctx context.Context, records []models.SyncRecord) error {
	log := logger.FromContext(ctx)
	ids, index := recordIndex(records)

	query, args, err := buildGetServerRecordsQuery(r.builder(), ids)
	if err != nil {
		return err
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncRecordRepository.attachServerRecords").Msg("failed to execute query for server records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sr    models.SyncServerRecord
			state string
		)
		if err = rows.Scan(&sr.ServerRecordID, &sr.RecordID, &sr.ServerID, &state, &sr.RetryCount); err != nil {
			log.Err(err).Str("func", "syncRecordRepository.attachServerRecords").Msg("failed to scan server record row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		sr.State = models.SyncRecordState(state)
		rec := &records[index[sr.RecordID]]
		rec.ServerRecords = append(rec.ServerRecords, sr)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// UpdateSyncRecord writes the mutable delivery fields. Server records that
// have no id yet are inserted.
func (r *syncRecordRepository) UpdateSyncRecord(ctx context.Context, record *models.SyncRecord) error {
	log := logger.FromContext(ctx)

	return r.InTx(ctx, func(ctx context.Context) error {
		conn := r.conn(ctx)

		query, args, err := r.builder().
			Update("sync_record").
			Set("state", string(record.State)).
			Set("retry_count", record.RetryCount).
			Where(sq.Eq{"record_id": record.RecordID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "syncRecordRepository.UpdateSyncRecord").
				Str("record_uuid", record.UUID).
				Msg("failed to update sync record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrSyncRecordNotFound
		}

		for i := range record.ServerRecords {
			sr := &record.ServerRecords[i]
			if sr.ServerRecordID == 0 {
				query, args, err = r.builder().
					Insert("sync_server_record").
					Columns("record_id", "server_id", "state", "retry_count").
					Values(record.RecordID, sr.ServerID, string(sr.State), sr.RetryCount).
					Suffix("RETURNING server_record_id").
					ToSql()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				sr.RecordID = record.RecordID
				if err = conn.QueryRowContext(ctx, query, args...).Scan(&sr.ServerRecordID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
				continue
			}

			query, args, err = r.builder().
				Update("sync_server_record").
				Set("state", string(sr.State)).
				Set("retry_count", sr.RetryCount).
				Where(sq.Eq{"server_record_id": sr.ServerRecordID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = conn.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "syncRecordRepository.UpdateSyncRecord").
					Str("record_uuid", record.UUID).
					Int64("server_id", sr.ServerID).
					Msg("failed to update server record")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// DeleteSyncRecord removes the record. Items and server records go with it
// through ON DELETE CASCADE.
func (r *syncRecordRepository) DeleteSyncRecord(ctx context.Context, uuid string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Delete("sync_record").Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordRepository.DeleteSyncRecord").
			Str("record_uuid", uuid).
			Msg("failed to delete sync record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSyncRecordNotFound
	}
	return nil
}

func (r *syncRecordRepository) CountByState(ctx context.Context, serverID int64) (map[models.SyncRecordState]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStateQuery(r.builder(), serverID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncRecordRepository.CountByState").
			Int64("server_id", serverID).
			Msg("failed to execute count query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.SyncRecordState]int64)
	for rows.Next() {
		var (
			state string
			n     int64
		)
		if err = rows.Scan(&state, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[models.SyncRecordState(state)] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return counts, nil
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// entityRepository keeps every domain entity as one row of domain_entity
// holding its serialized field snapshot. An entity saved without uuid is
// stored with a NULL uuid.
type entityRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	logger.Debug().Msg("creating entity repository")
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entityRepository) InsertEntity(ctx context.Context, row *EntityRow) error {
	query, args, err := r.builder().
		Insert("domain_entity").
		Columns("entity_type", "uuid", "content").
		Values(row.Type, nullString(row.UUID), row.Content).
		Suffix("RETURNING entity_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&row.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.InsertEntity").
			Str("entity_type", row.Type).
			Str("uuid", row.UUID).
			Msg("failed to insert entity")
		if uniqueViolation(err) {
			return ErrEntityExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *entityRepository) UpdateEntity(ctx context.Context, row EntityRow) error {
	query, args, err := r.builder().
		Update("domain_entity").
		Set("uuid", nullString(row.UUID)).
		Set("content", row.Content).
		Where(sq.Eq{"entity_type": row.Type, "entity_id": row.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.UpdateEntity").
			Str("entity_type", row.Type).
			Int64("id", row.ID).
			Msg("failed to update entity")
		if uniqueViolation(err) {
			return ErrEntityExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEntityNotFound
	}
	return nil
}

func (r *entityRepository) DeleteEntity(ctx context.Context, entityType string, id int64) error {
	query, args, err := r.builder().
		Delete("domain_entity").
		Where(sq.Eq{"entity_type": entityType, "entity_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.DeleteEntity").
			Str("entity_type", entityType).
			Int64("id", id).
			Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEntityNotFound
	}
	return nil
}

func (r *entityRepository) GetEntityByUUID(ctx context.Context, entityType, uuid string) (EntityRow, error) {
	return r.getOne(ctx, "entityRepository.GetEntityByUUID", sq.Eq{"entity_type": entityType, "uuid": uuid})
}

func (r *entityRepository) GetEntityByID(ctx context.Context, entityType string, id int64) (EntityRow, error) {
	return r.getOne(ctx, "entityRepository.GetEntityByID", sq.Eq{"entity_type": entityType, "entity_id": id})
}

// FetchUUID is a projection read: the content column is not loaded.
func (r *entityRepository) FetchUUID(ctx context.Context, entityType string, id int64) (string, error) {
	query, args, err := r.builder().
		Select("uuid").
		From("domain_entity").
		Where(sq.Eq{"entity_type": entityType, "entity_id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var uuid sql.NullString
	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEntityNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.FetchUUID").
			Str("entity_type", entityType).
			Int64("id", id).
			Msg("failed to fetch entity uuid")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return uuid.String, nil
}

func (r *entityRepository) ListEntitiesWithoutUUID(ctx context.Context, entityType string) ([]EntityRow, error) {
	return r.list(ctx, "entityRepository.ListEntitiesWithoutUUID", sq.And{
		sq.Eq{"entity_type": entityType},
		sq.Eq{"uuid": nil},
	})
}

func (r *entityRepository) getOne(ctx context.Context, fn string, where sq.Sqlizer) (EntityRow, error) {
	rows, err := r.list(ctx, fn, where)
	if err != nil {
		return EntityRow{}, err
	}
	if len(rows) == 0 {
		return EntityRow{}, ErrEntityNotFound
	}
	return rows[0], nil
}

func (r *entityRepository) list(ctx context.Context, fn string, where sq.Sqlizer) ([]EntityRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("entity_id", "entity_type", "uuid", "content").
		From("domain_entity").
		Where(where).
		OrderBy("entity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make([]EntityRow, 0, 1)
	for rows.Next() {
		var (
			row  EntityRow
			uuid sql.NullString
		)
		if err = rows.Scan(&row.ID, &row.Type, &uuid, &row.Content); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		row.UUID = uuid.String
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

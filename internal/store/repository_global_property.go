package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type globalPropertyRepository struct {
	*DB
	logger *logger.Logger
}

func NewGlobalPropertyRepository(db *DB, logger *logger.Logger) GlobalPropertyRepository {
	logger.Debug().Msg("creating global property repository")
	return &globalPropertyRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *globalPropertyRepository) GetGlobalProperty(ctx context.Context, name string) (string, error) {
	query, args, err := buildGetGlobalPropertyQuery(r.builder(), name)
	if err != nil {
		return "", err
	}

	var value string
	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		err = notFound(err, ErrPropertyNotFound)
		if errors.Is(err, ErrPropertyNotFound) {
			return "", err
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "globalPropertyRepository.GetGlobalProperty").
			Str("property", name).
			Msg("failed to read global property")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

// SetGlobalProperty inserts or overwrites the property.
func (r *globalPropertyRepository) SetGlobalProperty(ctx context.Context, name, value string) error {
	query, args, err := buildSetGlobalPropertyQuery(r.builder(), name, value)
	if err != nil {
		return err
	}
	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "globalPropertyRepository.SetGlobalProperty").
			Str("property", name).
			Msg("failed to write global property")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *globalPropertyRepository) GetGlobalProperties(ctx context.Context) ([]models.GlobalProperty, error) {
	query, args, err := r.builder().Select("name", "value").From("global_property").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "globalPropertyRepository.GetGlobalProperties").
			Msg("failed to execute query for global properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	props := make([]models.GlobalProperty, 0, 8)
	for rows.Next() {
		var p models.GlobalProperty
		if err = rows.Scan(&p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		props = append(props, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return props, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type conceptWordRepository struct {
	*DB
	logger *logger.Logger
}

func NewConceptWordRepository(db *DB, logger *logger.Logger) ConceptWordRepository {
	return &conceptWordRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceConceptNameWords drops every index entry of one concept name and
// writes words in its place. No words leaves the name out of the index.
func (r *conceptWordRepository) ReplaceConceptNameWords(ctx context.Context, nameUUID string, words []models.ConceptWord) error {
	log := logger.FromContext(ctx).With().
		Str("func", "conceptWordRepository.ReplaceConceptNameWords").
		Str("concept_name_uuid", nameUUID).
		Logger()

	return r.InTx(ctx, func(ctx context.Context) error {
		conn := r.conn(ctx)

		query, args, err := buildDeleteConceptNameWordsQuery(r.builder(), nameUUID)
		if err != nil {
			return err
		}
		if _, err = conn.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Msg("failed to delete concept words")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if len(words) == 0 {
			return nil
		}

		query, args, err = buildInsertConceptWordsQuery(r.builder(), nameUUID, words)
		if err != nil {
			return err
		}
		if _, err = conn.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Int("words", len(words)).Msg("failed to insert concept words")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (r *conceptWordRepository) GetConceptWords(ctx context.Context, conceptUUID string) ([]models.ConceptWord, error) {
	query, args, err := buildGetConceptWordsQuery(r.builder(), conceptUUID)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	words := make([]models.ConceptWord, 0, 8)
	for rows.Next() {
		var w models.ConceptWord
		if err = rows.Scan(&w.ConceptUUID, &w.ConceptNameUUID, &w.Word, &w.Locale); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		words = append(words, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return words, nil
}

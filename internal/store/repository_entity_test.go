package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestEntityRepository_Lifecycle(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db, logger.Nop())
	ctx := context.Background()

	row := EntityRow{Type: "Patient", UUID: "p-1", Content: "<Patient/>"}
	require.NoError(t, repo.InsertEntity(ctx, &row))
	require.NotZero(t, row.ID)

	dup := EntityRow{Type: "Patient", UUID: "p-1", Content: "<Patient/>"}
	assert.ErrorIs(t, repo.InsertEntity(ctx, &dup), ErrEntityExists)

	// the same uuid under another type is a different entity
	other := EntityRow{Type: "Encounter", UUID: "p-1", Content: "<Encounter/>"}
	require.NoError(t, repo.InsertEntity(ctx, &other))

	uuid, err := repo.FetchUUID(ctx, "Patient", row.ID)
	require.NoError(t, err)
	assert.Equal(t, "p-1", uuid)

	row.Content = "<Patient><gender>F</gender></Patient>"
	require.NoError(t, repo.UpdateEntity(ctx, row))

	got, err := repo.GetEntityByUUID(ctx, "Patient", "p-1")
	require.NoError(t, err)
	assert.Equal(t, row, got)

	byID, err := repo.GetEntityByID(ctx, "Patient", row.ID)
	require.NoError(t, err)
	assert.Equal(t, row, byID)

	require.NoError(t, repo.DeleteEntity(ctx, "Patient", row.ID))
	_, err = repo.GetEntityByUUID(ctx, "Patient", "p-1")
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.ErrorIs(t, repo.UpdateEntity(ctx, row), ErrEntityNotFound)
}

func TestEntityRepository_WithoutUUID(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewEntityRepository(db, logger.Nop())
	ctx := context.Background()

	// NULL uuids never collide
	a := EntityRow{Type: "Obs", Content: "<Obs/>"}
	b := EntityRow{Type: "Obs", Content: "<Obs/>"}
	c := EntityRow{Type: "Obs", UUID: "o-3", Content: "<Obs/>"}
	for _, row := range []*EntityRow{&a, &b, &c} {
		require.NoError(t, repo.InsertEntity(ctx, row))
	}

	rows, err := repo.ListEntitiesWithoutUUID(ctx, "Obs")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[0].ID)
	assert.Equal(t, b.ID, rows[1].ID)
	assert.Empty(t, rows[0].UUID)

	uuid, err := repo.FetchUUID(ctx, "Obs", a.ID)
	require.NoError(t, err)
	assert.Empty(t, uuid)
}

func TestImportRecordRepository_Upsert(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewImportRecordRepository(db, logger.Nop())
	ctx := context.Background()

	record := &models.SyncImportRecord{
		UUID:      "r-1",
		Creator:   "server-b",
		Timestamp: at(1),
		State:     models.SyncRecordStateFailed,
		Items: []models.SyncImportItem{
			{Key: "p-1", State: models.SyncItemStateNew},
			{Key: "o-1", State: models.SyncItemStateNew, ErrorCode: models.ItemErrorMissing, ErrorMessage: "encounter e-1"},
		},
	}
	require.NoError(t, repo.SaveImportRecord(ctx, record))
	firstID := record.ImportID
	require.NotZero(t, firstID)

	record.State = models.SyncRecordStateCommitted
	record.RetryCount = 1
	record.Items = []models.SyncImportItem{{Key: "p-1", State: models.SyncItemStateNew}}
	require.NoError(t, repo.SaveImportRecord(ctx, record))
	assert.Equal(t, firstID, record.ImportID)

	got, err := repo.GetImportRecord(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncRecordStateCommitted, got.State)
	assert.Equal(t, 1, got.RetryCount)
	assert.Equal(t, []models.SyncImportItem{{Key: "p-1", State: models.SyncItemStateNew}}, got.Items)
	assert.False(t, got.HasErrors())

	require.NoError(t, repo.DeleteImportRecord(ctx, "r-1"))
	_, err = repo.GetImportRecord(ctx, "r-1")
	assert.ErrorIs(t, err, ErrImportRecordNotFound)
}

func TestConceptWordRepository_ReplaceByName(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewConceptWordRepository(db, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.ReplaceConceptNameWords(ctx, "n-1", []models.ConceptWord{
		{ConceptUUID: "c-1", Word: "WEIGHT", Locale: "en"},
		{ConceptUUID: "c-1", Word: "KG", Locale: "en"},
	}))
	require.NoError(t, repo.ReplaceConceptNameWords(ctx, "n-2", []models.ConceptWord{
		{ConceptUUID: "c-1", Word: "MASSE", Locale: "fr"},
	}))
	// renamed
	require.NoError(t, repo.ReplaceConceptNameWords(ctx, "n-1", []models.ConceptWord{
		{ConceptUUID: "c-1", Word: "POIDS", Locale: "fr"},
	}))

	words, err := repo.GetConceptWords(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, []models.ConceptWord{
		{ConceptUUID: "c-1", ConceptNameUUID: "n-2", Word: "MASSE", Locale: "fr"},
		{ConceptUUID: "c-1", ConceptNameUUID: "n-1", Word: "POIDS", Locale: "fr"},
	}, words)

	// deleted
	require.NoError(t, repo.ReplaceConceptNameWords(ctx, "n-2", nil))
	words, err = repo.GetConceptWords(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, []models.ConceptWord{{ConceptUUID: "c-1", ConceptNameUUID: "n-1", Word: "POIDS", Locale: "fr"}}, words)
}

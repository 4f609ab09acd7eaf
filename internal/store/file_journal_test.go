package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestJournalFileStorage_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")
	journal, err := NewJournalFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	tx := &models.SyncTransmission{
		UUID:           "tx-1",
		SyncSourceUUID: "server-a",
		Timestamp:      at(1),
		Records:        []models.SyncRecord{*sampleRecord("r-1", at(0), models.SyncRecordStateNew)},
	}
	require.NoError(t, journal.SaveTransmission(ctx, tx))

	data, err := os.ReadFile(filepath.Join(dir, "transmission_tx-1.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<?xml version="1.0"`)
	assert.Contains(t, string(data), `containedClasses="Patient,PersonName"`)

	resp := &models.SyncTransmissionResponse{
		UUID:      "tx-1",
		State:     models.TransmissionStateOK,
		Timestamp: at(2),
		ImportRecords: []models.SyncImportRecord{
			{UUID: "r-1", State: models.SyncRecordStateCommitted, Timestamp: at(2)},
		},
	}
	require.NoError(t, journal.SaveResponse(ctx, resp))

	loaded, err := journal.LoadResponse(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransmissionStateOK, loaded.State)
	require.Len(t, loaded.ImportRecords, 1)
	assert.Equal(t, models.SyncRecordStateCommitted, loaded.ImportRecords[0].State)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files are left behind")
}

func TestJournalFileStorage_LoadMissing(t *testing.T) {
	journal, err := NewJournalFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, err = journal.LoadResponse(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrJournalFileNotFound)
}

func TestJournalFileStorage_CanceledContext(t *testing.T) {
	journal, err := NewJournalFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, journal.SaveResponse(ctx, &models.SyncTransmissionResponse{UUID: "x"}), context.Canceled)
}

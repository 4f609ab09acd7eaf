package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ── sqlite round trips ───────────────────────────────────────────────────────

func TestSyncRecordRepository_CreateAndGet(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())
	ctx := context.Background()
	child := newRemoteServer(t, db, "child-1", models.RemoteServerTypeChild)

	record := sampleRecord("r-1", at(1), models.SyncRecordStateNew)
	record.ServerRecords = []models.SyncServerRecord{{ServerID: child.ServerID, State: models.SyncRecordStateNew}}
	require.NoError(t, repo.CreateSyncRecord(ctx, record))
	assert.NotZero(t, record.RecordID)
	assert.NotZero(t, record.ServerRecords[0].ServerRecordID)

	got, err := repo.GetSyncRecord(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, record.RecordID, got.RecordID)
	assert.Equal(t, "r-1", got.OriginalUUID)
	assert.Equal(t, "server-a", got.Creator)
	assert.True(t, record.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, models.ContainedClasses{"Patient", "PersonName"}, got.ContainedClasses)
	require.Len(t, got.Items, 2)
	assert.Equal(t, models.SyncItemKey("p-1"), got.Items[0].Key, "items keep their order")
	assert.Equal(t, "PersonName", got.Items[1].ContainedType)
	require.Len(t, got.ServerRecords, 1)
	assert.Equal(t, child.ServerID, got.ServerRecords[0].ServerID)

	byOrigin, err := repo.GetSyncRecordByOriginalUUID(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", byOrigin.UUID)

	_, err = repo.GetSyncRecord(ctx, "missing")
	assert.ErrorIs(t, err, ErrSyncRecordNotFound)
}

func TestSyncRecordRepository_QueueOrder(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateSyncRecord(ctx, sampleRecord("late", at(5), models.SyncRecordStateNew)))
	require.NoError(t, repo.CreateSyncRecord(ctx, sampleRecord("early", at(1), models.SyncRecordStateSendFailed)))
	require.NoError(t, repo.CreateSyncRecord(ctx, sampleRecord("done", at(0), models.SyncRecordStateCommitted)))
	// same timestamp as "late", inserted after it
	require.NoError(t, repo.CreateSyncRecord(ctx, sampleRecord("tie", at(5), models.SyncRecordStateNew)))

	records, err := repo.GetSyncRecords(ctx, SyncRecordFilter{States: models.SyncToParentStates})
	require.NoError(t, err)
	uuids := make([]string, 0, len(records))
	for _, r := range records {
		uuids = append(uuids, r.UUID)
	}
	assert.Equal(t, []string{"early", "late", "tie"}, uuids)

	limited, err := repo.GetSyncRecords(ctx, SyncRecordFilter{States: models.SyncToParentStates, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	first, err := repo.GetFirstSyncRecordInQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "late", first.UUID, "only NEW and PENDING_SEND count as queued")

	latest, err := repo.GetLatestRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tie", latest.UUID)

	between, err := repo.GetSyncRecordsBetween(ctx, at(1), at(5))
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, "early", between[0].UUID)
}

func TestSyncRecordRepository_ChildQueue(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())
	ctx := context.Background()
	c1 := newRemoteServer(t, db, "c1", models.RemoteServerTypeChild)
	c2 := newRemoteServer(t, db, "c2", models.RemoteServerTypeChild)

	r1 := sampleRecord("r-1", at(1), models.SyncRecordStateNew)
	r1.ServerRecords = []models.SyncServerRecord{
		{ServerID: c1.ServerID, State: models.SyncRecordStateNew},
		{ServerID: c2.ServerID, State: models.SyncRecordStateCommitted},
	}
	require.NoError(t, repo.CreateSyncRecord(ctx, r1))

	forC1, err := repo.GetSyncRecords(ctx, SyncRecordFilter{States: models.SyncToParentStates, ServerID: c1.ServerID})
	require.NoError(t, err)
	require.Len(t, forC1, 1)
	assert.Len(t, forC1[0].ServerRecords, 2, "all server records are attached")

	forC2, err := repo.GetSyncRecords(ctx, SyncRecordFilter{States: models.SyncToParentStates, ServerID: c2.ServerID})
	require.NoError(t, err)
	assert.Empty(t, forC2)

	counts, err := repo.CountByState(ctx, c2.ServerID)
	require.NoError(t, err)
	assert.Equal(t, map[models.SyncRecordState]int64{models.SyncRecordStateCommitted: 1}, counts)
}

func TestSyncRecordRepository_UpdateAndDelete(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())
	ctx := context.Background()
	c1 := newRemoteServer(t, db, "c1", models.RemoteServerTypeChild)
	c2 := newRemoteServer(t, db, "c2", models.RemoteServerTypeChild)

	record := sampleRecord("r-1", at(1), models.SyncRecordStateNew)
	record.ServerRecords = []models.SyncServerRecord{{ServerID: c1.ServerID, State: models.SyncRecordStateNew}}
	require.NoError(t, repo.CreateSyncRecord(ctx, record))

	record.State = models.SyncRecordStateSendFailed
	record.RetryCount = 2
	record.ServerRecords[0].State = models.SyncRecordStateSent
	record.ServerRecords = append(record.ServerRecords, models.SyncServerRecord{ServerID: c2.ServerID, State: models.SyncRecordStateNew})
	require.NoError(t, repo.UpdateSyncRecord(ctx, record))
	assert.NotZero(t, record.ServerRecords[1].ServerRecordID)

	got, err := repo.GetSyncRecord(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, models.SyncRecordStateSendFailed, got.State)
	assert.Equal(t, 2, got.RetryCount)
	assert.Equal(t, models.SyncRecordStateSent, got.ServerRecord(c1.ServerID).State)
	assert.Equal(t, models.SyncRecordStateNew, got.ServerRecord(c2.ServerID).State)

	counts, err := repo.CountByState(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.SyncRecordStateSendFailed])

	require.NoError(t, repo.DeleteSyncRecord(ctx, "r-1"))
	assert.ErrorIs(t, repo.DeleteSyncRecord(ctx, "r-1"), ErrSyncRecordNotFound)

	missing := sampleRecord("ghost", at(1), models.SyncRecordStateNew)
	missing.RecordID = 999
	assert.ErrorIs(t, repo.UpdateSyncRecord(ctx, missing), ErrSyncRecordNotFound)
}

func TestSyncRecordRepository_JoinsContextTransaction(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())
	ctx := context.Background()

	rollback := errors.New("rollback")
	err := db.InTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.CreateSyncRecord(ctx, sampleRecord("r-1", at(1), models.SyncRecordStateNew)))
		_, err := repo.GetSyncRecord(ctx, "r-1")
		require.NoError(t, err, "visible inside the transaction")
		return rollback
	})
	require.ErrorIs(t, err, rollback)

	_, err = repo.GetSyncRecord(ctx, "r-1")
	assert.ErrorIs(t, err, ErrSyncRecordNotFound)
}

// ── sqlmock error paths ──────────────────────────────────────────────────────

func TestSyncRecordRepository_CreateItemFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sync_record").
		WillReturnRows(sqlmock.NewRows([]string{"record_id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO sync_item").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.CreateSyncRecord(context.Background(), sampleRecord("r-1", at(1), models.SyncRecordStateNew))
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncRecordRepository_CreateRetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())

	record := &models.SyncRecord{UUID: "r-1", OriginalUUID: "r-1", Timestamp: at(1), State: models.SyncRecordStateNew}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sync_record").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sync_record").
		WillReturnRows(sqlmock.NewRows([]string{"record_id"}).AddRow(3))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateSyncRecord(context.Background(), record))
	assert.Equal(t, int64(3), record.RecordID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncRecordRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM sync_record r").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetSyncRecords(context.Background(), SyncRecordFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncRecordRepository_UpdateNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncRecordRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sync_record").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateSyncRecord(context.Background(), &models.SyncRecord{RecordID: 1})
	assert.ErrorIs(t, err, ErrSyncRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

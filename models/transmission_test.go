package models_test

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var captured = time.Date(2026, 3, 1, 9, 59, 0, 0, time.UTC)

func marshalEnvelope(t *testing.T, v any) []byte {
	t.Helper()
	out, err := xml.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return append(out, '\n')
}

// The envelope layout is shared with every peer; a change here breaks
// interoperability with servers running an older build.
//
// To regenerate golden files, run:
//
//	go test ./models -update
func TestSyncTransmission_Golden(t *testing.T) {
	env := models.SyncTransmission{
		UUID:           "t-1",
		SyncSourceUUID: "child-uuid",
		SyncTargetUUID: "parent-uuid",
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Records: []models.SyncRecord{{
			RecordID:         17,
			UUID:             "r-1",
			OriginalUUID:     "r-1",
			Creator:          "admin",
			DatabaseVersion:  "1.9.4",
			Timestamp:        captured,
			State:            models.SyncRecordStateNew,
			ContainedClasses: models.ContainedClasses{"Patient", "PersonName"},
			Items: []models.SyncItem{{
				Key:           "abc-123",
				State:         models.SyncItemStateNew,
				ContainedType: "Patient",
				Content:       "gender=F;birthdate=1990-04-02",
			}},
			ServerRecords: []models.SyncServerRecord{{ServerID: 3, State: models.SyncRecordStateSent}},
		}},
	}

	got := marshalEnvelope(t, env)
	g := goldie.New(t)
	g.Assert(t, "transmission", got)

	// a peer decodes what we encode
	var decoded models.SyncTransmission
	require.NoError(t, xml.Unmarshal(got, &decoded))
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, models.ContainedClasses{"Patient", "PersonName"}, decoded.Records[0].ContainedClasses)
	assert.True(t, captured.Equal(decoded.Records[0].Timestamp))
	assert.Zero(t, decoded.Records[0].RecordID)
	assert.Empty(t, decoded.Records[0].ServerRecords)
	assert.Equal(t, got, marshalEnvelope(t, decoded))
}

func TestSyncTransmissionResponse_Golden(t *testing.T) {
	response := models.SyncTransmissionResponse{
		UUID:           "t-1",
		SyncSourceUUID: "parent-uuid",
		SyncTargetUUID: "child-uuid",
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC),
		State:          models.TransmissionStateOK,
		ImportRecords: []models.SyncImportRecord{
			{
				ImportID:        9,
				UUID:            "r-1",
				Creator:         "admin",
				DatabaseVersion: "1.9.4",
				Timestamp:       captured,
				State:           models.SyncRecordStateCommitted,
				Items:           []models.SyncImportItem{{Key: "abc-123", State: models.SyncItemStateNew}},
			},
			{
				UUID:            "r-2",
				Creator:         "admin",
				DatabaseVersion: "1.9.4",
				Timestamp:       captured.Add(30 * time.Second),
				RetryCount:      1,
				State:           models.SyncRecordStateFailed,
				ErrorMessage:    "missing owner",
				Items: []models.SyncImportItem{{
					Key:          "def-456",
					State:        models.SyncItemStateUpdated,
					ErrorCode:    models.ItemErrorMissing,
					ErrorMessage: "no Person with uuid p-9",
				}},
			},
		},
	}

	got := marshalEnvelope(t, response)
	g := goldie.New(t)
	g.Assert(t, "transmission_response", got)

	var decoded models.SyncTransmissionResponse
	require.NoError(t, xml.Unmarshal(got, &decoded))
	require.Len(t, decoded.ImportRecords, 2)
	assert.False(t, decoded.ImportRecords[0].HasErrors())
	assert.True(t, decoded.ImportRecords[1].HasErrors())
	assert.Equal(t, "no Person with uuid p-9", decoded.ImportRecords[1].Items[0].ErrorMessage)
}

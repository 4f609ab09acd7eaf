// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validParent() models.RemoteServer {
	return models.RemoteServer{
		UUID:     "parent-uuid",
		Nickname: "hub",
		Type:     models.RemoteServerTypeParent,
		Address:  "https://hub.example.org/sync",
	}
}

func validChild() models.RemoteServer {
	return models.RemoteServer{
		UUID:          "child-uuid",
		Nickname:      "clinic",
		Type:          models.RemoteServerTypeChild,
		ChildUsername: "clinic-1",
	}
}

func validEnvelope() models.SyncTransmission {
	return models.SyncTransmission{
		UUID:           "tx-1",
		SyncSourceUUID: "child-uuid",
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Records: []models.SyncRecord{
			{
				UUID:         "r-1",
				OriginalUUID: "r-1",
				Items: []models.SyncItem{
					{Key: "p-1", State: models.SyncItemStateNew, ContainedType: "Patient", Content: "<Patient/>"},
				},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// RemoteServerValidator
// ---------------------------------------------------------------------------

func TestRemoteServerValidator_Valid(t *testing.T) {
	v := NewRemoteServerValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validParent()))
	child := validChild()
	require.NoError(t, v.Validate(ctx, &child))
}

func TestRemoteServerValidator_Errors(t *testing.T) {
	v := NewRemoteServerValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.RemoteServer)
		want   error
	}{
		{"empty uuid", func(s *models.RemoteServer) { s.UUID = " " }, ErrInvalidUUID},
		{"empty nickname", func(s *models.RemoteServer) { s.Nickname = "" }, ErrInvalidNickname},
		{"bad type", func(s *models.RemoteServer) { s.Type = "SIBLING" }, ErrInvalidServerType},
		{"parent without address", func(s *models.RemoteServer) { s.Address = "" }, ErrInvalidAddress},
		{"address without scheme", func(s *models.RemoteServer) { s.Address = "hub.example.org" }, ErrInvalidAddress},
		{"class with separator", func(s *models.RemoteServer) { s.ClassesSent = models.ContainedClasses{"Patient|x"} }, ErrInvalidClasses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := validParent()
			tt.mutate(&server)
			assert.ErrorIs(t, v.Validate(ctx, server), tt.want)
		})
	}
}

func TestRemoteServerValidator_ChildNeedsUsername(t *testing.T) {
	v := NewRemoteServerValidator()
	child := validChild()
	child.ChildUsername = ""

	assert.ErrorIs(t, v.Validate(context.Background(), child), ErrInvalidChildUsername)
}

func TestRemoteServerValidator_FieldScoping(t *testing.T) {
	v := NewRemoteServerValidator()
	server := validParent()
	server.Nickname = ""

	// only the address is checked
	require.NoError(t, v.Validate(context.Background(), server, FieldAddress))
	assert.ErrorIs(t, v.Validate(context.Background(), server, "nope"), ErrUnknownField)
}

func TestRemoteServerValidator_UnsupportedType(t *testing.T) {
	v := NewRemoteServerValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "server"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.RemoteServer)(nil)), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TransmissionValidator
// ---------------------------------------------------------------------------

func TestTransmissionValidator_Valid(t *testing.T) {
	v := NewTransmissionValidator()
	env := validEnvelope()

	require.NoError(t, v.Validate(context.Background(), env))
	require.NoError(t, v.Validate(context.Background(), &env))
}

func TestTransmissionValidator_EmptyBatchIsValid(t *testing.T) {
	v := NewTransmissionValidator()
	env := validEnvelope()
	env.Records = nil

	require.NoError(t, v.Validate(context.Background(), env))
}

func TestTransmissionValidator_Errors(t *testing.T) {
	v := NewTransmissionValidator()

	tests := []struct {
		name   string
		mutate func(*models.SyncTransmission)
		want   error
	}{
		{"no uuid", func(e *models.SyncTransmission) { e.UUID = "" }, ErrInvalidUUID},
		{"no source", func(e *models.SyncTransmission) { e.SyncSourceUUID = "" }, ErrInvalidSource},
		{"zero timestamp", func(e *models.SyncTransmission) { e.Timestamp = time.Time{} }, ErrInvalidTimestamp},
		{"record without original uuid", func(e *models.SyncTransmission) { e.Records[0].OriginalUUID = "" }, ErrInvalidRecord},
		{"item without key", func(e *models.SyncTransmission) { e.Records[0].Items[0].Key = "" }, ErrInvalidItem},
		{"item with unknown state", func(e *models.SyncTransmission) { e.Records[0].Items[0].State = "MOVED" }, ErrInvalidItemState},
		{"duplicate record", func(e *models.SyncTransmission) { e.Records = append(e.Records, e.Records[0]) }, ErrDuplicateRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnvelope()
			tt.mutate(&env)
			assert.ErrorIs(t, v.Validate(context.Background(), env), tt.want)
		})
	}
}

func TestTransmissionValidator_Record(t *testing.T) {
	v := NewTransmissionValidator()
	record := validEnvelope().Records[0]

	require.NoError(t, v.Validate(context.Background(), &record))
	record.UUID = ""
	assert.ErrorIs(t, v.Validate(context.Background(), record), ErrInvalidRecord)
}

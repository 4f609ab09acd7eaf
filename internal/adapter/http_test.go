// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	testHashKey    = "testhashkey"
	testPeerUUID   = "peer-uuid"
	testSourceUUID = "source-uuid"
)

type staticCompression bool

func (c staticCompression) CompressionEnabled(context.Context) bool { return bool(c) }

// newTestTransport создаёт httpTransport с заданным таймаутом
func newTestTransport(t *testing.T, timeout time.Duration, compress bool) *httpTransport {
	t.Helper()
	tr := NewHTTPTransport(
		config.Adapter{RequestTimeout: timeout},
		config.App{HashKey: testHashKey},
		staticCompression(compress),
		logger.Nop(),
	)
	return tr.(*httpTransport)
}

func testServer(address string) *models.RemoteServer {
	return &models.RemoteServer{
		ServerID: 1,
		UUID:     testPeerUUID,
		Type:     models.RemoteServerTypeParent,
		Address:  address,
		Username: "child-a",
		Password: "secret",
	}
}

func testEnvelope() *models.SyncTransmission {
	return &models.SyncTransmission{
		UUID:           "tx-1",
		SyncSourceUUID: testSourceUUID,
		SyncTargetUUID: testPeerUUID,
		Timestamp:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Records: []models.SyncRecord{{
			UUID:             "rec-1",
			OriginalUUID:     "rec-1",
			State:            models.SyncRecordStatePendingSend,
			ContainedClasses: models.ContainedClasses{"Patient"},
			Items: []models.SyncItem{{
				Key:           "patient-1",
				State:         models.SyncItemStateNew,
				ContainedType: "Patient",
				Content:       `<Patient><gender type="string">F</gender></Patient>`,
			}},
		}},
	}
}

// peerHandler mimics the login and ingest endpoints of a peer.
type peerHandler struct {
	logins  atomic.Int32
	ingests atomic.Int32

	// rejectFirstIngest answers the first ingest call with 401.
	rejectFirstIngest bool
	source            string
	// attach is returned as the queued records of the caller.
	attach *models.SyncTransmission

	received models.SyncTransmission
	hash     string
	encoding string
	traceIDs []string
}

func (p *peerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.traceIDs = append(p.traceIDs, r.Header.Get(TraceIDHeader))
	switch r.URL.Path {
	case LoginPath:
		p.logins.Add(1)
		var creds models.PeerCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Authorization", "Bearer token-"+creds.Username)
		w.WriteHeader(http.StatusOK)
	case IngestPath:
		n := p.ingests.Add(1)
		if p.rejectFirstIngest && n == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer token-child-a" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		p.hash = r.Header.Get(HashHeader)
		p.encoding = r.Header.Get("Content-Encoding")
		var body io.Reader = r.Body
		if p.encoding == "gzip" {
			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			body = zr
		}
		raw, _ := io.ReadAll(body)
		if err := xml.Unmarshal(raw, &p.received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if p.hash != utils.HashString(string(raw), testHashKey) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		source := p.source
		if source == "" {
			source = testPeerUUID
		}
		resp := models.SyncTransmissionResponse{
			UUID:           p.received.UUID,
			SyncSourceUUID: source,
			SyncTargetUUID: p.received.SyncSourceUUID,
			State:          models.TransmissionStateOK,
			Transmission:   p.attach,
		}
		for _, rec := range p.received.Records {
			resp.ImportRecords = append(resp.ImportRecords, models.SyncImportRecord{
				UUID:  rec.OriginalUUID,
				State: models.SyncRecordStateCommitted,
			})
		}
		out, _ := xml.Marshal(resp)
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(out)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestSend_Success(t *testing.T) {
	peer := &peerHandler{}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	resp, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.NoError(t, err)
	require.Len(t, resp.ImportRecords, 1)
	assert.Equal(t, "rec-1", resp.ImportRecords[0].UUID)
	assert.Equal(t, models.SyncRecordStateCommitted, resp.ImportRecords[0].State)
	assert.Equal(t, testPeerUUID, resp.SyncSourceUUID)

	assert.Empty(t, peer.encoding)
	assert.NotEmpty(t, peer.hash)
	require.Len(t, peer.received.Records, 1)
	assert.Equal(t, "patient-1", string(peer.received.Records[0].Items[0].Key))
	assert.Equal(t, `<Patient><gender type="string">F</gender></Patient>`, peer.received.Records[0].Items[0].Content)
}

func TestSend_QueuedRecordsAndReceipts(t *testing.T) {
	queued := testEnvelope()
	queued.UUID = "tx-parent"
	queued.SyncSourceUUID, queued.SyncTargetUUID = testPeerUUID, testSourceUUID
	peer := &peerHandler{attach: queued}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	poll := testEnvelope()
	poll.Records = nil
	resp, err := tr.Send(context.Background(), testServer(srv.URL), poll)
	require.NoError(t, err)
	require.NotNil(t, resp.Transmission)
	assert.Equal(t, "tx-parent", resp.Transmission.UUID)
	require.Len(t, resp.Transmission.Records, 1)
	assert.Equal(t, "patient-1", string(resp.Transmission.Records[0].Items[0].Key))

	ack := testEnvelope()
	ack.UUID = "tx-ack"
	ack.Records = nil
	ack.ImportRecords = []models.SyncImportRecord{{UUID: "rec-1", State: models.SyncRecordStateCommitted}}
	_, err = tr.Send(context.Background(), testServer(srv.URL), ack)
	require.NoError(t, err)
	require.Len(t, peer.received.ImportRecords, 1)
	assert.Equal(t, "rec-1", peer.received.ImportRecords[0].UUID)
	assert.Empty(t, peer.received.Records)
}

func TestSend_ForwardsTraceID(t *testing.T) {
	peer := &peerHandler{}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)

	ctx := utils.WithTraceID(context.Background(), "run-42")
	_, err := tr.Send(ctx, testServer(srv.URL), testEnvelope())
	require.NoError(t, err)
	// login and ingest
	assert.Equal(t, []string{"run-42", "run-42"}, peer.traceIDs)

	_, err = tr.Send(context.Background(), testServer(srv.URL), testEnvelope())
	require.NoError(t, err)
	assert.Equal(t, "", peer.traceIDs[len(peer.traceIDs)-1])
}

func TestSend_ReusesToken(t *testing.T) {
	peer := &peerHandler{}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	for range 3 {
		_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), peer.logins.Load())
	assert.Equal(t, int32(3), peer.ingests.Load())
}

func TestSend_Compressed(t *testing.T) {
	peer := &peerHandler{}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, true)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.NoError(t, err)
	assert.Equal(t, "gzip", peer.encoding)
	assert.Equal(t, "tx-1", peer.received.UUID)
}

func TestSend_RetriesAfterTokenRejected(t *testing.T) {
	peer := &peerHandler{rejectFirstIngest: true}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.NoError(t, err)
	assert.Equal(t, int32(2), peer.logins.Load())
	assert.Equal(t, int32(2), peer.ingests.Load())
}

func TestSend_AuthFailed(t *testing.T) {
	peer := &peerHandler{}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	server := testServer(srv.URL)
	server.Password = "wrong"

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), server, testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, models.TransmissionStateAuthFailed, StateOf(err))
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTransport(t, 50*time.Millisecond, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.Equal(t, models.TransmissionStateNoResponse, StateOf(err))
}

func TestSend_NoConnection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(address), testEnvelope())

	require.Error(t, err)
	assert.Equal(t, models.TransmissionStateNoConnection, StateOf(err))
}

func TestSend_NoAddress(t *testing.T) {
	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(""), testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Equal(t, models.TransmissionStateInvalidServer, StateOf(err))
}

func TestSend_ResponseNotUnderstood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == LoginPath {
			w.Header().Set("Authorization", "Bearer t")
			return
		}
		_, _ = w.Write([]byte("definitely not xml"))
	}))
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, models.TransmissionStateResponseNotUnderstood, StateOf(err))
}

func TestSend_WrongPeer(t *testing.T) {
	peer := &peerHandler{source: "somebody-else"}
	srv := httptest.NewServer(peer)
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPeer)
	assert.Equal(t, models.TransmissionStateInvalidServer, StateOf(err))
}

func TestSend_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == LoginPath {
			w.Header().Set("Authorization", "Bearer t")
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.Equal(t, models.TransmissionStateSendFailed, StateOf(err))
}

func TestSend_DisabledByPeer(t *testing.T) {
	var ingests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == LoginPath {
			w.Header().Set("Authorization", "Bearer t")
			return
		}
		ingests.Add(1)
		http.Error(w, app.MsgServerDisabled, http.StatusForbidden)
	}))
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDisabledByPeer)
	assert.Equal(t, models.TransmissionStateAuthFailed, StateOf(err))
	// logging in again cannot help
	assert.Equal(t, int32(1), ingests.Load())
}

func TestSend_PeerSyncOff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == LoginPath {
			w.Header().Set("Authorization", "Bearer t")
			return
		}
		http.Error(w, app.MsgSyncDisabled, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tr := newTestTransport(t, time.Second, false)
	_, err := tr.Send(context.Background(), testServer(srv.URL), testEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPeerSyncOff)
	assert.Equal(t, models.TransmissionStateSendFailed, StateOf(err))
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestStateOf(t *testing.T) {
	assert.Equal(t, models.TransmissionStateOK, StateOf(nil))
	assert.Equal(t, models.TransmissionStateSendFailed, StateOf(io.EOF))
	assert.Equal(t, models.TransmissionStateAuthFailed,
		StateOf(fail(models.TransmissionStateAuthFailed, ErrUnauthorized)))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://hub.example.org/", want: "https://hub.example.org"},
		{in: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

const testHashKey = "shared-secret"

func newHashingHandler(key string) *Handler {
	return NewHandler(&service.Services{}, config.App{HashKey: key}, logger.Nop())
}

// echoBody records what the next handler reads from the body.
func echoBody(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*got = string(b)
		w.WriteHeader(http.StatusOK)
	})
}

func TestCheckHash_TableTest(t *testing.T) {
	const body = envelopeXML

	tests := []struct {
		name       string
		key        string
		hash       string
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "valid hash",
			key:        testHashKey,
			hash:       utils.HashString(body, testHashKey),
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "hash made with another key",
			key:        testHashKey,
			hash:       utils.HashString(body, "other-secret"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing hash header",
			key:        testHashKey,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no key configured skips the check",
			hash:       "anything",
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHashingHandler(tt.key)

			var got string
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				echoBody(&got).ServeHTTP(w, r)
			})

			req := httptest.NewRequest(http.MethodPost, adapter.IngestPath, strings.NewReader(body))
			if tt.hash != "" {
				req.Header.Set(adapter.HashHeader, tt.hash)
			}
			rec := httptest.NewRecorder()
			h.checkHash(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				// body is restored for the next handler
				assert.Equal(t, body, got)
			}
		})
	}
}

func TestCheckHash_TamperedBody(t *testing.T) {
	h := newHashingHandler(testHashKey)

	hash := utils.HashString(envelopeXML, testHashKey)
	tampered := strings.Replace(envelopeXML, "NEW", "SENT", 1)

	req := httptest.NewRequest(http.MethodPost, adapter.IngestPath, strings.NewReader(tampered))
	req.Header.Set(adapter.HashHeader, hash)
	rec := httptest.NewRecorder()

	var got string
	h.checkHash(echoBody(&got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Integrity check failed")
	assert.Empty(t, got)
}

// The digest covers the uncompressed envelope, so it has to match after
// withGZip has unwrapped the body.
func TestCheckHash_AfterGZip(t *testing.T) {
	h := newHashingHandler(testHashKey)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(envelopeXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, adapter.IngestPath, &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set(adapter.HashHeader, utils.HashString(envelopeXML, testHashKey))
	rec := httptest.NewRecorder()

	var got string
	withGZip(h.checkHash(echoBody(&got))).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, envelopeXML, got)
}

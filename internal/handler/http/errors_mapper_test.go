package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"disabled peer", fmt.Errorf("ingest from c1: %w", service.ErrServerDisabled), http.StatusForbidden},
		{"sync off", service.ErrSyncDisabled, http.StatusServiceUnavailable},
		{"bad token", service.ErrTokenIsExpired, http.StatusUnauthorized},
		{"bad envelope", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"no such peer", store.ErrRemoteServerNotFound, http.StatusNotFound},
		{"storage failure", fmt.Errorf("%w: connection reset", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			name: "first listed wins when both are wrapped",
			err:  errors.Join(service.ErrInvalidDataProvided, service.ErrServerDisabled),
			want: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

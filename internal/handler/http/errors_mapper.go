package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// errorStatuses is checked in order; the first match wins, so more specific
// errors must come before the ones they may wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrServerDisabled, http.StatusForbidden},
	{service.ErrSyncDisabled, http.StatusServiceUnavailable},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrUnknownSender, http.StatusUnauthorized},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{store.ErrRemoteServerNotFound, http.StatusNotFound},
	{store.ErrSyncRecordNotFound, http.StatusNotFound},
	{store.ErrImportRecordNotFound, http.StatusNotFound},
}

// statusFromError maps a service or store error to a response status.
// Anything unrecognised, storage failures included, is a 500.
func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// maxLoginBody is far above any username/password pair.
const maxLoginBody = 64 << 10

// login exchanges the credentials of a child server for a session token
// returned in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.PeerCredentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody)).Decode(&creds); err != nil {
		log.Err(err).Msg("login body is not valid JSON")
		http.Error(w, app.MsgInvalidJSONPassed, http.StatusBadRequest)
		return
	}

	server, err := h.services.RemoteServerService.Authenticate(ctx, creds)
	if err != nil {
		status := statusFromError(err)
		event := log.Warn()
		if status == http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Str("username", creds.Username).Int("status", status).Msg("peer login refused")
		http.Error(w, loginFailureMessage(err, status), status)
		return
	}

	token, err := h.services.RemoteServerService.CreateToken(ctx, server)
	if err != nil {
		log.Err(err).Str("server_uuid", server.UUID).Msg("session token was not issued")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", server.ServerID).Str("server_uuid", server.UUID).Time("expires_at", token.ExpiresAt).Msg("peer logged in")

	w.Header().Set("Authorization", "Bearer "+token.String())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
}

// loginFailureMessage does not tell an unknown username from a wrong
// password.
func loginFailureMessage(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrServerDisabled):
		return app.MsgServerDisabled
	case errors.Is(err, service.ErrUnknownSender), errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidUsernamePassword
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	default:
		return http.StatusText(status)
	}
}

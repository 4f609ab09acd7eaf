package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// bearerChallenge is sent with every 401 so peers know to log in again.
const bearerChallenge = `Bearer realm="sync"`

// auth admits requests carrying a session token issued by login. The peer
// the token names is put into the context under [utils.RemoteServerCtxKey]
// and its id under [utils.ServerIDCtxKey].
//
// A peer disabled after its token was issued gets 403, every other
// rejection is a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, log, ErrNoAuthorization, ErrNoAuthorization.Error())
			return
		}

		token, err := utils.ParseBearerToken(header)
		if err != nil {
			unauthorized(w, log, err, ErrMalformedAuthorization.Error())
			return
		}

		ctx := r.Context()
		server, err := h.services.RemoteServerService.ParseToken(ctx, token)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrServerDisabled):
			log.Warn().Err(err).Msg("disabled peer presented a session token")
			http.Error(w, app.MsgServerDisabled, http.StatusForbidden)
			return
		case errors.Is(err, service.ErrTokenIsExpired):
			unauthorized(w, log, err, app.MsgTokenIsExpired)
			return
		default:
			unauthorized(w, log, err, http.StatusText(http.StatusUnauthorized))
			return
		}

		ctx = context.WithValue(ctx, utils.RemoteServerCtxKey, server)
		ctx = context.WithValue(ctx, utils.ServerIDCtxKey, server.ServerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	log.Debug().Err(err).Msg("request refused by auth")
	w.Header().Set("WWW-Authenticate", bearerChallenge)
	http.Error(w, msg, http.StatusUnauthorized)
}

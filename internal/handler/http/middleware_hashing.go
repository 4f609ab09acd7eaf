package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/app"
)

// checkHash verifies the HashSHA256 header against the HMAC of the request
// body. It runs after withGZip, so the digest covers the uncompressed
// envelope. Without a configured key every request passes.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.signer == nil {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkHash").Msg("checking hash begins")

		hashFromRequest := r.Header.Get(adapter.HashHeader)
		if hashFromRequest == "" {
			h.logger.Error().Str("func", "*Handler.checkHash").Msg("no hash was given")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, hashFromRequest) {
			h.logger.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Int("body_size", len(body)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}

// getServerInfo reports identity and the current sync status. The status
// can be flipped at runtime, so responses are not cacheable.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, h.services.AppInfoService.GetServerInfo(r.Context()), http.StatusOK); err != nil {
		h.logger.Err(err).Msg("writing server info")
	}
}

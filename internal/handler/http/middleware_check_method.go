package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// notFoundOnWrongMethod is registered as the router's MethodNotAllowed
// handler. A known sync path called with the wrong method is answered like
// an unknown path, so the API cannot be mapped by probing methods.
func notFoundOnWrongMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not registered for path")
	http.NotFound(w, r)
}

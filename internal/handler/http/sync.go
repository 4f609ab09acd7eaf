package http

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ingest applies an envelope sent by the authenticated peer and answers
// with one receipt per record.
func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sender, found := utils.GetRemoteServerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.ingest").Msg("no authenticated server was given")
		http.Error(w, app.MsgNoAuthenticatedServer, http.StatusUnauthorized)
		return
	}

	var env models.SyncTransmission
	if err := xml.NewDecoder(r.Body).Decode(&env); err != nil {
		log.Err(err).Str("func", "*Handler.ingest").Msg("Invalid XML was passed")
		http.Error(w, app.MsgInvalidXMLPassed, http.StatusBadRequest)
		return
	}

	log.Debug().
		Str("func", "*Handler.ingest").
		Str("transmission_uuid", env.UUID).
		Str("server_uuid", sender.UUID).
		Int("records", len(env.Records)).
		Int("receipts", len(env.ImportRecords)).
		Msg("transmission received")

	response, err := h.services.IngestService.ProcessTransmission(ctx, sender, &env)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSyncDisabled):
			log.Err(err).Str("func", "*Handler.ingest").Msg("synchronization is disabled")
			http.Error(w, app.MsgSyncDisabled, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Str("func", "*Handler.ingest").Msg(app.MsgTransmissionFailed)
			http.Error(w, app.MsgTransmissionFailed, statusFromError(err))
			return
		}
	}

	utils.WriteXML(w, response, http.StatusOK)
}

func (h *Handler) getSyncStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.SyncRecordService.GetSyncStatistics(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatistics").Msg(app.MsgSyncStatisticsFailed)
		http.Error(w, app.MsgSyncStatisticsFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

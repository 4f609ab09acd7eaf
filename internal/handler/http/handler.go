package http

import (
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer checks HashSHA256 on ingest; nil when no hash key is configured.
	signer *utils.Signer

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg.HashKey != "" {
		h.signer = utils.NewSigner(cfg.HashKey)
	}

	logger.Info().Bool("hash_check", h.signer != nil).Msg("http handler created")
	return h
}

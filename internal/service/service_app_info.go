package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type appInfoService struct {
	appVersion string
	properties PropertyService

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, properties PropertyService, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		properties: properties,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetServerInfo describes this server to peers and operators.
func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return models.ServerInfo{
		Version:         s.appVersion,
		ServerUUID:      s.properties.ServerUUID(ctx),
		ServerName:      s.properties.ServerName(ctx),
		DatabaseVersion: s.properties.DatabaseVersion(ctx),
		SyncStatus:      s.properties.SyncStatus(ctx),
	}
}

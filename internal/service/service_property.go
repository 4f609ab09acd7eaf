package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// propertyService is the concrete implementation of PropertyService over
// the global property repository. Nothing is cached: an operator may flip
// the sync status through the admin API or straight in the database.
type propertyService struct {
	properties store.GlobalPropertyRepository
	generator  *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewPropertyService(properties store.GlobalPropertyRepository, logger *logger.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		generator:  utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// get returns the stored value, or "" when the property is absent or the
// read fails. Read failures are logged.
func (p *propertyService) get(ctx context.Context, name string) string {
	value, err := p.properties.GetGlobalProperty(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrPropertyNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "propertyService.get").
				Str("property", name).
				Msg("failed to read global property, using default")
		}
		return ""
	}
	return value
}

func (p *propertyService) positiveInt(ctx context.Context, name string, def int) int {
	raw := p.get(ctx, name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "propertyService.positiveInt").
			Str("property", name).
			Str("value", raw).
			Int("default", def).
			Msg("invalid numeric property, using default")
		return def
	}
	return n
}

func (p *propertyService) SyncStatus(ctx context.Context) models.SyncStatus {
	return models.ParseSyncStatus(p.get(ctx, models.PropertySyncStatus))
}

func (p *propertyService) SetSyncStatus(ctx context.Context, status models.SyncStatus) error {
	if models.ParseSyncStatus(string(status)) != status {
		return fmt.Errorf("%w: %s", ErrInvalidPropertyValue, status)
	}
	return p.SetProperty(ctx, models.PropertySyncStatus, string(status))
}

func (p *propertyService) ServerUUID(ctx context.Context) string {
	return p.get(ctx, models.PropertyServerUUID)
}

func (p *propertyService) ServerName(ctx context.Context) string {
	return p.get(ctx, models.PropertyServerName)
}

func (p *propertyService) DatabaseVersion(ctx context.Context) string {
	if v := p.get(ctx, models.PropertyDatabaseVersion); v != "" {
		return v
	}
	return models.DefaultDatabaseVersion
}

func (p *propertyService) MaxRecords(ctx context.Context) int {
	return p.positiveInt(ctx, models.PropertyMaxRecords, models.DefaultMaxRecords)
}

func (p *propertyService) MaxRetryCount(ctx context.Context) int {
	return p.positiveInt(ctx, models.PropertyMaxRetryCount, models.DefaultMaxRetryCount)
}

func (p *propertyService) CompressionEnabled(ctx context.Context) bool {
	enabled, err := strconv.ParseBool(p.get(ctx, models.PropertyEnableCompression))
	return err == nil && enabled
}

func (p *propertyService) AdminEmail(ctx context.Context) string {
	return p.get(ctx, models.PropertyAdminEmail)
}

func (p *propertyService) GetProperty(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrInvalidDataProvided
	}
	return p.properties.GetGlobalProperty(ctx, name)
}

// SetProperty validates the well-known synchronization properties before
// writing. Other names are stored as given.
func (p *propertyService) SetProperty(ctx context.Context, name, value string) error {
	if name == "" {
		return ErrInvalidDataProvided
	}

	switch name {
	case models.PropertySyncStatus:
		if models.ParseSyncStatus(value) != models.SyncStatus(value) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPropertyValue, name, value)
		}
	case models.PropertyMaxRecords, models.PropertyMaxRetryCount:
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPropertyValue, name, value)
		}
	case models.PropertyEnableCompression:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPropertyValue, name, value)
		}
	}

	if err := p.properties.SetGlobalProperty(ctx, name, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "propertyService.SetProperty").
			Str("property", name).
			Msg("failed to write global property")
		return err
	}
	return nil
}

func (p *propertyService) GetProperties(ctx context.Context) ([]models.GlobalProperty, error) {
	return p.properties.GetGlobalProperties(ctx)
}

func (p *propertyService) Init(ctx context.Context, serverName string) error {
	log := logger.FromContext(ctx)

	if p.ServerUUID(ctx) == "" {
		serverUUID := p.generator.Generate()
		if err := p.properties.SetGlobalProperty(ctx, models.PropertyServerUUID, serverUUID); err != nil {
			return fmt.Errorf("failed to store server uuid: %w", err)
		}
		log.Info().Str("server_uuid", serverUUID).Msg("minted server uuid")
	}

	defaults := map[string]string{
		models.PropertyServerName:      serverName,
		models.PropertyDatabaseVersion: models.DefaultDatabaseVersion,
		models.PropertyMaxRecords:      strconv.Itoa(models.DefaultMaxRecords),
		models.PropertyMaxRetryCount:   strconv.Itoa(models.DefaultMaxRetryCount),
	}
	for name, value := range defaults {
		if value == "" || p.get(ctx, name) != "" {
			continue
		}
		if err := p.properties.SetGlobalProperty(ctx, name, value); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	return nil
}

package service

import (
	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/crypto"
	"github.com/MKhiriev/go-sync-keeper/internal/domain"
	"github.com/MKhiriev/go-sync-keeper/internal/interceptor"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

type Services struct {
	PropertyService     PropertyService
	SyncRecordService   SyncRecordService
	RemoteServerService RemoteServerService
	TransmissionService TransmissionService
	IngestService       IngestService
	RepairService       RepairService
	SyncJob             SyncJob
	AppInfoService      AppInfoService

	// Sessions opens entity sessions whose changes are journaled.
	Sessions *store.SessionFactory
	Registry *schema.Registry
}

// NewServices wires the services over storages. The change interceptor
// journals through the sync record service, so the record service is
// built before the session factory and the ingest service after it.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, metrics SyncMetrics, logger *logger.Logger) (*Services, error) {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	registry := domain.NewRegistry()

	properties := NewPropertyService(storages.GlobalPropertyRepository, logger)
	records := NewSyncRecordService(storages.SyncRecordRepository, storages.RemoteServerRepository,
		properties, storages.DB, metrics, logger)

	ic := interceptor.New(registry, properties, storages.EntityRepository, records, utils.NewUUIDGenerator(), logger)
	sessions := store.NewSessionFactory(storages.DB, storages.EntityRepository, registry, ic, logger)

	sealer, err := crypto.NewCredentialSealer(cfg.App.CredentialKey)
	if err != nil {
		return nil, err
	}
	servers := NewRemoteServerService(storages.RemoteServerRepository, sealer, cfg.App, logger)
	transport := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, properties, logger)
	ingest := NewIngestService(properties, records, storages.ImportRecordRepository, sessions, registry,
		NewConceptIndexer(storages.ConceptWordRepository), nil, metrics, logger)
	transmission := NewTransmissionService(properties, records, servers, storages.RemoteServerRepository,
		transport, ingest, storages.JournalFileStorage, metrics, logger)

	appInfo, err := NewAppInfoService(cfg.App, properties, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PropertyService:     properties,
		SyncRecordService:   records,
		RemoteServerService: servers,
		TransmissionService: transmission,
		IngestService:       ingest,
		RepairService:       NewRepairService(sessions, registry, logger),
		SyncJob:             NewSyncJob(properties, servers, transmission, logger),
		AppInfoService:      appInfo,
		Sessions:            sessions,
		Registry:            registry,
	}, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

type repairService struct {
	sessions  SessionFactory
	registry  *schema.Registry
	generator *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewRepairService(sessions SessionFactory, registry *schema.Registry, logger *logger.Logger) RepairService {
	return &repairService{
		sessions:  sessions,
		registry:  registry,
		generator: utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// RepairUUIDs loads every entity of typ stored without a uuid, gives it
// one and saves it, all in one session.
func (r *repairService) RepairUUIDs(ctx context.Context, typ string) (int, error) {
	log := logger.FromContext(ctx)

	d, ok := r.registry.Lookup(typ)
	if !ok {
		return 0, fmt.Errorf("%w: %w: %s", ErrInvalidDataProvided, schema.ErrUnknownType, typ)
	}

	session, err := r.sessions.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = session.Rollback(ctx)
	}()

	ids, err := session.ListWithoutUUID(ctx, d.Type)
	if err != nil {
		log.Err(err).Str("func", "repairService.RepairUUIDs").Str("type", d.Type).Msg("failed to list entities")
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	repaired := 0
	for _, id := range ids {
		e, err := session.GetByID(ctx, d.Type, id)
		if err != nil {
			return 0, err
		}
		if e.GetUUID() == "" {
			e.SetUUID(r.generator.Generate())
		}
		if err = session.Save(ctx, e); err != nil {
			log.Err(err).
				Str("func", "repairService.RepairUUIDs").
				Str("type", d.Type).
				Int64("id", id).
				Msg("failed to save repaired entity")
			return 0, err
		}
		repaired++
	}

	if _, err = session.Commit(ctx); err != nil {
		return 0, err
	}

	log.Info().Str("type", d.Type).Int("repaired", repaired).Msg("uuids repaired")
	return repaired, nil
}

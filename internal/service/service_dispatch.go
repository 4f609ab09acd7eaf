package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/domain"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// itemHandler applies one decoded entity to the local store.
type itemHandler struct {
	save   func(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error
	delete func(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error
	// unsupported types are known but never applied.
	unsupported bool
}

// dispatchTable maps a type name to its handler. It is closed: a type that
// is not listed has no handler.
type dispatchTable map[string]itemHandler

func (t dispatchTable) lookup(typ string) (itemHandler, error) {
	h, ok := t[typ]
	if !ok {
		return itemHandler{}, fmt.Errorf("%w: %s", ErrNoHandler, typ)
	}
	if h.unsupported {
		return itemHandler{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
	return h, nil
}

func saveEntity(ctx context.Context, s *store.EntitySession, e schema.Entity, _ *precommitQueue) error {
	return s.Save(ctx, e)
}

func deleteEntity(ctx context.Context, s *store.EntitySession, e schema.Entity, _ *precommitQueue) error {
	return s.Delete(ctx, e)
}

var plain = itemHandler{save: saveEntity, delete: deleteEntity}

func newDispatchTable() dispatchTable {
	return dispatchTable{
		domain.TypeUser:      plain,
		domain.TypePatient:   plain,
		domain.TypeEncounter: plain,
		domain.TypeObs:       plain,
		domain.TypeRole:      plain,
		domain.TypePrivilege: plain,

		domain.TypePersonName:        {save: savePersonName, delete: deleteEntity},
		domain.TypePatientIdentifier: {save: savePatientIdentifier, delete: deleteEntity},
		domain.TypeConcept:           {save: saveConcept, delete: deleteEntity},
		domain.TypeConceptName:       {save: saveConceptName, delete: deleteConceptName},
		domain.TypeForm:              {save: saveForm, delete: deleteEntity},

		domain.TypeConceptSource:   {unsupported: true},
		domain.TypeDrugIngredient:  {unsupported: true},
		domain.TypeFieldAnswer:     {unsupported: true},
		domain.TypeLoginCredential: {unsupported: true},
		domain.TypeTribe:           {unsupported: true},
	}
}

// saveThroughPatient stores a patient that is not persisted yet before
// the dependent entity.
func saveThroughPatient(ctx context.Context, s *store.EntitySession, p *domain.Patient, child schema.Entity) error {
	if p.GetID() == 0 {
		if err := s.Save(ctx, p); err != nil {
			return err
		}
	}
	return s.Save(ctx, child)
}

func savePersonName(ctx context.Context, s *store.EntitySession, e schema.Entity, _ *precommitQueue) error {
	n := schema.Concrete(e).(*domain.PersonName)
	if n.Person == nil {
		return fmt.Errorf("%w: PersonName %s", ErrMissingOwner, n.UUID)
	}
	n.Person.AddName(n)
	return saveThroughPatient(ctx, s, n.Person, n)
}

func savePatientIdentifier(ctx context.Context, s *store.EntitySession, e schema.Entity, _ *precommitQueue) error {
	id := schema.Concrete(e).(*domain.PatientIdentifier)
	if id.Patient == nil {
		return fmt.Errorf("%w: PatientIdentifier %s", ErrMissingOwner, id.UUID)
	}
	id.Patient.AddIdentifier(id)
	return saveThroughPatient(ctx, s, id.Patient, id)
}

func saveConcept(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error {
	if err := s.Save(ctx, e); err != nil {
		return err
	}
	q.add(PrecommitUpdateConceptWords, e)
	return nil
}

func saveConceptName(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error {
	n := schema.Concrete(e).(*domain.ConceptName)
	if n.Concept == nil {
		return fmt.Errorf("%w: ConceptName %s", ErrMissingOwner, n.UUID)
	}
	n.Concept.AddName(n)
	if err := s.Save(ctx, n); err != nil {
		return err
	}
	q.add(PrecommitUpdateConceptWords, n.Concept)
	return nil
}

func deleteConceptName(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error {
	if err := s.Delete(ctx, e); err != nil {
		return err
	}
	q.add(PrecommitDropConceptNameWord, e)
	return nil
}

func saveForm(ctx context.Context, s *store.EntitySession, e schema.Entity, q *precommitQueue) error {
	if err := s.Save(ctx, e); err != nil {
		return err
	}
	q.add(PrecommitRebuildXSN, e)
	return nil
}

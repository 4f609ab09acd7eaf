package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-sync-keeper/internal/domain"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Precommit actions run after the items of an ingested record and before
// its transaction commits.
const (
	PrecommitRebuildXSN          = "REBUILDXSN"
	PrecommitUpdateConceptWords  = "UPDATECONCEPTWORDS"
	PrecommitDropConceptNameWord = "DROPCONCEPTNAMEWORDS"
)

// FormRebuilder regenerates the template of a form after its definition
// changed.
type FormRebuilder interface {
	RebuildTemplate(ctx context.Context, form *domain.Form) error
}

// ConceptIndexer maintains the name search index of concepts.
type ConceptIndexer interface {
	UpdateConceptWords(ctx context.Context, concept *domain.Concept) error
	DropConceptNameWords(ctx context.Context, nameUUID string) error
}

type precommitTask struct {
	action string
	target schema.Entity
}

// precommitQueue collects the actions scheduled while one record is
// applied. An action is queued once per target; the names of a concept
// queued twice through different instances are merged.
type precommitQueue struct {
	tasks []precommitTask
	seen  map[string]int
}

func newPrecommitQueue() *precommitQueue {
	return &precommitQueue{seen: make(map[string]int)}
}

func (q *precommitQueue) add(action string, target schema.Entity) {
	target = schema.Concrete(target)
	key := action + "|" + target.EntityType() + "|" + target.GetUUID()

	pos, ok := q.seen[key]
	if !ok {
		q.seen[key] = len(q.tasks)
		q.tasks = append(q.tasks, precommitTask{action: action, target: target})
		return
	}

	queued, ok := q.tasks[pos].target.(*domain.Concept)
	incoming, same := target.(*domain.Concept)
	if !ok || !same || queued == incoming {
		return
	}
	for _, n := range incoming.Names {
		queued.AddName(n)
	}
}

func (q *precommitQueue) len() int {
	return len(q.tasks)
}

type precommitRunner struct {
	indexer ConceptIndexer
	// rebuilder is optional.
	rebuilder FormRebuilder
}

// run executes the queued actions in order inside the session transaction.
func (r *precommitRunner) run(ctx context.Context, s *store.EntitySession, q *precommitQueue) error {
	log := logger.FromContext(ctx)
	txCtx := s.Context(ctx)

	for _, task := range q.tasks {
		switch task.action {
		case PrecommitRebuildXSN:
			form, ok := schema.Concrete(task.target).(*domain.Form)
			if !ok {
				return fmt.Errorf("%w: %s wants a Form, got %s", ErrBadPrecommitParam, task.action, task.target.EntityType())
			}
			if r.rebuilder == nil {
				log.Warn().
					Str("form_uuid", form.UUID).
					Msg("no form rebuilder configured, template not rebuilt")
				continue
			}
			if err := r.rebuilder.RebuildTemplate(txCtx, form); err != nil {
				return fmt.Errorf("%s %s: %w", task.action, form.UUID, err)
			}
		case PrecommitUpdateConceptWords:
			concept, ok := schema.Concrete(task.target).(*domain.Concept)
			if !ok {
				return fmt.Errorf("%w: %s wants a Concept, got %s", ErrBadPrecommitParam, task.action, task.target.EntityType())
			}
			if err := r.indexer.UpdateConceptWords(txCtx, concept); err != nil {
				return fmt.Errorf("%s %s: %w", task.action, concept.UUID, err)
			}
		case PrecommitDropConceptNameWord:
			name, ok := schema.Concrete(task.target).(*domain.ConceptName)
			if !ok {
				return fmt.Errorf("%w: %s wants a ConceptName, got %s", ErrBadPrecommitParam, task.action, task.target.EntityType())
			}
			if err := r.indexer.DropConceptNameWords(txCtx, name.UUID); err != nil {
				return fmt.Errorf("%s %s: %w", task.action, name.UUID, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownPrecommitAction, task.action)
		}
	}
	return nil
}

// conceptIndexer splits the names of a concept into upper-cased words of
// their locale. Each name owns its entries, so a name is reindexed from
// scratch and names not carried by the concept are left alone.
type conceptIndexer struct {
	words store.ConceptWordRepository
}

func NewConceptIndexer(words store.ConceptWordRepository) ConceptIndexer {
	return &conceptIndexer{words: words}
}

func (c *conceptIndexer) UpdateConceptWords(ctx context.Context, concept *domain.Concept) error {
	if concept == nil || concept.UUID == "" {
		return ErrInvalidDataProvided
	}

	for _, name := range concept.Names {
		if name == nil || name.UUID == "" {
			continue
		}
		var words []models.ConceptWord
		seen := make(map[string]struct{})
		for _, w := range SplitConceptName(name.Name, name.Locale) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, models.ConceptWord{
				ConceptUUID:     concept.UUID,
				ConceptNameUUID: name.UUID,
				Word:            w,
				Locale:          name.Locale.String(),
			})
		}
		if err := c.words.ReplaceConceptNameWords(ctx, name.UUID, words); err != nil {
			return err
		}
	}
	return nil
}

func (c *conceptIndexer) DropConceptNameWords(ctx context.Context, nameUUID string) error {
	if nameUUID == "" {
		return ErrInvalidDataProvided
	}
	return c.words.ReplaceConceptNameWords(ctx, nameUUID, nil)
}

// SplitConceptName upper-cases name with the rules of locale and splits it
// on anything that is not a letter or a digit.
func SplitConceptName(name string, locale language.Tag) []string {
	upper := cases.Upper(locale).String(name)
	return strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownType      = errors.New("unknown entity type")
	ErrDuplicateType    = errors.New("entity type already registered")
	ErrFieldType        = errors.New("value does not fit field")
	ErrNoAccessor       = errors.New("no accessor for property")
	ErrUnresolvedRef    = errors.New("referenced entity not found")
	ErrMissingReference = errors.New("referenced entity has no uuid")
)

// Registry maps type names to descriptors.
type Registry struct {
	mu     sync.RWMutex
	byType map[string]*Descriptor
}

// NewRegistry returns a registry holding ds. It panics on duplicate type
// names, which can only come from a programming error.
func NewRegistry(ds ...*Descriptor) *Registry {
	r := &Registry{byType: make(map[string]*Descriptor, len(ds))}
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds d to the registry.
func (r *Registry) Register(d *Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byType[d.Type]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, d.Type)
	}
	r.byType[d.Type] = d
	return nil
}

// Lookup returns the descriptor registered for typ.
func (r *Registry) Lookup(typ string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byType[typ]
	return d, ok
}

// DescriptorOf returns the descriptor for the concrete type of e.
func (r *Registry) DescriptorOf(e Entity) (*Descriptor, bool) {
	return r.Lookup(Concrete(e).EntityType())
}

// Types returns every registered type name, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Package schema describes participating entity types without runtime
// reflection. Each type registers a [Descriptor] listing its fields, their
// semantic kind, and accessor pairs; the interceptor, the ingest path, and
// the entity store all walk these descriptors.
package schema

// Entity is implemented by every domain object that can take part in
// synchronization.
type Entity interface {
	// EntityType returns the simple name of the concrete type, e.g. "Patient".
	EntityType() string
	GetID() int64
	SetID(id int64)
	GetUUID() string
	SetUUID(uuid string)
}

// Switchable is implemented by entities that can opt out of
// synchronization at runtime.
type Switchable interface {
	IsSynchronizable() bool
}

// Unwrapper is implemented by lazy references and other wrappers that
// stand in for a concrete entity.
type Unwrapper interface {
	Unwrap() Entity
}

// Concrete resolves e to the concrete entity it stands for.
func Concrete(e Entity) Entity {
	for {
		u, ok := e.(Unwrapper)
		if !ok {
			return e
		}
		inner := u.Unwrap()
		if inner == nil {
			return e
		}
		e = inner
	}
}

// Base carries the identity every entity shares. Domain types embed it.
type Base struct {
	ID   int64
	UUID string
}

// GetID returns the local primary key.
func (b *Base) GetID() int64 { return b.ID }

// SetID sets the local primary key.
func (b *Base) SetID(id int64) { b.ID = id }

// GetUUID returns the global identity.
func (b *Base) GetUUID() string { return b.UUID }

// SetUUID sets the global identity.
func (b *Base) SetUUID(uuid string) { b.UUID = uuid }

package ecs

import "reflect"

// ResourceId is the stable storage identity assigned to a concrete singleton type.
// Zero is never assigned.
type ResourceId uint32

// ComponentRegistry hands out resource identities for an ECS instance.
// Each Storage is backed by a ComponentRegistry; storages sharing a registry
// share identities, which keeps ids comparable across them.
type ComponentRegistry struct {
	ids   map[reflect.Type]ResourceId
	types []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ResourceId),
	}
}

// RegisterComponent assigns an identity to T ahead of its first insertion.
// Registration is optional: storages allocate identities lazily.
func RegisterComponent[T any](r *ComponentRegistry) ResourceId {
	return r.idFor(reflect.TypeFor[T]())
}

// idFor returns the identity of t, allocating one if t has never been seen.
func (r *ComponentRegistry) idFor(t reflect.Type) ResourceId {
	if id, ok := r.ids[t]; ok {
		return id
	}
	r.types = append(r.types, t)
	id := ResourceId(len(r.types))
	r.ids[t] = id
	return id
}

func (r *ComponentRegistry) lookup(t reflect.Type) (ResourceId, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// typeOf returns the type an identity was allocated for, or nil.
func (r *ComponentRegistry) typeOf(id ResourceId) reflect.Type {
	if id == 0 || int(id) > len(r.types) {
		return nil
	}
	return r.types[id-1]
}

// Len returns the number of identities handed out so far.
func (r *ComponentRegistry) Len() int {
	return len(r.types)
}

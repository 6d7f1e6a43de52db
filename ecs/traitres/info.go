package traitres

import (
	"reflect"

	"github.com/plus3/traitres/ecs"
)

// RegistryInfo describes one trait registry.
type RegistryInfo struct {
	Trait   string
	Entries []EntryInfo
}

// EntryInfo describes one registration.
type EntryInfo struct {
	Id       ecs.ResourceId
	Resource string
	// Present is false for stale entries whose resource was removed from storage.
	Present bool
}

// Stale returns the number of entries whose resource is no longer stored.
func (ri RegistryInfo) Stale() int {
	n := 0
	for _, e := range ri.Entries {
		if !e.Present {
			n++
		}
	}
	return n
}

type describer interface {
	describe(storage *ecs.Storage) RegistryInfo
}

func (r *registry[T]) describe(storage *ecs.Storage) RegistryInfo {
	info := RegistryInfo{
		Trait:   traitName[T](),
		Entries: make([]EntryInfo, len(r.entries)),
	}
	for i, a := range r.entries {
		_, present := storage.GetSingletonById(a.id)
		info.Entries[i] = EntryInfo{
			Id:       a.id,
			Resource: a.resource.String(),
			Present:  present,
		}
	}
	return info
}

// Registries lists every trait registry in storage, in the order the registries were first created.
func Registries(p ecs.StorageProvider) []RegistryInfo {
	storage := p.Storage()

	var infos []RegistryInfo
	for _, value := range storage.Singletons() {
		if d, ok := value.(describer); ok {
			infos = append(infos, d.describe(storage))
		}
	}
	return infos
}

// IsRegistryType reports whether t is the type of a trait registry singleton.
func IsRegistryType(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(reflect.TypeFor[describer]())
}

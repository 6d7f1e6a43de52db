package traitres

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/traitres/ecs"
)

// registry is the per-trait table of adapters, stored as a singleton in the storage.
// An empty registry is never left in storage.
type registry[T Trait] struct {
	entries []adapter[T]
	index   *intmap.Map[ecs.ResourceId, int]
}

func newRegistry[T Trait]() registry[T] {
	return registry[T]{
		index: intmap.New[ecs.ResourceId, int](8),
	}
}

// register overwrites the entry with the same identity in place, or appends.
func (r *registry[T]) register(a adapter[T]) {
	if pos, ok := r.index.Get(a.id); ok {
		r.entries[pos] = a
		return
	}
	r.index.Put(a.id, len(r.entries))
	r.entries = append(r.entries, a)
}

// unregister removes the entry for id and returns the new entry count.
func (r *registry[T]) unregister(id ecs.ResourceId) int {
	pos, ok := r.index.Get(id)
	if !ok {
		return len(r.entries)
	}

	r.entries = slices.Delete(r.entries, pos, pos+1)
	r.index.Del(id)
	for i := pos; i < len(r.entries); i++ {
		r.index.Put(r.entries[i].id, i)
	}
	return len(r.entries)
}

func (r *registry[T]) contains(id ecs.ResourceId) bool {
	_, ok := r.index.Get(id)
	return ok
}

func (r *registry[T]) count() int {
	return len(r.entries)
}

// getRegistry returns T's registry, or nil when nothing is registered under T.
func getRegistry[T Trait](storage *ecs.Storage) *registry[T] {
	return ecs.GetSingleton[registry[T]](storage)
}

// getOrCreateRegistry returns T's registry, inserting an empty one into storage first if needed.
func getOrCreateRegistry[T Trait](storage *ecs.Storage) *registry[T] {
	if reg := getRegistry[T](storage); reg != nil {
		return reg
	}
	Logger().Debug("trait registry created", zapTrait[T]())
	return ecs.InsertSingleton(storage, newRegistry[T]())
}

// dropRegistry removes T's registry from storage.
func dropRegistry[T Trait](storage *ecs.Storage) {
	if ecs.RemoveSingleton[registry[T]](storage) {
		Logger().Debug("trait registry removed", zapTrait[T]())
	}
}

package traitres

import "github.com/plus3/traitres/ecs"

// Resources gives a system access to the resources registered under T.
// Declare it as an exported field and the Scheduler initializes it on registration:
//
//	type IncrementSystem struct {
//		Counters traitres.Resources[Incrementer]
//	}
type Resources[T Trait] struct {
	storage *ecs.Storage
}

// Init binds the parameter to a storage.
func (r *Resources[T]) Init(storage *ecs.Storage) {
	r.storage = storage
}

// Storage returns the bound storage.
func (r *Resources[T]) Storage() *ecs.Storage {
	return r.storage
}

// Iter returns a read iterator over T's registry.
func (r *Resources[T]) Iter() *Iter[T] {
	return GetResourcesTrait[T](r)
}

// IterMut returns a mutable iterator over T's registry.
func (r *Resources[T]) IterMut() *IterMut[T] {
	return GetResourcesTraitMut[T](r)
}

// Len returns the number of entries registered under T.
func (r *Resources[T]) Len() int {
	return Count[T](r)
}

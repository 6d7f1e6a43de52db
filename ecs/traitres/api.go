package traitres

import (
	"fmt"
	"reflect"

	"github.com/plus3/traitres/ecs"
)

// InsertResourceAs stores value as the singleton R, overwriting any previous R,
// and registers it under T.
func InsertResourceAs[T Trait, R any](p ecs.StorageProvider, value R) {
	mustImplement[T, R]()
	ecs.InsertSingleton(p.Storage(), value)
	RegisterResourceAs[T, R](p)
}

// InitResourceAs inserts the zero value of R and registers it under T.
func InitResourceAs[T Trait, R any](p ecs.StorageProvider) {
	var value R
	InsertResourceAs[T, R](p, value)
}

// RegisterResourceAs registers the already stored R under T.
// Registering the same pair again replaces the entry in place.
//
// Panics with an error wrapping ErrResourceNotFound if R is not stored.
func RegisterResourceAs[T Trait, R any](p ecs.StorageProvider) {
	storage := p.Storage()

	id, ok := ecs.ResourceIdOf[R](storage)
	if !ok || !ecs.HasSingleton[R](storage) {
		panic(fmt.Errorf("%w: %s", ErrResourceNotFound, reflect.TypeFor[R]()))
	}

	a := newAdapter[T, R](id)
	getOrCreateRegistry[T](storage).register(a)
}

// UnregisterResourceFromTrait removes R from T's registry. The registry itself is
// removed once its last entry is gone. R stays in storage.
// Unregistering a pair that is not registered does nothing.
func UnregisterResourceFromTrait[T Trait, R any](p ecs.StorageProvider) {
	storage := p.Storage()

	id, ok := ecs.ResourceIdOf[R](storage)
	if !ok {
		return
	}

	reg := getRegistry[T](storage)
	if reg == nil {
		return
	}

	if reg.unregister(id) == 0 {
		dropRegistry[T](storage)
	}
}

// UnregisterAll removes T's registry and with it every registration under T.
func UnregisterAll[T Trait](p ecs.StorageProvider) {
	dropRegistry[T](p.Storage())
}

// IsRegistered reports whether R has an entry in T's registry.
// The entry may be stale if R was removed from storage without unregistering.
func IsRegistered[T Trait, R any](p ecs.StorageProvider) bool {
	storage := p.Storage()

	id, ok := ecs.ResourceIdOf[R](storage)
	if !ok {
		return false
	}
	reg := getRegistry[T](storage)
	return reg != nil && reg.contains(id)
}

// Count returns the number of entries registered under T, stale ones included.
func Count[T Trait](p ecs.StorageProvider) int {
	reg := getRegistry[T](p.Storage())
	if reg == nil {
		return 0
	}
	return reg.count()
}

// GetResourcesTrait returns an iterator over the resources registered under T.
// The set of entries is fixed when the iterator is created.
func GetResourcesTrait[T Trait](p ecs.StorageProvider) *Iter[T] {
	return newIter[T](p.Storage())
}

// GetResourcesTraitMut returns an iterator over the resources registered under T
// that reads the registry afresh on every step, so it observes registrations
// made by the caller during the traversal.
func GetResourcesTraitMut[T Trait](p ecs.StorageProvider) *IterMut[T] {
	return newIterMut[T](p.Storage())
}

// Each calls fn for every resource registered under T that is still stored.
// It returns the number of stale entries skipped.
func Each[T Trait](p ecs.StorageProvider, fn func(T)) int {
	stale := 0
	for res, ok := range GetResourcesTraitMut[T](p).All() {
		if !ok {
			stale++
			continue
		}
		fn(res)
	}
	return stale
}

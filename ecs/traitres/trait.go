package traitres

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/plus3/traitres/ecs"
)

type traitMarker struct{}

// Trait is embedded in an interface declaration to make it usable as a trait.
// Concrete types embedding Resource also satisfy the constraint, so using one as T
// compiles; registering under a non-interface T panics with ErrNotTrait, and
// iterating one yields nothing since no registry can exist for it.
type Trait interface {
	isTraitResource(traitMarker)
}

// Resource is embedded in a concrete singleton type so it can satisfy Trait interfaces.
type Resource struct{}

func (Resource) isTraitResource(traitMarker) {}

// adapter pairs a storage identity with the cast that views the value stored
// under that identity as T. cast must only ever receive an address holding the
// concrete type the adapter was built for.
type adapter[T Trait] struct {
	id       ecs.ResourceId
	resource reflect.Type
	cast     func(unsafe.Pointer) T
}

// resolve looks the adapter's identity up in storage and views the value as T.
func (a adapter[T]) resolve(storage *ecs.Storage) (T, bool) {
	ptr, ok := storage.GetSingletonById(a.id)
	if !ok {
		var zero T
		Logger().Debug("stale trait registry entry",
			zapTrait[T](),
			zapResource(a.resource),
		)
		return zero, false
	}
	return a.cast(ptr), true
}

// newAdapter builds the adapter for R under T. Both types are known here, which is
// the only place the cast can be constructed.
func newAdapter[T Trait, R any](id ecs.ResourceId) adapter[T] {
	mustImplement[T, R]()
	return adapter[T]{
		id:       id,
		resource: reflect.TypeFor[R](),
		cast: func(ptr unsafe.Pointer) T {
			return any((*R)(ptr)).(T)
		},
	}
}

// mustImplement panics unless *R implements the interface T.
// Go cannot express this relation as a constraint when T is itself a type parameter.
func mustImplement[T Trait, R any]() {
	traitType := reflect.TypeFor[T]()
	if traitType.Kind() != reflect.Interface {
		panic(fmt.Errorf("%w: %s", ErrNotTrait, traitType))
	}
	resourceType := reflect.TypeFor[*R]()
	if !resourceType.Implements(traitType) {
		panic(fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, resourceType, traitType))
	}
}

func traitName[T Trait]() string {
	return reflect.TypeFor[T]().String()
}

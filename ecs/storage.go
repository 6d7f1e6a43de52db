package ecs

import (
	"iter"
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// StorageProvider is implemented by anything that can hand out the Storage it wraps.
// Both *Storage and *App implement it.
type StorageProvider interface {
	Storage() *Storage
}

// singletonEntry is the slot holding one singleton value.
// dataPtr stays valid for the lifetime of the entry; overwrites copy into it.
type singletonEntry struct {
	id      ResourceId
	typ     reflect.Type
	value   reflect.Value // *T
	dataPtr unsafe.Pointer
	live    bool
}

// Storage is the main ECS storage, holding one value per singleton type
type Storage struct {
	registry   *ComponentRegistry
	singletons *intmap.Map[ResourceId, *singletonEntry]
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		singletons: intmap.New[ResourceId, *singletonEntry](64),
	}
}

// Storage returns s, so a *Storage can be passed wherever a StorageProvider is expected.
func (s *Storage) Storage() *Storage {
	return s
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// AddSingleton stores value as the singleton of its concrete type, overwriting any previous value.
// Pointers are dereferenced and stored by their element type.
func (s *Storage) AddSingleton(value any) ResourceId {
	if value == nil {
		panic("cannot add nil singleton")
	}

	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			panic("cannot add nil singleton")
		}
		val = val.Elem()
	}
	checkSingletonType(val.Type())

	id := s.registry.idFor(val.Type())
	if entry, ok := s.singletons.Get(id); ok {
		entry.value.Elem().Set(val)
		return id
	}

	ptr := reflect.New(val.Type())
	ptr.Elem().Set(val)
	s.putEntry(id, ptr)
	return id
}

func (s *Storage) putEntry(id ResourceId, ptr reflect.Value) *singletonEntry {
	entry := &singletonEntry{
		id:      id,
		typ:     ptr.Type().Elem(),
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
		live:    true,
	}
	s.singletons.Put(id, entry)
	return entry
}

// getSingletonEntry returns the live entry for t, or nil
func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	id, ok := s.registry.lookup(t)
	if !ok {
		return nil
	}
	entry, ok := s.singletons.Get(id)
	if !ok {
		return nil
	}
	return entry
}

// ResourceId returns the storage identity of t. The identity survives removal of
// the singleton, so ok only reports whether t has ever been seen by the registry.
func (s *Storage) ResourceId(t reflect.Type) (ResourceId, bool) {
	return s.registry.lookup(t)
}

// HasSingletonType reports whether a singleton of type t is currently stored.
func (s *Storage) HasSingletonType(t reflect.Type) bool {
	return s.getSingletonEntry(t) != nil
}

// GetSingletonById returns the address of the singleton with the given identity.
// The pointer addresses a value of exactly the type the identity was allocated for.
func (s *Storage) GetSingletonById(id ResourceId) (unsafe.Pointer, bool) {
	entry, ok := s.singletons.Get(id)
	if !ok {
		return nil, false
	}
	return entry.dataPtr, true
}

// SingletonTypeById returns the concrete type an identity was allocated for,
// whether or not a value is currently stored. Returns nil for unknown identities.
func (s *Storage) SingletonTypeById(id ResourceId) reflect.Type {
	return s.registry.typeOf(id)
}

// RemoveSingletonByType removes the singleton of type t. Returns false if none was stored.
func (s *Storage) RemoveSingletonByType(t reflect.Type) bool {
	id, ok := s.registry.lookup(t)
	if !ok {
		return false
	}
	entry, ok := s.singletons.Get(id)
	if !ok {
		return false
	}
	entry.live = false
	s.singletons.Del(id)
	return true
}

// ReadSingleton looks up the singleton matching target's element type and stores
// a pointer to it in target, which must be a **T. Returns false if no singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a non-nil pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

// Singletons iterates the stored singletons in identity order, yielding a pointer to each value.
func (s *Storage) Singletons() iter.Seq2[reflect.Type, any] {
	return func(yield func(reflect.Type, any) bool) {
		for i := 1; i <= s.registry.Len(); i++ {
			entry, ok := s.singletons.Get(ResourceId(i))
			if !ok {
				continue
			}
			if !yield(entry.typ, entry.value.Interface()) {
				return
			}
		}
	}
}

// SingletonCount returns the number of stored singletons.
func (s *Storage) SingletonCount() int {
	return s.singletons.Len()
}

// InsertSingleton stores value as the singleton T, overwriting any previous value
// in place, and returns a pointer to the stored value.
func InsertSingleton[T any](s *Storage, value T) *T {
	t := reflect.TypeFor[T]()
	checkSingletonType(t)

	id := s.registry.idFor(t)
	if entry, ok := s.singletons.Get(id); ok {
		ptr := (*T)(entry.dataPtr)
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	s.putEntry(id, reflect.ValueOf(ptr))
	return ptr
}

// GetSingleton returns a pointer to the singleton T, or nil if it is not stored.
func GetSingleton[T any](s *Storage) *T {
	entry := s.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// MustGetSingleton is GetSingleton that panics when T is not stored.
func MustGetSingleton[T any](s *Storage) *T {
	ptr := GetSingleton[T](s)
	if ptr == nil {
		panic("singleton not found: " + reflect.TypeFor[T]().String())
	}
	return ptr
}

// HasSingleton reports whether the singleton T is stored.
func HasSingleton[T any](s *Storage) bool {
	return s.HasSingletonType(reflect.TypeFor[T]())
}

// RemoveSingleton removes the singleton T. Returns false if it was not stored.
func RemoveSingleton[T any](s *Storage) bool {
	return s.RemoveSingletonByType(reflect.TypeFor[T]())
}

// GetOrInsertSingleton returns the singleton T, storing init() first if it is absent.
func GetOrInsertSingleton[T any](s *Storage, init func() T) *T {
	if ptr := GetSingleton[T](s); ptr != nil {
		return ptr
	}
	return InsertSingleton(s, init())
}

// ResourceIdOf returns the storage identity of T without allocating one.
func ResourceIdOf[T any](s *Storage) (ResourceId, bool) {
	return s.registry.lookup(reflect.TypeFor[T]())
}

// checkSingletonType rejects kinds that are not value types
func checkSingletonType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("singletons cannot be pointers, maps, channels, functions or interfaces: " + t.String())
	}
}

package ecs

import (
	"reflect"
)

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	storage       *Storage
	entry         *singletonEntry
	componentType reflect.Type
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If initializer is provided and the singleton doesn't exist in storage,
// it will be created with the initializer value. Otherwise, a zero value is used.
// This guarantees the singleton exists in storage after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		InsertSingleton(storage, value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		entry:         entry,
		componentType: componentType,
	}
}

// Init initializes the Singleton with a storage reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton is not in storage.
func (s *Singleton[T]) Get() *T {
	if s.entry == nil || !s.entry.live {
		s.updateCache()
	}
	if s.entry == nil {
		return nil
	}
	return (*T)(s.entry.dataPtr)
}

// updateCache refreshes the cached entry from storage
func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	s.entry = s.storage.getSingletonEntry(s.componentType)
}

// Exists returns true if the singleton component is currently in storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

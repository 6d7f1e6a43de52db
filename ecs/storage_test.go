package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/traitres/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Gravity struct {
	Value float32
}

type Tick int64

type Tag string

func newTestStorage() *ecs.Storage {
	return ecs.NewStorage(ecs.NewComponentRegistry())
}

func TestInsertAndGetSingleton(t *testing.T) {
	storage := newTestStorage()

	assert.Nil(t, ecs.GetSingleton[Gravity](storage))
	assert.False(t, ecs.HasSingleton[Gravity](storage))

	ptr := ecs.InsertSingleton(storage, Gravity{Value: 9.8})
	require.NotNil(t, ptr)
	assert.Equal(t, float32(9.8), ecs.GetSingleton[Gravity](storage).Value)
	assert.True(t, ecs.HasSingleton[Gravity](storage))
	assert.Same(t, ptr, ecs.GetSingleton[Gravity](storage))
}

func TestInsertOverwritesInPlace(t *testing.T) {
	storage := newTestStorage()

	first := ecs.InsertSingleton(storage, Gravity{Value: 1})
	second := ecs.InsertSingleton(storage, Gravity{Value: 2})

	assert.Same(t, first, second)
	assert.Equal(t, float32(2), first.Value)
	assert.Equal(t, 1, storage.SingletonCount())
}

func TestAddSingletonDereferencesPointers(t *testing.T) {
	storage := newTestStorage()

	storage.AddSingleton(&Gravity{Value: 3})
	storage.AddSingleton(Tick(5))
	storage.AddSingleton(Tag("hello"))

	assert.Equal(t, float32(3), ecs.GetSingleton[Gravity](storage).Value)
	assert.Equal(t, Tick(5), *ecs.GetSingleton[Tick](storage))
	assert.Equal(t, Tag("hello"), *ecs.GetSingleton[Tag](storage))

	// AddSingleton overwrites the same slot InsertSingleton created
	ptr := ecs.GetSingleton[Gravity](storage)
	storage.AddSingleton(Gravity{Value: 4})
	assert.Equal(t, float32(4), ptr.Value)
}

func TestAddSingletonRejectsInvalidValues(t *testing.T) {
	storage := newTestStorage()

	assert.Panics(t, func() { storage.AddSingleton(nil) })
	assert.Panics(t, func() { storage.AddSingleton((*Gravity)(nil)) })
	assert.Panics(t, func() { storage.AddSingleton(map[string]int{}) })
	assert.Panics(t, func() { storage.AddSingleton(func() {}) })
	assert.Panics(t, func() { ecs.InsertSingleton[*Gravity](storage, &Gravity{}) })
}

func TestRemoveSingleton(t *testing.T) {
	storage := newTestStorage()

	assert.False(t, ecs.RemoveSingleton[Gravity](storage))

	ecs.InsertSingleton(storage, Gravity{Value: 1})
	assert.True(t, ecs.RemoveSingleton[Gravity](storage))
	assert.False(t, ecs.RemoveSingleton[Gravity](storage))
	assert.Nil(t, ecs.GetSingleton[Gravity](storage))
	assert.Equal(t, 0, storage.SingletonCount())
}

func TestResourceIdIsStable(t *testing.T) {
	storage := newTestStorage()

	_, ok := ecs.ResourceIdOf[Gravity](storage)
	assert.False(t, ok, "lookups do not allocate identities")

	ecs.InsertSingleton(storage, Gravity{})
	ecs.InsertSingleton(storage, Tick(0))

	gravityId, ok := ecs.ResourceIdOf[Gravity](storage)
	require.True(t, ok)
	tickId, ok := ecs.ResourceIdOf[Tick](storage)
	require.True(t, ok)
	assert.NotEqual(t, gravityId, tickId)
	assert.NotZero(t, gravityId)

	ecs.RemoveSingleton[Gravity](storage)
	afterRemove, ok := storage.ResourceId(reflect.TypeFor[Gravity]())
	require.True(t, ok)
	assert.Equal(t, gravityId, afterRemove)

	assert.Equal(t, reflect.TypeFor[Gravity](), storage.SingletonTypeById(gravityId))
	assert.Nil(t, storage.SingletonTypeById(0))
	assert.Nil(t, storage.SingletonTypeById(99))
}

func TestSharedRegistrySharesIdentities(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	preassigned := ecs.RegisterComponent[Tick](registry)

	a := ecs.NewStorage(registry)
	b := ecs.NewStorage(registry)

	ecs.InsertSingleton(b, Gravity{})
	ecs.InsertSingleton(a, Tick(1))

	idA, _ := ecs.ResourceIdOf[Tick](a)
	idB, _ := ecs.ResourceIdOf[Tick](b)
	assert.Equal(t, preassigned, idA)
	assert.Equal(t, idA, idB)

	_, ok := b.GetSingletonById(idB)
	assert.False(t, ok, "identity is shared, the value is not")
}

func TestGetSingletonById(t *testing.T) {
	storage := newTestStorage()
	ptr := ecs.InsertSingleton(storage, Gravity{Value: 7})
	id, _ := ecs.ResourceIdOf[Gravity](storage)

	raw, ok := storage.GetSingletonById(id)
	require.True(t, ok)
	assert.Same(t, ptr, (*Gravity)(raw))

	_, ok = storage.GetSingletonById(0)
	assert.False(t, ok)
}

func TestGetOrInsertSingleton(t *testing.T) {
	storage := newTestStorage()
	calls := 0
	init := func() Gravity {
		calls++
		return Gravity{Value: 1}
	}

	first := ecs.GetOrInsertSingleton(storage, init)
	first.Value = 5
	second := ecs.GetOrInsertSingleton(storage, init)

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
	assert.Equal(t, float32(5), second.Value)
}

func TestMustGetSingleton(t *testing.T) {
	storage := newTestStorage()
	assert.Panics(t, func() { ecs.MustGetSingleton[Gravity](storage) })

	ecs.InsertSingleton(storage, Gravity{Value: 2})
	assert.NotPanics(t, func() { ecs.MustGetSingleton[Gravity](storage) })
}

func TestSingletonsIterateInIdentityOrder(t *testing.T) {
	storage := newTestStorage()
	ecs.InsertSingleton(storage, Tag("a"))
	ecs.InsertSingleton(storage, Gravity{})
	ecs.InsertSingleton(storage, Tick(1))
	ecs.RemoveSingleton[Gravity](storage)

	var types []reflect.Type
	for typ, value := range storage.Singletons() {
		types = append(types, typ)
		assert.Equal(t, reflect.PointerTo(typ), reflect.TypeOf(value))
	}
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Tag](), reflect.TypeFor[Tick]()}, types)
}

func TestReadSingletonRequiresPointerToPointer(t *testing.T) {
	storage := newTestStorage()
	var g Gravity
	assert.Panics(t, func() { storage.ReadSingleton(&g) })
	assert.Panics(t, func() { storage.ReadSingleton(nil) })
}

func TestSingletonAccessorRevalidates(t *testing.T) {
	storage := newTestStorage()
	accessor := ecs.NewSingleton[Gravity](storage, Gravity{Value: 1})
	assert.True(t, accessor.Exists())

	ecs.RemoveSingleton[Gravity](storage)
	assert.Nil(t, accessor.Get())

	ecs.InsertSingleton(storage, Gravity{Value: 3})
	require.NotNil(t, accessor.Get())
	assert.Equal(t, float32(3), accessor.Get().Value)
}

func TestStorageIsItsOwnProvider(t *testing.T) {
	storage := newTestStorage()
	var provider ecs.StorageProvider = storage
	assert.Same(t, storage, provider.Storage())
}

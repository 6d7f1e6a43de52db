package traitres

import (
	"iter"
	"slices"

	"github.com/plus3/traitres/ecs"
)

// Iter walks the resources registered under T in registration order.
// It works on a copy of the registry entries taken at construction.
// An Iter is not restartable; All continues from the current position.
type Iter[T Trait] struct {
	storage *ecs.Storage
	entries []adapter[T]
	cursor  int
}

func newIter[T Trait](storage *ecs.Storage) *Iter[T] {
	it := &Iter[T]{storage: storage}
	if reg := getRegistry[T](storage); reg != nil {
		it.entries = slices.Clone(reg.entries)
	}
	return it
}

// Next advances the iterator. ok is false once the iterator is exhausted.
// present is false when the entry's resource is no longer in storage, in which
// case value is the zero value of T.
func (it *Iter[T]) Next() (value T, present bool, ok bool) {
	if it.cursor >= len(it.entries) {
		return value, false, false
	}

	a := it.entries[it.cursor]
	it.cursor++

	value, present = a.resolve(it.storage)
	return value, present, true
}

// Remaining returns the number of steps left.
func (it *Iter[T]) Remaining() int {
	return len(it.entries) - it.cursor
}

// All returns the remaining steps as a sequence of (resource, present) pairs.
func (it *Iter[T]) All() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for {
			value, present, ok := it.Next()
			if !ok || !yield(value, present) {
				return
			}
		}
	}
}

// IterMut walks the resources registered under T in registration order,
// looking the registry up again on every step. Entries registered or
// unregistered during the traversal are observed at the cursor position.
type IterMut[T Trait] struct {
	storage *ecs.Storage
	cursor  int
}

func newIterMut[T Trait](storage *ecs.Storage) *IterMut[T] {
	return &IterMut[T]{storage: storage}
}

// Next advances the iterator. ok is false once the cursor reaches the current
// entry count or T's registry no longer exists.
// present is false when the entry's resource is no longer in storage.
func (it *IterMut[T]) Next() (value T, present bool, ok bool) {
	reg := getRegistry[T](it.storage)
	if reg == nil || it.cursor >= reg.count() {
		return value, false, false
	}

	a := reg.entries[it.cursor]
	it.cursor++

	value, present = a.resolve(it.storage)
	return value, present, true
}

// Remaining returns the number of steps left as of the current registry state.
func (it *IterMut[T]) Remaining() int {
	reg := getRegistry[T](it.storage)
	if reg == nil {
		return 0
	}
	return max(reg.count()-it.cursor, 0)
}

// All returns the remaining steps as a sequence of (resource, present) pairs.
func (it *IterMut[T]) All() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for {
			value, present, ok := it.Next()
			if !ok || !yield(value, present) {
				return
			}
		}
	}
}

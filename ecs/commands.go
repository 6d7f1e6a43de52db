package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	inserts []insertSingletonCommand
	removes []reflect.Type
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type insertSingletonCommand struct {
	value any
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// InsertSingleton queues a singleton insert (or overwrite) operation.
func (c *Commands) InsertSingleton(value any) {
	c.inserts = append(c.inserts, insertSingletonCommand{value: value})
}

// RemoveSingleton queues a singleton removal operation.
func (c *Commands) RemoveSingleton(singletonType reflect.Type) {
	c.removes = append(c.removes, singletonType)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.inserts) + len(c.removes) + len(c.defers)
}

// Flush flushes all commands to the provided storage, reseting the buffer state.
// Removals run first, then inserts, then deferred functions.
func (c *Commands) Flush(storage *Storage) {
	for _, t := range c.removes {
		storage.RemoveSingletonByType(t)
	}

	for _, cmd := range c.inserts {
		storage.AddSingleton(cmd.value)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.inserts = c.inserts[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}

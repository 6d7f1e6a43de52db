package ecs

// System represents a behavior that runs once per frame against the storage.
// User-defined systems should implement this interface and can include Singleton
// fields or other Initializer fields, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

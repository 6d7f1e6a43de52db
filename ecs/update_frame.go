package ecs

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	// Number counts scheduler passes, starting at 1.
	Number    uint64
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(number uint64, dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Number:    number,
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}

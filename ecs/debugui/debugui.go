// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Debug windows are singleton resources registered under the Panel trait; the
// ImguiSystem renders every registered panel each frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// Panel is a debug window. Register a resource under Panel with
// traitres.InsertResourceAs to have the ImguiSystem draw it.
type Panel interface {
	traitres.Trait
	Render(storage *ecs.Storage, deltaTime float32)
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the Render call of every registered Panel.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Panels     traitres.Resources[Panel]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all panel render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	dt := float32(frame.DeltaTime)
	for panel, ok := range i.Panels.IterMut().All() {
		if !ok {
			continue
		}
		frame.Commands.Defer(func() {
			panel.Render(frame.Storage, dt)
		})
	}
}

// Plugin installs the ImguiSystem and the built-in debug panels.
type Plugin struct {
	// HistoryFrames is the frame-time history length of the performance panel.
	HistoryFrames int
}

// Build implements ecs.Plugin.
func (p Plugin) Build(app *ecs.App) {
	history := p.HistoryFrames
	if history <= 0 {
		history = 120
	}

	ecs.InsertSingleton(app.Storage(), ImguiInputState{})
	traitres.InsertResourceAs[Panel](app, NewPerformanceStatsPanel(history))
	traitres.InsertResourceAs[Panel](app, NewRegistryViewerPanel())
	traitres.InsertResourceAs[Panel](app, NewResourceInspectorPanel())
	app.AddSystem(&ImguiSystem{})
}

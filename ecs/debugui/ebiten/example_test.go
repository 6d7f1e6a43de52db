package ebiten_test

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/debugui"
	debugui_ebiten "github.com/plus3/traitres/ecs/debugui/ebiten"
	"github.com/plus3/traitres/ecs/traitres"
)

// HelloPanel is an application-defined debug window.
type HelloPanel struct {
	traitres.Resource
	Clicks int
}

func (h *HelloPanel) Render(storage *ecs.Storage, deltaTime float32) {
	imgui.Begin("Debug Window")
	imgui.Text(fmt.Sprintf("Hello from ECS! (%d singletons)", storage.SingletonCount()))
	imgui.End()
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	app := ecs.NewApp(ecs.NewComponentRegistry())
	app.AddPlugin(debugui.Plugin{HistoryFrames: 240})

	// Application panels are registered the same way as the built-in ones
	traitres.InsertResourceAs[debugui.Panel](app, HelloPanel{})

	game := debugui_ebiten.NewGame(app, imguiBackend)
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}

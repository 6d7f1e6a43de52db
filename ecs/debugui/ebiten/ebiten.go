// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/traitres/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It is stored as a singleton so systems can reach it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game runs an ecs.App inside an Ebiten game loop, framing each update with
// ImGui begin/end calls so debugui panels render on top of the game.
type Game struct {
	app     *ecs.App
	backend *ecs.Singleton[ImguiBackend]
	// DrawFunc draws the game itself, below the ImGui overlay.
	DrawFunc func(screen *ebiten.Image)
}

// NewGame stores backend as the app's ImguiBackend singleton and returns a Game driving app.
func NewGame(app *ecs.App, backend *ebitenbackend.EbitenBackend) *Game {
	return &Game{
		app:     app,
		backend: ecs.NewSingleton(app.Storage(), ImguiBackend{EbitenBackend: backend}),
	}
}

func (g *Game) Update() error {
	backend := g.backend.Get()
	backend.BeginFrame()
	g.app.Update(1.0 / float64(ebiten.TPS()))
	backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

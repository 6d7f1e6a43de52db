package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// PerformanceStatsPanel shows frame times and singleton counts.
type PerformanceStatsPanel struct {
	traitres.Resource
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStatsPanel(historyFrames int) PerformanceStatsPanel {
	return PerformanceStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time sample and returns the average frame time in milliseconds.
func (ps *PerformanceStatsPanel) Record(deltaTime float32) float32 {
	if ps.historyFrames == 0 {
		return 0
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformanceStatsPanel) Render(storage *ecs.Storage, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.Record(deltaTime)
	stats := storage.CollectStats()
	registries := traitres.Registries(storage)

	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	imgui.Text(fmt.Sprintf("Trait Registries: %d", len(registries)))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	if ps.historyFrames > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

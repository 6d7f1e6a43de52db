package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/traitres/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterPlugin struct {
	start int
}

func (p counterPlugin) Build(app *ecs.App) {
	ecs.InsertSingleton(app.Storage(), FrameCounter{Frames: p.start})
	app.AddSystem(&CountingSystem{})
}

func TestAppPlugin(t *testing.T) {
	app := ecs.NewApp(ecs.NewComponentRegistry())
	app.AddPlugin(counterPlugin{start: 10})

	app.Update(0.25)
	app.Update(0.25)

	counter := ecs.GetSingleton[FrameCounter](app.Storage())
	require.NotNil(t, counter)
	assert.Equal(t, 12, counter.Frames)
	assert.Equal(t, 0.5, counter.Time)
	assert.Equal(t, 1, app.Scheduler().GetStats().SystemCount)
	assert.Equal(t, uint64(2), app.Scheduler().GetStats().Frames)
}

func TestAppRunStopsOnCancel(t *testing.T) {
	app := ecs.NewApp(ecs.NewComponentRegistry()).AddPlugin(counterPlugin{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	app.Run(ctx, time.Millisecond)

	assert.Positive(t, ecs.GetSingleton[FrameCounter](app.Storage()).Frames)
}

func TestAppIsStorageProvider(t *testing.T) {
	app := ecs.NewApp(ecs.NewComponentRegistry())
	var provider ecs.StorageProvider = app
	assert.Same(t, app.Storage(), provider.Storage())
}

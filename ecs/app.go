package ecs

import (
	"context"
	"time"
)

// Plugin bundles singletons and systems that are installed into an App together.
type Plugin interface {
	Build(app *App)
}

// App is the application-level handle wrapping a Storage and its Scheduler.
// Anything accepting a StorageProvider works the same whether given an App or its Storage.
type App struct {
	storage   *Storage
	scheduler *Scheduler
}

// NewApp creates an App with a fresh storage backed by registry.
func NewApp(registry *ComponentRegistry) *App {
	storage := NewStorage(registry)
	return &App{
		storage:   storage,
		scheduler: NewScheduler(storage),
	}
}

// Storage returns the wrapped storage.
func (a *App) Storage() *Storage {
	return a.storage
}

// Scheduler returns the scheduler driving the app's systems.
func (a *App) Scheduler() *Scheduler {
	return a.scheduler
}

// AddPlugin builds the plugin into the app.
func (a *App) AddPlugin(plugin Plugin) *App {
	plugin.Build(a)
	return a
}

// AddSystem registers a system with the app's scheduler.
func (a *App) AddSystem(system System) *App {
	a.scheduler.Register(system)
	return a
}

// Update runs every system once.
func (a *App) Update(dt float64) {
	a.scheduler.Once(dt)
}

// Run executes all systems at the given interval until the context is cancelled.
func (a *App) Run(ctx context.Context, interval time.Duration) {
	a.scheduler.Run(ctx, interval)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	resourceCount := flag.Int("resources", len(kinds), fmt.Sprintf("Number of distinct resource types to register (max %d).", len(kinds)))
	staleFraction := flag.Float64("stale", 0.25, "Fraction of resources removed from storage while staying registered.")
	churn := flag.Int("churn", 2, "Reader registrations toggled per frame.")
	seed := flag.Int64("seed", 1, "Seed for the churn system.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("verbose", false, "Log registry lifecycle events.")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()
	traitres.SetLogger(logger)
	sugar := logger.Sugar()

	count := min(max(*resourceCount, 0), len(kinds))
	stale := int(float64(count) * min(max(*staleFraction, 0), 1))

	sugar.Infow("starting trait resource stress test", "resources", count, "stale", stale, "churn", *churn)

	app := ecs.NewApp(ecs.NewComponentRegistry())
	ecs.InsertSingleton(app.Storage(), Visits{})

	for i, kind := range kinds[:count] {
		kind.insert(app, float64(i))
	}
	for _, kind := range kinds[:stale] {
		kind.remove(app)
	}

	app.AddSystem(&TickSystem{}).
		AddSystem(&SampleSystem{}).
		AddSystem(&ChurnSystem{
			Kinds:   kinds[:count],
			PerTick: *churn,
			Rand:    rand.New(rand.NewSource(*seed)),
		})

	report := &Report{
		Duration:       *duration,
		Resources:      count,
		Stale:          stale,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	sugar.Infow("running simulation", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			app.Update(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(app.Scheduler().Frames())
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if visits := ecs.GetSingleton[Visits](app.Storage()); visits != nil {
		report.Visits = *visits
	}
	report.Registries = traitres.Registries(app)

	sugar.Infow("simulation finished", "updates", report.TotalUpdates)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		sugar.Fatalf("failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

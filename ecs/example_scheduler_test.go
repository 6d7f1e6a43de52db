package ecs_test

import (
	"fmt"

	"github.com/plus3/traitres/ecs"
)

type Weather struct {
	Temperature float64
	Raining     bool
}

type Harvest struct {
	Bushels int
}

type ClimateSystem struct {
	Weather ecs.Singleton[Weather]
	Warming float64
}

func (s *ClimateSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.Weather.Get()
	w.Temperature += s.Warming * frame.DeltaTime
	w.Raining = w.Temperature < 20
}

type FarmingSystem struct {
	Weather ecs.Singleton[Weather]
	Harvest ecs.Singleton[Harvest]
}

func (s *FarmingSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Weather.Get().Raining {
		s.Harvest.Get().Bushels += 2
	} else {
		s.Harvest.Get().Bushels++
	}
}

// ExampleScheduler demonstrates building a simulation loop out of systems that
// share singleton state. The Scheduler initializes Singleton fields on
// registration and runs systems in registration order.
func ExampleScheduler() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.InsertSingleton(storage, Weather{Temperature: 18})
	ecs.InsertSingleton(storage, Harvest{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClimateSystem{Warming: 1})
	scheduler.Register(&FarmingSystem{})

	for i := 0; i < 4; i++ {
		scheduler.Once(1.0)
		w := ecs.GetSingleton[Weather](storage)
		fmt.Printf("day %d: %.0f degrees, raining=%v, bushels=%d\n",
			i+1, w.Temperature, w.Raining, ecs.GetSingleton[Harvest](storage).Bushels)
	}

	stats := scheduler.GetStats()
	fmt.Printf("%d systems, %d executions\n", stats.SystemCount, stats.TotalExecutions)

	// Output:
	// day 1: 19 degrees, raining=true, bushels=2
	// day 2: 20 degrees, raining=false, bushels=3
	// day 3: 21 degrees, raining=false, bushels=4
	// day 4: 22 degrees, raining=false, bushels=5
	// 2 systems, 8 executions
}

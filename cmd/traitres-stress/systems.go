package main

import (
	"math/rand"

	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// Visits counts traversal outcomes across all frames.
type Visits struct {
	Present int64
	Absent  int64
	Sum     float64
}

// TickSystem advances every registered Ticker.
type TickSystem struct {
	Tickers traitres.Resources[Ticker]
	Visits  ecs.Singleton[Visits]
}

func (s *TickSystem) Execute(frame *ecs.UpdateFrame) {
	visits := s.Visits.Get()
	for ticker, ok := range s.Tickers.IterMut().All() {
		if !ok {
			visits.Absent++
			continue
		}
		ticker.Tick(frame.DeltaTime)
		visits.Present++
	}
}

// SampleSystem sums the readings of every registered Reader.
type SampleSystem struct {
	Readers traitres.Resources[Reader]
	Visits  ecs.Singleton[Visits]
}

func (s *SampleSystem) Execute(frame *ecs.UpdateFrame) {
	visits := s.Visits.Get()
	for reader, ok := range s.Readers.Iter().All() {
		if !ok {
			visits.Absent++
			continue
		}
		visits.Sum += reader.Reading()
		visits.Present++
	}
}

// ChurnSystem toggles Reader registrations to exercise registry replacement and removal.
type ChurnSystem struct {
	Kinds   []resourceKind
	PerTick int
	Rand    *rand.Rand
}

func (s *ChurnSystem) Execute(frame *ecs.UpdateFrame) {
	if len(s.Kinds) == 0 {
		return
	}
	for i := 0; i < s.PerTick; i++ {
		kind := s.Kinds[s.Rand.Intn(len(s.Kinds))]
		kind.setReader(frame.Storage, s.Rand.Intn(2) == 0)
	}
}

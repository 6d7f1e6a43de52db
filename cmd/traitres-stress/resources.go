package main

import (
	"math"

	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

// Ticker is advanced once per frame.
type Ticker interface {
	traitres.Trait
	Tick(dt float64)
}

// Reader exposes a reading that the sampling system aggregates.
type Reader interface {
	traitres.Trait
	Reading() float64
}

// Gauge is a resource whose distinct instantiations give the stress test many concrete types.
type Gauge[K any] struct {
	traitres.Resource
	Phase float64
	Ticks int64
	Value float64
}

func (g *Gauge[K]) Tick(dt float64) {
	g.Ticks++
	g.Phase += dt
	g.Value = math.Sin(g.Phase)
}

func (g *Gauge[K]) Reading() float64 {
	return g.Value
}

type (
	k00 struct{}
	k01 struct{}
	k02 struct{}
	k03 struct{}
	k04 struct{}
	k05 struct{}
	k06 struct{}
	k07 struct{}
	k08 struct{}
	k09 struct{}
	k10 struct{}
	k11 struct{}
	k12 struct{}
	k13 struct{}
	k14 struct{}
	k15 struct{}
)

// resourceKind bundles the typed operations for one Gauge instantiation.
type resourceKind struct {
	insert    func(p ecs.StorageProvider, phase float64)
	remove    func(p ecs.StorageProvider) bool
	setReader func(p ecs.StorageProvider, on bool)
}

func kindOf[K any]() resourceKind {
	return resourceKind{
		insert: func(p ecs.StorageProvider, phase float64) {
			traitres.InsertResourceAs[Ticker](p, Gauge[K]{Phase: phase})
			traitres.RegisterResourceAs[Reader, Gauge[K]](p)
		},
		remove: func(p ecs.StorageProvider) bool {
			return ecs.RemoveSingleton[Gauge[K]](p.Storage())
		},
		setReader: func(p ecs.StorageProvider, on bool) {
			if !on {
				traitres.UnregisterResourceFromTrait[Reader, Gauge[K]](p)
				return
			}
			if ecs.HasSingleton[Gauge[K]](p.Storage()) {
				traitres.RegisterResourceAs[Reader, Gauge[K]](p)
			}
		},
	}
}

var kinds = []resourceKind{
	kindOf[k00](), kindOf[k01](), kindOf[k02](), kindOf[k03](),
	kindOf[k04](), kindOf[k05](), kindOf[k06](), kindOf[k07](),
	kindOf[k08](), kindOf[k09](), kindOf[k10](), kindOf[k11](),
	kindOf[k12](), kindOf[k13](), kindOf[k14](), kindOf[k15](),
}

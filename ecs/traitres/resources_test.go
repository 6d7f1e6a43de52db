package traitres_test

import (
	"strconv"

	"github.com/plus3/traitres/ecs"
	"github.com/plus3/traitres/ecs/traitres"
)

type Incrementer interface {
	traitres.Trait
	Value() int32
	Increment()
}

type StringIncrementer interface {
	traitres.Trait
	StringValue() string
	IncrementString()
}

type Number struct {
	traitres.Resource
	value int32
}

func (n *Number) Value() int32 { return n.value }
func (n *Number) Increment()   { n.value++ }

type Number2 struct {
	traitres.Resource
	str   string
	value int32
}

func (n *Number2) Value() int32        { return n.value }
func (n *Number2) Increment()          { n.value++ }
func (n *Number2) StringValue() string { return n.str }

func (n *Number2) IncrementString() {
	i, _ := strconv.Atoi(n.str)
	n.str = strconv.Itoa(i + 1)
}

// Unmarked has the right methods but does not embed traitres.Resource.
type Unmarked struct {
	value int32
}

func (u *Unmarked) Value() int32 { return u.value }
func (u *Unmarked) Increment()   { u.value++ }

type IncrementSystem struct {
	Counters traitres.Resources[Incrementer]
}

func (s *IncrementSystem) Execute(frame *ecs.UpdateFrame) {
	for counter, ok := range s.Counters.IterMut().All() {
		if ok {
			counter.Increment()
		}
	}
}

type IncrementStringSystem struct {
	Counters traitres.Resources[StringIncrementer]
}

func (s *IncrementStringSystem) Execute(frame *ecs.UpdateFrame) {
	for counter, ok := range s.Counters.IterMut().All() {
		if ok {
			counter.IncrementString()
		}
	}
}

func newTestApp() *ecs.App {
	return ecs.NewApp(ecs.NewComponentRegistry())
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

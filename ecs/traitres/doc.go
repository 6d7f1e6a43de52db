// Package traitres lets singleton resources be registered under an interface
// ("trait") and iterated through that interface without knowing their concrete types.
//
// An interface opts in by embedding Trait, and concrete resources opt in by
// embedding Resource:
//
//	type Incrementer interface {
//		traitres.Trait
//		Value() int
//		Increment()
//	}
//
//	type Counter struct {
//		traitres.Resource
//		N int
//	}
//
//	func (c *Counter) Value() int { return c.N }
//	func (c *Counter) Increment() { c.N++ }
//
//	traitres.InitResourceAs[Incrementer, Counter](app)
//	for inc, ok := range traitres.GetResourcesTraitMut[Incrementer](app).All() {
//		if ok {
//			inc.Increment()
//		}
//	}
//
// Each trait keeps a registry singleton in the storage. The registry is not told
// when a resource is removed from the storage directly; iteration then yields the
// zero value with ok == false for that slot. Use UnregisterResourceFromTrait before
// removing a resource to keep the registry in sync.
package traitres

package ecs

import (
	"iter"
	"weak"

	"github.com/kamstrup/intmap"
)

// Registry is the public façade of the ECS: it owns one entity allocator and
// one pool per component type that has been used with it. Multiple registries
// are fully independent.
//
// The registry is not safe for concurrent mutation. Pointers returned by Get,
// TryGet and Emplace, and the pointers bound into view rows, alias registry
// storage and are invalidated by the next mutation of the same pool.
type Registry struct {
	entities   EntityManager
	components componentManager
	refs       *intmap.Map[Entity, weak.Pointer[EntityRef]]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: newComponentManager(),
		refs:       intmap.New[Entity, weak.Pointer[EntityRef]](256),
	}
}

// Create allocates a live entity id.
func (r *Registry) Create() Entity {
	return r.entities.Create()
}

// Destroy removes every component owned by e across all pools, then retires
// the id. The cascade runs first so component storage never outlives the
// "entity still exists" window. Destroying a dead entity is a no-op.
func (r *Registry) Destroy(e Entity) {
	r.invalidateRef(e)
	r.components.removeAllForEntity(e)
	r.entities.Destroy(e)
}

// IsAlive reports whether e is the current live incarnation of its slot.
func (r *Registry) IsAlive(e Entity) bool {
	return r.entities.IsAlive(e)
}

// Generation returns the reuse counter of e's slot.
func (r *Registry) Generation(e Entity) uint32 {
	return r.entities.Generation(e)
}

// EntityCount returns the number of currently alive entities.
func (r *Registry) EntityCount() int {
	return r.entities.LiveCount()
}

// Entities returns an iterator over all currently alive entity ids in slot
// order.
func (r *Registry) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < r.entities.slotCount(); i++ {
			e := Entity(i)
			if r.entities.IsAlive(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Add associates a component value with e, overwriting any existing component
// of that type.
func Add[T any](r *Registry, e Entity, value T) {
	poolFor[T](&r.components, true).Add(e, value)
}

// Emplace reserves e's component slot of type T and returns a pointer to it
// for in-place construction. An existing component is reset to zero first.
// The pointer is valid until the next mutation of the pool.
func Emplace[T any](r *Registry, e Entity) *T {
	return poolFor[T](&r.components, true).Emplace(e)
}

// Remove deletes e's component of type T. Removing an absent component is a
// no-op.
func Remove[T any](r *Registry, e Entity) {
	if p := poolFor[T](&r.components, false); p != nil {
		p.Remove(e)
	}
}

// Has reports whether e has a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	p := poolFor[T](&r.components, false)
	return p != nil && p.Has(e)
}

// Get returns a pointer to e's component of type T. It panics when e has no
// such component; use TryGet for the checked form.
func Get[T any](r *Registry, e Entity) *T {
	v, ok := TryGet[T](r, e)
	if !ok {
		panic("entity has no component of the requested type")
	}
	return v
}

// TryGet returns a pointer to e's component of type T, or (nil, false) when
// absent.
func TryGet[T any](r *Registry, e Entity) (*T, bool) {
	p := poolFor[T](&r.components, false)
	if p == nil {
		return nil, false
	}
	return p.Get(e)
}

// PoolOf exposes the raw pool for T, or nil if no component of that type has
// ever been added. Views and tooling build on this.
func PoolOf[T any](r *Registry) *Pool[T] {
	return poolFor[T](&r.components, false)
}

// PoolStat describes one component pool for inspection tooling.
type PoolStat struct {
	Type string
	Size int
}

// PoolStats returns one entry per materialised pool, in bucket order.
func (r *Registry) PoolStats() []PoolStat {
	stats := make([]PoolStat, 0, r.components.pools.len())
	for pool := range r.components.pools.all() {
		stats = append(stats, PoolStat{
			Type: pool.componentType().String(),
			Size: pool.Size(),
		})
	}
	return stats
}

// PoolCount returns the number of materialised pools.
func (r *Registry) PoolCount() int {
	return r.components.pools.len()
}

// ComponentTypeNames returns the type names of every component e currently
// owns, in pool-bucket order.
func (r *Registry) ComponentTypeNames(e Entity) []string {
	var names []string
	for pool := range r.components.pools.all() {
		if pool.Has(e) {
			names = append(names, pool.componentType().String())
		}
	}
	return names
}

// Components returns pointers to every component e currently owns, as
// interface values, in pool-bucket order. Inspection tooling walks these with
// reflection; the pointers follow the usual aliasing rules.
func (r *Registry) Components(e Entity) []any {
	var comps []any
	for pool := range r.components.pools.all() {
		if c := pool.component(e); c != nil {
			comps = append(comps, c)
		}
	}
	return comps
}

package ecs

// componentManager resolves a component type to its pool, creating pools
// lazily on first use, and hosts the type-agnostic cascade used by entity
// destruction.
type componentManager struct {
	pools *poolMap
}

func newComponentManager() componentManager {
	return componentManager{pools: newPoolMap()}
}

// poolFor returns the pool for T. With create set, a missing pool is created
// and registered; otherwise nil is returned.
func poolFor[T any](m *componentManager, create bool) *Pool[T] {
	key := keyFor[T]()
	if existing := m.pools.get(key); existing != nil {
		return existing.(*Pool[T])
	}
	if !create {
		return nil
	}
	p := newPool[T]()
	m.pools.insert(key, p)
	return p
}

// removeAllForEntity drops every component owned by e by invoking the erased
// Remove on each pool.
func (m *componentManager) removeAllForEntity(e Entity) {
	for pool := range m.pools.all() {
		pool.Remove(e)
	}
}

package ecs

// EntityManager hands out entity ids with generational reuse. Ids are dense:
// a fresh id is the next unused slot, and destroyed ids are recycled from a
// free list with their generation counter bumped.
type EntityManager struct {
	generations Array[uint32]
	alive       Array[bool]
	free        Array[Entity]
	liveCount   int
}

// Create returns a live entity id, recycling a destroyed slot when one is
// available.
func (m *EntityManager) Create() Entity {
	if !m.free.Empty() {
		e := m.free.Back()
		m.free.Pop()

		// generation wraps at 2^32 reuses of one slot
		m.generations.Set(int(e), m.generations.At(int(e))+1)
		m.alive.Set(int(e), true)
		m.liveCount++
		return e
	}

	e := Entity(m.generations.Len())
	m.generations.Push(0)
	m.alive.Push(true)
	m.liveCount++
	return e
}

// IsAlive reports whether e is the current live incarnation of its slot.
func (m *EntityManager) IsAlive(e Entity) bool {
	return int(e) < m.generations.Len() && m.alive.At(int(e))
}

// Destroy retires e, putting its id on the free list. Destroying a dead
// entity is a no-op.
func (m *EntityManager) Destroy(e Entity) {
	if !m.IsAlive(e) {
		return
	}
	m.alive.Set(int(e), false)
	m.free.Push(e)
	m.liveCount--
}

// Generation returns the reuse counter of e's slot, or 0 for a slot that has
// never been allocated.
func (m *EntityManager) Generation(e Entity) uint32 {
	if int(e) < m.generations.Len() {
		return m.generations.At(int(e))
	}
	return 0
}

// LiveCount returns the number of currently alive entities.
func (m *EntityManager) LiveCount() int {
	return m.liveCount
}

// slotCount returns how many slots have ever been allocated.
func (m *EntityManager) slotCount() int {
	return m.generations.Len()
}

package ecs

// Commands buffers registry mutations so they can be applied after a view
// traversal finishes. Views forbid structural changes to participating pools
// while they run; queue the changes here and Flush once iteration is done.
type Commands struct {
	destroys []Entity
	ops      []componentCommand
	defers   []func()
}

type componentCommand struct {
	entity Entity
	apply  func(*Registry, Entity)
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Defer queues an arbitrary function, run after all queued mutations.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// AddComponent queues a component addition.
func AddComponent[T any](c *Commands, e Entity, value T) {
	c.ops = append(c.ops, componentCommand{
		entity: e,
		apply: func(r *Registry, e Entity) {
			Add[T](r, e, value)
		},
	})
}

// RemoveComponent queues a component removal.
func RemoveComponent[T any](c *Commands, e Entity) {
	c.ops = append(c.ops, componentCommand{
		entity: e,
		apply: func(r *Registry, e Entity) {
			Remove[T](r, e)
		},
	})
}

// Flush applies all queued commands to r, resetting the buffer. Destroys run
// first; component operations against a destroyed entity are dropped so a
// queued add cannot resurrect components on a recycled slot.
func (c *Commands) Flush(r *Registry) {
	destroyed := make(map[Entity]bool)

	for _, e := range c.destroys {
		r.Destroy(e)
		destroyed[e] = true
	}

	for _, op := range c.ops {
		if !destroyed[op.entity] {
			op.apply(r, op.entity)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.destroys = c.destroys[:0]
	c.ops = c.ops[:0]
	c.defers = c.defers[:0]
}

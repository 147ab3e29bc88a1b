package ecs

import "weak"

// EntityRef is a stable, generation-validated handle to an entity. Unlike a
// raw Entity id, a ref stops resolving once its entity is destroyed, even if
// the id has been recycled for a new incarnation.
type EntityRef struct {
	Entity     Entity
	Generation uint32
}

// Ref returns a handle to e, or nil when e is not alive. Repeated calls for
// the same live entity return the same *EntityRef while anyone still holds
// it; the registry only keeps weak pointers, so unused refs are collected.
func (r *Registry) Ref(e Entity) *EntityRef {
	if !r.entities.IsAlive(e) {
		return nil
	}

	if weakPtr, ok := r.refs.Get(e); ok {
		if ref := weakPtr.Value(); ref != nil && ref.Generation == r.entities.Generation(e) {
			return ref
		}
		// weak pointer is dead or from a prior incarnation
		r.refs.Del(e)
	}

	ref := &EntityRef{Entity: e, Generation: r.entities.Generation(e)}
	r.refs.Put(e, weak.Make(ref))
	return ref
}

// Resolve returns the entity a ref points to and whether it is still the same
// live incarnation. A nil or invalidated ref resolves to (InvalidEntity,
// false).
func (r *Registry) Resolve(ref *EntityRef) (Entity, bool) {
	if ref == nil || ref.Entity == InvalidEntity {
		return InvalidEntity, false
	}
	if !r.entities.IsAlive(ref.Entity) || r.entities.Generation(ref.Entity) != ref.Generation {
		return InvalidEntity, false
	}
	return ref.Entity, true
}

// invalidateRef marks any outstanding ref for e as dead and drops it from the
// cache. Called on entity destruction.
func (r *Registry) invalidateRef(e Entity) {
	weakPtr, ok := r.refs.Get(e)
	if !ok {
		return
	}
	if ref := weakPtr.Value(); ref != nil {
		ref.Entity = InvalidEntity
		ref.Generation = 0
	}
	r.refs.Del(e)
}

package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View iterates the intersection of the component pools named by T's fields.
// T must be a struct whose fields are pointers to component types. Named
// fields can be marked optional with the `ecs:"optional"` struct tag:
// optional components are filled when present and left nil otherwise, and
// never constrain the intersection.
//
// Construction captures the current pool for each field (possibly nil for a
// type that has never been added) and picks the smallest required pool as the
// driving pool. Iteration walks the driving pool's packed entity list and
// filters on membership in every other required pool, so the cost is
// O(n_min * (k-1)) lookups. If any required pool is missing, the view is
// empty.
//
// Row fields point into the underlying dense arrays. Mutating any pool that
// participates in the view during a traversal invalidates them; the view
// detects structural mutation and panics. Buffer such changes through
// Commands instead.
type View[T any] struct {
	registry    *Registry
	pools       []componentPool
	optional    []bool
	fieldOffset []uintptr
	drive       int // index into pools, -1 when a required pool is missing
}

// NewView creates a view over the component types named by T's fields.
func NewView[T any](r *Registry) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	pools := make([]componentPool, 0, structType.NumField())
	optional := make([]bool, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		var pool componentPool
		if erased := r.components.pools.get(keyOf(field.Type.Elem())); erased != nil {
			pool = erased
		}

		pools = append(pools, pool)
		optional = append(optional, isOptional)
		fieldOffset = append(fieldOffset, field.Offset)
	}

	v := &View[T]{
		registry:    r,
		pools:       pools,
		optional:    optional,
		fieldOffset: fieldOffset,
	}
	v.drive = v.findDrivingPool()
	return v
}

// findDrivingPool returns the index of the smallest required pool, or -1 when
// a required pool has not been materialised.
func (v *View[T]) findDrivingPool() int {
	drive := -1
	smallest := int(^uint(0) >> 1)

	for i, pool := range v.pools {
		if v.optional[i] {
			continue
		}
		if pool == nil {
			return -1
		}
		if pool.Size() < smallest {
			smallest = pool.Size()
			drive = i
		}
	}
	return drive
}

// snapshotVersions records the structural version of every captured pool.
func (v *View[T]) snapshotVersions() []uint32 {
	versions := make([]uint32, len(v.pools))
	for i, pool := range v.pools {
		if pool != nil {
			versions[i] = pool.version()
		}
	}
	return versions
}

func (v *View[T]) checkVersions(versions []uint32) {
	for i, pool := range v.pools {
		if pool != nil && pool.version() != versions[i] {
			panic("pool mutated during view traversal")
		}
	}
}

// fill populates the row struct for e. Returns false when e is missing a
// required component.
func (v *View[T]) fill(rowPtr unsafe.Pointer, e Entity) bool {
	for i, pool := range v.pools {
		fieldPtr := unsafe.Pointer(uintptr(rowPtr) + v.fieldOffset[i])

		if pool == nil {
			if v.optional[i] {
				*(*unsafe.Pointer)(fieldPtr) = nil
				continue
			}
			return false
		}

		componentPtr := pool.componentPtr(e)
		if componentPtr == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
	return true
}

// Iter returns an iterator over (entity, row) pairs for every entity that has
// all required components. Rows are populated fresh for each entity; optional
// fields are nil when absent.
func (v *View[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		if v.drive < 0 {
			return
		}

		driving := v.pools[v.drive]
		versions := v.snapshotVersions()

		var row T
		rowPtr := unsafe.Pointer(&row)

		for i := 0; i < driving.Size(); i++ {
			e := driving.entityAt(i)
			if !v.fill(rowPtr, e) {
				continue
			}
			if !yield(e, row) {
				return
			}
			v.checkVersions(versions)
		}
	}
}

// Entities returns an iterator over the entities in the intersection, without
// populating rows.
func (v *View[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if v.drive < 0 {
			return
		}

		driving := v.pools[v.drive]
		versions := v.snapshotVersions()

		for i := 0; i < driving.Size(); i++ {
			e := driving.entityAt(i)
			if !v.hasRequired(e) {
				continue
			}
			if !yield(e) {
				return
			}
			v.checkVersions(versions)
		}
	}
}

func (v *View[T]) hasRequired(e Entity) bool {
	for i, pool := range v.pools {
		if v.optional[i] || i == v.drive {
			continue
		}
		if !pool.Has(e) {
			return false
		}
	}
	return true
}

// Each invokes fn for every (entity, row) pair in the view.
func (v *View[T]) Each(fn func(Entity, T)) {
	for e, row := range v.Iter() {
		fn(e, row)
	}
}

// Count returns the number of entities currently in the intersection.
func (v *View[T]) Count() int {
	n := 0
	for range v.Entities() {
		n++
	}
	return n
}

package ecs

// invalidIndex marks a sparse cell with no dense entry.
const invalidIndex = ^uint32(0)

// sparseFloor is the minimum sparse capacity allocated on first growth.
const sparseFloor = 64

// SparseSet maps entity ids to values of type T with O(1) insert, remove and
// lookup and a packed value array for contiguous iteration.
//
// Layout: sparse[id] holds an index into dense, or invalidIndex; dense holds
// the values; packed parallels dense and holds each value's owner id. Removal
// is swap-pop, so dense order is insertion order modulo reshuffles.
type SparseSet[T any] struct {
	sparse Array[uint32]
	dense  Array[T]
	packed Array[Entity]
}

// NewSparseSet creates a SparseSet with room for capacity values.
func NewSparseSet[T any](capacity int) *SparseSet[T] {
	s := &SparseSet[T]{}
	s.dense.Reserve(capacity)
	s.packed.Reserve(capacity)
	s.sparse.ResizeFill(capacity, invalidIndex)
	return s
}

// Has reports whether k has a value in the set. Keys beyond the sparse range
// are simply absent, never an error.
func (s *SparseSet[T]) Has(k Entity) bool {
	return int(k) < s.sparse.Len() &&
		s.sparse.At(int(k)) != invalidIndex &&
		int(s.sparse.At(int(k))) < s.dense.Len()
}

// ensureSparse grows the sparse array by doubling from max(sparseFloor,
// current) until k fits.
func (s *SparseSet[T]) ensureSparse(k Entity) {
	if int(k) < s.sparse.Len() {
		return
	}
	newCap := s.sparse.Len()
	if newCap < sparseFloor {
		newCap = sparseFloor
	}
	for int(k) >= newCap {
		newCap *= 2
	}
	s.sparse.ResizeFill(newCap, invalidIndex)
}

// Add associates value with k, overwriting any existing value.
func (s *SparseSet[T]) Add(k Entity, value T) {
	s.ensureSparse(k)
	if s.Has(k) {
		s.dense.Set(int(s.sparse.At(int(k))), value)
		return
	}
	s.sparse.Set(int(k), uint32(s.dense.Len()))
	s.dense.Push(value)
	s.packed.Push(k)
}

// Emplace reserves the slot for k and returns a pointer to it so the caller
// can construct the value in place. An existing value is reset to zero. The
// pointer is valid until the next mutation of the set.
func (s *SparseSet[T]) Emplace(k Entity) *T {
	s.ensureSparse(k)
	var zero T
	if s.Has(k) {
		idx := int(s.sparse.At(int(k)))
		s.dense.Set(idx, zero)
		return s.dense.Ptr(idx)
	}
	s.sparse.Set(int(k), uint32(s.dense.Len()))
	s.dense.Push(zero)
	s.packed.Push(k)
	return s.dense.Ptr(s.dense.Len() - 1)
}

// Remove deletes the value for k by swap-pop: the last dense entry moves into
// the removed slot, then both arrays shrink by one. Removing an absent key is
// a no-op.
func (s *SparseSet[T]) Remove(k Entity) {
	if !s.Has(k) {
		return
	}

	removed := int(s.sparse.At(int(k)))
	last := s.dense.Len() - 1

	// move last element into removed slot
	s.dense.Set(removed, s.dense.At(last))
	moved := s.packed.At(last)
	s.packed.Set(removed, moved)
	s.sparse.Set(int(moved), uint32(removed))

	s.dense.Pop()
	s.packed.Pop()
	s.sparse.Set(int(k), invalidIndex)
}

// Get returns a pointer to k's value, or (nil, false) when absent. The
// pointer is valid until the next mutation of the set.
func (s *SparseSet[T]) Get(k Entity) (*T, bool) {
	if !s.Has(k) {
		return nil, false
	}
	return s.dense.Ptr(int(s.sparse.At(int(k)))), true
}

// Entities returns the packed owner ids. The slice aliases set storage and is
// valid until the next mutation.
func (s *SparseSet[T]) Entities() []Entity {
	return s.packed.Data()
}

// Values returns the dense value array. The slice aliases set storage and is
// valid until the next mutation.
func (s *SparseSet[T]) Values() []T {
	return s.dense.Data()
}

// Size returns the number of stored values.
func (s *SparseSet[T]) Size() int {
	return s.dense.Len()
}

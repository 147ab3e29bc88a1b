package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkSparseSetInvariants asserts the structural invariants that tie the
// three arrays together: sparse and packed are mutual inverses, and dense and
// packed stay parallel.
func checkSparseSetInvariants[T any](t *testing.T, s *SparseSet[T]) {
	t.Helper()

	assert.Equal(t, s.dense.Len(), s.packed.Len())

	for i := 0; i < s.packed.Len(); i++ {
		k := s.packed.At(i)
		assert.Equal(t, uint32(i), s.sparse.At(int(k)), "sparse[packed[%d]]", i)
	}

	for k := 0; k < s.sparse.Len(); k++ {
		idx := s.sparse.At(k)
		if idx == invalidIndex {
			continue
		}
		assert.Less(t, int(idx), s.dense.Len())
		assert.Equal(t, Entity(k), s.packed.At(int(idx)), "packed[sparse[%d]]", k)
	}
}

func TestSparseSetInvariantsUnderChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	set := NewSparseSet[int](0)
	live := map[Entity]bool{}

	for step := 0; step < 2000; step++ {
		k := Entity(rng.Intn(300))
		if rng.Intn(3) == 0 {
			set.Remove(k)
			delete(live, k)
		} else {
			set.Add(k, step)
			live[k] = true
		}
	}

	checkSparseSetInvariants(t, set)
	assert.Equal(t, len(live), set.Size())
	for k := range live {
		assert.True(t, set.Has(k))
	}
}

func TestSparseSetInvariantsAcrossGrowth(t *testing.T) {
	set := NewSparseSet[int](0)
	for i := 0; i < 200; i++ {
		set.Add(Entity(i), i*10)
	}
	checkSparseSetInvariants(t, set)

	for i := 0; i < 200; i += 2 {
		set.Remove(Entity(i))
	}
	checkSparseSetInvariants(t, set)
	assert.Equal(t, 100, set.Size())
}

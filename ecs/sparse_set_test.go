package ecs_test

import (
	"testing"

	"github.com/plus3/composia/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSparseSetAddAndGet(t *testing.T) {
	set := ecs.NewSparseSet[string](8)

	set.Add(3, "three")
	set.Add(7, "seven")

	assert.True(t, set.Has(3))
	assert.True(t, set.Has(7))
	assert.False(t, set.Has(4))
	assert.Equal(t, 2, set.Size())

	v, ok := set.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "three", *v)

	v, ok = set.Get(4)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSparseSetAddOverwrites(t *testing.T) {
	set := ecs.NewSparseSet[int](8)

	set.Add(1, 10)
	set.Add(1, 20)

	assert.Equal(t, 1, set.Size())
	v, _ := set.Get(1)
	assert.Equal(t, 20, *v)
}

func TestSparseSetEmplace(t *testing.T) {
	set := ecs.NewSparseSet[Position](8)

	p := set.Emplace(5)
	p.X = 1.5
	p.Y = 2.5

	got, ok := set.Get(5)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 1.5, Y: 2.5}, *got)

	// emplacing an existing key resets the slot
	p = set.Emplace(5)
	assert.Equal(t, Position{}, *p)
	assert.Equal(t, 1, set.Size())
}

func TestSparseSetRemoveSwapPop(t *testing.T) {
	set := ecs.NewSparseSet[int](8)

	set.Add(10, 1)
	set.Add(20, 2)
	set.Add(30, 3)

	set.Remove(20)

	assert.Equal(t, 2, set.Size())
	assert.True(t, set.Has(10))
	assert.False(t, set.Has(20))
	assert.True(t, set.Has(30))

	// the packed list holds the survivors in some order
	assert.ElementsMatch(t, []ecs.Entity{10, 30}, set.Entities())

	v, _ := set.Get(30)
	assert.Equal(t, 3, *v)
}

func TestSparseSetRemoveLast(t *testing.T) {
	set := ecs.NewSparseSet[int](8)
	set.Add(1, 100)
	set.Remove(1)

	assert.Equal(t, 0, set.Size())
	assert.False(t, set.Has(1))

	// re-adding after removal works
	set.Add(1, 200)
	v, _ := set.Get(1)
	assert.Equal(t, 200, *v)
}

func TestSparseSetRemoveAbsentIsNoop(t *testing.T) {
	set := ecs.NewSparseSet[int](8)
	set.Add(1, 100)

	set.Remove(2)
	set.Remove(9999) // beyond the sparse range

	assert.Equal(t, 1, set.Size())
	assert.True(t, set.Has(1))
}

func TestSparseSetGrowsBeyondFloor(t *testing.T) {
	set := ecs.NewSparseSet[int](0)

	// keys straddling the 64-cell floor and well past it
	keys := []ecs.Entity{0, 63, 64, 65, 127, 128, 1000}
	for i, k := range keys {
		set.Add(k, i)
	}

	assert.Equal(t, len(keys), set.Size())
	for i, k := range keys {
		v, ok := set.Get(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, i, *v)
	}
	assert.False(t, set.Has(999))
}

func TestSparseSetLargeKeyOnEmptySet(t *testing.T) {
	set := ecs.NewSparseSet[int](0)
	assert.False(t, set.Has(123456))

	set.Add(123456, 1)
	assert.True(t, set.Has(123456))
}

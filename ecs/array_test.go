package ecs_test

import (
	"testing"

	"github.com/plus3/composia/ecs"
	"github.com/stretchr/testify/assert"
)

func TestArrayInitialState(t *testing.T) {
	arr := ecs.NewArray[int](4)
	assert.Equal(t, 0, arr.Len())
	assert.GreaterOrEqual(t, arr.Cap(), 4)
	assert.True(t, arr.Empty())
}

func TestArrayPushIncreasesLen(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(10)
	arr.Push(20)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 10, arr.At(0))
	assert.Equal(t, 20, arr.At(1))
}

func TestArrayPushAndPop(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(1)
	arr.Push(2)
	arr.Push(3)
	arr.Pop()
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 1, arr.At(0))
	assert.Equal(t, 2, arr.At(1))
}

func TestArrayPopEmptyIsNoop(t *testing.T) {
	var arr ecs.Array[int]
	arr.Pop()
	assert.Equal(t, 0, arr.Len())
}

func TestArrayResizeGrowsWithZeroValues(t *testing.T) {
	var arr ecs.Array[int]
	arr.Resize(5)
	assert.Equal(t, 5, arr.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, arr.At(i))
	}
}

func TestArrayResizeShrinks(t *testing.T) {
	var arr ecs.Array[int]
	arr.Resize(5)
	arr.Resize(2)
	assert.Equal(t, 2, arr.Len())
}

func TestArrayResizeFill(t *testing.T) {
	var arr ecs.Array[int]
	arr.ResizeFill(3, 42)
	assert.Equal(t, 3, arr.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 42, arr.At(i))
	}
}

func TestArrayResizeFillKeepsExisting(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(7)
	arr.ResizeFill(3, 42)
	assert.Equal(t, 7, arr.At(0))
	assert.Equal(t, 42, arr.At(1))
	assert.Equal(t, 42, arr.At(2))
}

func TestArrayReserveIncreasesCap(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(1)
	oldCap := arr.Cap()
	arr.Reserve(oldCap * 4)
	assert.GreaterOrEqual(t, arr.Cap(), oldCap*4)
	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, 1, arr.At(0))
}

func TestArrayAtPanicsOnInvalidIndex(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(5)
	assert.Panics(t, func() { arr.At(1) })
	assert.Panics(t, func() { arr.At(-1) })
	assert.Panics(t, func() { arr.Set(1, 9) })
}

func TestArrayGrowsAutomatically(t *testing.T) {
	arr := ecs.NewArray[int](1)
	initialCap := arr.Cap()
	arr.Push(1)
	arr.Push(2)
	assert.Greater(t, arr.Cap(), initialCap)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 1, arr.At(0))
	assert.Equal(t, 2, arr.At(1))
}

func TestArrayGrowthMultiplier(t *testing.T) {
	arr := ecs.NewArray[int](2)
	arr.SetGrowth(4)
	arr.Push(1)
	arr.Push(2)
	arr.Push(3)
	assert.Equal(t, 8, arr.Cap())
}

func TestArrayFrontBack(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(1)
	arr.Push(2)
	assert.Equal(t, 1, arr.Front())
	assert.Equal(t, 2, arr.Back())
}

func TestArrayEmpty(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(1)
	arr.Push(2)
	assert.False(t, arr.Empty())
	arr.Pop()
	arr.Pop()
	assert.True(t, arr.Empty())
}

func TestArrayClear(t *testing.T) {
	var arr ecs.Array[string]
	arr.Push("hello")
	arr.Push("world")
	arr.Clear()
	assert.Equal(t, 0, arr.Len())
	assert.True(t, arr.Empty())
}

func TestArrayStrings(t *testing.T) {
	var arr ecs.Array[string]
	arr.Push("Hello")
	arr.Push("World")
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, "Hello", arr.At(0))
	assert.Equal(t, "World", arr.At(1))

	arr.ResizeFill(4, "Test")
	assert.Equal(t, "Test", arr.At(2))
	assert.Equal(t, "Test", arr.At(3))
}

func TestArrayIterators(t *testing.T) {
	var arr ecs.Array[int]
	arr.Push(3)
	arr.Push(5)
	arr.Push(7)

	var sum int
	var indices []int
	for i, v := range arr.All() {
		indices = append(indices, i)
		sum += v
	}
	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, 15, sum)

	var values []int
	for v := range arr.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{3, 5, 7}, values)
}

package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorFullTraversal(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3})

	var elements []int
	it := buf.Iterator()
	for it.Next() {
		elements = append(elements, it.Value())
	}

	assert.NoError(t, it.Err())
	assert.Equal(t, []int{1, 2, 3}, elements)

	// exhausted, still no error
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestReverseIterator(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3})

	var elements []int
	it := buf.ReverseIterator()
	for it.Next() {
		elements = append(elements, it.Value())
	}

	assert.NoError(t, it.Err())
	assert.Equal(t, []int{3, 2, 1}, elements)
}

func TestIteratorDetectsMutations(t *testing.T) {
	t.Parallel()

	mutations := map[string]func(buf *Buffer[int]){
		"set":             func(buf *Buffer[int]) { _ = buf.Set(0, 9) },
		"append":          func(buf *Buffer[int]) { _ = buf.Append(9) },
		"insert":          func(buf *Buffer[int]) { _ = buf.Insert(0, 9) },
		"remove":          func(buf *Buffer[int]) { _, _ = buf.Remove(0) },
		"remove range":    func(buf *Buffer[int]) { _ = buf.RemoveRange(0, 1) },
		"clear":           func(buf *Buffer[int]) { buf.Clear() },
		"sort":            func(buf *Buffer[int]) { SortOrdered(buf) },
		"ensure capacity": func(buf *Buffer[int]) { _ = buf.EnsureCapacity(100) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			buf := FromSlice([]int{3, 1, 2})
			it := buf.Iterator()

			require.True(t, it.Next())
			mutate(buf)

			assert.False(t, it.Next())
			assert.ErrorIs(t, it.Err(), ErrConcurrentModification)

			// once failed, the iterator stays failed
			assert.False(t, it.Next())
		})
	}
}

func TestIteratorDetectsMutationBeforeFirstStep(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3})
	it := buf.Iterator()

	require.NoError(t, buf.Append(4))

	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
}

func TestRestartingIterationRecovers(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3})

	it := buf.Iterator()
	require.True(t, it.Next())
	require.NoError(t, buf.Append(4))
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), ErrConcurrentModification)

	restarted := buf.Iterator()
	var elements []int
	for restarted.Next() {
		elements = append(elements, restarted.Value())
	}
	assert.NoError(t, restarted.Err())
	assert.Equal(t, []int{1, 2, 3, 4}, elements)
}

func TestConcatIteratorChecksEveryRoot(t *testing.T) {
	t.Parallel()

	t.Run("second root mutated", func(t *testing.T) {
		first := FromSlice([]int{1, 2})
		second := FromSlice([]int{3, 4})
		it := first.View().Concat(second.View()).Iterator()

		require.True(t, it.Next())
		require.NoError(t, second.Append(5))

		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
	})

	t.Run("first root mutated", func(t *testing.T) {
		first := FromSlice([]int{1, 2})
		second := FromSlice([]int{3, 4})
		it := first.View().Concat(second.View()).Iterator()

		require.True(t, it.Next())
		require.NoError(t, first.Set(0, 9))

		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), ErrConcurrentModification)
	})

	t.Run("no mutation", func(t *testing.T) {
		first := FromSlice([]int{1, 2})
		second := FromSlice([]int{3, 4})
		it := first.View().Concat(second.View()).Iterator()

		var elements []int
		for it.Next() {
			elements = append(elements, it.Value())
		}
		assert.NoError(t, it.Err())
		assert.Equal(t, []int{1, 2, 3, 4}, elements)
	})
}

func TestIteratorOverComposedView(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3, 4})

	it := buf.View().Map(func(e int) int { return e * 10 }).Reverse().Iterator()

	var elements []int
	for it.Next() {
		elements = append(elements, it.Value())
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, []int{40, 30, 20, 10}, elements)
}

func TestIteratorIndex(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{7, 8})

	it := buf.Iterator()
	require.True(t, it.Next())
	assert.Zero(t, it.Index())
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Index())
}

func TestIteratorOnEmptyBuffer(t *testing.T) {
	t.Parallel()

	buf := New[int]()
	it := buf.Iterator()

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	buf := New[int]()
	assert.Zero(t, buf.Len())
	assert.Zero(t, buf.Cap())
	assert.Zero(t, buf.Version())
}

func TestNewWithCapacity(t *testing.T) {
	t.Parallel()

	buf := New[int](WithCapacity(50))
	assert.Zero(t, buf.Len())
	assert.Equal(t, 50, buf.Cap())

	// small hints are floored at the default capacity
	small := New[int](WithCapacity(3))
	assert.Equal(t, DefaultCapacity, small.Cap())
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	buf := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, DefaultCapacity, buf.Cap())
	assert.Equal(t, []int{1, 2, 3}, buf.ToSlice())

	// the buffer owns a copy
	elements := []int{1, 2, 3}
	buf = FromSlice(elements)
	elements[0] = 9
	assert.Equal(t, 1, buf.At(0))
}

func TestFromSliceWithKnownLargeSize(t *testing.T) {
	t.Parallel()

	elements := make([]int, 100)
	for i := range elements {
		elements[i] = i
	}

	buf := FromSlice(elements)
	assert.Equal(t, 100, buf.Len())
	assert.Equal(t, 100, buf.Cap()) // single exact allocation, no growth churn
	assert.Equal(t, elements, buf.ToSlice())
}

func TestFromSequence(t *testing.T) {
	t.Parallel()

	buf := FromSequence[int](SliceSequence[int]{4, 5, 6})
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []int{4, 5, 6}, buf.ToSlice())

	fromBuffer := FromSequence[int](buf)
	assert.Equal(t, buf.ToSlice(), fromBuffer.ToSlice())
}

func TestCollectEqualsFromSlice(t *testing.T) {
	t.Parallel()

	elements := []int{5, 6, 7, 8}

	i := 0
	next := func() (int, bool) {
		if i == len(elements) {
			return 0, false
		}
		e := elements[i]
		i++
		return e, true
	}

	collected, err := Collect(next)
	require.NoError(t, err)
	assert.Equal(t, FromSlice(elements).ToSlice(), collected.ToSlice())
}

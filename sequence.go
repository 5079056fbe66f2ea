package dynarray

// Sequence is a finite source of elements that can be read by index.
// At should panic if the index is out of bounds.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// SliceSequence adapts a Go slice to the Sequence interface.
type SliceSequence[T any] []T

func (s SliceSequence[T]) Len() int {
	return len(s)
}

func (s SliceSequence[T]) At(i int) T {
	return s[i]
}

func materializeSequence[T any](seq Sequence[T]) []T {
	elements := make([]T, seq.Len())
	for i := range elements {
		elements[i] = seq.At(i)
	}
	return elements
}

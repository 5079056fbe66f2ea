package dynarray

import (
	"github.com/inoxlang/dynarray/internal/utils"
)

// New creates an empty buffer. Unless WithCapacity is given, storage is not
// allocated until the first growth.
func New[T any](opts ...Option) *Buffer[T] {
	config := applyOptions(opts)
	b := &Buffer[T]{logger: config.logger}
	if config.initialCapacity > 0 {
		b.storage = make([]T, utils.Max(config.initialCapacity, DefaultCapacity))
	}
	return b
}

// FromSlice builds a buffer holding a copy of the given elements, performing
// a single allocation.
func FromSlice[T any](elements []T, opts ...Option) *Buffer[T] {
	b := New[T](opts...)
	if len(b.storage) < len(elements) {
		b.storage = make([]T, utils.Max(len(elements), DefaultCapacity))
	}
	copy(b.storage, elements)
	b.length = len(elements)
	return b
}

// FromSequence builds a buffer from a source whose size is known, performing
// a single allocation and a bulk copy.
func FromSequence[T any](seq Sequence[T], opts ...Option) *Buffer[T] {
	b := New[T](opts...)
	size := seq.Len()
	if len(b.storage) < size {
		b.storage = make([]T, utils.Max(size, DefaultCapacity))
	}
	for i := 0; i < size; i++ {
		b.storage[i] = seq.At(i)
	}
	b.length = size
	return b
}

// Collect builds a buffer by draining a pull source of unknown size, relying
// on amortized growth.
func Collect[T any](next func() (T, bool), opts ...Option) (*Buffer[T], error) {
	b := New[T](opts...)
	if err := b.AppendFrom(next); err != nil {
		return nil, err
	}
	return b, nil
}

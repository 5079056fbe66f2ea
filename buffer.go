// Package dynarray implements a growable, randomly indexable sequence backed
// by a single contiguous storage block, together with lazy views and
// fail-fast checked iterators over it.
package dynarray

import (
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"

	"github.com/inoxlang/dynarray/internal/capacity"
	"github.com/inoxlang/dynarray/internal/utils"
)

const (
	// DefaultCapacity is the smallest storage size ever allocated for a
	// non-empty buffer.
	DefaultCapacity = capacity.DefaultCapacity

	// MaxLength is the maximum representable buffer length.
	MaxLength = capacity.MaxLength
)

// Buffer is a growable mutable sequence stored in one contiguous block.
// Storage is resized by amortized doubling on growth and halving on trim,
// so a run of appends costs O(1) per element on average.
//
// A Buffer is single-owner and not safe for concurrent use. The version
// counter bumped on every mutation lets derived iterators detect that their
// source changed mid-traversal; it is a misuse diagnostic, not a
// synchronization mechanism.
type Buffer[T any] struct {
	storage []T // len(storage) is the capacity, slots in [length, cap) hold zero values
	length  int
	version uint64
	logger  zerolog.Logger
}

func (b *Buffer[T]) Len() int {
	return b.length
}

func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.length == 0
}

// Version returns the mutation counter. It increases on every mutating
// operation for the lifetime of the buffer and is never reset.
func (b *Buffer[T]) Version() uint64 {
	return b.version
}

func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.length {
		var zero T
		return zero, FormatErrIndexOutOfRange(i, b.length)
	}
	return b.storage[i], nil
}

// At implements Sequence. It panics if i is out of bounds.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.length {
		panic(FormatErrIndexOutOfRange(i, b.length))
	}
	return b.storage[i]
}

func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.length {
		return FormatErrIndexOutOfRange(i, b.length)
	}
	b.storage[i] = v
	b.version++
	return nil
}

// Append adds v at the end of the buffer, growing the storage if needed.
func (b *Buffer[T]) Append(v T) error {
	if b.length == MaxLength {
		return FormatErrBufferAtMaxLength()
	}
	if err := b.grow(b.length + 1); err != nil {
		return err
	}
	b.storage[b.length] = v
	b.length++
	b.version++
	return nil
}

// AppendValues adds all given values with a single growth computation.
func (b *Buffer[T]) AppendValues(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if b.length == MaxLength {
		return FormatErrBufferAtMaxLength()
	}
	if err := b.grow(b.length + len(values)); err != nil {
		return err
	}
	copy(b.storage[b.length:], values)
	b.length += len(values)
	b.version++
	return nil
}

// AppendSequence adds all elements of seq at the end of the buffer. seq may
// be the buffer itself or a view over it.
func (b *Buffer[T]) AppendSequence(seq Sequence[T]) error {
	return b.InsertSequence(b.length, seq)
}

// AppendFrom drains a pull source of unknown size, appending each element.
func (b *Buffer[T]) AppendFrom(next func() (T, bool)) error {
	for {
		v, ok := next()
		if !ok {
			return nil
		}
		if err := b.Append(v); err != nil {
			return err
		}
	}
}

// Insert places v at position i, shifting the elements in [i, length) one
// slot to the right.
func (b *Buffer[T]) Insert(i int, v T) error {
	if i < 0 || i > b.length {
		return FormatErrInsertionIndexOutOfRange(i, b.length)
	}
	if b.length == MaxLength {
		return FormatErrBufferAtMaxLength()
	}
	if err := b.grow(b.length + 1); err != nil {
		return err
	}
	copy(b.storage[i+1:b.length+1], b.storage[i:b.length])
	b.storage[i] = v
	b.length++
	b.version++
	return nil
}

// InsertSequence places all elements of seq starting at position i, doing a
// single block shift followed by a left-to-right element copy. A source that
// shares the buffer's storage (the buffer itself or a view rooted at it) is
// materialized first, otherwise the shift could clobber source elements
// before they are read.
func (b *Buffer[T]) InsertSequence(i int, seq Sequence[T]) error {
	if i < 0 || i > b.length {
		return FormatErrInsertionIndexOutOfRange(i, b.length)
	}
	seqLen := seq.Len()
	if seqLen == 0 {
		return nil
	}
	if b.length == MaxLength {
		return FormatErrBufferAtMaxLength()
	}

	var staged []T
	if b.aliases(seq) {
		staged = materializeSequence(seq)
	}

	if err := b.grow(b.length + seqLen); err != nil {
		return err
	}
	copy(b.storage[i+seqLen:b.length+seqLen], b.storage[i:b.length])

	if staged != nil {
		copy(b.storage[i:], staged)
	} else {
		for k := 0; k < seqLen; k++ {
			b.storage[i+k] = seq.At(k)
		}
	}
	b.length += seqLen
	b.version++
	return nil
}

// Remove deletes the element at position i and returns it, shifting
// [i+1, length) one slot to the left. The storage is not reallocated; use
// TrimToSize to release unused capacity.
func (b *Buffer[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= b.length {
		return zero, FormatErrIndexOutOfRange(i, b.length)
	}
	removed := b.storage[i]
	copy(b.storage[i:], b.storage[i+1:b.length])
	b.length--
	b.storage[b.length] = zero // release the trailing slot
	b.version++
	return removed, nil
}

// RemoveRange deletes count elements starting at position i. Removing zero
// elements is a no-op.
func (b *Buffer[T]) RemoveRange(i, count int) error {
	if count < 0 {
		return FormatErrNegativeCount(count)
	}
	if i < 0 || i+count < 0 || i+count > b.length {
		return FormatErrRangeOutOfRange(i, count, b.length)
	}
	if count == 0 {
		return nil
	}

	newLength := b.length - count
	copy(b.storage[i:], b.storage[i+count:b.length])

	var zero T
	for k := newLength; k < b.length; k++ {
		b.storage[k] = zero
	}
	b.length = newLength
	b.version++
	return nil
}

// Pop removes and returns the last element.
func (b *Buffer[T]) Pop() (T, error) {
	if b.length == 0 {
		var zero T
		return zero, ErrCannotPopFromEmptyBuffer
	}
	return b.Remove(b.length - 1)
}

// Dequeue removes and returns the first element.
func (b *Buffer[T]) Dequeue() (T, error) {
	if b.length == 0 {
		var zero T
		return zero, ErrCannotDequeueFromEmptyBuffer
	}
	return b.Remove(0)
}

// Clear removes all elements. The capacity is kept.
func (b *Buffer[T]) Clear() {
	b.clearSlots()
	b.length = 0
	b.version++
}

// ClearAndShrink removes all elements and shrinks the storage toward
// targetSize following the halving rule.
func (b *Buffer[T]) ClearAndShrink(targetSize int) {
	b.clearSlots()
	b.length = 0
	b.resizeStorage(capacity.ShrinkTarget(len(b.storage), utils.Max(targetSize, 0)))
	b.version++
}

// EnsureCapacity grows the storage so that n elements fit without further
// reallocation. It never shrinks.
func (b *Buffer[T]) EnsureCapacity(n int) error {
	if n <= len(b.storage) {
		return nil
	}
	target, err := capacity.GrowthTarget(len(b.storage), b.length, n)
	if err != nil {
		return err
	}
	if b.resizeStorage(target) {
		b.version++
	}
	return nil
}

// TrimToSize shrinks the storage to the smallest capacity holding the
// current length, following the halving rule. Calling it twice in a row is
// idempotent.
func (b *Buffer[T]) TrimToSize() {
	if b.resizeStorage(capacity.ShrinkTarget(len(b.storage), b.length)) {
		b.version++
	}
}

// SortStable sorts the live elements in place, preserving the relative order
// of elements that compare equal.
func (b *Buffer[T]) SortStable(less func(a, b T) bool) {
	live := b.storage[:b.length]
	sort.SliceStable(live, func(i, j int) bool {
		return less(live[i], live[j])
	})
	b.version++
}

// SortOrdered sorts a buffer of ordered elements in ascending order.
func SortOrdered[T constraints.Ordered](b *Buffer[T]) {
	b.SortStable(func(x, y T) bool {
		return x < y
	})
}

// CopyInto copies up to maxLen live elements into dest starting at position
// start and returns the number of elements copied.
func (b *Buffer[T]) CopyInto(dest []T, start, maxLen int) int {
	if start < 0 || start >= len(dest) || maxLen <= 0 {
		return 0
	}
	n := utils.Min(utils.Min(b.length, maxLen), len(dest)-start)
	copy(dest[start:start+n], b.storage[:n])
	return n
}

// ToSlice returns a copy of the live elements.
func (b *Buffer[T]) ToSlice() []T {
	return utils.CopySlice(b.storage[:b.length])
}

// grow resizes the storage so it can hold at least required elements.
// A negative required signals overflowed length arithmetic in the caller.
// grow does not bump the version: the calling mutation does.
func (b *Buffer[T]) grow(required int) error {
	if required >= 0 && required <= len(b.storage) {
		return nil
	}
	target, err := capacity.GrowthTarget(len(b.storage), b.length, required)
	if err != nil {
		return err
	}
	b.resizeStorage(target)
	return nil
}

// resizeStorage reallocates the storage to the target capacity, copying the
// live elements. It reports whether the capacity actually changed.
func (b *Buffer[T]) resizeStorage(target int) bool {
	if target == len(b.storage) {
		return false
	}
	newStorage := make([]T, target)
	copy(newStorage, b.storage[:b.length])
	b.logger.Debug().
		Int("from", len(b.storage)).
		Int("to", target).
		Int("len", b.length).
		Msg("resize buffer storage")
	b.storage = newStorage
	return true
}

func (b *Buffer[T]) clearSlots() {
	var zero T
	for i := 0; i < b.length; i++ {
		b.storage[i] = zero
	}
}

// aliases reports whether seq is known to read from b's storage.
func (b *Buffer[T]) aliases(seq Sequence[T]) bool {
	switch src := seq.(type) {
	case *Buffer[T]:
		return src == b
	case *viewSequence[T]:
		return src.view.referencesBuffer(b)
	}
	return false
}

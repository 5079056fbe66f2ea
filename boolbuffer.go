package dynarray

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/inoxlang/dynarray/internal/utils"
)

// BoolBuffer is a bit-packed variant of Buffer for booleans. It follows the
// same contract: an explicit logical length, a version counter bumped on
// every mutation, and fail-fast checked iterators. Capacity management is
// delegated to the underlying bitset.
type BoolBuffer struct {
	bits    *bitset.BitSet
	length  int
	version uint64
}

func NewBoolBuffer(values ...bool) *BoolBuffer {
	b := &BoolBuffer{
		bits: bitset.New(uint(utils.Max(len(values), DefaultCapacity))),
	}
	for i, v := range values {
		b.bits.SetTo(uint(i), v)
	}
	b.length = len(values)
	return b
}

func (b *BoolBuffer) Len() int {
	return b.length
}

func (b *BoolBuffer) IsEmpty() bool {
	return b.length == 0
}

func (b *BoolBuffer) Version() uint64 {
	return b.version
}

func (b *BoolBuffer) Get(i int) (bool, error) {
	if i < 0 || i >= b.length {
		return false, FormatErrIndexOutOfRange(i, b.length)
	}
	return b.bits.Test(uint(i)), nil
}

func (b *BoolBuffer) Set(i int, v bool) error {
	if i < 0 || i >= b.length {
		return FormatErrIndexOutOfRange(i, b.length)
	}
	b.bits.SetTo(uint(i), v)
	b.version++
	return nil
}

// Append adds v at the end of the buffer. The bitset grows as needed.
func (b *BoolBuffer) Append(v bool) {
	b.bits.SetTo(uint(b.length), v)
	b.length++
	b.version++
}

// Insert places v at position i, shifting the bits in [i, length) one
// position up.
func (b *BoolBuffer) Insert(i int, v bool) error {
	if i < 0 || i > b.length {
		return FormatErrInsertionIndexOutOfRange(i, b.length)
	}
	b.bits.InsertAt(uint(i))
	b.bits.SetTo(uint(i), v)
	b.length++
	b.version++
	return nil
}

// Remove deletes the bit at position i and returns it.
func (b *BoolBuffer) Remove(i int) (bool, error) {
	if i < 0 || i >= b.length {
		return false, FormatErrIndexOutOfRange(i, b.length)
	}
	removed := b.bits.Test(uint(i))
	b.bits.DeleteAt(uint(i))
	b.length--
	b.version++
	return removed, nil
}

// RemoveRange deletes count bits starting at position i.
func (b *BoolBuffer) RemoveRange(i, count int) error {
	if count < 0 {
		return FormatErrNegativeCount(count)
	}
	if i < 0 || i+count < 0 || i+count > b.length {
		return FormatErrRangeOutOfRange(i, count, b.length)
	}
	if count == 0 {
		return nil
	}
	for k := 0; k < count; k++ {
		b.bits.DeleteAt(uint(i))
	}
	b.length -= count
	b.version++
	return nil
}

// Clear removes all elements.
func (b *BoolBuffer) Clear() {
	b.bits.ClearAll()
	b.length = 0
	b.version++
}

func (b *BoolBuffer) ToSlice() []bool {
	values := make([]bool, b.length)
	for i := range values {
		values[i] = b.bits.Test(uint(i))
	}
	return values
}

// BoolIterator is a single-traversal checked cursor over a BoolBuffer.
type BoolIterator struct {
	buffer  *BoolBuffer
	i       int
	step    int
	version uint64
	err     error
}

// Iterator returns a forward iterator over the buffer's bits.
func (b *BoolBuffer) Iterator() *BoolIterator {
	return &BoolIterator{buffer: b, i: -1, step: 1, version: b.version}
}

// ReverseIterator returns an iterator walking from the last bit down to the
// first.
func (b *BoolBuffer) ReverseIterator() *BoolIterator {
	return &BoolIterator{buffer: b, i: b.length, step: -1, version: b.version}
}

func (it *BoolIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.buffer.version != it.version {
		it.err = ErrConcurrentModification
		return false
	}

	next := it.i + it.step
	if next < 0 || next >= it.buffer.length {
		return false
	}
	it.i = next
	return true
}

func (it *BoolIterator) Value() bool {
	return it.buffer.bits.Test(uint(it.i))
}

func (it *BoolIterator) Index() int {
	return it.i
}

func (it *BoolIterator) Err() error {
	return it.err
}

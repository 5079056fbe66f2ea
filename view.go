package dynarray

import (
	"fmt"

	"github.com/inoxlang/dynarray/internal/utils"
)

type viewKind uint8

const (
	viewBase viewKind = iota
	viewMap
	viewSlice
	viewTake
	viewDrop
	viewReverse
	viewConcat
)

// View is a lazy, non-owning read projection over a buffer or over other
// views. A view never stores elements: each lookup resolves through the
// transformation chain down to the root buffer(s). Views hold back-references
// only and must not be used after the owning buffer is discarded.
type View[T any] struct {
	kind viewKind

	root   *Buffer[T] // viewBase
	source *View[T]   // every non-base kind
	second *View[T]   // viewConcat
	mapper func(T) T  // viewMap

	start, end int // viewSlice
	count      int // viewTake, viewDrop
}

// View returns a lazy identity view over the buffer.
func (b *Buffer[T]) View() *View[T] {
	return &View[T]{kind: viewBase, root: b}
}

// Map returns a view applying fn to each element at lookup time.
func (v *View[T]) Map(fn func(T) T) *View[T] {
	return &View[T]{kind: viewMap, source: v, mapper: fn}
}

// Slice returns a view over the index range [start, end). The bounds are
// validated against the view's current length.
func (v *View[T]) Slice(start, end int) (*View[T], error) {
	length := v.Len()
	if start < 0 || start > end || end > length {
		return nil, fmt.Errorf("%w: slice [%d, %d), valid range [0, %d]", ErrIndexOutOfRange, start, end, length)
	}
	return &View[T]{kind: viewSlice, source: v, start: start, end: end}, nil
}

// Take returns a view of the first n elements; n is clamped to the length.
func (v *View[T]) Take(n int) *View[T] {
	return &View[T]{kind: viewTake, source: v, count: utils.Max(n, 0)}
}

// Drop returns a view without the first n elements; n is clamped to the
// length.
func (v *View[T]) Drop(n int) *View[T] {
	return &View[T]{kind: viewDrop, source: v, count: utils.Max(n, 0)}
}

// Reverse returns a view presenting the elements in reverse order.
func (v *View[T]) Reverse() *View[T] {
	return &View[T]{kind: viewReverse, source: v}
}

// Concat returns a view presenting v's elements followed by other's.
func (v *View[T]) Concat(other *View[T]) *View[T] {
	return &View[T]{kind: viewConcat, source: v, second: other}
}

func (v *View[T]) Len() int {
	switch v.kind {
	case viewBase:
		return v.root.Len()
	case viewMap, viewReverse:
		return v.source.Len()
	case viewSlice:
		return v.end - v.start
	case viewTake:
		return utils.Min(v.count, v.source.Len())
	case viewDrop:
		return utils.Max(v.source.Len()-v.count, 0)
	case viewConcat:
		return v.source.Len() + v.second.Len()
	default:
		panic(errUnknownViewKind)
	}
}

// At resolves the element at position i through the transformation chain.
func (v *View[T]) At(i int) (T, error) {
	var zero T
	length := v.Len()
	if i < 0 || i >= length {
		return zero, FormatErrIndexOutOfRange(i, length)
	}

	switch v.kind {
	case viewBase:
		return v.root.Get(i)
	case viewMap:
		e, err := v.source.At(i)
		if err != nil {
			return zero, err
		}
		return v.mapper(e), nil
	case viewSlice:
		return v.source.At(v.start + i)
	case viewTake:
		return v.source.At(i)
	case viewDrop:
		return v.source.At(v.count + i)
	case viewReverse:
		return v.source.At(length - 1 - i)
	case viewConcat:
		firstLen := v.source.Len()
		if i < firstLen {
			return v.source.At(i)
		}
		return v.second.At(i - firstLen)
	default:
		panic(errUnknownViewKind)
	}
}

// Materialize eagerly copies the view's elements into a new slice.
func (v *View[T]) Materialize() ([]T, error) {
	elements := make([]T, v.Len())
	for i := range elements {
		e, err := v.At(i)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return elements, nil
}

// AsSequence adapts the view to the Sequence interface. The adapter's At
// panics on resolution failure, per the Sequence contract.
func (v *View[T]) AsSequence() Sequence[T] {
	return &viewSequence[T]{view: v}
}

type viewSequence[T any] struct {
	view *View[T]
}

func (s *viewSequence[T]) Len() int {
	return s.view.Len()
}

func (s *viewSequence[T]) At(i int) T {
	e, err := s.view.At(i)
	if err != nil {
		panic(err)
	}
	return e
}

// roots appends all transitively referenced buffers to dst, without
// duplicates. Concatenations can reference more than one.
func (v *View[T]) roots(dst []*Buffer[T]) []*Buffer[T] {
	switch v.kind {
	case viewBase:
		for _, b := range dst {
			if b == v.root {
				return dst
			}
		}
		return append(dst, v.root)
	case viewConcat:
		return v.second.roots(v.source.roots(dst))
	default:
		return v.source.roots(dst)
	}
}

func (v *View[T]) referencesBuffer(b *Buffer[T]) bool {
	for _, root := range v.roots(nil) {
		if root == b {
			return true
		}
	}
	return false
}

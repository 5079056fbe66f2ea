package dynarray

// Iterator is a single-traversal cursor over a view. At creation it captures
// the version of every root buffer the view transitively references; before
// each step it re-validates the captured versions and fails fast with
// ErrConcurrentModification when any root was mutated since the traversal
// began. Detection is best-effort and aimed at misuse within a single
// goroutine; it does not make concurrent access safe.
type Iterator[T any] struct {
	view     *View[T]
	i        int
	step     int
	captured []versionCapture[T]
	err      error
}

type versionCapture[T any] struct {
	buffer  *Buffer[T]
	version uint64
}

// Iterator returns a forward iterator over the view.
func (v *View[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{view: v, i: -1, step: 1, captured: captureVersions(v)}
}

// ReverseIterator returns an iterator walking from the last element down to
// the first.
func (v *View[T]) ReverseIterator() *Iterator[T] {
	return &Iterator[T]{view: v, i: v.Len(), step: -1, captured: captureVersions(v)}
}

// Iterator returns a forward iterator over the buffer's elements.
func (b *Buffer[T]) Iterator() *Iterator[T] {
	return b.View().Iterator()
}

// ReverseIterator returns an iterator over the buffer's elements, walking
// from the last one down to the first.
func (b *Buffer[T]) ReverseIterator() *Iterator[T] {
	return b.View().ReverseIterator()
}

func captureVersions[T any](v *View[T]) []versionCapture[T] {
	roots := v.roots(nil)
	captured := make([]versionCapture[T], len(roots))
	for i, b := range roots {
		captured[i] = versionCapture[T]{buffer: b, version: b.Version()}
	}
	return captured
}

// Next advances the iterator. It returns false when the traversal is
// exhausted or when a modification of a root buffer was detected; Err tells
// the two cases apart.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	for _, c := range it.captured {
		if c.buffer.Version() != c.version {
			it.err = ErrConcurrentModification
			return false
		}
	}

	next := it.i + it.step
	if next < 0 || next >= it.view.Len() {
		return false
	}
	it.i = next
	return true
}

// Value returns the element at the current position. It must only be called
// after a successful Next.
func (it *Iterator[T]) Value() T {
	e, err := it.view.At(it.i)
	if err != nil {
		panic(err)
	}
	return e
}

// Index returns the current position within the view.
func (it *Iterator[T]) Index() int {
	return it.i
}

// Err returns ErrConcurrentModification if the traversal was aborted because
// a root buffer changed, nil otherwise. Restarting the iteration recovers.
func (it *Iterator[T]) Err() error {
	return it.err
}

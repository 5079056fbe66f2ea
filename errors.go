package dynarray

import (
	"errors"
	"fmt"

	"github.com/inoxlang/dynarray/internal/capacity"
)

var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrConcurrentModification   = errors.New("source was modified during iteration")

	// ErrCapacityOverflow is returned when a requested size cannot be
	// represented by MaxLength.
	ErrCapacityOverflow = capacity.ErrCapacityOverflow

	ErrCannotPopFromEmptyBuffer     = errors.New("cannot pop from an empty buffer")
	ErrCannotDequeueFromEmptyBuffer = errors.New("cannot dequeue from an empty buffer")

	errUnknownViewKind = errors.New("unknown view kind")
)

func FormatErrIndexOutOfRange(i, length int) error {
	if length == 0 {
		return fmt.Errorf("%w: index %d, the sequence is empty", ErrIndexOutOfRange, i)
	}
	return fmt.Errorf("%w: index %d, valid range [0, %d]", ErrIndexOutOfRange, i, length-1)
}

func FormatErrInsertionIndexOutOfRange(i, length int) error {
	return fmt.Errorf("%w: index %d, valid range [0, %d]", ErrInsertionIndexOutOfRange, i, length)
}

func FormatErrRangeOutOfRange(start, count, length int) error {
	return fmt.Errorf("%w: range [%d, %d), valid range [0, %d]", ErrIndexOutOfRange, start, start+count, length)
}

func FormatErrNegativeCount(count int) error {
	return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
}

func FormatErrBufferAtMaxLength() error {
	return fmt.Errorf("%w: buffer already holds the maximum representable number of elements", ErrCapacityOverflow)
}

// Package capacity computes storage sizes for growable contiguous buffers.
// Growth doubles the capacity until the requirement is met, shrinking halves
// it down to a floor of DefaultCapacity; the pairing avoids reallocation
// thrashing when a buffer's length oscillates near a capacity boundary.
package capacity

import (
	"errors"
	"math"

	"github.com/inoxlang/dynarray/internal/utils"
)

const (
	// DefaultCapacity is the smallest storage size ever allocated for a
	// non-empty buffer.
	DefaultCapacity = 16

	// MaxLength is the maximum representable buffer length.
	MaxLength = math.MaxInt
)

var ErrCapacityOverflow = errors.New("capacity overflow: requested size cannot be represented")

// GrowthTarget returns the capacity the storage should be resized to so that
// it holds at least required elements. current is returned unchanged when it
// already suffices. A negative required means the caller's length arithmetic
// overflowed MaxLength; this is only tolerated when liveEnd already sits at
// MaxLength, in which case the result is clamped there.
func GrowthTarget(current, liveEnd, required int) (int, error) {
	if required < 0 {
		if liveEnd == MaxLength {
			return MaxLength, nil
		}
		return 0, ErrCapacityOverflow
	}
	if required <= current {
		return current, nil
	}

	target := DefaultCapacity
	if current > 0 {
		if current > MaxLength/2 {
			return MaxLength, nil
		}
		target = utils.Max(current*2, DefaultCapacity)
	}
	for target < required {
		if target > MaxLength/2 {
			target = MaxLength
			break
		}
		target *= 2
	}
	return target, nil
}

// ShrinkTarget returns the capacity the storage should be resized to so that
// required elements still fit after repeated halving. The result never goes
// below utils.Max(required, DefaultCapacity) and current is returned
// unchanged when required is not smaller than it.
func ShrinkTarget(current, required int) int {
	if required < 0 {
		required = 0
	}
	if required >= current {
		return current
	}

	floor := utils.Max(required, DefaultCapacity)
	target := current
	for target/2 >= floor {
		target /= 2
	}
	return target
}

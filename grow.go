// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"errors"
	"math"
	"math/bits"

	"github.com/bassosimone/runtimex"
)

// ErrOverflow indicates that a requested or computed size exceeds the
// representable range.
//
// This is one of the two recoverable error kinds reported by mutating
// operations (the other is [ErrNoMem]). The string that reported it is
// left unchanged and remains usable. Sizes are never allowed to wrap
// silently and under-allocate.
var ErrOverflow = errors.New("dstr: size overflow")

// addSize returns a+b, or [ErrOverflow] when the sum is not representable.
func addSize(a, b int) (int, error) {
	runtimex.Assert(a >= 0)
	runtimex.Assert(b >= 0)
	if a > math.MaxInt-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// mulSize returns a*b, or [ErrOverflow] when the product is not
// representable.
func mulSize(a, b int) (int, error) {
	runtimex.Assert(a >= 0)
	runtimex.Assert(b >= 0)
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// growCapacity returns the capacity to allocate when growth must reach at
// least target bytes of content.
//
// Capacities are kept one below a power of two, so that allocation sizes
// including the terminator are powers of two. Successive grown capacities
// therefore at least double, which bounds a sequence of N incremental
// appends to O(N) total copying work.
func growCapacity(target int) (int, error) {
	size, err := addSize(target, 1) // room for the terminator
	if err != nil {
		return 0, err
	}
	const maxPow2 = math.MaxInt/2 + 1
	if size > maxPow2 {
		return 0, ErrOverflow
	}
	pow2 := 1
	if size > 1 {
		pow2 = 1 << bits.Len(uint(size-1))
	}
	return pow2 - 1, nil
}

// Reserve ensures that the capacity is at least the given value, without
// changing the length or the content.
//
// Reserve never shrinks: it is a no-op when the capacity is already
// sufficient. When growth is required, the new capacity is chosen by
// [growCapacity] and the content, terminator included, moves to the new
// region, invalidating any previously taken [*String.Bytes] view.
//
// A negative capacity is a contract violation. On failure the string is
// unchanged and the error is [ErrNoMem] or [ErrOverflow].
func (s *String) Reserve(capacity int) error {
	s.check()
	runtimex.Assert(capacity >= 0)
	if capacity <= s.Cap() {
		return nil
	}

	newCap, err := growCapacity(capacity)
	if err != nil {
		return s.fail("reserve", err)
	}
	data, err := s.cfg.Allocator.Alloc(newCap + 1)
	if err != nil {
		return s.fail("reserve", err)
	}
	runtimex.Assert(len(data) == newCap+1)

	// Commit only after the copy so a failure above leaves us untouched.
	copy(data, s.data[:s.length+1])
	s.cfg.Instrument.RegionAlloc(s.id, len(data))
	s.cfg.Instrument.RegionFree(s.id, len(s.data))
	s.cfg.Allocator.Free(s.data)
	s.data = data
	return nil
}

// Resize sets the length to the given value, reserving more capacity
// first when growing.
//
// Bytes exposed by growth have unspecified content; the instrument is
// told they are uninitialized. Shrinking never reallocates and does not
// physically erase the bytes beyond the new length.
//
// A negative length is a contract violation. On failure the string is
// unchanged and the error is [ErrNoMem] or [ErrOverflow].
func (s *String) Resize(length int) error {
	s.check()
	runtimex.Assert(length >= 0)
	if err := s.Reserve(length); err != nil {
		return err
	}

	switch {
	case length > s.length:
		s.cfg.Instrument.RegionUninit(s.id, s.length, length)
	case length < s.length:
		s.cfg.Instrument.RegionUninit(s.id, length, s.length)
	}
	s.length = length
	s.data[length] = 0
	return nil
}

// Shrink sets the length to the given value, which must not exceed the
// current length.
//
// Shrink is the allocation-free fast path of [*String.Resize]: it cannot
// fail, never touches capacity, and does not physically erase the bytes
// beyond the new length. A length that is negative or greater than the
// current length is a contract violation, not a recoverable error.
func (s *String) Shrink(length int) {
	s.check()
	runtimex.Assert(length >= 0)
	runtimex.Assert(length <= s.length)
	s.cfg.Instrument.RegionUninit(s.id, length, s.length)
	s.length = length
	s.data[length] = 0
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import "errors"

// ErrNoMem indicates that backing storage could not be obtained.
//
// This is one of the two recoverable error kinds reported by mutating
// operations (the other is [ErrOverflow]). The string that reported it is
// left unchanged and remains usable.
var ErrNoMem = errors.New("dstr: out of memory")

// Allocator obtains and releases backing storage for strings.
//
// By using an abstraction we allow for unit testing and alternative
// implementations: an injected allocator is what makes out-of-memory
// conditions observable and the failure-atomicity contract testable, and
// it also accommodates pooled or arena-style storage.
//
// Alloc returns a slice with exactly the requested length, or [ErrNoMem]
// (possibly wrapped) when storage cannot be obtained. The content of the
// returned slice is unspecified. Free releases a slice previously returned
// by Alloc; implementations backed by the garbage collector may treat it
// as a no-op.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

// AllocatorFunc adapts an allocation function to the [Allocator] interface
// with a no-op Free.
//
// This allows using simple functions as allocators:
//
//	cfg.Allocator = dstr.AllocatorFunc(func(size int) ([]byte, error) {
//		return nil, dstr.ErrNoMem // always fail
//	})
type AllocatorFunc func(size int) ([]byte, error)

var _ Allocator = AllocatorFunc(nil)

// Alloc implements [Allocator].
func (f AllocatorFunc) Alloc(size int) ([]byte, error) {
	return f(size)
}

// Free implements [Allocator].
func (f AllocatorFunc) Free(b []byte) {
	// nothing
}

// DefaultAllocator allocates from the Go heap and lets the garbage
// collector reclaim freed storage.
var DefaultAllocator = AllocatorFunc(func(size int) ([]byte, error) {
	return make([]byte, size), nil
})

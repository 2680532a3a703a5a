// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import "github.com/bassosimone/runtimex"

// minCapacity is the smallest capacity we allocate, to avoid
// reallocations for small strings.
const minCapacity = 7

// String is a dynamic, length-tracked byte string.
//
// The zero value is not usable: create instances with [Alloc], [Dup],
// [DupN], [DupExact], [DupString], [Repeat], or [Printf], and destroy them
// with [*String.Release].
//
// The content may include embedded NUL bytes. One extra byte beyond the
// length is always allocated and holds a zero terminator, so the content
// is also always viewable as a conventional NUL-terminated string.
//
// See the package documentation for the ownership and concurrency rules.
type String struct {
	// cfg holds the collaborators wired at construction time.
	cfg *Config

	// data is the backing region: exactly Cap()+1 bytes, with
	// data[length] always holding the terminator. A nil data marks a
	// released handle.
	data []byte

	// id is the unique ID for instrumentation-log correlation.
	id string

	// length is the number of meaningful bytes in data.
	length int
}

// allocImpl creates a string with the given capacity and content.
func allocImpl(cfg *Config, capacity int, content []byte) (*String, error) {
	runtimex.Assert(capacity >= len(content))
	if capacity < minCapacity {
		capacity = minCapacity
	}

	size, err := addSize(capacity, 1) // room for the terminator
	if err != nil {
		return nil, err
	}
	data, err := cfg.Allocator.Alloc(size)
	if err != nil {
		return nil, err
	}
	runtimex.Assert(len(data) == size)

	s := &String{
		cfg:    cfg,
		data:   data,
		id:     cfg.NewID(),
		length: len(content),
	}
	copy(s.data, content)
	s.data[s.length] = 0

	cfg.Instrument.RegionAlloc(s.id, size)
	if s.length > 0 {
		cfg.Instrument.RegionInit(s.id, 0, s.length)
	}
	return s, nil
}

// Alloc creates an empty string with at least the given capacity.
//
// A negative capacity is a contract violation. On failure no string is
// created and the error is [ErrNoMem] or [ErrOverflow].
func Alloc(cfg *Config, capacity int) (*String, error) {
	runtimex.Assert(capacity >= 0)
	return allocImpl(cfg, capacity, nil)
}

// Dup creates a string holding a copy of src.
func Dup(cfg *Config, src string) (*String, error) {
	return allocImpl(cfg, len(src), []byte(src))
}

// DupN creates a string holding a copy of at most n bytes of src,
// stopping earlier at the first NUL byte.
//
// A negative n is a contract violation.
func DupN(cfg *Config, src []byte, n int) (*String, error) {
	src = src[:boundedLen(src, n)]
	return allocImpl(cfg, len(src), src)
}

// DupExact creates a string holding a copy of exactly len(src) bytes.
//
// This is the only duplication form that preserves embedded NUL bytes in
// a plain byte slice.
func DupExact(cfg *Config, src []byte) (*String, error) {
	return allocImpl(cfg, len(src), src)
}

// DupString creates a string holding a copy of exactly src.Len() bytes of
// another string, embedded NUL bytes included.
func DupString(cfg *Config, src *String) (*String, error) {
	src.check()
	return allocImpl(cfg, src.length, src.data[:src.length])
}

// Len returns the number of meaningful bytes.
func (s *String) Len() int {
	s.check()
	return s.length
}

// Cap returns the number of bytes allocated for content, excluding the
// terminator. The invariant Cap() >= Len() always holds.
func (s *String) Cap() int {
	s.check()
	return len(s.data) - 1
}

// ID returns the unique ID attached to this string for
// instrumentation-log correlation.
func (s *String) ID() string {
	s.check()
	return s.id
}

// Bytes returns the content as a byte slice of length Len().
//
// The slice aliases internal storage: it is valid only until the next
// mutating operation, and appending to it cannot clobber the terminator
// because its capacity equals its length.
func (s *String) Bytes() []byte {
	s.check()
	return s.data[:s.length:s.length]
}

// Text returns a copy of the content as a Go string.
func (s *String) Text() string {
	s.check()
	return string(s.data[:s.length])
}

// String implements [fmt.Stringer].
func (s *String) String() string {
	return s.Text()
}

// Release returns the backing storage to the allocator.
//
// Calling Release on a nil *String is a no-op. Releasing the same handle
// twice, or using it after Release, is a contract violation.
func (s *String) Release() {
	if s == nil {
		return
	}
	s.check()
	s.cfg.Instrument.RegionUninit(s.id, 0, s.length)
	s.cfg.Instrument.RegionFree(s.id, len(s.data))
	s.cfg.Allocator.Free(s.data)
	s.data = nil
	s.length = 0
}

// check asserts that the handle is valid, catching use after Release.
func (s *String) check() {
	runtimex.Assert(s != nil)
	runtimex.Assert(s.data != nil)
}

// fail reports a failed mutating operation through the instrument and
// returns err unchanged. The string has already been restored to (or
// never left) its pre-call state.
func (s *String) fail(op string, err error) error {
	s.cfg.Instrument.OpFailed(s.id, op, err)
	return err
}

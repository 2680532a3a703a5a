// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"bytes"

	"github.com/bassosimone/runtimex"
)

// boundedLen returns the number of bytes in src before the first NUL
// byte, considering at most n bytes.
//
// A negative n is a contract violation.
func boundedLen(src []byte, n int) int {
	runtimex.Assert(n >= 0)
	if n < len(src) {
		src = src[:n]
	}
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return i
	}
	return len(src)
}

// grow extends the string by n bytes and returns the offset where the new
// bytes begin. On failure the string is unchanged.
func (s *String) grow(op string, n int) (int, error) {
	oldLen := s.length
	newLen, err := addSize(oldLen, n)
	if err != nil {
		return 0, s.fail(op, err)
	}
	if err := s.Resize(newLen); err != nil {
		return 0, err
	}
	return oldLen, nil
}

// catBytes appends exactly len(src) bytes after the current content.
func (s *String) catBytes(op string, src []byte) error {
	oldLen, err := s.grow(op, len(src))
	if err != nil {
		return err
	}
	copy(s.data[oldLen:], src)
	s.cfg.Instrument.RegionInit(s.id, oldLen, s.length)
	return nil
}

// cpyBytes replaces the current content with exactly len(src) bytes.
func (s *String) cpyBytes(src []byte) error {
	if err := s.Resize(len(src)); err != nil {
		return err
	}
	copy(s.data, src)
	s.cfg.Instrument.RegionInit(s.id, 0, s.length)
	return nil
}

// Cat appends src after the current content.
func (s *String) Cat(src string) error {
	s.check()
	return s.catBytes("cat", []byte(src))
}

// CatN appends at most n bytes of src after the current content,
// stopping earlier at the first NUL byte.
//
// A negative n is a contract violation.
func (s *String) CatN(src []byte, n int) error {
	s.check()
	return s.catBytes("cat", src[:boundedLen(src, n)])
}

// CatExact appends exactly len(src) bytes after the current content,
// embedded NUL bytes included.
func (s *String) CatExact(src []byte) error {
	s.check()
	return s.catBytes("cat", src)
}

// CatString appends exactly src.Len() bytes of another string after the
// current content, embedded NUL bytes included.
func (s *String) CatString(src *String) error {
	s.check()
	src.check()
	return s.catBytes("cat", src.data[:src.length])
}

// App appends a single byte after the current content.
func (s *String) App(c byte) error {
	s.check()
	oldLen, err := s.grow("app", 1)
	if err != nil {
		return err
	}
	s.data[oldLen] = c
	s.cfg.Instrument.RegionInit(s.id, oldLen, s.length)
	return nil
}

// Cpy replaces the current content with src.
func (s *String) Cpy(src string) error {
	s.check()
	return s.cpyBytes([]byte(src))
}

// CpyN replaces the current content with at most n bytes of src,
// stopping earlier at the first NUL byte.
//
// A negative n is a contract violation.
func (s *String) CpyN(src []byte, n int) error {
	s.check()
	return s.cpyBytes(src[:boundedLen(src, n)])
}

// CpyExact replaces the current content with exactly len(src) bytes,
// embedded NUL bytes included.
func (s *String) CpyExact(src []byte) error {
	s.check()
	return s.cpyBytes(src)
}

// CpyString replaces the current content with exactly src.Len() bytes of
// another string, embedded NUL bytes included.
func (s *String) CpyString(src *String) error {
	s.check()
	src.check()
	return s.cpyBytes(src.data[:src.length])
}

// Repeat creates a string holding n back-to-back copies of src.
//
// The total capacity is reserved once and the copies happen in a single
// loop, so the work is linear in the output size. A zero n yields an
// empty string; a negative n is a contract violation.
func Repeat(cfg *Config, src string, n int) (*String, error) {
	runtimex.Assert(n >= 0)
	total, err := mulSize(len(src), n)
	if err != nil {
		return nil, err
	}

	dst, err := Alloc(cfg, total)
	if err != nil {
		return nil, err
	}
	if err := dst.Resize(total); err != nil {
		dst.Release()
		return nil, err
	}
	for off := 0; off < total; off += len(src) {
		copy(dst.data[off:], src)
	}
	if total > 0 {
		cfg.Instrument.RegionInit(dst.id, 0, total)
	}
	return dst, nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import "github.com/bassosimone/dstr/wordesc"

// EscapeFlags selects which classes of bytes an [Escaper] must quote.
type EscapeFlags int

const (
	// EscShell escapes special characters so that the shell will treat
	// the escaped string as a single word.
	EscShell EscapeFlags = 1 << iota

	// EscTTY escapes special characters so that the escaped string is
	// safe to print to a TTY.
	EscTTY
)

// Escaper transforms a source byte range into its quoted encoding.
//
// The string itself implements no quoting logic: [*String.EscCat] and
// [*String.EscCatN] treat the escaper as an opaque collaborator, append
// whatever bytes it returns, and propagate its failure without modifying
// the destination.
type Escaper interface {
	Escape(src []byte, flags EscapeFlags) ([]byte, error)
}

// EscaperFunc adapts a function to the [Escaper] interface.
type EscaperFunc func(src []byte, flags EscapeFlags) ([]byte, error)

var _ Escaper = EscaperFunc(nil)

// Escape implements [Escaper].
func (f EscaperFunc) Escape(src []byte, flags EscapeFlags) ([]byte, error) {
	return f(src, flags)
}

// DefaultEscaper delegates to [wordesc.Escape], which never fails.
var DefaultEscaper = EscaperFunc(func(src []byte, flags EscapeFlags) ([]byte, error) {
	return wordesc.Escape(src, wordesc.Flags(flags)), nil
})

// EscCat appends the quoted encoding of src after the current content.
//
// The encoding is produced by the configured [Escaper]; see [EscapeFlags]
// for the quoting classes. On escaper or allocation failure the string is
// unchanged.
func (s *String) EscCat(src string, flags EscapeFlags) error {
	s.check()
	return s.escCat([]byte(src), flags)
}

// EscCatN appends the quoted encoding of at most n bytes of src,
// stopping earlier at the first NUL byte.
//
// A negative n is a contract violation. On escaper or allocation failure
// the string is unchanged.
func (s *String) EscCatN(src []byte, n int, flags EscapeFlags) error {
	s.check()
	return s.escCat(src[:boundedLen(src, n)], flags)
}

// escCat delegates quoting and appends the result.
func (s *String) escCat(src []byte, flags EscapeFlags) error {
	quoted, err := s.cfg.Escaper.Escape(src, flags)
	if err != nil {
		return s.fail("escat", err)
	}
	return s.catBytes("escat", quoted)
}

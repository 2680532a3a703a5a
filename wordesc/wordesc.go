// SPDX-License-Identifier: GPL-3.0-or-later

// Package wordesc quotes byte strings as single POSIX shell words.
//
// The package works at the byte level: bytes above 0x7F pass through
// unchanged, so valid UTF-8 input stays readable. It performs no locale
// or Unicode processing.
package wordesc

// Flags selects which classes of bytes to quote.
type Flags int

const (
	// Shell escapes special characters so that the shell will treat the
	// escaped string as a single word.
	Shell Flags = 1 << iota

	// TTY escapes special characters so that the escaped string is safe
	// to print to a TTY.
	TTY
)

// Escape renders src as directed by flags and returns a fresh slice.
//
// With [Shell], the result is a single shell word: safe strings pass
// through unquoted, strings with shell metacharacters are single-quoted,
// and strings containing unprintable bytes use $'...' dollar quoting,
// since quotes cannot carry a NUL and control bytes would be invisible.
//
// With [TTY], unprintable bytes force dollar quoting even when [Shell] is
// not set; otherwise the input passes through unchanged.
//
// With no flags, Escape returns a plain copy of src.
func Escape(src []byte, flags Flags) []byte {
	switch {
	case !printable(src):
		if flags&(Shell|TTY) != 0 {
			return dollarQuote(src)
		}
	case flags&Shell != 0:
		if len(src) == 0 {
			return []byte("''")
		}
		if !safe(src) {
			return singleQuote(src)
		}
	}
	return append([]byte(nil), src...)
}

// safeByte reports whether c never needs quoting in a shell word.
func safeByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '%', c == '+', c == ',', c == '-', c == '.', c == '/':
		return true
	case c == ':', c == '=', c == '@', c == '_', c == '^':
		return true
	default:
		return false
	}
}

// printableByte reports whether c is safe to send to a TTY.
func printableByte(c byte) bool {
	return c >= 0x20 && c != 0x7F
}

func safe(src []byte) bool {
	for _, c := range src {
		if !safeByte(c) {
			return false
		}
	}
	return true
}

func printable(src []byte) bool {
	for _, c := range src {
		if !printableByte(c) {
			return false
		}
	}
	return true
}

// singleQuote wraps src in single quotes, closing and reopening the
// quotes around embedded quote characters ('\'').
func singleQuote(src []byte) []byte {
	out := make([]byte, 0, len(src)+2)
	out = append(out, '\'')
	for _, c := range src {
		if c == '\'' {
			out = append(out, '\'', '\\', '\'', '\'')
			continue
		}
		out = append(out, c)
	}
	return append(out, '\'')
}

// namedEscapes maps control bytes to their mnemonic escapes.
var namedEscapes = map[byte]byte{
	'\a': 'a',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
}

const hexDigits = "0123456789ABCDEF"

// dollarQuote renders src as a $'...' word, escaping backslashes,
// quotes, and unprintable bytes.
func dollarQuote(src []byte) []byte {
	out := make([]byte, 0, len(src)+3)
	out = append(out, '$', '\'')
	for _, c := range src {
		switch {
		case c == '\\':
			out = append(out, '\\', '\\')
		case c == '\'':
			out = append(out, '\\', '\'')
		case namedEscapes[c] != 0:
			out = append(out, '\\', namedEscapes[c])
		case !printableByte(c):
			out = append(out, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			out = append(out, c)
		}
	}
	return append(out, '\'')
}

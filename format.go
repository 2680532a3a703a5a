// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import "fmt"

// Printf creates a string from a format string.
//
// Rendering delegates to the fmt package, which computes the required
// output size itself, so the result is never silently truncated. As with
// fmt, argument type mismatches are reported in-band in the output rather
// than as errors; failure is possible only on allocation or size overflow.
func Printf(cfg *Config, format string, args ...any) (*String, error) {
	// Guess a capacity to try to avoid reallocating.
	guess, err := mulSize(len(format), 2)
	if err != nil {
		return nil, err
	}

	s, err := Alloc(cfg, guess)
	if err != nil {
		return nil, err
	}
	if err := s.Catf(format, args...); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Catf appends formatted text after the current content.
//
// The text is rendered first and then committed through the ordinary
// concatenation path, so on failure the string is unchanged. The error
// taxonomy is the same as for [Printf].
func (s *String) Catf(format string, args ...any) error {
	s.check()
	rendered := fmt.Appendf(nil, format, args...)
	return s.catBytes("catf", rendered)
}

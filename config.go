// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import "time"

// Config holds common configuration for dstr strings.
//
// Pass this to constructor functions to pre-wire dependencies. Each
// [*String] keeps a reference to the [*Config] it was created with and
// consults it for its whole lifetime, so fields are safe to modify after
// construction but before creating the first string, and must not be
// mutated while strings created from this config are live.
//
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Allocator obtains and releases backing storage.
	//
	// Set by [NewConfig] to [DefaultAllocator].
	Allocator Allocator

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// Escaper produces shell-quoted encodings for [*String.EscCat].
	//
	// Set by [NewConfig] to [DefaultEscaper].
	Escaper Escaper

	// Instrument receives advisory region notifications.
	//
	// Set by [NewConfig] to [DefaultInstrument].
	Instrument Instrument

	// NewID mints the unique ID attached to each string for
	// instrumentation-log correlation.
	//
	// Set by [NewConfig] to [NewStringID].
	NewID func() string

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Allocator:     DefaultAllocator,
		ErrClassifier: DefaultErrClassifier,
		Escaper:       DefaultEscaper,
		Instrument:    DefaultInstrument,
		NewID:         NewStringID,
		TimeNow:       time.Now,
	}
}

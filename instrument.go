// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"log/slog"
	"time"
)

// Instrument receives advisory notifications about string storage.
//
// The hooks mirror the lifecycle of the backing region: RegionAlloc after
// storage is obtained, RegionFree before it is released, RegionInit after
// bytes in [lo, hi) become meaningful, RegionUninit after bytes in
// [lo, hi) stop being meaningful (shrink, release, or growth exposing
// bytes with unspecified content). OpFailed reports a mutating operation
// that failed with a recoverable error, after the string has been restored
// to its pre-call state.
//
// All hooks are purely advisory: implementations must not modify the
// string, and their presence or absence never changes functional behavior
// or return values. A typical implementation forwards the notifications to
// a memory sanitizer or, like [SLogInstrument], to a structured logger.
type Instrument interface {
	RegionAlloc(id string, size int)
	RegionFree(id string, size int)
	RegionInit(id string, lo, hi int)
	RegionUninit(id string, lo, hi int)
	OpFailed(id, op string, err error)
}

// DefaultInstrument is a no-op [Instrument] that ignores all notifications.
var DefaultInstrument Instrument = noopInstrument{}

// noopInstrument ignores all notifications.
type noopInstrument struct{}

var _ Instrument = noopInstrument{}

// RegionAlloc implements [Instrument].
func (noopInstrument) RegionAlloc(id string, size int) {
	// nothing
}

// RegionFree implements [Instrument].
func (noopInstrument) RegionFree(id string, size int) {
	// nothing
}

// RegionInit implements [Instrument].
func (noopInstrument) RegionInit(id string, lo, hi int) {
	// nothing
}

// RegionUninit implements [Instrument].
func (noopInstrument) RegionUninit(id string, lo, hi int) {
	// nothing
}

// OpFailed implements [Instrument].
func (noopInstrument) OpFailed(id, op string, err error) {
	// nothing
}

// NewSLogInstrument returns a new [*SLogInstrument] with default logging.
//
// The cfg argument contains the common configuration for dstr strings.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewSLogInstrument(cfg *Config, logger SLogger) *SLogInstrument {
	return &SLogInstrument{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// SLogInstrument forwards [Instrument] notifications to an [SLogger].
//
// Region events are emitted at [slog.LevelDebug] because they fire on
// every reallocation and length change; operation failures are emitted at
// [slog.LevelInfo] with err and errClass fields. All events carry the
// string ID and a t timestamp.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with string operations.
type SLogInstrument struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewSLogInstrument] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewSLogInstrument] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewSLogInstrument] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Instrument = &SLogInstrument{}

// RegionAlloc implements [Instrument].
func (si *SLogInstrument) RegionAlloc(id string, size int) {
	si.Logger.Debug(
		"regionAlloc",
		slog.String("id", id),
		slog.Int("size", size),
		slog.Time("t", si.TimeNow()),
	)
}

// RegionFree implements [Instrument].
func (si *SLogInstrument) RegionFree(id string, size int) {
	si.Logger.Debug(
		"regionFree",
		slog.String("id", id),
		slog.Int("size", size),
		slog.Time("t", si.TimeNow()),
	)
}

// RegionInit implements [Instrument].
func (si *SLogInstrument) RegionInit(id string, lo, hi int) {
	si.Logger.Debug(
		"regionInit",
		slog.String("id", id),
		slog.Int("lo", lo),
		slog.Int("hi", hi),
		slog.Time("t", si.TimeNow()),
	)
}

// RegionUninit implements [Instrument].
func (si *SLogInstrument) RegionUninit(id string, lo, hi int) {
	si.Logger.Debug(
		"regionUninit",
		slog.String("id", id),
		slog.Int("lo", lo),
		slog.Int("hi", hi),
		slog.Time("t", si.TimeNow()),
	)
}

// OpFailed implements [Instrument].
func (si *SLogInstrument) OpFailed(id, op string, err error) {
	si.Logger.Info(
		"opFailed",
		slog.String("id", id),
		slog.String("op", op),
		slog.Any("err", err),
		slog.String("errClass", si.ErrClassifier.Classify(err)),
		slog.Time("t", si.TimeNow()),
	)
}

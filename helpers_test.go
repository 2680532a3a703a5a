// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bassosimone/slogstub"
	"github.com/stretchr/testify/require"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// funcAllocator is a configurable [Allocator] for tests.
type funcAllocator struct {
	AllocFunc func(size int) ([]byte, error)
	FreeFunc  func(b []byte)
}

var _ Allocator = &funcAllocator{}

// Alloc implements [Allocator].
func (fa *funcAllocator) Alloc(size int) ([]byte, error) {
	return fa.AllocFunc(size)
}

// Free implements [Allocator].
func (fa *funcAllocator) Free(b []byte) {
	if fa.FreeFunc != nil {
		fa.FreeFunc(b)
	}
}

// newCountingConfig returns a config whose allocator counts how many times
// storage was obtained.
func newCountingConfig() (*Config, *int) {
	var count int
	cfg := NewConfig()
	cfg.Allocator = &funcAllocator{
		AllocFunc: func(size int) ([]byte, error) {
			count++
			return make([]byte, size), nil
		},
	}
	return cfg, &count
}

// newFailAfterConfig returns a config whose allocator succeeds for the
// first n allocations and then reports [ErrNoMem] forever.
func newFailAfterConfig(n int) *Config {
	cfg := NewConfig()
	cfg.Allocator = &funcAllocator{
		AllocFunc: func(size int) ([]byte, error) {
			if n <= 0 {
				return nil, ErrNoMem
			}
			n--
			return make([]byte, size), nil
		},
	}
	return cfg
}

// stateSnapshot captures everything a failed operation must leave intact.
type stateSnapshot struct {
	length   int
	capacity int
	content  []byte
}

// takeSnapshot records the observable state of s.
func takeSnapshot(s *String) stateSnapshot {
	return stateSnapshot{
		length:   s.Len(),
		capacity: s.Cap(),
		content:  append([]byte(nil), s.Bytes()...),
	}
}

// requireUnchanged verifies that s still matches a snapshot taken before a
// failed operation, and that the terminator invariant still holds.
func requireUnchanged(t *testing.T, s *String, snap stateSnapshot) {
	t.Helper()
	require.Equal(t, snap.length, s.Len())
	require.Equal(t, snap.capacity, s.Cap())
	require.Equal(t, snap.content, append([]byte(nil), s.Bytes()...))
	requireInvariants(t, s)
}

// requireInvariants verifies capacity >= length and the terminator byte.
func requireInvariants(t *testing.T, s *String) {
	t.Helper()
	require.GreaterOrEqual(t, s.Cap(), s.Len())
	require.Equal(t, byte(0), s.data[s.length])
}

// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EscCat appends the escaper's output after the existing content.
func TestEscCat(t *testing.T) {
	cfg := NewConfig()
	s, err := Dup(cfg, "cmd ")
	require.NoError(t, err)
	defer s.Release()

	require.NoError(t, s.EscCat("hello world", EscShell))

	assert.Equal(t, "cmd 'hello world'", s.Text())
	requireInvariants(t, s)
}

// EscCat forwards the flags and the exact source bytes to the escaper.
func TestEscCatDelegation(t *testing.T) {
	var gotSrc []byte
	var gotFlags EscapeFlags

	cfg := NewConfig()
	cfg.Escaper = EscaperFunc(func(src []byte, flags EscapeFlags) ([]byte, error) {
		gotSrc = append([]byte(nil), src...)
		gotFlags = flags
		return []byte("<quoted>"), nil
	})

	s, err := Alloc(cfg, 0)
	require.NoError(t, err)
	defer s.Release()

	require.NoError(t, s.EscCat("payload", EscShell|EscTTY))

	assert.Equal(t, []byte("payload"), gotSrc)
	assert.Equal(t, EscShell|EscTTY, gotFlags)
	assert.Equal(t, "<quoted>", s.Text())
}

// EscCatN bounds the source before delegating.
func TestEscCatN(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// src is the source bytes.
		src []byte

		// n is the bound.
		n int

		// wantSrc is what the escaper must receive.
		wantSrc []byte
	}{
		{
			name:    "bound truncates the source",
			src:     []byte("hello world"),
			n:       5,
			wantSrc: []byte("hello"),
		},

		{
			name:    "an embedded NUL stops the source",
			src:     []byte("he\x00llo"),
			n:       100,
			wantSrc: []byte("he"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSrc []byte
			cfg := NewConfig()
			cfg.Escaper = EscaperFunc(func(src []byte, flags EscapeFlags) ([]byte, error) {
				gotSrc = append([]byte(nil), src...)
				return src, nil
			})

			s, err := Alloc(cfg, 0)
			require.NoError(t, err)
			defer s.Release()

			require.NoError(t, s.EscCatN(tt.src, tt.n, EscShell))

			assert.Equal(t, tt.wantSrc, gotSrc)
		})
	}
}

// An escaper failure propagates and leaves the destination unchanged.
func TestEscCatEscaperFailure(t *testing.T) {
	wantErr := errors.New("escape error")

	cfg := NewConfig()
	cfg.Escaper = EscaperFunc(func(src []byte, flags EscapeFlags) ([]byte, error) {
		return nil, wantErr
	})

	s, err := Dup(cfg, "prefix")
	require.NoError(t, err)
	defer s.Release()

	snap := takeSnapshot(s)

	err = s.EscCat("payload", EscShell)

	require.ErrorIs(t, err, wantErr)
	requireUnchanged(t, s, snap)
}

// The flag constants line up with the wordesc ones, so the default
// escaper can forward them by conversion.
func TestEscapeFlagValues(t *testing.T) {
	assert.Equal(t, EscapeFlags(1), EscShell)
	assert.Equal(t, EscapeFlags(2), EscTTY)
}

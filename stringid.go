// SPDX-License-Identifier: GPL-3.0-or-later

package dstr

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewStringID returns a UUIDv7 uniquely identifying a string instance.
//
// Every constructor mints one ID per [*String] (via [Config.NewID]) and
// tags all instrumentation events for that string with it, so that events
// from the same instance can be correlated across reallocations even
// though the backing storage moves.
//
// The IDs are time-ordered, which keeps logs for strings created in
// sequence sorted by creation time.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewStringID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}

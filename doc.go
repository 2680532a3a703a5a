// SPDX-License-Identifier: GPL-3.0-or-later

// Package dstr implements dynamic, length-tracked byte strings.
//
// # Core Abstraction
//
// The package is built around a single type:
//
//	type String struct { ... }
//
// A [*String] owns a contiguous byte region plus two integers: a length
// (bytes in use) and a capacity (bytes allocated). Unlike a Go string, the
// content may include embedded NUL bytes, and one extra byte beyond the
// length always holds a zero terminator, so the content is also always
// viewable as a conventional NUL-terminated string.
//
// Every operation is built on two primitives: [*String.Reserve], which grows
// capacity without changing length, and [*String.Resize], which changes
// length, growing capacity first if needed. Capacity grows geometrically
// (allocation sizes are kept at powers of two), so appending one byte N
// times performs O(N) total copying work.
//
// # Available Operations
//
// Construction:
//   - [Alloc]: empty string with a given initial capacity
//   - [Dup], [DupN], [DupExact], [DupString]: copies of existing content
//   - [Repeat]: n back-to-back copies of a string
//   - [Printf]: formatted construction
//
// Mutation:
//   - [*String.Reserve], [*String.Resize], [*String.Shrink]: size management
//   - [*String.Cpy], [*String.CpyN], [*String.CpyExact], [*String.CpyString]:
//     replace content
//   - [*String.Cat], [*String.CatN], [*String.CatExact], [*String.CatString],
//     [*String.App]: append content
//   - [*String.Catf]: append formatted text
//   - [*String.EscCat], [*String.EscCatN]: append shell-escaped text
//
// The bounded variants (DupN, CpyN, CatN, EscCatN) stop at the first NUL
// byte within the bound. The exact variants (DupExact, CpyExact, CatExact)
// take a precise byte count and are the only way to transfer content
// containing embedded NUL bytes.
//
// # Failure Atomicity
//
// Mutating operations fail with [ErrNoMem] when storage cannot be obtained
// and with [ErrOverflow] when a requested or computed size exceeds the
// representable range. On failure the string is left exactly as it was:
// same length, same capacity, same bytes. Callers may keep using or release
// a string after a reported failure. This package never terminates the
// process on its own.
//
// Contract violations are different from recoverable errors: shrinking
// beyond the current length, using a string after [*String.Release], or
// passing a negative size are caller bugs and cause a panic via the
// runtimex assertions rather than an error return.
//
// # Collaborators
//
// Construction takes a [*Config] (see [NewConfig]) that pre-wires the
// collaborators each string uses for its whole lifetime:
//
//   - [Allocator]: obtains and releases backing storage. The default uses
//     the Go heap; tests inject failing allocators to exercise the
//     failure-atomicity contract.
//   - [Escaper]: transforms bytes into a shell-quoted encoding for
//     [*String.EscCat]. The default delegates to the wordesc subpackage;
//     the string itself implements no quoting logic.
//   - [Instrument]: advisory hooks notified when regions become
//     allocated/free or initialized/uninitialized. The default is a no-op;
//     presence or absence never changes functional behavior.
//
// # Observability
//
// [SLogInstrument] adapts the [Instrument] hooks to structured logging via
// [SLogger] (compatible with [log/slog]). Region events are emitted at
// [slog.LevelDebug] and operation failures at [slog.LevelInfo], carrying
// the string's unique ID (a UUIDv7, see [NewStringID]) for correlation,
// and err/errClass fields via the configurable [ErrClassifier].
//
// By default, logging is disabled: [DefaultSLogger] discards all output,
// following the library convention of not writing to stdout/stderr unless
// explicitly configured.
//
// # Ownership and Concurrency
//
// Each [*String] has exactly one logical owner. [*String.Bytes] returns a
// view aliasing internal storage: the view is invalidated by any mutating
// operation, which may reallocate the backing region. Duplicate with
// [DupString] instead of sharing.
//
// A [*String] is a single-threaded data structure: no operation is safe to
// invoke concurrently on the same instance without external
// synchronization. No operation blocks; there is no cancellation concept
// and hence no context parameter.
//
// # Design Boundaries
//
// This package intentionally provides only byte-level operations. The
// following are out of scope and should be implemented by higher-level
// packages:
//
//   - Unicode-aware operations and locale-aware collation
//   - In-place mutation of sub-ranges
//   - Thread-safety of a single instance
//   - Parsing of escaped or formatted output
package dstr

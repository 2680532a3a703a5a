// SPDX-License-Identifier: GPL-3.0-or-later

package dstr_test

import (
	"fmt"

	"github.com/bassosimone/dstr"
	"github.com/bassosimone/runtimex"
)

// This example shows how to build up a string incrementally from
// literal, formatted, and shell-escaped pieces.
func Example_buildCommandLine() {
	// Create a config with the default collaborators
	cfg := dstr.NewConfig()

	// Start from the command name
	cmd := runtimex.PanicOnError1(dstr.Dup(cfg, "grep"))
	defer cmd.Release()

	// Append a formatted option
	runtimex.PanicOnError0(cmd.Catf(" -%c", 'n'))

	// Append the pattern, quoted so the shell treats it as one word
	runtimex.PanicOnError0(cmd.App(' '))
	runtimex.PanicOnError0(cmd.EscCat("hello world", dstr.EscShell))

	fmt.Println(cmd.Text())

	// Output:
	// grep -n 'hello world'
}

// This example shows that exact-length operations preserve embedded
// NUL bytes, which bounded operations would stop at.
func Example_embeddedNULs() {
	cfg := dstr.NewConfig()

	// DupExact copies every byte, NULs included
	s := runtimex.PanicOnError1(dstr.DupExact(cfg, []byte("a\x00b")))
	defer s.Release()

	// CatExact appends every byte too
	runtimex.PanicOnError0(s.CatExact([]byte("\x00c")))

	fmt.Println(s.Len())
	fmt.Printf("%q\n", s.Bytes())

	// Output:
	// 5
	// "a\x00b\x00c"
}

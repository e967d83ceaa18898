//go:build !release

// Package assert checks programming-error preconditions. Default builds panic
// on a failed check; builds with the release tag compile the checks away.
package assert

import "fmt"

// Enabled reports whether checks are compiled in.
const Enabled = true

// That panics with the formatted message if cond is false.
func That(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

//go:build debug

// Package assert provides development-time invariant checks that compile
// to nothing outside of debug builds (see noassert.go). Checks are passed
// as closures so the cost of computing them — which can be as large as a
// full tree walk — is paid only when the debug build tag is set.
package assert

import "fmt"

// Check invokes f and panics if it reports a non-nil error.
func Check(f func() error) {
	if err := f(); err != nil {
		panic(fmt.Sprintf("assertion failed: %v", err))
	}
}

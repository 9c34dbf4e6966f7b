//go:build !vecdebug

// Package assert implements contract assertions that are compiled in only
// under the vecdebug build tag. Violations are programmer errors, not
// recoverable failures: release builds elide the checks entirely.
package assert

// Enabled reports whether contract assertions are compiled in.
const Enabled = false

// That is a no-op in release builds.
func That(bool, string, ...any) {}

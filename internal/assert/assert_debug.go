//go:build vecdebug

package assert

import "fmt"

// Enabled reports whether contract assertions are compiled in.
const Enabled = true

// That panics with a formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic("assert: " + fmt.Sprintf(format, args...))
	}
}

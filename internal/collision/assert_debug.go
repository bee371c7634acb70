//go:build debug

package collision

import "fmt"

// assertf panics when cond is false. Built only with -tags debug.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

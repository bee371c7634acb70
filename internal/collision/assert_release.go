//go:build !debug

package collision

// assertf is a no-op outside debug builds
func assertf(bool, string, ...any) {}

//go:build !debug

package alloc

// assertSize is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertSize(string, int) {}

// assertAlignment is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAlignment(string, int) {}

// assertAddress is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAddress(string, int64) {}

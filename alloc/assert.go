//go:build debug

package alloc

import (
	"fmt"

	"github.com/dacapoday/bump/internal/header"
)

// assertSize panics if size is negative.
// Only enabled with -tags debug.
func assertSize(method string, size int) {
	if size < 0 {
		panic(fmt.Sprintf("%s: negative size %d", method, size))
	}
}

// assertAlignment panics if alignment is not a power of two >= 1.
// Only enabled with -tags debug.
func assertAlignment(method string, alignment int) {
	if alignment < 1 || alignment&(alignment-1) != 0 {
		panic(fmt.Sprintf("%s: alignment %d is not a power of two", method, alignment))
	}
}

// assertAddress panics if addr cannot have a header in front of it.
// Only enabled with -tags debug.
func assertAddress(method string, addr int64) {
	if addr < header.Size {
		panic(fmt.Sprintf("%s: implausible address %d", method, addr))
	}
}

// Package align provides the alignment arithmetic used by the allocator.
package align

import "unsafe"

// WordSize is the machine's natural alignment: the size of a pointer.
const WordSize = int64(unsafe.Sizeof(uintptr(0)))

// Up returns the smallest multiple of alignment that is >= v.
// alignment must be a power of two >= 1; the result is unspecified otherwise.
func Up(v, alignment int64) int64 {
	return (v + alignment - 1) &^ (alignment - 1)
}

// Word rounds v up to the machine word size.
func Word(v int64) int64 {
	return Up(v, WordSize)
}

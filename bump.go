// Package bump defines basic interfaces for building an sbrk-style bump allocator.
package bump

import "io"

// Heap provides access to a contiguous memory region that grows and shrinks
// at one end, in the manner of the program break. The Heap interface is the
// minimum implementation required by the allocator.
//
// A Heap hands out addresses, not pointers: an address is an absolute offset
// into the region, and address 0 is never valid. Byte access to the region
// goes through ReaderAt/WriterAt at those addresses, which is how the
// allocator keeps its block headers inline on the heap itself.
//
// The break is process-wide state from the allocator's point of view: the
// allocator assumes it is the exclusive owner of all break adjustments for
// as long as it holds outstanding allocations. A Heap is not required to be
// safe for concurrent use.
type Heap interface {
	io.ReaderAt
	io.WriterAt

	// Sbrk moves the break by delta bytes (positive grows, negative
	// shrinks) and returns the break as it was before the adjustment.
	// Sbrk(0) is the read-only current-break query.
	Sbrk(delta int64) (int64, error)
}

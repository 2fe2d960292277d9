// Package mem provides an in-memory implementation of the bump.Heap
// interface: a growable byte buffer with a movable break.
package mem

import (
	"github.com/dacapoday/bump"
)

// Base is the initial break. It is non-zero so that address 0 stays
// invalid, the way a real program break never sits at the null page.
const Base = 4096

// Heap is an in-memory heap region backed by a byte slice.
//
// Heap requires no initialization - just declare and use:
//
//	var h Heap
//	prior, _ := h.Sbrk(64)
//
// Memory released by a negative Sbrk and granted again later reads back
// zeroed. Heap is not safe for concurrent use; the break is a single
// shared resource and callers own its synchronization.
type Heap struct {
	buf   []byte // region contents for [Base, break)
	limit int64  // break ceiling, 0 = unlimited
}

var _ bump.Heap = new(Heap)

// SetLimit caps the break at limit bytes. Growth past the cap fails with
// bump.ErrOutOfMemory, simulating resource exhaustion. A limit of 0
// removes the cap. The current break may already exceed a new limit;
// only further growth is refused.
func (heap *Heap) SetLimit(limit int64) {
	heap.limit = limit
}

// Break returns the current break without going through Sbrk.
func (heap *Heap) Break() int64 {
	return Base + int64(len(heap.buf))
}

// Sbrk moves the break by delta bytes and returns the prior break.
// Growing past the configured limit fails with bump.ErrOutOfMemory;
// shrinking below Base fails with bump.ErrShrinkBelowBase. On failure
// the break is unchanged.
func (heap *Heap) Sbrk(delta int64) (int64, error) {
	prior := heap.Break()
	switch {
	case delta > 0:
		if heap.limit > 0 && prior+delta > heap.limit {
			return 0, bump.ErrOutOfMemory
		}
		// Appending a fresh slice copies zeros over any reused
		// capacity, so regrown regions always read back zeroed.
		heap.buf = append(heap.buf, make([]byte, delta)...)
	case delta < 0:
		if prior+delta < Base {
			return 0, bump.ErrShrinkBelowBase
		}
		heap.buf = heap.buf[:prior+delta-Base]
	}
	return prior, nil
}

// ReadAt reads len(p) bytes starting at address off.
// The full range must lie within [Base, break).
func (heap *Heap) ReadAt(p []byte, off int64) (n int, err error) {
	if off < Base || off+int64(len(p)) > heap.Break() {
		return 0, bump.ErrOutOfRange
	}
	return copy(p, heap.buf[off-Base:]), nil
}

// WriteAt writes len(p) bytes starting at address off.
// The full range must lie within [Base, break).
func (heap *Heap) WriteAt(p []byte, off int64) (n int, err error) {
	if off < Base || off+int64(len(p)) > heap.Break() {
		return 0, bump.ErrOutOfRange
	}
	return copy(heap.buf[off-Base:], p), nil
}

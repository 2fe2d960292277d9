// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package alloc implements a bump allocator over an injected heap boundary.
//
// The allocator services variable-size, variable-alignment requests from a
// single contiguous region that grows and shrinks at one end through
// bump.Heap. Every allocation is preceded by an inline block header; the
// headers form a singly linked list in allocation order, which is also
// address order because the region only grows forward and shrinks from the
// tail. Freed interior blocks stay in the list as holes and can be reused
// through a configurable search strategy; only the tail block's release
// gives memory back to the heap.
package alloc

import (
	"github.com/dacapoday/bump"
	"github.com/dacapoday/bump/align"
	"github.com/dacapoday/bump/internal/header"
)

// Allocator is a bump allocator. It is not safe for concurrent use: the
// block list, the next-fit cursor and the heap break are all mutated
// without locking, so multi-threaded callers must wrap every call in
// their own mutual exclusion.
//
// The zero Allocator is not usable; construct with New.
type Allocator struct {
	heap   bump.Heap
	first  int64 // header address of the oldest block, 0 = none
	last   int64 // header address of the newest block, 0 = none
	mode   SearchMode
	cursor int64 // next-fit resume point, 0 = unset
	stats  Stats
	buffer [header.Size]byte
}

// New creates an empty Allocator that adjusts the break of heap. The
// allocator assumes exclusive ownership of that break for as long as it
// holds outstanding allocations.
func New(heap bump.Heap) *Allocator {
	return &Allocator{heap: heap}
}

// Allocate returns the address of a region of size bytes whose address is
// a multiple of alignment. alignment must be a power of two >= 1; it is
// not validated outside debug builds and a violation leaves the result
// unspecified. A zero size is allowed and consumes a header-only region.
//
// A freed block located by the active search strategy is flipped in-use
// and its existing address returned; such a block keeps the alignment it
// was created with, which is not re-checked against the request.
// Otherwise the heap is grown and a fresh block appended at the tail.
// On heap exhaustion the error from the break is returned and no partial
// state is left behind.
func (a *Allocator) Allocate(size, alignment int) (int64, error) {
	assertSize("alloc.Allocate", size)
	assertAlignment("alloc.Allocate", alignment)
	if alignment < 1 {
		alignment = 1
	}

	if addr, blk, ok, err := a.findFree(int64(size)); err != nil {
		return 0, err
	} else if ok {
		blk.Free = false
		if err := a.writeHeader(addr, blk); err != nil {
			return 0, err
		}
		a.stats.Allocations++
		a.stats.Reuses++
		a.stats.InUse++
		a.stats.Holes--
		return addr + header.Size, nil
	}

	// Reserve enough slack for the header plus worst-case alignment
	// padding, so a valid payload address always fits in the region
	// no matter where the break happens to sit.
	reserved := align.Word(header.Size + int64(size) + int64(alignment) - 1)
	raw, err := a.heap.Sbrk(reserved)
	if err != nil {
		return 0, err
	}

	content := align.Up(raw+header.Size, int64(alignment))
	addr := content - header.Size

	blk := header.Block{Size: int64(size), Reserved: reserved}
	if err := a.writeHeader(addr, blk); err != nil {
		return 0, err
	}

	if a.first == 0 {
		a.first = addr
	} else {
		tail, err := a.readHeader(a.last)
		if err != nil {
			return 0, err
		}
		tail.Next = addr
		if err := a.writeHeader(a.last, tail); err != nil {
			return 0, err
		}
	}
	a.last = addr

	a.stats.Allocations++
	a.stats.Grows++
	a.stats.InUse++
	a.stats.BytesReserved += uint64(reserved)
	return content, nil
}

// Free releases the region at addr, which must be 0 (a no-op) or an
// address previously returned by Allocate on this allocator and not yet
// freed. Double frees and foreign addresses are not detected.
//
// An interior block is only marked free; it stays in the list as a hole
// for the search strategies to reuse. The tail block is unlinked and its
// reserved region given back to the heap, exactly the amount granted when
// it was created.
func (a *Allocator) Free(addr int64) error {
	if addr == 0 {
		return nil
	}
	assertAddress("alloc.Free", addr)

	hdr := addr - header.Size
	blk, err := a.readHeader(hdr)
	if err != nil {
		return err
	}
	blk.Free = true
	if err := a.writeHeader(hdr, blk); err != nil {
		return err
	}
	a.stats.Frees++
	a.stats.InUse--

	if hdr != a.last {
		a.stats.Holes++
		return nil
	}

	if a.cursor == hdr {
		a.cursor = 0
	}
	if a.first == a.last {
		a.first, a.last = 0, 0
	} else {
		// The list has no back-links, so finding the new tail walks
		// from the head.
		cur := a.first
		for {
			cb, err := a.readHeader(cur)
			if err != nil {
				return err
			}
			if cb.Next == hdr {
				cb.Next = 0
				if err := a.writeHeader(cur, cb); err != nil {
					return err
				}
				a.last = cur
				break
			}
			cur = cb.Next
		}
	}

	// Shrinking by a previously granted amount is not expected to fail,
	// and the bookkeeping above is already committed either way.
	_, _ = a.heap.Sbrk(-blk.Reserved)
	a.stats.Shrinks++
	a.stats.BytesReleased += uint64(blk.Reserved)
	return nil
}

// SearchMode returns the active reuse policy.
func (a *Allocator) SearchMode() SearchMode {
	return a.mode
}

// SetSearchMode switches the reuse policy. Switching away from next-fit
// resets its cursor.
func (a *Allocator) SetSearchMode(mode SearchMode) {
	if a.mode == NextFit && mode != NextFit {
		a.cursor = 0
	}
	a.mode = mode
}

// Break reports the current heap break. It is a read-only query for
// tooling and tests, not part of the allocation contract.
func (a *Allocator) Break() (int64, error) {
	return a.heap.Sbrk(0)
}

// Stats returns a snapshot of the allocator's counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}

func (a *Allocator) readHeader(addr int64) (header.Block, error) {
	if _, err := a.heap.ReadAt(a.buffer[:], addr); err != nil {
		return header.Block{}, err
	}
	return header.Decode(a.buffer[:]), nil
}

func (a *Allocator) writeHeader(addr int64, blk header.Block) error {
	header.Encode(a.buffer[:], blk)
	_, err := a.heap.WriteAt(a.buffer[:], addr)
	return err
}

// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package alloc

import "github.com/dacapoday/bump/internal/header"

// SearchMode selects the policy for finding a freed block to satisfy a
// request before falling back to growing the heap.
type SearchMode uint8

const (
	// FirstFit scans from the head of the list and takes the first
	// qualifying block. Cheap, but tends to fragment the head.
	FirstFit SearchMode = iota

	// NextFit resumes where the previous successful search ended and
	// wraps around, spreading reuse across the list instead of
	// hammering the head.
	NextFit

	// BestFit scans the whole list and takes the smallest qualifying
	// block, minimizing payload waste among reused blocks.
	BestFit
)

func (mode SearchMode) String() string {
	switch mode {
	case FirstFit:
		return "first-fit"
	case NextFit:
		return "next-fit"
	case BestFit:
		return "best-fit"
	default:
		return "unknown"
	}
}

// findFree locates a free block with capacity of at least size under the
// active policy. ok is false when no block qualifies.
func (a *Allocator) findFree(size int64) (addr int64, blk header.Block, ok bool, err error) {
	switch a.mode {
	case NextFit:
		return a.nextFit(size)
	case BestFit:
		return a.bestFit(size)
	default:
		return a.firstFit(size)
	}
}

func (a *Allocator) firstFit(size int64) (addr int64, blk header.Block, ok bool, err error) {
	for cur := a.first; cur != 0; cur = blk.Next {
		if blk, err = a.readHeader(cur); err != nil {
			return
		}
		if blk.Free && blk.Size >= size {
			return cur, blk, true, nil
		}
	}
	return
}

// nextFit scans from the cursor (the head when unset) to the end, then
// wraps and scans from the head up to, but not including, the starting
// point. The cursor moves to the found block on success and stays put on
// failure.
func (a *Allocator) nextFit(size int64) (addr int64, blk header.Block, ok bool, err error) {
	start := a.cursor
	if start == 0 {
		start = a.first
	}

	for cur := start; cur != 0; cur = blk.Next {
		if blk, err = a.readHeader(cur); err != nil {
			return
		}
		if blk.Free && blk.Size >= size {
			a.cursor = cur
			return cur, blk, true, nil
		}
	}
	for cur := a.first; cur != start; cur = blk.Next {
		if blk, err = a.readHeader(cur); err != nil {
			return
		}
		if blk.Free && blk.Size >= size {
			a.cursor = cur
			return cur, blk, true, nil
		}
	}
	return
}

// bestFit tracks the smallest qualifying block over the whole list,
// short-circuiting on an exact size match. Ties go to the block seen
// first, which keeps selection deterministic under list order.
func (a *Allocator) bestFit(size int64) (addr int64, best header.Block, ok bool, err error) {
	var blk header.Block
	for cur := a.first; cur != 0; cur = blk.Next {
		if blk, err = a.readHeader(cur); err != nil {
			return
		}
		if !blk.Free || blk.Size < size {
			continue
		}
		if blk.Size == size {
			return cur, blk, true, nil
		}
		if !ok || blk.Size < best.Size {
			addr, best, ok = cur, blk, true
		}
	}
	return
}

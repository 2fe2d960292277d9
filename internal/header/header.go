// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package header encodes the fixed-size block header stored inline on the
// heap immediately before each allocation's payload. A payload address maps
// back to its header by subtracting Size, which keeps header recovery O(1)
// without a side table.
package header

import "encoding/binary"

// Size is the encoded byte length of a Block. It is a multiple of the
// machine word size, so word-aligning a region that reserves Size bytes
// up front never misplaces the header.
const Size = 32

const flagFree = 1 << 0

// Block is the metadata record for one allocation.
type Block struct {
	// Size is the usable payload byte count requested by the caller,
	// excluding the header and any alignment padding.
	Size int64

	// Reserved is the exact region size granted by the break when the
	// block was created. Releasing the block shrinks the break by this
	// amount, never by a value derived again at free time.
	Reserved int64

	// Next is the header address of the block allocated immediately
	// after this one, or 0 for the tail.
	Next int64

	// Free reports whether the caller has released the block.
	Free bool
}

// Decode reads a Block from the first Size bytes of b.
func Decode(b []byte) Block {
	var flags = binary.LittleEndian.Uint64(b[24:32])
	return Block{
		Size:     int64(binary.LittleEndian.Uint64(b[0:8])),
		Reserved: int64(binary.LittleEndian.Uint64(b[8:16])),
		Next:     int64(binary.LittleEndian.Uint64(b[16:24])),
		Free:     flags&flagFree != 0,
	}
}

// Encode writes blk into the first Size bytes of b.
func Encode(b []byte, blk Block) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(blk.Size))
	binary.LittleEndian.PutUint64(b[8:16], uint64(blk.Reserved))
	binary.LittleEndian.PutUint64(b[16:24], uint64(blk.Next))
	var flags uint64
	if blk.Free {
		flags |= flagFree
	}
	binary.LittleEndian.PutUint64(b[24:32], flags)
}

//go:build linux

package brk

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/dacapoday/bump"
)

// Heap adjusts the process program break. Addresses returned by Sbrk are
// real virtual addresses; ReadAt/WriteAt copy through them directly.
// Like the break itself, a Heap is not safe for concurrent use.
type Heap struct{}

var _ bump.Heap = (*Heap)(nil)

// Open returns a Heap over the program break.
func Open() (*Heap, error) {
	return &Heap{}, nil
}

// Sbrk moves the program break by delta bytes and returns the prior
// break. The kernel leaves the break untouched when the request cannot
// be satisfied, which surfaces here as bump.ErrOutOfMemory.
func (*Heap) Sbrk(delta int64) (int64, error) {
	cur, err := brk(0)
	if err != nil {
		return 0, err
	}
	if delta == 0 {
		return int64(cur), nil
	}

	want := uintptr(int64(cur) + delta)
	got, err := brk(want)
	if err != nil {
		return 0, err
	}
	if got != want {
		return 0, bump.ErrOutOfMemory
	}
	return int64(cur), nil
}

// brk(addr) returns the break after attempting to set it to addr;
// brk(0) queries without moving.
func brk(addr uintptr) (uintptr, error) {
	got, _, errno := unix.Syscall(unix.SYS_BRK, addr, 0, 0)
	if errno != 0 {
		return 0, errno
	}
	return got, nil
}

// ReadAt copies len(p) bytes out of the heap starting at address off.
func (*Heap) ReadAt(p []byte, off int64) (n int, err error) {
	if off <= 0 {
		return 0, bump.ErrOutOfRange
	}
	return copy(p, region(off, len(p))), nil
}

// WriteAt copies len(p) bytes into the heap starting at address off.
func (*Heap) WriteAt(p []byte, off int64) (n int, err error) {
	if off <= 0 {
		return 0, bump.ErrOutOfRange
	}
	return copy(region(off, len(p)), p), nil
}

func region(off int64, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(off))), size)
}

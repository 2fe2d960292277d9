//go:build !linux

package brk

import "github.com/dacapoday/bump"

// Heap is a placeholder on platforms without a program break.
type Heap struct{}

// Open reports that the program break is unavailable.
func Open() (*Heap, error) {
	return nil, bump.ErrUnsupported
}

func (*Heap) Sbrk(int64) (int64, error) {
	return 0, bump.ErrUnsupported
}

func (*Heap) ReadAt([]byte, int64) (int, error) {
	return 0, bump.ErrUnsupported
}

func (*Heap) WriteAt([]byte, int64) (int, error) {
	return 0, bump.ErrUnsupported
}

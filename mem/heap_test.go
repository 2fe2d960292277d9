package mem

import (
	"errors"
	"testing"

	"github.com/dacapoday/bump"
)

// TestSbrkGrowShrink tests break movement and the prior-break return value.
func TestSbrkGrowShrink(t *testing.T) {
	var h Heap

	if brk := h.Break(); brk != Base {
		t.Fatalf("initial break = %d, want %d", brk, Base)
	}

	// Sbrk(0) queries without moving.
	prior, err := h.Sbrk(0)
	if err != nil || prior != Base {
		t.Fatalf("Sbrk(0) = %d, %v, want %d, nil", prior, err, Base)
	}

	// Growing returns the break before the adjustment.
	prior, err = h.Sbrk(100)
	if err != nil || prior != Base {
		t.Fatalf("Sbrk(100) = %d, %v, want %d, nil", prior, err, Base)
	}
	if brk := h.Break(); brk != Base+100 {
		t.Errorf("break after grow = %d, want %d", brk, Base+100)
	}

	prior, err = h.Sbrk(28)
	if err != nil || prior != Base+100 {
		t.Fatalf("Sbrk(28) = %d, %v, want %d, nil", prior, err, Base+100)
	}

	// Shrinking returns the prior break too.
	prior, err = h.Sbrk(-28)
	if err != nil || prior != Base+128 {
		t.Fatalf("Sbrk(-28) = %d, %v, want %d, nil", prior, err, Base+128)
	}
	if brk := h.Break(); brk != Base+100 {
		t.Errorf("break after shrink = %d, want %d", brk, Base+100)
	}
}

func TestSbrkShrinkBelowBase(t *testing.T) {
	var h Heap
	h.Sbrk(10)

	if _, err := h.Sbrk(-11); !errors.Is(err, bump.ErrShrinkBelowBase) {
		t.Fatalf("Sbrk(-11) err = %v, want ErrShrinkBelowBase", err)
	}
	// Failure leaves the break unchanged.
	if brk := h.Break(); brk != Base+10 {
		t.Errorf("break after failed shrink = %d, want %d", brk, Base+10)
	}
}

func TestSbrkLimit(t *testing.T) {
	var h Heap
	h.SetLimit(Base + 64)

	if _, err := h.Sbrk(64); err != nil {
		t.Fatalf("Sbrk(64) within limit failed: %v", err)
	}
	if _, err := h.Sbrk(1); !errors.Is(err, bump.ErrOutOfMemory) {
		t.Fatalf("Sbrk(1) past limit err = %v, want ErrOutOfMemory", err)
	}
	if brk := h.Break(); brk != Base+64 {
		t.Errorf("break after refused grow = %d, want %d", brk, Base+64)
	}

	// Removing the cap allows growth again.
	h.SetLimit(0)
	if _, err := h.Sbrk(1); err != nil {
		t.Fatalf("Sbrk(1) after SetLimit(0) failed: %v", err)
	}
}

func TestReadWriteAt(t *testing.T) {
	var h Heap
	h.Sbrk(64)

	data := []byte("hello")
	n, err := h.WriteAt(data, Base+10)
	if err != nil || n != len(data) {
		t.Fatalf("WriteAt failed: n=%d, err=%v", n, err)
	}

	buf := make([]byte, 5)
	n, err = h.ReadAt(buf, Base+10)
	if err != nil || n != 5 || string(buf) != "hello" {
		t.Errorf("ReadAt: got %q, %v, want %q", buf, err, "hello")
	}

	// Unwritten space reads back zeroed.
	gap := make([]byte, 10)
	if _, err := h.ReadAt(gap, Base); err != nil {
		t.Fatalf("ReadAt gap failed: %v", err)
	}
	for i, b := range gap {
		if b != 0 {
			t.Errorf("gap[%d] = %d, want 0", i, b)
		}
	}
}

func TestReadWriteAtBounds(t *testing.T) {
	var h Heap
	h.Sbrk(16)

	buf := make([]byte, 4)
	for _, off := range []int64{0, Base - 4, Base + 13, Base + 16} {
		if _, err := h.ReadAt(buf, off); !errors.Is(err, bump.ErrOutOfRange) {
			t.Errorf("ReadAt(%d) err = %v, want ErrOutOfRange", off, err)
		}
		if _, err := h.WriteAt(buf, off); !errors.Is(err, bump.ErrOutOfRange) {
			t.Errorf("WriteAt(%d) err = %v, want ErrOutOfRange", off, err)
		}
	}
}

// TestRegrowZeroed tests that memory released by shrink and granted again
// does not leak its old contents.
func TestRegrowZeroed(t *testing.T) {
	var h Heap
	h.Sbrk(32)

	pattern := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if _, err := h.WriteAt(pattern, Base+28); err != nil {
		t.Fatalf("WriteAt failed: %v", err)
	}

	h.Sbrk(-32)
	h.Sbrk(32)

	buf := make([]byte, 4)
	if _, err := h.ReadAt(buf, Base+28); err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Errorf("regrown[%d] = %#x, want 0", i, b)
		}
	}
}

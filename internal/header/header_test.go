package header

import (
	"encoding/binary"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	blk := Block{Size: 100, Reserved: 144, Next: 4240, Free: true}

	var b [Size]byte
	Encode(b[:], blk)
	if got := Decode(b[:]); got != blk {
		t.Errorf("Decode(Encode(%+v)) = %+v", blk, got)
	}
}

func TestLayout(t *testing.T) {
	blk := Block{Size: 0x11, Reserved: 0x22, Next: 0x33, Free: false}

	var b [Size]byte
	Encode(b[:], blk)

	if got := binary.LittleEndian.Uint64(b[0:8]); got != 0x11 {
		t.Errorf("size field = %#x, want 0x11", got)
	}
	if got := binary.LittleEndian.Uint64(b[8:16]); got != 0x22 {
		t.Errorf("reserved field = %#x, want 0x22", got)
	}
	if got := binary.LittleEndian.Uint64(b[16:24]); got != 0x33 {
		t.Errorf("next field = %#x, want 0x33", got)
	}
	if got := binary.LittleEndian.Uint64(b[24:32]); got != 0 {
		t.Errorf("flags field = %#x, want 0", got)
	}

	blk.Free = true
	Encode(b[:], blk)
	if got := binary.LittleEndian.Uint64(b[24:32]); got != 1 {
		t.Errorf("flags field with free bit = %#x, want 1", got)
	}
}

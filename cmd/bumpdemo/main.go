// bumpdemo walks a bump allocator through a small allocation story and
// prints how the heap break moves at each step.
//
// Usage:
//
//	bumpdemo                 # simulated in-memory heap
//	bumpdemo -os             # real program break (linux only)
//	bumpdemo -mode best      # reuse policy: first, next or best
//	bumpdemo -step           # pause for a keypress between steps
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dacapoday/bump"
	"github.com/dacapoday/bump/alloc"
	"github.com/dacapoday/bump/brk"
	"github.com/dacapoday/bump/mem"
)

func main() {
	osFlag := flag.Bool("os", false, "use the real program break (linux only)")
	modeFlag := flag.String("mode", "first", "reuse policy: first, next or best")
	stepFlag := flag.Bool("step", false, "pause for a keypress between steps")
	flag.Parse()

	mode, err := parseMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var heap bump.Heap
	if *osFlag {
		h, err := brk.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		heap = h
	} else {
		heap = new(mem.Heap)
	}

	a := alloc.New(heap)
	a.SetSearchMode(mode)

	d := &demo{a: a, heap: heap, step: *stepFlag}
	if err := d.run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseMode(s string) (alloc.SearchMode, error) {
	switch s {
	case "first":
		return alloc.FirstFit, nil
	case "next":
		return alloc.NextFit, nil
	case "best":
		return alloc.BestFit, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want first, next or best)", s)
}

type demo struct {
	a    *alloc.Allocator
	heap bump.Heap
	step bool
}

func (d *demo) run() error {
	start, err := d.a.Break()
	if err != nil {
		return err
	}
	fmt.Printf("reuse policy: %s\n", d.a.SearchMode())
	fmt.Printf("initial break: %#x\n\n", start)

	// A word-aligned 4-byte region holding a little-endian u32.
	p1, err := d.a.Allocate(4, 4)
	if err != nil {
		return err
	}
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], 0xDEADBEEF)
	if _, err := d.heap.WriteAt(word[:], p1); err != nil {
		return err
	}
	if err := d.report("4-byte region (align 4)", p1); err != nil {
		return err
	}
	d.pause()

	// A byte-aligned scratch region.
	p2, err := d.a.Allocate(12, 1)
	if err != nil {
		return err
	}
	scratch := make([]byte, 12)
	for i := range scratch {
		scratch[i] = 0xAB
	}
	if _, err := d.heap.WriteAt(scratch, p2); err != nil {
		return err
	}
	if err := d.report("12-byte region (align 1)", p2); err != nil {
		return err
	}
	d.pause()

	// An 8-byte region holding a little-endian u64.
	p3, err := d.a.Allocate(8, 8)
	if err != nil {
		return err
	}
	var dword [8]byte
	binary.LittleEndian.PutUint64(dword[:], 0x1122334455667788)
	if _, err := d.heap.WriteAt(dword[:], p3); err != nil {
		return err
	}
	if err := d.report("8-byte region (align 8)", p3); err != nil {
		return err
	}
	d.pause()

	// Sixteen 2-byte counters.
	p4, err := d.a.Allocate(32, 2)
	if err != nil {
		return err
	}
	counters := make([]byte, 32)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint16(counters[2*i:], uint16(i))
	}
	if _, err := d.heap.WriteAt(counters, p4); err != nil {
		return err
	}
	if err := d.report("16 u16 counters (align 2)", p4); err != nil {
		return err
	}
	d.pause()

	// Read the first region back before poking holes in the heap.
	if _, err := d.heap.ReadAt(word[:], p1); err != nil {
		return err
	}
	fmt.Printf("first region reads back:   %#x\n\n", binary.LittleEndian.Uint32(word[:]))

	// Freeing an interior block leaves a hole; the break does not move.
	if err := d.a.Free(p1); err != nil {
		return err
	}
	if err := d.report("freed first region", 0); err != nil {
		return err
	}
	d.pause()

	// A small request lands in the hole instead of growing the heap.
	p5, err := d.a.Allocate(2, 2)
	if err != nil {
		return err
	}
	if err := d.report("2-byte region (align 2)", p5); err != nil {
		return err
	}
	fmt.Printf("reused the hole:           %v\n\n", p5 == p1)
	d.pause()

	// A large request always grows the heap.
	p6, err := d.a.Allocate(64<<10, 8)
	if err != nil {
		return err
	}
	if err := d.report("64 KiB region (align 8)", p6); err != nil {
		return err
	}
	d.pause()

	// Releasing the tail gives its whole reservation back.
	if err := d.a.Free(p6); err != nil {
		return err
	}
	if err := d.report("freed 64 KiB region", 0); err != nil {
		return err
	}

	s := d.a.Stats()
	fmt.Printf("allocations: %d (grows %d, reuses %d)\n", s.Allocations, s.Grows, s.Reuses)
	fmt.Printf("frees: %d (shrinks %d)\n", s.Frees, s.Shrinks)
	fmt.Printf("bytes reserved %d, released %d\n", s.BytesReserved, s.BytesReleased)
	fmt.Printf("live blocks %d, holes %d\n", s.InUse, s.Holes)
	return nil
}

// report prints the address of the latest operation (0 for a free) and
// where the break sits afterwards.
func (d *demo) report(label string, addr int64) error {
	brk, err := d.a.Break()
	if err != nil {
		return err
	}
	if addr != 0 {
		fmt.Printf("%-26s at %#x, break %#x\n", label, addr, brk)
	} else {
		fmt.Printf("%-26s break %#x\n", label, brk)
	}
	return nil
}

func (d *demo) pause() {
	if !d.step {
		return
	}
	fmt.Print("-- press any key --")
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		var b [1]byte
		os.Stdin.Read(b[:])
		term.Restore(int(os.Stdin.Fd()), oldState)
	}
	fmt.Print("\r\033[K\n")
}

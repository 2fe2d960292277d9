package mem_test

import (
	"fmt"

	"github.com/dacapoday/bump/mem"
)

func Example() {
	// No initialization needed - just declare and use
	var h mem.Heap

	// Grow the heap by 16 bytes; Sbrk returns the prior break
	prior, _ := h.Sbrk(16)
	fmt.Printf("granted region at %d\n", prior)

	// The granted region is readable and writable
	h.WriteAt([]byte("hello"), prior)
	buf := make([]byte, 5)
	h.ReadAt(buf, prior)
	fmt.Printf("%s\n", buf)

	// Shrink back and check the break
	h.Sbrk(-16)
	fmt.Printf("break back at start: %v\n", h.Break() == mem.Base)

	// Output:
	// granted region at 4096
	// hello
	// break back at start: true
}

package alloc

// Stats counts allocator activity. All counters except InUse and Holes
// are monotonic.
type Stats struct {
	Allocations uint64 // successful Allocate calls
	Reuses      uint64 // allocations satisfied from a freed block
	Grows       uint64 // allocations that extended the break
	Frees       uint64 // Free calls on a non-zero address
	Shrinks     uint64 // tail releases that moved the break back

	BytesReserved uint64 // region bytes granted by the break, total
	BytesReleased uint64 // region bytes given back, total

	InUse int // blocks currently allocated
	Holes int // freed interior blocks still in the list
}

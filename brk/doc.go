// Package brk implements the bump.Heap interface on the real program
// break via the brk system call. It is only available on linux; Open
// reports bump.ErrUnsupported elsewhere.
//
// The program break is process-wide state with no ownership partitioning:
// anything else in the process that moves it, including the C allocator
// in cgo builds, invalidates the caller's bookkeeping. Use mem.Heap
// unless you really are the only tenant.
package brk

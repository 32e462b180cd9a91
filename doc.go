// Package mempool implements a fixed-size memory pool with first-fit
// allocation and coalescing free-block management.
//
// # Overview
//
// The pool manages a single fixed-capacity byte arena, provisioned once for
// the process lifetime and never grown, with no dependency on an underlying
// allocator for servicing requests. The arena is covered by an
// address-ordered chain of blocks, each FREE or ALLOCATED. This is useful
// for:
//
//   - Embedded-style memory budgets with a hard ceiling
//   - Deterministic allocation behavior independent of the Go heap
//   - Individual release of regions, unlike bump/arena allocators
//   - Inspectable fragmentation via the block-chain report
//
// # Basic Usage
//
//	pool := mempool.New(0) // Use the default pool size
//
//	h, err := pool.Alloc(1024)
//	if err != nil {
//	    // mempool.ErrInvalidSize or mempool.ErrOutOfMemory
//	}
//
//	buf := pool.Bytes(h) // the region as a []byte, valid until release
//	copy(buf, payload)
//
//	if err := pool.Release(h); err != nil {
//	    // mempool.ErrInvalidPointer: the handle was not an allocated region
//	}
//
// A package-level default pool mirrors the same API for programs that want a
// single process-wide pool: mempool.Alloc, mempool.Release, mempool.Report.
//
// # Allocation Strategy
//
// Alloc rounds the request up to a 4-byte boundary and scans the chain in
// address order for the first FREE block large enough (first-fit). If the
// block's surplus can host a new block header plus a minimum viable data
// region, the surplus is split off as a new FREE block; otherwise the whole
// block is handed out. Release marks the block FREE and merges it with FREE
// neighbors in both directions, so the chain never holds two adjacent FREE
// blocks and fragmentation is undone as regions come back.
//
// # Thread Safety
//
// A Pool is not thread-safe and assumes a single logical owner at a time.
// Callers that share a pool across goroutines must serialize access
// themselves.
//
// # Performance Characteristics
//
//   - Alloc: O(number of blocks) first-fit scan
//   - Release: O(1) given the handle, plus constant-time coalescing
//   - No operation blocks, yields, or touches the OS
//
// # Important Notes
//
//   - Allocated regions are not zeroed
//   - Releasing a handle twice, or a handle the pool never issued, is a
//     caller error; the pool rejects what it can detect but gives no
//     stronger guarantee
//   - The pool never grows; Alloc fails with ErrOutOfMemory when no FREE
//     block fits, and the caller may retry after releasing other handles
//
// # Diagnostics
//
// The pool exposes read-only introspection of the block chain:
//
//	for _, b := range pool.Blocks() {
//	    fmt.Printf("offset=%d size=%d free=%v\n", b.Offset, b.Size, b.Free)
//	}
//
//	m := pool.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Println(pool.Report())
package mempool

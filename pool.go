// Package mempool implements a fixed-size memory pool with an address-ordered
// free-block chain. Typical usage: create one pool (or use the package-level
// default), Alloc and Release byte regions through it, and read Metrics or
// Report for diagnostics.
package mempool

// PoolSize is the default pool capacity in bytes (10 KiB).
const PoolSize = 10 * 1024

const (
	// headerSize is the per-block accounting overhead in bytes. Block
	// metadata lives out-of-band as chain nodes, but every block still
	// reserves headerSize bytes of the pool ahead of its data region so
	// the chain arithmetic matches an embedded-header layout.
	headerSize = 16

	// minPayload is the smallest data region a split may leave behind.
	// A surplus below headerSize+minPayload is absorbed into the
	// allocation instead of becoming an unusably small FREE block.
	minPayload = headerSize

	// sizeAlign is the boundary requested sizes are rounded up to.
	sizeAlign = 4

	// minPoolSize is the smallest arena worth carving: one header plus
	// the minimum data region.
	minPoolSize = headerSize + minPayload
)

// Handle identifies an allocated data region by its byte offset within the
// pool. The zero Handle is the null handle: no data region ever starts at
// offset 0, because the first block's header reserves the pool's first
// headerSize bytes.
type Handle int

// NoHandle is the null Handle. Releasing it is a no-op.
const NoHandle Handle = 0

// Pool is a fixed-capacity allocator over a single byte arena. The arena is
// provisioned once and never grown; Alloc and Release manage it through an
// address-ordered chain of FREE and ALLOCATED blocks with first-fit
// placement, splitting on allocation and coalescing on release.
//
// A Pool is not goroutine-safe. It assumes a single logical owner at a time;
// concurrent callers must be serialized by the embedding application.
// The zero Pool is ready to use and initializes itself with PoolSize bytes
// on first Alloc or Init.
type Pool struct {
	buf         []byte
	chain       chain
	initialized bool
}

// New creates a Pool backed by a poolSize-byte arena.
// If poolSize <= 0, PoolSize is used.
func New(poolSize int) *Pool {
	if poolSize <= 0 {
		poolSize = PoolSize
	} else if poolSize < minPoolSize {
		poolSize = minPoolSize
	}
	p := &Pool{buf: make([]byte, poolSize)}
	p.Init()
	return p
}

// Init establishes the initial chain: one FREE block spanning the whole
// arena, with a data size of the pool capacity minus one header. Init is
// idempotent; calls after the first are no-ops. Alloc runs it implicitly,
// so calling it directly is optional.
func (p *Pool) Init() {
	if p.initialized {
		return
	}
	if p.buf == nil {
		p.buf = make([]byte, PoolSize)
	}
	p.chain.reset(len(p.buf))
	p.initialized = true
}

// alignSize rounds n up to the next sizeAlign boundary.
func alignSize(n int) int {
	return (n + sizeAlign - 1) &^ (sizeAlign - 1)
}

package mempool

import "github.com/pkg/errors"

// Alloc reserves n bytes from the pool and returns a Handle to the data
// region. The size is rounded up to a sizeAlign boundary; a request that
// rounds to zero fails with ErrInvalidSize. Placement is first-fit in
// address order: the first FREE block large enough is taken, split when the
// surplus can host a viable new block, and marked ALLOCATED. If no FREE
// block fits, Alloc fails with ErrOutOfMemory; nothing is compacted or
// retried. The returned region's contents are not zeroed.
func (p *Pool) Alloc(n int) (Handle, error) {
	p.Init()

	n = alignSize(n)
	if n <= 0 {
		return NoHandle, ErrInvalidSize
	}

	for b := p.chain.head; b != nil; b = b.next {
		if b.status != statusFree || b.size < n {
			continue
		}
		// Split only if the surplus can host a header plus the
		// minimum viable data region; otherwise the whole block is
		// handed out and the surplus is wasted internally.
		if b.size >= n+headerSize+minPayload {
			p.chain.splitAfter(b, n)
		}
		b.status = statusAllocated
		return Handle(b.dataOff()), nil
	}
	return NoHandle, errors.Wrapf(ErrOutOfMemory, "no free block of %d bytes", n)
}

// Release returns an allocated region to the pool and coalesces it with any
// FREE neighbors, so no two adjacent blocks are ever both FREE. Releasing
// NoHandle is a no-op. A handle whose header offset falls outside the pool
// fails with ErrInvalidPointer and mutates nothing; that is a caller bug
// surfaced as a diagnostic, not a recoverable condition. A handle that was
// never issued, or was already released, is likewise rejected with
// ErrInvalidPointer when it fails to resolve to an allocated block.
func (p *Pool) Release(h Handle) error {
	if h == NoHandle {
		return nil
	}

	off := int(h) - headerSize
	if off < 0 || off >= len(p.buf) {
		return errors.Wrapf(ErrInvalidPointer, "handle %d outside pool of %d bytes", h, len(p.buf))
	}
	b := p.chain.at(off)
	if b == nil || b.status != statusAllocated {
		return errors.Wrapf(ErrInvalidPointer, "handle %d does not resolve to an allocated block", h)
	}

	b.status = statusFree

	// Forward coalesce, then backward. A block FREE on both sides ends
	// up merged into its predecessor as one contiguous FREE block
	// spanning all three extents.
	if b.next != nil && b.next.status == statusFree {
		p.chain.mergeNext(b)
	}
	if b.prev != nil && b.prev.status == statusFree {
		p.chain.mergeNext(b.prev)
	}
	return nil
}

// Bytes returns the data region for an allocated handle as a slice into the
// arena. The slice is valid until the handle is released. Returns nil if h
// does not resolve to an allocated block.
func (p *Pool) Bytes(h Handle) []byte {
	off := int(h) - headerSize
	if off < 0 || off >= len(p.buf) {
		return nil
	}
	b := p.chain.at(off)
	if b == nil || b.status != statusAllocated {
		return nil
	}
	return p.buf[int(h):b.end():b.end()]
}

package mempool

// blockStatus is the state of a block in the chain.
type blockStatus uint8

const (
	statusFree blockStatus = iota
	statusAllocated
)

func (s blockStatus) String() string {
	if s == statusFree {
		return "FREE"
	}
	return "ALLOCATED"
}

// block is one node of the address-ordered chain. Its identity is the offset
// of its header region within the pool; the data region starts headerSize
// bytes after that. Blocks are never removed from the pool's byte range, only
// spliced in and out of the chain.
type block struct {
	off    int // header offset within the pool
	size   int // data region size in bytes, excluding the header
	status blockStatus
	prev   *block
	next   *block
}

// dataOff returns the offset of the block's data region, which is also the
// handle value Alloc hands out for this block.
func (b *block) dataOff() int {
	return b.off + headerSize
}

// end returns the offset one past the block's extent. For a well-formed chain
// this equals the next block's header offset.
func (b *block) end() int {
	return b.off + headerSize + b.size
}

// chain is the doubly-linked, address-ordered block list covering the pool,
// with an offset index for O(1) handle resolution. All splicing goes through
// splitAfter and mergeNext so the chain invariants (contiguity, link
// symmetry, index consistency) cannot be broken at call sites.
type chain struct {
	head  *block
	index map[int]*block // header offset -> block
}

// reset discards any existing chain and carves the pool into a single FREE
// block spanning all of total bytes.
func (c *chain) reset(total int) {
	first := &block{
		off:    0,
		size:   total - headerSize,
		status: statusFree,
	}
	c.head = first
	c.index = map[int]*block{0: first}
}

// at resolves a header offset to its block, or nil if no block starts there.
func (c *chain) at(off int) *block {
	return c.index[off]
}

// splitAfter shrinks b to n data bytes and splices a new FREE block covering
// the surplus in as b's successor. The caller must ensure
// b.size >= n+headerSize, so the new block has a non-negative data size.
func (c *chain) splitAfter(b *block, n int) {
	nb := &block{
		off:    b.off + headerSize + n,
		size:   b.size - n - headerSize,
		status: statusFree,
		prev:   b,
		next:   b.next,
	}
	if nb.next != nil {
		nb.next.prev = nb
	}
	b.next = nb
	b.size = n
	c.index[nb.off] = nb
}

// mergeNext absorbs b's successor into b, extending b over the successor's
// header and data bytes and splicing the successor out of the chain.
func (c *chain) mergeNext(b *block) {
	nb := b.next
	b.size += headerSize + nb.size
	b.next = nb.next
	if nb.next != nil {
		nb.next.prev = b
	}
	delete(c.index, nb.off)
}

// len returns the number of blocks in the chain.
func (c *chain) len() int {
	return len(c.index)
}

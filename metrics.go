package mempool

import (
	"fmt"
	"io"
	"strings"
)

// BlockInfo describes one block of the chain for diagnostic consumers.
// Offset is the block's data-region offset, i.e. the Handle value Alloc
// returns (or would return) for it.
type BlockInfo struct {
	Offset int  // data-region offset within the pool
	Size   int  // data-region size in bytes
	Free   bool // true for FREE, false for ALLOCATED
}

// Blocks returns a snapshot of every block in address order. It is read-only
// introspection: it never mutates the pool, and an uninitialized pool
// reports no blocks.
func (p *Pool) Blocks() []BlockInfo {
	if !p.initialized {
		return nil
	}
	infos := make([]BlockInfo, 0, p.chain.len())
	for b := p.chain.head; b != nil; b = b.next {
		infos = append(infos, BlockInfo{
			Offset: b.dataOff(),
			Size:   b.size,
			Free:   b.status == statusFree,
		})
	}
	return infos
}

// Capacity returns the pool's arena size in bytes.
func (p *Pool) Capacity() int {
	return len(p.buf)
}

// NumBlocks returns the number of blocks currently in the chain.
func (p *Pool) NumBlocks() int {
	return p.chain.len()
}

// NumFreeBlocks returns the number of FREE blocks in the chain.
func (p *Pool) NumFreeBlocks() int {
	n := 0
	for b := p.chain.head; b != nil; b = b.next {
		if b.status == statusFree {
			n++
		}
	}
	return n
}

// FreeBytes returns the total data bytes held by FREE blocks. Header
// overhead is not counted, so adjacent releases can raise FreeBytes by more
// than the released sizes as coalescing reclaims headers.
func (p *Pool) FreeBytes() int {
	sum := 0
	for b := p.chain.head; b != nil; b = b.next {
		if b.status == statusFree {
			sum += b.size
		}
	}
	return sum
}

// SizeInUse returns the total data bytes held by ALLOCATED blocks,
// including the internal waste of requests that were not worth splitting.
func (p *Pool) SizeInUse() int {
	sum := 0
	for b := p.chain.head; b != nil; b = b.next {
		if b.status == statusAllocated {
			sum += b.size
		}
	}
	return sum
}

// Utilization returns the ratio of bytes in use to pool capacity (0.0 to 1.0).
// Returns 0.0 for an unprovisioned pool.
func (p *Pool) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.SizeInUse()) / float64(capacity)
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	NumBlocks     int     // Blocks in the chain
	NumFreeBlocks int     // FREE blocks in the chain
	FreeBytes     int     // Total FREE data bytes
	SizeInUse     int     // Total ALLOCATED data bytes
	Capacity      int     // Arena size in bytes
	Utilization   float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		NumBlocks:     p.NumBlocks(),
		NumFreeBlocks: p.NumFreeBlocks(),
		FreeBytes:     p.FreeBytes(),
		SizeInUse:     p.SizeInUse(),
		Capacity:      p.Capacity(),
		Utilization:   p.Utilization(),
	}
}

// WriteReport writes a human-readable enumeration of the chain to w: one
// line per block in address order, then summary counts. Like Blocks, it is
// read-only.
func (p *Pool) WriteReport(w io.Writer) error {
	blocks := p.Blocks()
	if _, err := fmt.Fprintf(w, "Memory Pool Report\n------------------\n"); err != nil {
		return err
	}
	for i, b := range blocks {
		status := statusAllocated
		if b.Free {
			status = statusFree
		}
		if _, err := fmt.Fprintf(w, "Block %d: offset %d, size %d, %s\n", i, b.Offset, b.Size, status); err != nil {
			return err
		}
	}
	m := p.Metrics()
	_, err := fmt.Fprintf(w, "Total blocks: %d\nFree blocks: %d\nFree bytes: %d\nPool size: %d\n",
		m.NumBlocks, m.NumFreeBlocks, m.FreeBytes, m.Capacity)
	return err
}

// Report returns the WriteReport output as a string.
func (p *Pool) Report() string {
	var sb strings.Builder
	p.WriteReport(&sb)
	return sb.String()
}

package mempool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolMetrics(t *testing.T) {
	p := New(1024)

	// Initial state: one FREE block covering everything after its header.
	assert.Equal(t, 1024, p.Capacity())
	assert.Equal(t, 1, p.NumBlocks())
	assert.Equal(t, 1, p.NumFreeBlocks())
	assert.Equal(t, 1024-headerSize, p.FreeBytes())
	assert.Equal(t, 0, p.SizeInUse())
	assert.Equal(t, 0.0, p.Utilization())

	h1, err := p.Alloc(100)
	require.NoError(t, err)
	h2, err := p.Alloc(200)
	require.NoError(t, err)

	assert.Equal(t, 3, p.NumBlocks())
	assert.Equal(t, 1, p.NumFreeBlocks())
	assert.Equal(t, 300, p.SizeInUse())
	assert.Equal(t, 1024-3*headerSize-300, p.FreeBytes())

	utilization := p.Utilization()
	assert.Greater(t, utilization, 0.0)
	assert.LessOrEqual(t, utilization, 1.0)

	m := p.Metrics()
	assert.Equal(t, p.NumBlocks(), m.NumBlocks)
	assert.Equal(t, p.NumFreeBlocks(), m.NumFreeBlocks)
	assert.Equal(t, p.FreeBytes(), m.FreeBytes)
	assert.Equal(t, p.SizeInUse(), m.SizeInUse)
	assert.Equal(t, p.Capacity(), m.Capacity)
	assert.Equal(t, p.Utilization(), m.Utilization)

	// Coalescing reclaims both split headers.
	require.NoError(t, p.Release(h1))
	require.NoError(t, p.Release(h2))
	assert.Equal(t, 1024-headerSize, p.FreeBytes())
	assert.Equal(t, 0, p.SizeInUse())
}

func TestBlocksReadOnly(t *testing.T) {
	p := New(0)
	h, err := p.Alloc(100)
	require.NoError(t, err)

	snapshot := p.Blocks()
	// Mutating the snapshot must not touch the pool.
	snapshot[0].Size = 1
	again := p.Blocks()
	assert.Equal(t, 100, again[0].Size)

	_ = p.Report()
	_ = p.Metrics()
	assert.Equal(t, again, p.Blocks(), "diagnostics must not mutate the chain")
	require.NoError(t, p.Release(h))
}

func TestBlocksUninitialized(t *testing.T) {
	var p Pool
	assert.Nil(t, p.Blocks())
	assert.Equal(t, 0, p.NumBlocks())
	assert.Equal(t, 0, p.FreeBytes())
	assert.Equal(t, 0.0, p.Utilization())
}

func TestWriteReport(t *testing.T) {
	p := New(64)
	_, err := p.Alloc(16)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, p.WriteReport(&sb))
	report := sb.String()
	assert.Equal(t, report, p.Report())

	assert.Equal(t, "Memory Pool Report\n"+
		"------------------\n"+
		"Block 0: offset 16, size 16, ALLOCATED\n"+
		"Block 1: offset 48, size 16, FREE\n"+
		"Total blocks: 2\n"+
		"Free blocks: 1\n"+
		"Free bytes: 16\n"+
		"Pool size: 64\n", report)
}

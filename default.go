package mempool

// defaultPool backs the package-level API. It is a process-wide singleton
// with a PoolSize arena, alive for the remainder of the process; there is no
// teardown. The zero Pool initializes itself on first use.
var defaultPool Pool

// Init initializes the default pool. Idempotent; Alloc runs it implicitly.
func Init() {
	defaultPool.Init()
}

// Alloc reserves n bytes from the default pool.
func Alloc(n int) (Handle, error) {
	return defaultPool.Alloc(n)
}

// Release returns a handle's region to the default pool.
func Release(h Handle) error {
	return defaultPool.Release(h)
}

// Bytes returns the data region for a handle allocated from the default pool.
func Bytes(h Handle) []byte {
	return defaultPool.Bytes(h)
}

// Blocks returns a snapshot of the default pool's chain.
func Blocks() []BlockInfo {
	return defaultPool.Blocks()
}

// Metrics returns a snapshot of the default pool's statistics.
func Metrics() PoolMetrics {
	return defaultPool.Metrics()
}

// Report returns the default pool's human-readable report.
func Report() string {
	return defaultPool.Report()
}

// Package parallel splits index ranges across a bounded set of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum amount of work (in elements) per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 14,
	}
}

// For calls f on contiguous sub-ranges [lo, hi) that together cover
// [0, n) exactly once. cost is the work of one index in elements; ranges
// whose total work is below cfg.MinChunkSize run on the calling goroutine.
// For returns after every call to f has returned.
func For(n, cost int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	cost = max(cost, 1)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2 || n*cost < 2*cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, (cfg.MinChunkSize+cost-1)/cost)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			f(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

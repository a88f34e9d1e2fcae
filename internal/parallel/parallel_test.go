package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForCoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	for _, n := range []int{1, 7, 16, 100, 1001} {
		hits := make([]int32, n)
		For(n, 1, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		}, cfg)

		for i, h := range hits {
			assert.Equal(t, int32(1), h, "n=%d index %d", n, i)
		}
	}
}

func TestForChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}

	var mu sync.Mutex
	var ranges [][2]int
	For(40, 1, func(lo, hi int) {
		mu.Lock()
		ranges = append(ranges, [2]int{lo, hi})
		mu.Unlock()
	}, cfg)

	assert.Len(t, ranges, 4)
	for _, r := range ranges {
		assert.Equal(t, 10, r[1]-r[0])
	}
}

func TestForSequential(t *testing.T) {
	var calls int32
	For(100, 1000, func(lo, hi int) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100, hi)
	}, Config{Enabled: false})
	assert.Equal(t, int32(1), calls)
}

func TestForSmallWork(t *testing.T) {
	cfg := DefaultConfig()

	var calls int32
	For(3, 10, func(_, _ int) {
		atomic.AddInt32(&calls, 1)
	}, cfg)
	assert.Equal(t, int32(1), calls)
}

func TestForEmpty(t *testing.T) {
	For(0, 1, func(_, _ int) {
		t.Fatal("unexpected call")
	}, DefaultConfig())
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 64

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, 1<<12, func(lo, hi int) {
				atomic.AddInt64(&sum, int64(hi-lo))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, 1<<12, func(lo, hi int) {
				atomic.AddInt64(&sum, int64(hi-lo))
			}, cfgSeq)
		}
	})
}

package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllWork(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)

		var count atomic.Int64
		for range 100 {
			pool.Do(func() { count.Add(1) })
		}
		pool.Wait(true)

		if got := count.Load(); got != 100 {
			t.Errorf("Start(%d): ran %d units, want 100", workers, got)
		}
	}
}

func TestPoolWaitIsIdempotent(t *testing.T) {
	pool := Start(2)
	pool.Do(func() {})
	pool.Wait(true)
	pool.Wait(true) // closing twice must not panic
}

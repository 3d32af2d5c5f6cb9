// Package parallel runs the per-file pipeline steps across a bounded set of
// workers.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc submits one unit of work.
	WorkerFunc func(func())
	// WaitFunc blocks until submitted work has drained; done closes the pool.
	WaitFunc func(done bool)
	// CancelFunc stops the pool accepting further work.
	CancelFunc func()
)

// Pool fans work out over numWorkers goroutines. With a single worker the
// submit call runs the work inline, so callers never need a special
// sequential path.
type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start launches a pool of numWorkers workers; values below 1 mean one
// worker per CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do:     func(f func()) { f() },
		Wait:   func(bool) {},
		Cancel: func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	work := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range work {
				f()
			}
		})
	}

	pool.Do = func(f func()) {
		work <- f
	}
	pool.Cancel = sync.OnceFunc(func() { close(work) })
	pool.Wait = func(done bool) {
		if done {
			pool.Cancel()
		}
		pool.wg.Wait()
	}

	return pool
}

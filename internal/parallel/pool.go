// Package parallel runs indexed jobs, such as the frames of a sprite, on a
// fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// job receives the index of the worker running it.
type job func(worker int)

// Pool is a pool of goroutines for parallel frame processing.
//
// Every worker has its own queue and steals from the others when its queue
// is empty, so slow frames do not hold back the rest. A worker index is
// handed to each job, letting callers keep per-worker scratch state
// without locking.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers. If workers is 0
// or negative, GOMAXPROCS is used. Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan job, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(id)
			return
		case j := <-own:
			j(id)
		default:
			if j := p.steal(id); j != nil {
				j(id)
				continue
			}
			select {
			case <-p.done:
				p.drain(id)
				return
			case j := <-own:
				j(id)
			}
		}
	}
}

// drain runs what is left in the queue of worker id.
func (p *Pool) drain(id int) {
	for {
		select {
		case j := <-p.queues[id]:
			j(id)
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) job {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case j := <-p.queues[i]:
			return j
		default:
		}
	}
	return nil
}

// Run calls fn for every index in [0, n) and waits for all calls to
// return. Indexes still queued when ctx is done are not processed and
// report ctx.Err(). The errors are combined in index order. Run on a
// closed pool returns without calling fn.
func (p *Pool) Run(ctx context.Context, n int, fn func(worker, index int) error) error {
	if n <= 0 || !p.running.Load() {
		return nil
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		j := func(worker int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = fn(worker, i)
		}
		select {
		case p.queues[i%p.workers] <- j:
		case <-p.done:
			wg.Done()
		}
	}
	wg.Wait()
	return multierr.Combine(errs...)
}

// Close stops the workers once queued jobs have run. Close is safe to call
// multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

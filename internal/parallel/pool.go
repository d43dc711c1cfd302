// Package parallel runs independent index-addressed jobs on a fixed set of
// long-lived workers.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a fixed set of worker goroutines. Each worker has its own job
// queue and steals from its neighbours when that queue runs dry, so a few
// slow jobs do not stall the batch.
//
// Pool is safe for concurrent use.
type Pool struct {
	size   int
	queues []chan func()
	stop   chan struct{}
	wg     sync.WaitGroup
	open   atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// Zero or negative means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &Pool{
		size:   workers,
		queues: make([]chan func(), workers),
		stop:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.open.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.stop:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.stop:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for off := 1; off < p.size; off++ {
		select {
		case job := <-p.queues[(id+off)%p.size]:
			return job
		default:
		}
	}
	return nil
}

// For calls fn(i) for every i in [0, n) and blocks until all calls return.
// Jobs are dealt round-robin across the workers.
//
// Once ctx is done, jobs that have not started are skipped and For returns
// ctx.Err(). A closed pool runs nothing and returns ErrClosed.
func (p *Pool) For(ctx context.Context, n int, fn func(i int)) error {
	if !p.open.Load() {
		return ErrClosed
	}
	if n <= 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(n)
	for i := range n {
		job := func() {
			defer pending.Done()
			if ctx.Err() == nil {
				fn(i)
			}
		}
		select {
		case p.queues[i%p.size] <- job:
		case <-p.stop:
			pending.Done()
		case <-ctx.Done():
			pending.Add(-(n - i))
			pending.Wait()
			return ctx.Err()
		}
	}
	pending.Wait()
	return ctx.Err()
}

// Map evaluates fn over items on p and returns the results in input order.
func Map[T, R any](ctx context.Context, p *Pool, items []T, fn func(T) R) ([]R, error) {
	out := make([]R, len(items))
	err := p.For(ctx, len(items), func(i int) {
		out[i] = fn(items[i])
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close stops accepting work, finishes what is already queued and waits
// for the workers to exit. It is safe to call more than once, but not
// concurrently with For.
func (p *Pool) Close() {
	if !p.open.CompareAndSwap(true, false) {
		return
	}
	close(p.stop)
	p.wg.Wait()
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Open reports whether the pool still accepts work.
func (p *Pool) Open() bool { return p.open.Load() }

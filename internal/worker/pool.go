// Package worker counts move-tree subtrees on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Job is one root move whose subtree is to be counted.
type Job struct {
	Board *chess.Board // position after Move; the pool's worker owns it
	Move  chess.Move
	Depth int // remaining plies below Move
}

// Count is the node count below one Job's move.
type Count struct {
	Move  chess.Move
	Nodes uint64
}

// CountFunc counts the leaf nodes below board at the given depth.
type CountFunc func(board *chess.Board, depth int) uint64

// Pool spreads jobs over a fixed number of goroutines.
type Pool struct {
	workers int
	count   CountFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// NewPool creates a pool that runs count for every job. It defaults to
// one worker.
func NewPool(count CountFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, count: count}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the configured number of goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run counts every job and returns the counts in job order. It blocks
// until all jobs are done.
func (p *Pool) Run(jobs []Job) []Count {
	counts := make([]Count, len(jobs))
	if len(jobs) == 0 {
		return counts
	}

	n := p.workers
	if n > len(jobs) {
		n = len(jobs)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			// Each index is written by exactly one worker.
			for i := range next {
				job := jobs[i]
				counts[i] = Count{Move: job.Move, Nodes: p.count(job.Board, job.Depth)}
			}
		}()
	}

	for i := range jobs {
		next <- i
	}
	close(next)
	wg.Wait()
	return counts
}

// Package worker plays independent games in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// WorkItem describes one game to be played.
type WorkItem struct {
	Index int   // Game number, used to restore order
	Seed  int64 // Seed for the game's players
}

// ProcessResult is the outcome of one game.
type ProcessResult struct {
	Index  int
	Record *game.Record // Transcript, possibly partial when Error is set
	Error  error
}

// ProcessFunc plays one work item.
// Each call must build its own board; workers share nothing.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of game workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	games       chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the queue length.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool. Default: 1 worker, a queue of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.games = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.games {
		if p.IsStopped() {
			continue // queued games are dropped once stopped
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues a game. It blocks while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.games <- item
}

// Stop keeps queued games from starting. Games already being played
// run to completion.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close waits for the workers, then closes the result channel.
func (p *Pool) Close() {
	close(p.games)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// RunAll plays every item on a fresh pool and returns one result per item
// in index order. Once ctx is done no further game starts; the games that
// never ran carry ctx's error and no record.
func RunAll(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPoolWithOptions(processFunc, opts...)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		defer pool.Close()
		for _, item := range items {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(item)
		}
	}()

	played := make(map[int]bool, len(items))
	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		played[result.Index] = true
		results = append(results, result)
	}
	for _, item := range items {
		if !played[item.Index] {
			results = append(results, ProcessResult{Index: item.Index, Error: ctx.Err()})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

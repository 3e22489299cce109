// Package worker replays independent game scripts in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/dice-chess-go/internal/chess"
)

// WorkItem is one script to replay.
type WorkItem struct {
	Name  string // file name or "stdin"
	Index int    // submission order
}

// ProcessResult is what replaying a script produced.
type ProcessResult struct {
	Name   string
	Index  int
	Output []byte       // rendered transcript
	Log    []byte       // diagnostics
	Board  *chess.Board // final position (nil on error)
	Hash   uint64       // Zobrist hash of Board
	GameID string
	Error  error
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a channel of scripts.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
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

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a script. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any script not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run replays names on a fresh pool and returns the results in submission
// order. Cancelling ctx stops the pool; scripts not yet started are skipped
// and get no result.
func Run(ctx context.Context, names []string, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	p := NewPoolWithOptions(processFunc, opts...)
	p.Start()

	stop := context.AfterFunc(ctx, p.Stop)
	defer stop()

	go func() {
		for i, name := range names {
			p.Submit(WorkItem{Name: name, Index: i})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(names))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

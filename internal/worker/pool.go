// Package worker replays independent move scripts concurrently. Each script
// is replayed against its own game state, so workers share nothing.
package worker

import (
	"sort"
	"sync"

	"github.com/lgbarn/schackmotor-go/internal/output"
	"github.com/lgbarn/schackmotor-go/internal/parser"
)

// WorkItem is a script to be replayed.
type WorkItem struct {
	Script *parser.Script
	Index  int // Position in the input, used to restore order
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index  int
	Result *output.ScriptResult
	Error  error
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages the workers replaying scripts.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
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

// NewPool creates a pool around processFunc.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
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
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of processed results, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every script on a pool of workers and returns the results in
// input order.
func Run(scripts []*parser.Script, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for i, s := range scripts {
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

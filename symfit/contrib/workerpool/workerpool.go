// Copyright 2026 go-symfit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent worker pool for fanning
// per-program work out across cores. A Pool is created once per search and
// reused by every generation, so the per-call cost is a handful of channel
// sends rather than goroutine spawns.
//
// Each worker goroutine owns a fixed slot number in [0, NumWorkers()).
// ParallelForWorker passes it to the callback so callers can keep one
// scratch buffer per slot (an evaluation stack, a ranking buffer) and reuse
// it across every item that worker processes.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	scratch := make([][]float32, pool.NumWorkers())
//	pool.ParallelForWorker(numPrograms, 4, func(worker, start, end int) {
//	    buf := scratch[worker]
//	    for p := start; p < end; p++ {
//	        // ... use buf for program p
//	    }
//	})
//
// A nil or closed *Pool is valid and runs everything on the calling
// goroutine as worker 0.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one unit handed to a worker; fn receives the worker's slot.
type workItem struct {
	fn      func(worker int)
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for id := range numWorkers {
		go p.worker(id)
	}
	return p
}

func (p *Pool) worker(id int) {
	for item := range p.workC {
		item.fn(id)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of worker slots. A nil pool has one slot.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes; later calls run
// sequentially. Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

func (p *Pool) sequential() bool {
	return p == nil || p.closed.Load() || p.numWorkers == 1
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func(int) { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForWorker executes fn over [0, n) in batches of batchSize
// indices grabbed with an atomic counter, which balances load when the
// cost per index varies (programs of different lengths). fn also receives
// the slot of the worker running it; two concurrent calls of fn never see
// the same slot. Blocks until all work completes.
func (p *Pool) ParallelForWorker(n, batchSize int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)

	numBatches := (n + batchSize - 1) / batchSize
	if p.sequential() || numBatches == 1 {
		fn(0, 0, n)
		return
	}

	workers := min(p.numWorkers, numBatches)
	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func(worker int) {
				for {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(worker, start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomicBatched is ParallelForWorker for callers that keep no
// per-worker state.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	p.ParallelForWorker(n, batchSize, func(_, start, end int) {
		fn(start, end)
	})
}

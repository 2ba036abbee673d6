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

package fitness

import "github.com/symreg/go-symfit/symfit/contrib/workerpool"

// Parallel tuning parameters for per-program reductions.
const (
	// MinParallelOps is the minimum programs*samples count before rows are
	// fanned out to the pool. Below it the dispatch overhead (a few µs)
	// outweighs the reduction itself.
	MinParallelOps = 16384

	// ProgramBatch is the number of programs a worker grabs at a time.
	ProgramBatch = 4
)

// forEachProgram calls fn(worker, p) for every p in [0, numPrograms). worker
// identifies a scratch slot in [0, pool.NumWorkers()).
func forEachProgram(pool *workerpool.Pool, numPrograms, numSamples int, fn func(worker, p int)) {
	if pool == nil || numPrograms*numSamples < MinParallelOps {
		for p := range numPrograms {
			fn(0, p)
		}
		return
	}
	pool.ParallelForWorker(numPrograms, ProgramBatch, func(worker, start, end int) {
		for p := start; p < end; p++ {
			fn(worker, p)
		}
	})
}

// row returns program p's predictions.
func row[T any](yPred []T, p, numSamples int) []T {
	return yPred[p*numSamples : (p+1)*numSamples]
}

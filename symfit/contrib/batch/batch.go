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

// Package batch evaluates a whole program batch: every program on every
// sample into a program-major prediction matrix, then one fitness metric
// over that matrix.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	s := batch.NewScorer[float32](pool, fitness.RMSE)
//	for gen := range generations {
//	    progs := nextGeneration(...)
//	    if err := s.Score(progs, ds); err != nil { ... }
//	}
package batch

import (
	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/fitness"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// Parallel tuning parameters for prediction.
const (
	// MinParallelNodes is the minimum nodes*samples count before programs
	// are fanned out to the pool.
	MinParallelNodes = 16384

	// ProgramBatch is the number of programs a worker grabs at a time.
	// Program lengths vary widely, so batches are kept small.
	ProgramBatch = 2
)

// Predict writes the prediction of progs[p] on sample i of ds into
// preds[p*ds.NumSamples+i]. preds must hold len(progs)*ds.NumSamples values.
// Every worker reuses one symfit.Evaluator for all programs it runs.
func Predict[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, ds *symfit.Dataset[T], preds []T) {
	numSamples := ds.NumSamples
	evals := make([]*symfit.Evaluator[T], pool.NumWorkers())
	run := func(worker, p int) {
		e := evals[worker]
		if e == nil {
			e = symfit.NewEvaluator[T](progs[p].StackDepth())
			evals[worker] = e
		}
		e.EvalRow(&progs[p], ds, preds[p*numSamples:(p+1)*numSamples])
	}

	if pool == nil || totalNodes(progs)*numSamples < MinParallelNodes {
		for p := range progs {
			run(0, p)
		}
		return
	}
	pool.ParallelForWorker(len(progs), ProgramBatch, func(worker, start, end int) {
		for p := start; p < end; p++ {
			run(worker, p)
		}
	})
}

func totalNodes(progs []symfit.Program) int {
	n := 0
	for i := range progs {
		n += len(progs[i].Nodes)
	}
	return n
}

// Evaluate predicts every program on ds and sets each program's Fitness
// with metric m. The only error is fitness.ErrUnknownMetric.
func Evaluate[T symfit.Floats](pool *workerpool.Pool, m fitness.Metric, progs []symfit.Program, ds *symfit.Dataset[T]) error {
	preds := make([]T, len(progs)*ds.NumSamples)
	Predict(pool, progs, ds, preds)
	return fitness.Compute(pool, m, progs, ds.NumSamples, ds.Y, preds, ds.W)
}

// Scorer runs Evaluate repeatedly, keeping the prediction matrix between
// calls so generations of similar size do not reallocate it. A Scorer is
// not safe for concurrent use.
type Scorer[T symfit.Floats] struct {
	pool   *workerpool.Pool
	metric fitness.Metric
	preds  []T
}

// NewScorer returns a Scorer using pool (may be nil) and metric m.
func NewScorer[T symfit.Floats](pool *workerpool.Pool, m fitness.Metric) *Scorer[T] {
	return &Scorer[T]{pool: pool, metric: m}
}

// Metric returns the metric the Scorer applies.
func (s *Scorer[T]) Metric() fitness.Metric {
	return s.metric
}

// Score sets the Fitness of every program in progs.
func (s *Scorer[T]) Score(progs []symfit.Program, ds *symfit.Dataset[T]) error {
	n := len(progs) * ds.NumSamples
	if cap(s.preds) < n {
		s.preds = make([]T, n)
	}
	s.preds = s.preds[:n]
	Predict(s.pool, progs, ds, s.preds)
	return fitness.Compute(s.pool, s.metric, progs, ds.NumSamples, ds.Y, s.preds, ds.W)
}

// Predictions returns the prediction matrix of the last Score call. It is
// overwritten by the next call.
func (s *Scorer[T]) Predictions() []T {
	return s.preds
}

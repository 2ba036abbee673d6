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

import (
	stdmath "math"

	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/sort"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// WeightedPearson sets each program's fitness to the weighted Pearson
// correlation between its predictions and y.
//
// With N samples, WS = Σw, yμ = Σ y·w / WS and yσ = sqrt(Σ (y-yμ)²·w)
// (xμ, xσ likewise per program), the fitness is
//
//	Σ_i (N·w[i]·(x[i]-xμ)·(y[i]-yμ) / yσ / xσ) / N
//
// which equals the usual weighted coefficient. A constant row (xσ == 0) or
// constant target yields NaN or Inf.
func WeightedPearson[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	y, w = y[:numSamples], w[:numSamples]
	ws := WeightSum(w)
	yMu := weightedMean(y, w, ws)
	ySigma := T(stdmath.Sqrt(float64(weightedSquaredDev(y, yMu, w))))
	n := T(numSamples)

	forEachProgram(pool, len(progs), numSamples, func(_, p int) {
		x := row(yPred, p, numSamples)
		xMu := weightedMean(x, w, ws)
		xSigma := T(stdmath.Sqrt(float64(weightedSquaredDev(x, xMu, w))))
		progs[p].Fitness = float64(pearsonTerms(x, y, w, xMu, yMu, xSigma, ySigma, n))
	})
}

// pearsonTerms sums the scaled cross terms of one program.
func pearsonTerms[T symfit.Floats](x, y, w []T, xMu, yMu, xSigma, ySigma, n T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(x); i += lanes {
		for j := range lanes {
			k := i + j
			c := n * w[k] * (x[k] - xMu) * (y[k] - yMu) / ySigma
			acc[j] += c / xSigma / n
		}
	}
	for ; i < len(x); i++ {
		c := n * w[i] * (x[i] - xMu) * (y[i] - yMu) / ySigma
		acc[0] += c / xSigma / n
	}
	return foldLanes(acc[:lanes])
}

// WeightedSpearman sets each program's fitness to the weighted Pearson
// correlation between the dense ranks of its predictions and the dense
// ranks of y (see sort.DenseRank). Ties share a rank and ranks increase by
// one per distinct value, which differs from average-rank Spearman when
// there are ties.
//
// y is ranked once; prediction rows are ranked in parallel, each worker
// reusing its own Ranker.
func WeightedSpearman[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	numPrograms := len(progs)

	var yRanker sort.Ranker[T]
	yRank := make([]T, numSamples)
	yRanker.DenseRank(y[:numSamples], yRank)

	predRank := make([]T, numPrograms*numSamples)
	rankers := make([]sort.Ranker[T], pool.NumWorkers())
	forEachProgram(pool, numPrograms, numSamples, func(worker, p int) {
		rankers[worker].DenseRank(row(yPred, p, numSamples), row(predRank, p, numSamples))
	})

	WeightedPearson(pool, progs, numSamples, yRank, predRank, w)
}

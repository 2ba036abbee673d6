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
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// MeanAbsoluteError sets each program's fitness to Σ w·|pred-y| / Σw.
func MeanAbsoluteError[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	y, w = y[:numSamples], w[:numSamples]
	ws := WeightSum(w)
	n := T(numSamples)

	forEachProgram(pool, len(progs), numSamples, func(_, p int) {
		progs[p].Fitness = float64(absErrorTerms(row(yPred, p, numSamples), y, w, ws, n))
	})
}

// MeanSquareError sets each program's fitness to Σ w·(pred-y)² / Σw.
func MeanSquareError[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	squareError(pool, progs, numSamples, y, yPred, w, false)
}

// RootMeanSquareError sets each program's fitness to the square root of its
// MeanSquareError.
func RootMeanSquareError[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	squareError(pool, progs, numSamples, y, yPred, w, true)
}

func squareError[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T, root bool) {
	y, w = y[:numSamples], w[:numSamples]
	ws := WeightSum(w)
	n := T(numSamples)

	forEachProgram(pool, len(progs), numSamples, func(_, p int) {
		mse := squareErrorTerms(row(yPred, p, numSamples), y, w, ws, n)
		if root {
			mse = T(stdmath.Sqrt(float64(mse)))
		}
		progs[p].Fitness = float64(mse)
	})
}

// absErrorTerms sums (N·w·|pred-y| / WS) / N over one row.
func absErrorTerms[T symfit.Floats](pred, y, w []T, ws, n T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(pred); i += lanes {
		for j := range lanes {
			k := i + j
			e := n * w[k] * T(stdmath.Abs(float64(pred[k]-y[k]))) / ws
			acc[j] += e / n
		}
	}
	for ; i < len(pred); i++ {
		e := n * w[i] * T(stdmath.Abs(float64(pred[i]-y[i]))) / ws
		acc[0] += e / n
	}
	return foldLanes(acc[:lanes])
}

// squareErrorTerms sums (N·w·(pred-y)² / WS) / N over one row.
func squareErrorTerms[T symfit.Floats](pred, y, w []T, ws, n T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(pred); i += lanes {
		for j := range lanes {
			k := i + j
			d := pred[k] - y[k]
			e := n * w[k] * d * d / ws
			acc[j] += e / n
		}
	}
	for ; i < len(pred); i++ {
		d := pred[i] - y[i]
		e := n * w[i] * d * d / ws
		acc[0] += e / n
	}
	return foldLanes(acc[:lanes])
}

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
	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/math"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// LogLoss sets each program's fitness to the weighted logistic loss of its
// predictions, read as logits, against labels y in {0, 1}:
//
//	Σ_i ((1-y[i])·yp[i] - logsig(yp[i])) · w[i] / Σw
//
// logsig is math.LogSigmoid, which stays finite for any finite logit.
func LogLoss[T symfit.Floats](pool *workerpool.Pool, progs []symfit.Program, numSamples int, y, yPred, w []T) {
	y, w = y[:numSamples], w[:numSamples]
	ws := WeightSum(w)

	forEachProgram(pool, len(progs), numSamples, func(_, p int) {
		progs[p].Fitness = float64(logLossTerms(row(yPred, p, numSamples), y, w, ws))
	})
}

// LogLossTerm is the contribution of one sample with logit yp, label y and
// normalized weight wn = w/Σw.
func LogLossTerm[T symfit.Floats](yp, y, wn T) T {
	return ((1-y)*yp - math.LogSigmoid(yp)) * wn
}

func logLossTerms[T symfit.Floats](pred, y, w []T, ws T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(pred); i += lanes {
		for j := range lanes {
			k := i + j
			acc[j] += LogLossTerm(pred[k], y[k], w[k]/ws)
		}
	}
	for ; i < len(pred); i++ {
		acc[0] += LogLossTerm(pred[i], y[i], w[i]/ws)
	}
	return foldLanes(acc[:lanes])
}

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

// Package fitness reduces a prediction matrix to one raw fitness value per
// program.
//
// Every metric takes the same arguments: a worker pool (nil runs on the
// calling goroutine), the program batch whose Fitness fields receive the
// result, the sample count, the targets y, the program-major prediction
// matrix yPred (len(progs)*numSamples values, row p belongs to progs[p]) and
// the sample weights w:
//
//	fitness.WeightedPearson(pool, progs, numSamples, y, yPred, w)
//	fitness.LogLoss(pool, progs, numSamples, y, yPred, w)
//
// Programs are independent: each row is reduced by one worker and only that
// program's Fitness is written. Compute selects a metric by value.
//
// # Numerical behavior
//
// Nothing is guarded. A zero weight sum, or a constant prediction row in
// the correlations, yields NaN or Inf in Fitness; selection is expected to
// discard such programs. Reductions keep symfit.Lanes[T]() partial sums, so
// the last bits of a result can depend on the dispatch level; with
// SYMFIT_NO_SIMD=1 sums are taken strictly in sample order.
package fitness

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

package sort

import (
	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/algo"
)

// DenseRank writes the dense rank of every element of values into ranks,
// which must be at least as long as values. Ranks start at 1.
//
// Algorithm: arg-sort ascending, mark sorted positions whose value differs
// from the previous one (the first position is always marked), take the
// inclusive prefix sum of the marks, and scatter the result back to the
// original order.
//
// Ranks are stored as T, so float32 ranks are exact only up to 2^24.
// distinct values. values and ranks may alias.
func (r *Ranker[T]) DenseRank(values, ranks []T) {
	n := len(values)
	if n == 0 {
		return
	}
	order := r.ArgSort(values)

	r.sorted = grow(r.sorted, n)
	for k, i := range order {
		r.sorted[k] = values[i]
	}

	r.indicator = grow(r.indicator, n)
	algo.ChangeIndicator(r.sorted, r.indicator)
	algo.PrefixSum(r.indicator)

	for k, i := range order {
		ranks[i] = r.indicator[k]
	}
}

// DenseRank writes the dense ranks of values into ranks using a throwaway
// Ranker.
func DenseRank[T symfit.Floats](values, ranks []T) {
	var r Ranker[T]
	r.DenseRank(values, ranks)
}

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

// Package algo provides scan primitives over slices.
package algo

import "github.com/symreg/go-symfit/symfit"

// Numbers is the set of element types the scans accept.
type Numbers interface {
	symfit.Floats | ~int | ~int32 | ~int64 | ~uint32 | ~uint64
}

// PrefixSum computes the inclusive prefix sum in place.
// Result[i] = data[0] + data[1] + ... + data[i]
//
// Example:
//
//	data := []float32{1, 0, 1, 1, 0}
//	PrefixSum(data)
//	// data = [1, 1, 2, 3, 3]
//
// If you need to preserve the original, copy first:
//
//	result := slices.Clone(src)
//	PrefixSum(result)
func PrefixSum[T Numbers](data []T) {
	var carry T
	for i, v := range data {
		carry += v
		data[i] = carry
	}
}

// ChangeIndicator writes 1 to out[k] when sorted[k] differs from
// sorted[k-1] and 0 otherwise. out[0] is always 1. The prefix sum of the
// result is the dense rank of each sorted position:
//
//	sorted := []float64{0.5, 0.5, 2, 7, 7}
//	ChangeIndicator(sorted, out) // out = [1, 0, 1, 1, 0]
//	PrefixSum(out)               // out = [1, 1, 2, 3, 3]
//
// Comparison uses !=, so NaN always counts as a change and -0 equals +0.
// out must be at least as long as sorted.
func ChangeIndicator[T symfit.Floats, R Numbers](sorted []T, out []R) {
	if len(sorted) == 0 {
		return
	}
	out[0] = 1
	for k := 1; k < len(sorted); k++ {
		if sorted[k] != sorted[k-1] {
			out[k] = 1
		} else {
			out[k] = 0
		}
	}
}

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

// Package sort provides arg-sorting and dense ranking of float slices.
//
// ArgSort is an LSD radix sort over 64-bit keys derived from the float bit
// patterns (positive values flip the sign bit, negative values flip every
// bit), so it runs in O(n) and is stable. Passes whose byte is identical
// for every key are skipped, which makes float32 input (widened to float64,
// low mantissa bytes all zero) cost about half as much as float64 input.
//
// DenseRank assigns tied values the same rank and increments the rank by
// exactly one at every distinct value, starting at 1:
//
//	values: [30, 10, 20, 10]
//	ranks:  [ 3,  1,  2,  1]
//
// This is not the average ("fractional") ranking used by most statistics
// packages; under ties the two give different correlations.
//
// A Ranker holds the scratch buffers so that ranking many rows of the same
// length does not allocate after the first call.
package sort

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
	"math"

	"github.com/symreg/go-symfit/symfit"
)

// insertionThreshold: arrays this size or smaller skip the radix passes.
const insertionThreshold = 32

// SortableKey maps f to a key whose unsigned order matches the float order.
// Positive floats: flip sign bit. Negative floats: flip all bits.
// -0 sorts immediately before +0; NaNs with the sign bit clear sort after
// +Inf and NaNs with it set sort before -Inf.
func SortableKey(f float64) uint64 {
	b := math.Float64bits(f)
	if b>>63 != 0 {
		return ^b
	}
	return b | 1<<63
}

// Ranker holds scratch buffers for ArgSort and DenseRank. The zero value is
// ready to use. A Ranker is not safe for concurrent use.
type Ranker[T symfit.Floats] struct {
	keys, keysTmp []uint64
	idx, idxTmp   []int
	sorted        []T
	indicator     []T
}

func grow[E any](s []E, n int) []E {
	if cap(s) < n {
		return make([]E, n)
	}
	return s[:n]
}

// ArgSort returns the permutation that sorts values ascending: values[p[0]]
// is the smallest. The sort is stable. The returned slice is owned by r and
// valid until the next call.
func (r *Ranker[T]) ArgSort(values []T) []int {
	n := len(values)
	r.keys = grow(r.keys, n)
	r.idx = grow(r.idx, n)
	for i, v := range values {
		r.keys[i] = SortableKey(float64(v))
		r.idx[i] = i
	}
	if n <= insertionThreshold {
		insertionSort(r.keys, r.idx)
		return r.idx
	}

	r.keysTmp = grow(r.keysTmp, n)
	r.idxTmp = grow(r.idxTmp, n)
	for shift := uint(0); shift < 64; shift += 8 {
		if radixPass(r.keys, r.keysTmp, r.idx, r.idxTmp, shift) {
			r.keys, r.keysTmp = r.keysTmp, r.keys
			r.idx, r.idxTmp = r.idxTmp, r.idx
		}
	}
	return r.idx
}

// radixPass scatters (src, srcIdx) into (dst, dstIdx) ordered by the byte
// at shift. It reports false, leaving dst untouched, when every key has the
// same byte there.
func radixPass(src, dst []uint64, srcIdx, dstIdx []int, shift uint) bool {
	var count [256]int
	for _, k := range src {
		count[(k>>shift)&0xFF]++
	}
	if count[(src[0]>>shift)&0xFF] == len(src) {
		return false
	}

	// Bucket offsets.
	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i, k := range src {
		d := (k >> shift) & 0xFF
		dst[count[d]] = k
		dstIdx[count[d]] = srcIdx[i]
		count[d]++
	}
	return true
}

func insertionSort(keys []uint64, idx []int) {
	for i := 1; i < len(keys); i++ {
		k, id := keys[i], idx[i]
		j := i - 1
		for j >= 0 && keys[j] > k {
			keys[j+1] = keys[j]
			idx[j+1] = idx[j]
			j--
		}
		keys[j+1] = k
		idx[j+1] = id
	}
}

// ArgSort returns the stable ascending permutation of values.
func ArgSort[T symfit.Floats](values []T) []int {
	var r Ranker[T]
	return r.ArgSort(values)
}

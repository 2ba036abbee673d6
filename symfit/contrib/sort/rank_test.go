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
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortableKeyOrder(t *testing.T) {
	ordered := []float64{math.Inf(-1), -1e300, -1, -1e-300, math.Copysign(0, -1), 0, 1e-300, 1, 1e300, math.Inf(1)}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, SortableKey(ordered[i-1]), SortableKey(ordered[i]), "%v < %v", ordered[i-1], ordered[i])
	}
	assert.Greater(t, SortableKey(math.NaN()), SortableKey(math.Inf(1)))
}

func TestDenseRank(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"empty", []float64{}, []float64{}},
		{"single", []float64{42}, []float64{1}},
		{"ascending", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"descending", []float64{3, 2, 1}, []float64{3, 2, 1}},
		{"ties", []float64{10, 20, 10, 30, 20}, []float64{1, 2, 1, 3, 2}},
		{"all_equal", []float64{5, 5, 5, 5}, []float64{1, 1, 1, 1}},
		{"negative", []float64{-1, -3, 0, -3}, []float64{2, 1, 3, 1}},
		{"signed_zero", []float64{0, math.Copysign(0, -1), 1}, []float64{1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranks := make([]float64, len(tt.values))
			DenseRank(tt.values, ranks)
			if diff := gocmp.Diff(tt.want, ranks); diff != "" {
				t.Errorf("DenseRank(%v) mismatch (-want +got):\n%s", tt.values, diff)
			}
		})
	}
}

func TestDenseRankNaN(t *testing.T) {
	ranks := make([]float32, 4)
	DenseRank([]float32{2, float32(math.NaN()), 1, 2}, ranks)
	assert.Equal(t, []float32{2, 3, 1, 2}, ranks)
}

func TestDenseRankIdempotent(t *testing.T) {
	values := randomValues(500, 1, 50)
	once := make([]float64, len(values))
	twice := make([]float64, len(values))
	DenseRank(values, once)
	DenseRank(once, twice)
	assert.Equal(t, once, twice)
}

func TestDenseRankProperties(t *testing.T) {
	for _, n := range []int{7, 32, 33, 1000} {
		values := randomValues(n, uint64(n), 20)
		ranks := make([]float64, n)
		DenseRank(values, ranks)

		distinct := slices.Compact(slices.Sorted(slices.Values(values)))
		assert.Equal(t, float64(len(distinct)), slices.Max(ranks), "n=%d", n)
		assert.Equal(t, 1.0, slices.Min(ranks), "n=%d", n)
		for i := range values {
			for j := range values {
				if cmp.Compare(values[i], values[j]) != cmp.Compare(ranks[i], ranks[j]) {
					t.Fatalf("n=%d: order of values[%d], values[%d] not preserved by ranks %v, %v", n, i, j, ranks[i], ranks[j])
				}
			}
		}
	}
}

func TestArgSort(t *testing.T) {
	for _, n := range []int{1, 5, 32, 33, 257, 5000} {
		values := randomValues(n, uint64(n)+3, 100)
		want := referenceArgSort(values)

		var r Ranker[float64]
		got := r.ArgSort(values)
		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestArgSortStable(t *testing.T) {
	values := make([]float32, 100)
	for i := range values {
		values[i] = float32(i % 3)
	}
	got := ArgSort(values)
	for k := 1; k < len(got); k++ {
		if values[got[k]] == values[got[k-1]] {
			assert.Less(t, got[k-1], got[k])
		}
	}
}

func TestRankerReuse(t *testing.T) {
	var r Ranker[float64]
	big := randomValues(300, 9, 1000)
	ranks := make([]float64, len(big))
	r.DenseRank(big, ranks)

	small := []float64{3, 1, 2}
	r.DenseRank(small, ranks[:3])
	assert.Equal(t, []float64{3, 1, 2}, ranks[:3])
}

// randomValues draws n integers in [-k, k) as floats, so ties are common.
func randomValues(n int, seed uint64, k int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 1))
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.IntN(2*k) - k)
	}
	return out
}

func referenceArgSort(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})
	return idx
}

func BenchmarkDenseRank(b *testing.B) {
	values := make([]float32, 4096)
	for i := range values {
		values[i] = float32(rand.NormFloat64())
	}
	ranks := make([]float32, len(values))
	var r Ranker[float32]
	for b.Loop() {
		r.DenseRank(values, ranks)
	}
}

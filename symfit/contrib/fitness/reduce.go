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

import "github.com/symreg/go-symfit/symfit"

// maxLanes is the widest accumulator set any level asks for
// (AVX-512 with float32).
const maxLanes = 16

// The kernels below keep one partial sum per lane and fold the lanes at the
// end. With a single lane they add in sample order, tail included.

func numLanes[T symfit.Floats]() int {
	return min(symfit.Lanes[T](), maxLanes)
}

func foldLanes[T symfit.Floats](acc []T) T {
	var s T
	for _, v := range acc {
		s += v
	}
	return s
}

// WeightSum returns Σ w[i].
func WeightSum[T symfit.Floats](w []T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(w); i += lanes {
		for j := range lanes {
			acc[j] += w[i+j]
		}
	}
	for ; i < len(w); i++ {
		acc[0] += w[i]
	}
	return foldLanes(acc[:lanes])
}

// weightedMean returns Σ v[i]·w[i] / ws.
func weightedMean[T symfit.Floats](v, w []T, ws T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(v); i += lanes {
		for j := range lanes {
			acc[j] += v[i+j] * w[i+j]
		}
	}
	for ; i < len(v); i++ {
		acc[0] += v[i] * w[i]
	}
	return foldLanes(acc[:lanes]) / ws
}

// weightedSquaredDev returns Σ (v[i]-mu)²·w[i].
func weightedSquaredDev[T symfit.Floats](v []T, mu T, w []T) T {
	lanes := numLanes[T]()
	var acc [maxLanes]T
	i := 0
	for ; i+lanes <= len(v); i += lanes {
		for j := range lanes {
			d := v[i+j] - mu
			acc[j] += d * d * w[i+j]
		}
	}
	for ; i < len(v); i++ {
		d := v[i] - mu
		acc[0] += d * d * w[i]
	}
	return foldLanes(acc[:lanes])
}

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

package math

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// exactLogSigmoid is log(1/(1+exp(-x))) without any region split.
func exactLogSigmoid(x float64) float64 {
	if x < 0 {
		return x - stdmath.Log1p(stdmath.Exp(x))
	}
	return -stdmath.Log1p(stdmath.Exp(-x))
}

func TestLogSigmoid(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"linear", -40},
		{"linear_edge", -33.4},
		{"low", -20},
		{"low_edge", -18},
		{"middle_negative", -3},
		{"zero", 0},
		{"middle_positive", 5},
		{"high_edge", 37},
		{"high", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := exactLogSigmoid(tt.x)
			assert.InEpsilon(t, want, LogSigmoid(tt.x), 1e-12)
			assert.InEpsilon(t, want, float64(LogSigmoid(float32(tt.x))), 1e-6)
		})
	}
}

func TestLogSigmoidRegions(t *testing.T) {
	assert.Equal(t, -40.0, LogSigmoid(-40.0))
	assert.InDelta(t, -stdmath.Ln2, LogSigmoid(0.0), 1e-15)
	assert.Equal(t, -stdmath.Exp(-40), LogSigmoid(40.0))
	assert.Equal(t, -20-stdmath.Exp(-20), LogSigmoid(-20.0))
}

func TestLogSigmoidStaysFinite(t *testing.T) {
	for _, x := range []float32{-1e30, -88, -34, 0, 34, 88, 1e30} {
		got := LogSigmoid(x)
		assert.False(t, stdmath.IsInf(float64(got), 0), "LogSigmoid(%v) = %v", x, got)
		assert.LessOrEqual(t, got, float32(0))
	}
}

func TestBaseLogSigmoid(t *testing.T) {
	in := []float64{-40, 0, 40}
	out := make([]float64, 2)
	BaseLogSigmoid(in, out)
	assert.Equal(t, -40.0, out[0])
	assert.InDelta(t, -stdmath.Ln2, out[1], 1e-15)
}

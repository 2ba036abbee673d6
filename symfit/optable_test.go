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

package symfit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArity(t *testing.T) {
	counts := map[int]int{}
	for nt := range NodeType(NumNodeTypes) {
		counts[nt.Arity()]++
	}
	assert.Equal(t, 2, counts[0], "terminals")
	assert.Equal(t, 9, counts[2], "binary operators")
	assert.Equal(t, 23, counts[1], "unary operators")

	assert.Equal(t, 0, Variable.Arity())
	assert.Equal(t, 0, Constant.Arity())
	assert.Equal(t, 2, Atan2.Arity())
	assert.Equal(t, 2, Sub.Arity())
	assert.Equal(t, 1, Abs.Arity())
	assert.Equal(t, 1, Tanh.Arity())
	assert.Equal(t, 0, NodeType(200).Arity())
}

func TestNodeTypeNames(t *testing.T) {
	for nt := range NodeType(NumNodeTypes) {
		got, ok := ParseNodeType(nt.String())
		require.True(t, ok, "ParseNodeType(%q)", nt.String())
		assert.Equal(t, nt, got)
	}
	assert.Equal(t, "rsqrt", Rsqrt.String())
	assert.Equal(t, "NodeType(99)", NodeType(99).String())

	_, ok := ParseNodeType("gamma")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   NodeType
		x, y float64
		want float64
	}{
		{"add", Add, 2, 3, 5},
		{"sub_order", Sub, 2, 3, -1},
		{"mul", Mul, 2, 3, 6},
		{"div", Div, 3, 2, 1.5},
		{"div_guard", Div, 3, 0.0005, 1},
		{"div_guard_negative", Div, 3, -0.0009, 1},
		{"div_at_threshold", Div, 1, 0.001, 1000},
		{"pow", Pow, 2, 3, 8},
		{"atan2", Atan2, 1, 1, math.Pi / 4},
		{"fdim_positive", Fdim, 5, 3, 2},
		{"fdim_clamped", Fdim, 3, 5, 0},
		{"max", Max, 3, 5, 5},
		{"min", Min, 3, 5, 3},
		{"max_nan_left", Max, math.NaN(), 2, 2},
		{"max_nan_right", Max, 2, math.NaN(), 2},
		{"min_nan_left", Min, math.NaN(), -2, -2},
		{"inv", Inv, 4, 0, 0.25},
		{"inv_guard", Inv, 0.0005, 0, 0},
		{"log", Log, math.E, 0, 1},
		{"log_abs", Log, -math.E, 0, 1},
		{"log_guard", Log, -0.0009, 0, 0},
		{"sqrt_abs", Sqrt, -4, 0, 2},
		{"rsqrt_abs", Rsqrt, -4, 0, 0.5},
		{"rcbrt_negative", Rcbrt, -8, 0, -0.5},
		{"cbrt", Cbrt, 27, 0, 3},
		{"neg", Neg, 3, 0, -3},
		{"sq", Sq, -3, 0, 9},
		{"cube", Cube, -2, 0, -8},
		{"abs", Abs, -1.5, 0, 1.5},
		{"exp", Exp, 0, 0, 1},
		{"tanh", Tanh, 0, 0, 0},
		{"cos", Cos, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Apply(tt.op, tt.x, tt.y), 1e-12)
		})
	}
}

func TestApplyUnguarded(t *testing.T) {
	// rsqrt and rcbrt have no zero guard, unlike inv, log and sqrt.
	assert.True(t, math.IsInf(Apply(Rsqrt, 0, 0), 1))
	assert.True(t, math.IsInf(Apply(Rcbrt, 0, 0), 1))
	assert.True(t, math.IsNaN(Apply(Acos, 2, 0)))
	assert.True(t, math.IsNaN(Apply(Atanh, 2, 0)))
	assert.True(t, math.IsInf(Apply(Exp, 1000, 0), 1))
}

func TestFuncMatchesApply(t *testing.T) {
	for nt := range NodeType(NumNodeTypes) {
		if nt.IsTerminal() {
			continue
		}
		got, want := Func(nt)(0.75, 1.25), Apply(nt, 0.75, 1.25)
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(got), nt.String())
			continue
		}
		assert.Equal(t, want, got, nt.String())
	}
}

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
)

// twoFeatures has X0 = [1, 2, 3] and X1 = [4, 9, 16], column-major.
func twoFeatures[T Floats]() *Dataset[T] {
	return NewDataset([]T{1, 2, 3, 4, 9, 16}, []T{0, 0, 0}, nil)
}

func TestEvaluate(t *testing.T) {
	ds := twoFeatures[float64]()
	tests := []struct {
		name  string
		nodes []Node
		want  []float64
	}{
		{
			name:  "variable",
			nodes: []Node{Var(1)},
			want:  []float64{4, 9, 16},
		},
		{
			name:  "constant",
			nodes: []Node{Const(2.5)},
			want:  []float64{2.5, 2.5, 2.5},
		},
		{
			// X0*2.5 + sqrt(X1)
			name:  "mixed",
			nodes: []Node{Var(0), Const(2.5), Op(Mul), Var(1), Op(Sqrt), Op(Add)},
			want:  []float64{4.5, 8, 11.5},
		},
		{
			// X1 - X0 keeps argument order
			name:  "operand_order",
			nodes: []Node{Var(1), Var(0), Op(Sub)},
			want:  []float64{3, 7, 13},
		},
		{
			// pow(X0, 2) / X1
			name:  "nested",
			nodes: []Node{Var(0), Const(2), Op(Pow), Var(1), Op(Div)},
			want:  []float64{0.25, 4.0 / 9, 9.0 / 16},
		},
		{
			// neg(neg(neg(X0)))
			name:  "unary_chain",
			nodes: []Node{Var(0), Op(Neg), Op(Neg), Op(Neg)},
			want:  []float64{-1, -2, -3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Program{Nodes: tt.nodes}
			for i, want := range tt.want {
				assert.InDelta(t, want, Evaluate(&p, ds, i), 1e-12, "sample %d", i)
			}
		})
	}
}

func TestEvaluateInverseGuard(t *testing.T) {
	ds := NewDataset([]float32{0.0005, -0.0005, 0.5}, []float32{0, 0, 0}, nil)

	inv := Program{Nodes: []Node{Var(0), Op(Inv)}}
	assert.Equal(t, float32(0), Evaluate(&inv, ds, 0))
	assert.Equal(t, float32(0), Evaluate(&inv, ds, 1))
	assert.Equal(t, float32(2), Evaluate(&inv, ds, 2))

	div := Program{Nodes: []Node{Const(1), Var(0), Op(Div)}}
	assert.Equal(t, float32(1), Evaluate(&div, ds, 0))
	assert.Equal(t, float32(2), Evaluate(&div, ds, 2))
}

func TestEvaluateRoundsToT(t *testing.T) {
	ds := NewDataset([]float32{3}, []float32{0}, nil)
	p := Program{Nodes: []Node{Const(1), Var(0), Op(Div)}}
	assert.Equal(t, float32(1)/float32(3), Evaluate(&p, ds, 0))
}

func TestEvaluatePropagatesNaN(t *testing.T) {
	ds := NewDataset([]float64{2}, []float64{0}, nil)
	p := Program{Nodes: []Node{Var(0), Op(Acos), Const(1), Op(Add)}}
	assert.True(t, math.IsNaN(Evaluate(&p, ds, 0)))
}

func TestEvalRow(t *testing.T) {
	ds := twoFeatures[float32]()
	p := Program{Nodes: []Node{Var(0), Var(1), Op(Mul)}}
	out := make([]float32, ds.NumSamples)

	NewEvaluator[float32](0).EvalRow(&p, ds, out)
	assert.Equal(t, []float32{4, 18, 48}, out)
}

func TestEvaluatorReuseDoesNotAllocate(t *testing.T) {
	ds := twoFeatures[float64]()
	p := Program{Nodes: []Node{Var(0), Const(2.5), Op(Mul), Var(1), Op(Sqrt), Op(Add)}}
	e := NewEvaluator[float64](p.StackDepth())
	allocs := testing.AllocsPerRun(100, func() {
		for i := range ds.NumSamples {
			e.Eval(&p, ds, i)
		}
	})
	assert.Zero(t, allocs)
}

func BenchmarkEval(b *testing.B) {
	const n = 1024
	x := make([]float32, 2*n)
	for i := range x {
		x[i] = float32(i%97) / 7
	}
	ds := NewDataset(x, make([]float32, n), nil)
	p := Program{Nodes: []Node{
		Var(0), Const(2.5), Op(Mul), Var(1), Op(Sqrt), Op(Add),
		Var(0), Op(Sin), Op(Mul), Var(1), Op(Div),
	}}
	e := NewEvaluator[float32](p.StackDepth())
	out := make([]float32, n)
	for b.Loop() {
		e.EvalRow(&p, ds, out)
	}
}

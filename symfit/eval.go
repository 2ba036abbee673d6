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

// arityTable mirrors NodeType.Arity so the evaluation loop is a table
// lookup instead of two range comparisons per node.
var arityTable = func() (t [NumNodeTypes]uint8) {
	for i := range t {
		t[i] = uint8(NodeType(i).Arity())
	}
	return t
}()

// Evaluator evaluates programs one sample at a time using a flat operand
// stack that is reused across calls, so steady-state evaluation does not
// allocate.
//
// An Evaluator is not safe for concurrent use; parallel callers keep one
// per worker.
type Evaluator[T Floats] struct {
	stack []T
}

// NewEvaluator returns an Evaluator whose stack can hold depth operands
// before growing.
func NewEvaluator[T Floats](depth int) *Evaluator[T] {
	return &Evaluator[T]{stack: make([]T, 0, max(depth, 8))}
}

// Eval returns the prediction of p for sample i of ds.
//
// Each operator result is rounded to T before it is pushed. p must be well
// formed (see Program.Validate); a malformed program may panic or return
// an arbitrary value.
func (e *Evaluator[T]) Eval(p *Program, ds *Dataset[T], i int) T {
	stack := e.stack[:0]
	for _, n := range p.Nodes {
		switch n.Type {
		case Variable:
			stack = append(stack, ds.X[int(n.Feature)*ds.NumSamples+i])
		case Constant:
			stack = append(stack, T(n.Value))
		default:
			fn := opTable[n.Type]
			top := len(stack) - 1
			if arityTable[n.Type] == 1 {
				stack[top] = T(fn(float64(stack[top]), 0))
			} else {
				stack[top-1] = T(fn(float64(stack[top-1]), float64(stack[top])))
				stack = stack[:top]
			}
		}
	}
	e.stack = stack
	return stack[len(stack)-1]
}

// EvalRow writes the prediction of p for every sample of ds into out,
// which must have length ds.NumSamples.
func (e *Evaluator[T]) EvalRow(p *Program, ds *Dataset[T], out []T) {
	out = out[:ds.NumSamples]
	for i := range out {
		out[i] = e.Eval(p, ds, i)
	}
}

// Evaluate returns the prediction of p for sample i of ds using a
// throwaway Evaluator. Loops over samples should reuse an Evaluator.
func Evaluate[T Floats](p *Program, ds *Dataset[T], i int) T {
	return NewEvaluator[T](p.StackDepth()).Eval(p, ds, i)
}

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
	"fmt"
	"strconv"
	"strings"
)

// Program is a candidate expression tree stored in postfix order:
// evaluating Nodes left to right, terminals push a value and operators pop
// Arity() values and push one result. A well-formed program leaves exactly
// one value.
//
// Fitness is the raw metric output, written once per evaluation pass.
type Program struct {
	Nodes   []Node
	Fitness float64
}

// Len returns the number of nodes.
func (p *Program) Len() int {
	return len(p.Nodes)
}

// StackDepth returns the largest number of operands live at any point of
// the evaluation. Evaluators use it to size their buffers up front.
func (p *Program) StackDepth() int {
	depth, maxDepth := 0, 0
	for _, n := range p.Nodes {
		depth += 1 - n.Type.Arity()
		maxDepth = max(maxDepth, depth)
	}
	return maxDepth
}

// Validate checks that p is well formed. numFeatures bounds the feature
// indices of Variable nodes; pass 0 to skip that check.
//
// Validation is never performed by the evaluator itself: producers of
// programs are expected to call it, if at all, once per program rather than
// once per sample.
func (p *Program) Validate(numFeatures int) error {
	if len(p.Nodes) == 0 {
		return ErrEmptyProgram
	}
	depth := 0
	for i, n := range p.Nodes {
		if !n.Type.IsValid() {
			return fmt.Errorf("node %d: %w (%d)", i, ErrInvalidNodeType, n.Type)
		}
		if n.Type == Variable && numFeatures > 0 && int(n.Feature) >= numFeatures {
			return fmt.Errorf("node %d: %w: %d >= %d", i, ErrFeatureOutOfRange, n.Feature, numFeatures)
		}
		arity := n.Type.Arity()
		if depth < arity {
			return fmt.Errorf("node %d (%s): %w", i, n.Type, ErrStackUnderflow)
		}
		depth += 1 - arity
	}
	if depth != 1 {
		return fmt.Errorf("%w: %d values left", ErrStackImbalance, depth)
	}
	return nil
}

// String renders p in infix notation, e.g. "add(X0, mul(X1, 2.5))".
// Malformed programs render as "<malformed>".
func (p *Program) String() string {
	stack := make([]string, 0, p.StackDepth())
	for _, n := range p.Nodes {
		switch n.Type {
		case Variable:
			stack = append(stack, "X"+strconv.FormatUint(uint64(n.Feature), 10))
		case Constant:
			stack = append(stack, strconv.FormatFloat(n.Value, 'g', -1, 64))
		default:
			arity := n.Type.Arity()
			if arity == 0 || len(stack) < arity {
				return "<malformed>"
			}
			top := len(stack) - arity
			expr := n.Type.String() + "(" + strings.Join(stack[top:], ", ") + ")"
			stack = append(stack[:top], expr)
		}
	}
	if len(stack) != 1 {
		return "<malformed>"
	}
	return stack[0]
}

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

//go:generate go tool stringer -type=NodeType -linecomment

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// NodeType tags one element of a program. Terminals come first, then the
// binary operators, then the unary operators; Arity depends on these ranges.
type NodeType uint8

const (
	Variable NodeType = iota // variable
	Constant                 // constant

	Add   // add
	Atan2 // atan2
	Div   // div
	Fdim  // fdim
	Max   // max
	Min   // min
	Mul   // mul
	Pow   // pow
	Sub   // sub

	Abs   // abs
	Acos  // acos
	Acosh // acosh
	Asin  // asin
	Asinh // asinh
	Atan  // atan
	Atanh // atanh
	Cbrt  // cbrt
	Cos   // cos
	Cosh  // cosh
	Cube  // cube
	Exp   // exp
	Inv   // inv
	Log   // log
	Neg   // neg
	Rcbrt // rcbrt
	Rsqrt // rsqrt
	Sin   // sin
	Sinh  // sinh
	Sq    // sq
	Sqrt  // sqrt
	Tan   // tan
	Tanh  // tanh

	// NumNodeTypes is the number of valid tags.
	NumNodeTypes = iota
)

// IsTerminal reports whether t is a variable or a constant.
func (t NodeType) IsTerminal() bool {
	return t == Variable || t == Constant
}

// IsValid reports whether t is one of the defined tags.
func (t NodeType) IsValid() bool {
	return t < NumNodeTypes
}

// Arity returns the number of operands t consumes: 0 for terminals,
// 1 for unary and 2 for binary operators.
func (t NodeType) Arity() int {
	switch {
	case Abs <= t && t <= Tanh:
		return 1
	case Add <= t && t <= Sub:
		return 2
	}
	return 0
}

// ParseNodeType returns the tag whose String form is name.
func ParseNodeType(name string) (NodeType, bool) {
	for t := range NodeType(NumNodeTypes) {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Node is one element of a program. Feature is meaningful only for
// Variable nodes and Value only for Constant nodes.
type Node struct {
	Type    NodeType
	Feature uint32
	Value   float64
}

// Var returns a node reading feature column f.
func Var(f uint32) Node {
	return Node{Type: Variable, Feature: f}
}

// Const returns a literal node.
func Const(v float64) Node {
	return Node{Type: Constant, Value: v}
}

// Op returns an operator node.
func Op(t NodeType) Node {
	return Node{Type: t}
}

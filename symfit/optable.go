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

import "math"

// MinMagnitude is the operand magnitude below which div, inv and log
// return a sentinel instead of diverging.
const MinMagnitude = 0.001

// OpFunc is the numeric implementation of one operator. Unary operators
// ignore y.
type OpFunc func(x, y float64) float64

// opTable is indexed by NodeType. Terminal entries exist only to keep the
// table dense; the evaluator never calls them.
var opTable = [NumNodeTypes]OpFunc{
	Variable: func(x, y float64) float64 { return 0 },
	Constant: func(x, y float64) float64 { return 0 },

	Add:   func(x, y float64) float64 { return x + y },
	Atan2: math.Atan2,
	Div: func(x, y float64) float64 {
		if math.Abs(y) < MinMagnitude {
			return 1
		}
		return x / y
	},
	Fdim: math.Dim,
	Max:  fmax,
	Min:  fmin,
	Mul:  func(x, y float64) float64 { return x * y },
	Pow:  math.Pow,
	Sub:  func(x, y float64) float64 { return x - y },

	Abs:   unary(math.Abs),
	Acos:  unary(math.Acos),
	Acosh: unary(math.Acosh),
	Asin:  unary(math.Asin),
	Asinh: unary(math.Asinh),
	Atan:  unary(math.Atan),
	Atanh: unary(math.Atanh),
	Cbrt:  unary(math.Cbrt),
	Cos:   unary(math.Cos),
	Cosh:  unary(math.Cosh),
	Cube:  func(x, _ float64) float64 { return x * x * x },
	Exp:   unary(math.Exp),
	Inv: func(x, _ float64) float64 {
		if math.Abs(x) < MinMagnitude {
			return 0
		}
		return 1 / x
	},
	Log: func(x, _ float64) float64 {
		if math.Abs(x) < MinMagnitude {
			return 0
		}
		return math.Log(math.Abs(x))
	},
	Neg: func(x, _ float64) float64 { return -x },
	// rcbrt and rsqrt have no zero guard.
	Rcbrt: func(x, _ float64) float64 { return 1 / math.Cbrt(x) },
	Rsqrt: func(x, _ float64) float64 { return 1 / math.Sqrt(math.Abs(x)) },
	Sin:   unary(math.Sin),
	Sinh:  unary(math.Sinh),
	Sq:    func(x, _ float64) float64 { return x * x },
	Sqrt:  func(x, _ float64) float64 { return math.Sqrt(math.Abs(x)) },
	Tan:   unary(math.Tan),
	Tanh:  unary(math.Tanh),
}

func unary(f func(float64) float64) OpFunc {
	return func(x, _ float64) float64 { return f(x) }
}

// fmax follows C fmax: a single NaN operand is ignored.
func fmax(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Max(x, y)
}

// fmin follows C fmin: a single NaN operand is ignored.
func fmin(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Min(x, y)
}

// Func returns the implementation of operator t.
func Func(t NodeType) OpFunc {
	return opTable[t]
}

// Apply evaluates operator t on its operands. For unary operators y is
// ignored.
func Apply(t NodeType, x, y float64) float64 {
	return opTable[t](x, y)
}

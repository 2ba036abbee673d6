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

// Package symfit is the evaluation core of a genetic-programming symbolic
// regression search: it turns candidate expression programs plus a dataset
// into predictions, which the contrib/fitness package reduces to one score
// per program.
//
// # Programs
//
// A Program is a postfix sequence of Nodes. Terminals (Var, Const) push one
// value; operators pop their operands and push one result:
//
//	// X0 * 2.5 + sqrt(X1)
//	p := symfit.Program{Nodes: []symfit.Node{
//	    symfit.Var(0), symfit.Const(2.5), symfit.Op(symfit.Mul),
//	    symfit.Var(1), symfit.Op(symfit.Sqrt),
//	    symfit.Op(symfit.Add),
//	}}
//
// # Operator table
//
// The 32 operators are dispatched through a fixed table indexed by
// NodeType (see Apply). The table never fails: div, inv and log return a
// sentinel for operands smaller than MinMagnitude, sqrt and log take the
// absolute value of their operand, and everything else follows package
// math, so out-of-domain inputs produce NaN or Inf that flow into the
// fitness value.
//
// # Evaluation
//
//	ds := symfit.NewDataset(x, y, nil) // x is column-major
//	e := symfit.NewEvaluator[float32](p.StackDepth())
//	pred := e.Eval(&p, ds, sampleIndex)
//
// # Dispatch
//
// Reduction kernels in contrib keep Lanes[T]() independent accumulators,
// chosen from the CPU detected at init. Set SYMFIT_NO_SIMD=1 to force one
// accumulator and a summation order identical to a sequential loop.
package symfit

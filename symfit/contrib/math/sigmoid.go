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

	"github.com/symreg/go-symfit/symfit"
)

// Log-sigmoid region boundaries.
const (
	logSigmoidLinear = -33.3 // below: log(sigmoid(x)) == x in float precision
	logSigmoidLow    = -18.0 // below: first-order expansion x - exp(x)
	logSigmoidHigh   = 37.0  // above: first-order expansion -exp(-x)
)

// LogSigmoid computes log(1 / (1 + exp(-x))) without overflow in exp or
// loss of precision in log1p anywhere in the float range:
//
//	x < -33.3         : x
//	-33.3 <= x <= -18 : x - exp(x)
//	-18 < x <= 37     : -log1p(exp(-x))
//	x > 37            : -exp(-x)
//
// See http://fa.bianp.net/blog/2019/evaluate_logistic/ for the derivation.
func LogSigmoid[T symfit.Floats](x T) T {
	v := float64(x)
	switch {
	case v < logSigmoidLinear:
		return x
	case v <= logSigmoidLow:
		return T(v - stdmath.Exp(v))
	case v <= logSigmoidHigh:
		return T(-stdmath.Log1p(stdmath.Exp(-v)))
	default:
		return T(-stdmath.Exp(-v))
	}
}

// BaseLogSigmoid applies LogSigmoid element-wise.
func BaseLogSigmoid[T symfit.Floats](input, output []T) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = LogSigmoid(input[i])
	}
}

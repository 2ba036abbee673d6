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

import "errors"

// Errors reported by the opt-in Validate methods. The evaluation and metric
// paths never return errors; numeric problems surface as NaN or Inf.
var (
	ErrEmptyProgram      = errors.New("symfit: empty program")
	ErrInvalidNodeType   = errors.New("symfit: invalid node type")
	ErrStackUnderflow    = errors.New("symfit: operator has too few operands")
	ErrStackImbalance    = errors.New("symfit: program does not leave exactly one value")
	ErrFeatureOutOfRange = errors.New("symfit: feature index out of range")
	ErrShape             = errors.New("symfit: inconsistent dataset shape")
	ErrNegativeWeight    = errors.New("symfit: negative sample weight")
)

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

// Package math provides numerically stable scalar functions used by the
// fitness metrics.
//
// LogSigmoid stays finite over the whole float range by switching between
// four closed forms:
//
//	math.LogSigmoid(float32(-40)) // -40, no exp underflow
//	math.LogSigmoid(float32(0))   // -ln 2
//	math.LogSigmoid(float32(40))  // -exp(-40), no log1p cancellation
//
// The region boundaries (-33.3, -18, 37) are part of the result and must
// not be tuned.
package math

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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the reduction kernels are
// tuned for.
type DispatchLevel int

const (
	// DispatchScalar uses a single accumulator per reduction, summing in
	// exactly the same order as a sequential reference loop.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes for the current level.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the SYMFIT_NO_SIMD environment variable is set.
// When set, reductions use the scalar path regardless of CPU capabilities,
// which makes results bit-identical to a sequential reference.
func NoSimdEnv() bool {
	val := os.Getenv("SYMFIT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode is also used by tests to pin the summation order.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 0
}

// SetDispatchLevel overrides the detected level and returns a function that
// restores the previous one. It is meant for tests and benchmarks and must
// not be called while kernels are running.
func SetDispatchLevel(level DispatchLevel) (restore func()) {
	prevLevel, prevWidth := currentLevel, currentWidth
	switch level {
	case DispatchScalar:
		setScalarMode()
	case DispatchSSE2, DispatchNEON:
		currentLevel, currentWidth = level, 16
	case DispatchAVX2:
		currentLevel, currentWidth = level, 32
	case DispatchAVX512:
		currentLevel, currentWidth = level, 64
	}
	return func() {
		currentLevel, currentWidth = prevLevel, prevWidth
	}
}

// Lanes returns the number of independent accumulators a reduction over
// values of type T should keep: 1 in scalar mode, otherwise the number of
// T values that fit in one register of the current level.
//
// For example, with AVX2 (32 bytes):
//   - float32: 8 accumulators
//   - float64: 4 accumulators
func Lanes[T Floats]() int {
	if currentLevel == DispatchScalar {
		return 1
	}
	var dummy T
	return max(1, currentWidth/int(unsafe.Sizeof(dummy)))
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanes(t *testing.T) {
	tests := []struct {
		level   DispatchLevel
		lanes32 int
		lanes64 int
	}{
		{DispatchScalar, 1, 1},
		{DispatchSSE2, 4, 2},
		{DispatchNEON, 4, 2},
		{DispatchAVX2, 8, 4},
		{DispatchAVX512, 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			restore := SetDispatchLevel(tt.level)
			defer restore()
			assert.Equal(t, tt.level, CurrentLevel())
			assert.Equal(t, tt.lanes32, Lanes[float32]())
			assert.Equal(t, tt.lanes64, Lanes[float64]())
		})
	}
}

func TestSetDispatchLevelRestore(t *testing.T) {
	level, width := CurrentLevel(), CurrentWidth()
	restore := SetDispatchLevel(DispatchAVX512)
	assert.Equal(t, 64, CurrentWidth())
	assert.Equal(t, "avx512", CurrentName())
	restore()
	assert.Equal(t, level, CurrentLevel())
	assert.Equal(t, width, CurrentWidth())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("SYMFIT_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

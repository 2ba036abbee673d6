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

import "fmt"

// Dataset holds the samples programs are scored against.
//
// X is column-major: the NumSamples values of feature f are contiguous at
// X[f*NumSamples : (f+1)*NumSamples]. Y and W have one entry per sample.
// The weight sum must be positive; it is not checked on the metric paths.
type Dataset[T Floats] struct {
	X []T
	Y []T
	W []T

	NumSamples  int
	NumFeatures int
}

// NewDataset wraps x, y and w without copying. The sample count is len(y)
// and the feature count is len(x)/len(y). A nil w means unit weights.
func NewDataset[T Floats](x, y, w []T) *Dataset[T] {
	n := len(y)
	if w == nil {
		w = make([]T, n)
		for i := range w {
			w[i] = 1
		}
	}
	numFeatures := 0
	if n > 0 {
		numFeatures = len(x) / n
	}
	return &Dataset[T]{
		X:           x,
		Y:           y,
		W:           w,
		NumSamples:  n,
		NumFeatures: numFeatures,
	}
}

// Feature returns the column of feature f.
func (d *Dataset[T]) Feature(f int) []T {
	return d.X[f*d.NumSamples : (f+1)*d.NumSamples]
}

// Validate checks that the slices agree with NumSamples and NumFeatures and
// that no weight is negative.
func (d *Dataset[T]) Validate() error {
	if len(d.Y) != d.NumSamples || len(d.W) != d.NumSamples {
		return fmt.Errorf("%w: len(Y)=%d len(W)=%d, want %d", ErrShape, len(d.Y), len(d.W), d.NumSamples)
	}
	if len(d.X) != d.NumSamples*d.NumFeatures {
		return fmt.Errorf("%w: len(X)=%d, want %d*%d", ErrShape, len(d.X), d.NumFeatures, d.NumSamples)
	}
	for i, w := range d.W {
		if w < 0 {
			return fmt.Errorf("%w: W[%d]=%v", ErrNegativeWeight, i, w)
		}
	}
	return nil
}

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

package fitness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// ErrUnknownMetric is returned for a Metric value or name that does not
// name one of the metrics below.
var ErrUnknownMetric = errors.New("fitness: unknown metric")

// Metric selects a reduction.
type Metric int

const (
	Pearson Metric = iota
	Spearman
	MAE
	MSE
	RMSE
	LogLossMetric
)

var metricNames = [...]string{
	Pearson:       "pearson",
	Spearman:      "spearman",
	MAE:           "mae",
	MSE:           "mse",
	RMSE:          "rmse",
	LogLossMetric: "logloss",
}

// String returns the metric's short name.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// ParseMetric accepts the short names returned by String, case-insensitive.
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, s := range metricNames {
		if s == name {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// GreaterIsBetter reports whether larger fitness values are better: true
// for the correlations, false for the error measures.
func (m Metric) GreaterIsBetter() bool {
	return m == Pearson || m == Spearman
}

// Compute runs metric m. The only error is ErrUnknownMetric.
func Compute[T symfit.Floats](pool *workerpool.Pool, m Metric, progs []symfit.Program, numSamples int, y, yPred, w []T) error {
	switch m {
	case Pearson:
		WeightedPearson(pool, progs, numSamples, y, yPred, w)
	case Spearman:
		WeightedSpearman(pool, progs, numSamples, y, yPred, w)
	case MAE:
		MeanAbsoluteError(pool, progs, numSamples, y, yPred, w)
	case MSE:
		MeanSquareError(pool, progs, numSamples, y, yPred, w)
	case RMSE:
		RootMeanSquareError(pool, progs, numSamples, y, yPred, w)
	case LogLossMetric:
		LogLoss(pool, progs, numSamples, y, yPred, w)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}
	return nil
}

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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/batch"
	"github.com/symreg/go-symfit/symfit/contrib/fitness"
	"github.com/symreg/go-symfit/symfit/contrib/synth"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

// Result summarizes one scenario.
type Result struct {
	Scenario string
	Metric   fitness.Metric
	Programs int
	Samples  int
	Predict  time.Duration // mean over repeats
	Score    time.Duration // mean over repeats
	Finite   int           // programs with a finite fitness
	Best     float64
	BestExpr string
}

// target is the ground truth of every synthetic dataset.
func target(row []float64) float64 {
	last := row[len(row)-1]
	return row[0]*row[0] - 0.5*last + math.Sin(row[0]*last)
}

// runScenarios runs every scenario concurrently against the shared pool and
// returns results in scenario order. The first failure cancels the rest.
func runScenarios(ctx context.Context, logger *slog.Logger, pool *workerpool.Pool, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, gCtx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		g.Go(func() error {
			log := logger.With("scenario", sc.Name)
			var err error
			switch sc.Precision {
			case "float64":
				results[i], err = runScenario[float64](gCtx, log, pool, sc)
			default:
				results[i], err = runScenario[float32](gCtx, log, pool, sc)
			}
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario[T symfit.Floats](ctx context.Context, log *slog.Logger, pool *workerpool.Pool, sc Scenario) (Result, error) {
	m, err := fitness.ParseMetric(sc.Metric)
	if err != nil {
		return Result{}, err
	}

	ds := synth.Dataset[T](sc.Seed, sc.Samples, sc.Features, target)
	if m == fitness.LogLossMetric {
		synth.Binarize(ds)
	}
	cfg := synth.DefaultConfig(sc.Features)
	cfg.MaxDepth = sc.MaxDepth
	progs := synth.New(cfg, sc.Seed).Programs(sc.Programs)
	log.Debug("generated population",
		"programs", len(progs),
		"nodes", lo.SumBy(progs, func(p symfit.Program) int { return p.Len() }),
		"precision", sc.Precision)

	preds := make([]T, len(progs)*ds.NumSamples)
	var predictTotal, scoreTotal time.Duration
	for rep := range sc.Repeats {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		batch.Predict(pool, progs, ds, preds)
		predicted := time.Now()
		if err := fitness.Compute(pool, m, progs, ds.NumSamples, ds.Y, preds, ds.W); err != nil {
			return Result{}, err
		}
		predict, score := predicted.Sub(start), time.Since(predicted)

		predictTotal += predict
		scoreTotal += score
		recordPass(ctx, sc.Name, m.String(), predict, score, len(progs))
		log.Debug("pass done", "repeat", rep, "predict", predict, "score", score)
	}

	res := Result{
		Scenario: sc.Name,
		Metric:   m,
		Programs: len(progs),
		Samples:  ds.NumSamples,
		Predict:  predictTotal / time.Duration(sc.Repeats),
		Score:    scoreTotal / time.Duration(sc.Repeats),
	}
	finite := lo.Filter(progs, func(p symfit.Program, _ int) bool {
		return !math.IsNaN(p.Fitness) && !math.IsInf(p.Fitness, 0)
	})
	res.Finite = len(finite)
	if len(finite) > 0 {
		best := lo.MaxBy(finite, func(a, b symfit.Program) bool {
			if m.GreaterIsBetter() {
				return a.Fitness > b.Fitness
			}
			return a.Fitness < b.Fitness
		})
		res.Best, res.BestExpr = best.Fitness, best.String()
	}
	log.Info("scenario done",
		"metric", m.String(),
		"predict_mean", res.Predict,
		"score_mean", res.Score,
		"finite", res.Finite,
		"best", res.Best)
	return res, nil
}

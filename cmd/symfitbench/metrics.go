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
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var meter = otel.Meter("symfitbench")

var (
	predictLatency metric.Float64Histogram
	scoreLatency   metric.Float64Histogram
	programsScored metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		predictLatency, err = meter.Float64Histogram(
			"symfit_predict_duration_seconds",
			metric.WithDescription("Duration of one batch prediction pass"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		scoreLatency, err = meter.Float64Histogram(
			"symfit_score_duration_seconds",
			metric.WithDescription("Duration of one fitness pass over a prediction matrix"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		programsScored, err = meter.Int64Counter(
			"symfit_programs_scored_total",
			metric.WithDescription("Programs that received a fitness value"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordPass records one predict+score repetition of a scenario.
func recordPass(ctx context.Context, scenario, metricName string, predict, score time.Duration, programs int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("scenario", scenario),
		attribute.String("metric", metricName),
	)
	predictLatency.Record(ctx, predict.Seconds(), attrs)
	scoreLatency.Record(ctx, score.Seconds(), attrs)
	programsScored.Add(ctx, int64(programs), attrs)
}

// setupMeterProvider installs a stdout-exporting meter provider when
// enabled. The returned shutdown flushes pending data points.
func setupMeterProvider(enabled bool) (shutdown func(context.Context) error, err error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}
	exporter, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

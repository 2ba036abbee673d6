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
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/symreg/go-symfit/symfit"
	"github.com/symreg/go-symfit/symfit/contrib/fitness"
	"github.com/symreg/go-symfit/symfit/contrib/workerpool"
)

var (
	logFormat string
	logLevel  string

	configPath string
	overrides  Overrides
	otelStdout bool
)

var (
	rootCmd = &cobra.Command{
		Use:          "symfitbench",
		Short:        "Benchmark program evaluation and fitness metrics",
		SilenceUsage: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the scenarios of a config file (or one default scenario)",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}

	opsCmd = &cobra.Command{
		Use:   "ops",
		Short: "List the operator table and the fitness metrics",
		Args:  cobra.NoArgs,
		Run:   listOps,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: 'text' or 'json'")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Scenario file (YAML)")
	runCmd.Flags().IntVar(&overrides.Workers, "workers", 0, "Worker pool size; overrides the file, 0 keeps it")
	runCmd.Flags().StringVar(&overrides.Metric, "metric", "", "Metric for every scenario: "+strings.Join(metricNames(), ", "))
	runCmd.Flags().IntVar(&overrides.Repeats, "repeats", 0, "Repetitions per scenario; overrides the file")
	runCmd.Flags().Uint64Var(&overrides.Seed, "seed", 0, "Seed for every scenario; overrides the file")
	runCmd.Flags().BoolVar(&otelStdout, "otel-stdout", false, "Export timing metrics to stdout via OpenTelemetry")

	rootCmd.AddCommand(runCmd, opsCmd)
}

func metricNames() []string {
	names := make([]string, 0, int(fitness.LogLossMetric)+1)
	for m := fitness.Pearson; m <= fitness.LogLossMetric; m++ {
		names = append(names, m.String())
	}
	return names
}

// newLogger builds the slog logger selected by the format and level flags.
func newLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: must be 'text' or 'json'", format)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(logFormat, logLevel)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := overrides.Apply(cfg); err != nil {
		return err
	}

	shutdown, err := setupMeterProvider(otelStdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(cmd.Context()); err != nil {
			logger.Warn("Failed to flush metrics", "error", err)
		}
	}()

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	logger.Info("Starting benchmark",
		"scenarios", len(cfg.Scenarios),
		"workers", pool.NumWorkers(),
		"dispatch", symfit.CurrentName())

	results, err := runScenarios(cmd.Context(), logger, pool, cfg.Scenarios)
	if err != nil {
		logger.Error("Benchmark failed", "error", err)
		return err
	}
	printResults(cmd, results)
	return nil
}

func printResults(cmd *cobra.Command, results []Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tMETRIC\tPROGRAMS\tSAMPLES\tPREDICT\tSCORE\tFINITE\tBEST")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%v\t%d\t%.6g\n",
			r.Scenario, r.Metric, r.Programs, r.Samples, r.Predict, r.Score, r.Finite, r.Best)
	}
	_ = w.Flush()
	for _, r := range results {
		if r.BestExpr != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s best: %s\n", r.Scenario, r.BestExpr)
		}
	}
}

func listOps(cmd *cobra.Command, _ []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tARITY\tF(0.5, 2)")
	for t := range symfit.NodeType(symfit.NumNodeTypes) {
		sample := "-"
		if !t.IsTerminal() {
			sample = fmt.Sprintf("%.6g", symfit.Func(t)(0.5, 2))
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", t, t, t.Arity(), sample)
	}
	_ = w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\nmetrics: %s\n", strings.Join(metricNames(), ", "))
}

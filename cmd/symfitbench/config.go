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
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/symreg/go-symfit/symfit/contrib/fitness"
)

// Config is the benchmark scenario file.
type Config struct {
	// Workers sizes the shared worker pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Scenarios run concurrently against the shared pool.
	Scenarios []Scenario `yaml:"scenarios" validate:"required,min=1,dive"`
}

// Scenario is one synthetic population scored with one metric.
type Scenario struct {
	Name      string `yaml:"name" validate:"required"`
	Metric    string `yaml:"metric" validate:"required,metric"`
	Precision string `yaml:"precision" validate:"oneof=float32 float64"`
	Programs  int    `yaml:"programs" validate:"min=1"`
	Samples   int    `yaml:"samples" validate:"min=2"`
	Features  int    `yaml:"features" validate:"min=1"`
	MaxDepth  int    `yaml:"max_depth" validate:"gte=0,lte=16"`
	Repeats   int    `yaml:"repeats" validate:"min=1"`
	Seed      uint64 `yaml:"seed"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("metric", validateMetric); err != nil {
		panic(fmt.Sprintf("register metric validation: %v", err))
	}
}

// validateMetric accepts any name fitness.ParseMetric understands.
func validateMetric(fl validator.FieldLevel) bool {
	_, err := fitness.ParseMetric(fl.Field().String())
	return err == nil
}

// DefaultScenario is used for fields a scenario leaves unset and, alone,
// when no config file is given.
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "default",
		Metric:    fitness.RMSE.String(),
		Precision: "float32",
		Programs:  1000,
		Samples:   2048,
		Features:  4,
		MaxDepth:  6,
		Repeats:   5,
		Seed:      1,
	}
}

// LoadConfig reads, defaults and validates a scenario file. An empty path
// yields a single default scenario.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = []Scenario{DefaultScenario()}
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	def := DefaultScenario()
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Metric == "" {
			s.Metric = def.Metric
		}
		if s.Precision == "" {
			s.Precision = def.Precision
		}
		if s.Programs == 0 {
			s.Programs = def.Programs
		}
		if s.Samples == 0 {
			s.Samples = def.Samples
		}
		if s.Features == 0 {
			s.Features = def.Features
		}
		if s.MaxDepth == 0 {
			s.MaxDepth = def.MaxDepth
		}
		if s.Repeats == 0 {
			s.Repeats = def.Repeats
		}
	}
}

// Validate checks every field constraint of the config.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Overrides are command-line values that replace file values when set.
type Overrides struct {
	Workers int
	Metric  string
	Repeats int
	Seed    uint64
}

// Apply replaces config values with the non-zero overrides and validates
// the result.
func (o Overrides) Apply(c *Config) error {
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if o.Metric != "" {
			s.Metric = o.Metric
		}
		if o.Repeats > 0 {
			s.Repeats = o.Repeats
		}
		if o.Seed != 0 {
			s.Seed = o.Seed
		}
	}
	return c.Validate()
}

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

// Package synth generates seeded random programs and datasets for tests
// and benchmarks. It is not a genetic operator: programs are drawn with the
// classic "grow" method and carry no lineage.
package synth

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/symreg/go-symfit/symfit"
)

// Config controls program generation.
type Config struct {
	// NumFeatures bounds the feature index of Variable nodes.
	NumFeatures int
	// MaxDepth is the maximum tree depth; a lone terminal has depth 0.
	MaxDepth int
	// TerminalProb is the chance of stopping early at a terminal below
	// MaxDepth.
	TerminalProb float64
	// ConstProb is the chance that a terminal is a constant.
	ConstProb float64
	// ConstMin and ConstMax bound constant values.
	ConstMin, ConstMax float64
	// Functions is the operator set; empty means every operator.
	Functions []symfit.NodeType
}

// DefaultConfig returns a configuration producing small, mixed programs.
func DefaultConfig(numFeatures int) Config {
	return Config{
		NumFeatures:  numFeatures,
		MaxDepth:     6,
		TerminalProb: 0.3,
		ConstProb:    0.3,
		ConstMin:     -1,
		ConstMax:     1,
	}
}

// Operators returns every non-terminal NodeType.
func Operators() []symfit.NodeType {
	all := lo.Times(symfit.NumNodeTypes, func(i int) symfit.NodeType { return symfit.NodeType(i) })
	return lo.Reject(all, func(t symfit.NodeType, _ int) bool { return t.IsTerminal() })
}

// Generator draws programs from a seeded source. Not safe for concurrent use.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New returns a Generator; the same seed and Config yield the same programs.
func New(cfg Config, seed uint64) *Generator {
	if len(cfg.Functions) == 0 {
		cfg.Functions = Operators()
	}
	cfg.NumFeatures = max(cfg.NumFeatures, 1)
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Program returns a new well-formed program.
func (g *Generator) Program() symfit.Program {
	var nodes []symfit.Node
	nodes = g.grow(nodes, 0)
	return symfit.Program{Nodes: nodes}
}

// Programs returns n new programs.
func (g *Generator) Programs(n int) []symfit.Program {
	return lo.Times(n, func(int) symfit.Program { return g.Program() })
}

// grow appends a subtree in postfix order: operands first, then operator.
func (g *Generator) grow(nodes []symfit.Node, depth int) []symfit.Node {
	if depth >= g.cfg.MaxDepth || (depth > 0 && g.rng.Float64() < g.cfg.TerminalProb) {
		return append(nodes, g.terminal())
	}
	op := g.cfg.Functions[g.rng.IntN(len(g.cfg.Functions))]
	for range op.Arity() {
		nodes = g.grow(nodes, depth+1)
	}
	return append(nodes, symfit.Op(op))
}

func (g *Generator) terminal() symfit.Node {
	if g.rng.Float64() < g.cfg.ConstProb {
		return symfit.Const(g.cfg.ConstMin + g.rng.Float64()*(g.cfg.ConstMax-g.cfg.ConstMin))
	}
	return symfit.Var(uint32(g.rng.IntN(g.cfg.NumFeatures)))
}

// Dataset returns numSamples samples with features drawn uniformly from
// [-1, 1), targets target(features) and unit weights. X is column-major.
func Dataset[T symfit.Floats](seed uint64, numSamples, numFeatures int, target func(row []float64) float64) *symfit.Dataset[T] {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	x := make([]T, numSamples*numFeatures)
	y := make([]T, numSamples)
	row := make([]float64, numFeatures)
	for i := range numSamples {
		for f := range numFeatures {
			row[f] = 2*rng.Float64() - 1
			x[f*numSamples+i] = T(row[f])
		}
		y[i] = T(target(row))
	}
	return symfit.NewDataset(x, y, nil)
}

// Binarize replaces every target with 1 if it is positive and 0 otherwise,
// turning a regression dataset into labels for LogLoss.
func Binarize[T symfit.Floats](ds *symfit.Dataset[T]) {
	for i, v := range ds.Y {
		if v > 0 {
			ds.Y[i] = 1
		} else {
			ds.Y[i] = 0
		}
	}
}

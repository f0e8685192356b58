// SPDX-License-Identifier: MIT
// Package measure runs the doubling experiment on neighborhood graphs.
//
// For each exponent i in [From, To] it builds n = 2^i vertices of weight 1,
// makes n random endpoint draws (loops and repeats skipped) and records the
// edge count and the max rank, i.e. the maximal neighborhood weight minus one,
// which equals the highest degree. Trials repeat each size with fresh draws
// and Summary aggregates them with gonum/stat.
package measure

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/vicinity/builder"
	"github.com/katalvlaran/vicinity/neighborhood"
)

// MaxExponent bounds To so that 2^To vertices stay allocatable.
const MaxExponent = 24

// ErrRange indicates an invalid exponent range or trial count.
var ErrRange = errors.New("measure: invalid range")

// Config selects the exponent range, the number of trials per size and the seed.
type Config struct {
	From   int
	To     int
	Trials int
	Seed   int64
}

// Validate checks 0 <= From <= To <= MaxExponent and Trials >= 1.
func (c Config) Validate() error {
	switch {
	case c.From < 0 || c.To < c.From || c.To > MaxExponent:
		return fmt.Errorf("%w: from=%d to=%d (max %d)", ErrRange, c.From, c.To, MaxExponent)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials=%d", ErrRange, c.Trials)
	}
	return nil
}

// Trial is one graph build at one size.
type Trial struct {
	Nodes   int
	Edges   int
	MaxID   int64
	MaxRank int64
}

// Summary aggregates the trials of one exponent.
type Summary struct {
	Exponent  int
	Nodes     int
	Trials    []Trial
	MeanEdges float64
	StdEdges  float64
	MeanRank  float64
	StdRank   float64
}

// RunTrial builds one graph of n unit-weight vertices with n random attempts.
func RunTrial(n int, rng *rand.Rand) (Trial, error) {
	vs, err := builder.Vertices(n)
	if err != nil {
		return Trial{}, err
	}
	g, _, err := builder.BuildGraph(vs,
		[]neighborhood.GraphOption{neighborhood.WithRand(rng)},
		[]builder.BuilderOption{builder.WithRand(rng)},
		builder.RandomAttempts(n),
	)
	if err != nil {
		return Trial{}, err
	}

	t := Trial{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
	if top, ok := g.MaxNeighborhoodWeight(); ok {
		t.MaxID = top.ID
		t.MaxRank = top.NeighborhoodWeight - 1
	}

	return t, nil
}

// Run executes cfg and calls report, if non-nil, after each exponent.
// It stops early with ctx.Err() when ctx is cancelled between trials.
func Run(ctx context.Context, cfg Config, report func(Summary)) ([]Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	out := make([]Summary, 0, cfg.To-cfg.From+1)
	for i := cfg.From; i <= cfg.To; i++ {
		n := 1 << i
		s := Summary{Exponent: i, Nodes: n, Trials: make([]Trial, 0, cfg.Trials)}
		for k := 0; k < cfg.Trials; k++ {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			t, err := RunTrial(n, rng)
			if err != nil {
				return out, fmt.Errorf("measure: i=%d trial %d: %w", i, k, err)
			}
			s.Trials = append(s.Trials, t)
		}
		s.aggregate()
		out = append(out, s)
		if report != nil {
			report(s)
		}
	}

	return out, nil
}

// aggregate fills the mean and standard deviation fields. A single trial has
// zero deviation.
func (s *Summary) aggregate() {
	edges := make([]float64, len(s.Trials))
	ranks := make([]float64, len(s.Trials))
	for i, t := range s.Trials {
		edges[i] = float64(t.Edges)
		ranks[i] = float64(t.MaxRank)
	}
	s.MeanEdges = stat.Mean(edges, nil)
	s.MeanRank = stat.Mean(ranks, nil)
	if len(s.Trials) > 1 {
		s.StdEdges = stat.StdDev(edges, nil)
		s.StdRank = stat.StdDev(ranks, nil)
	}
}

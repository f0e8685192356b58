// SPDX-License-Identifier: MIT
// Package: vicinity/internal/oracle
//
// driver.go - seeded random workload applied to Graph and Model in lockstep.

package oracle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vicinity/builder"
	"github.com/katalvlaran/vicinity/neighborhood"
)

// Id and weight ranges of a driver-built vertex set.
const (
	DefaultIDLimit   = 100000
	DefaultMaxWeight = 99999
)

// Driver applies identical operations to a Graph and a Model.
type Driver struct {
	g     *neighborhood.Graph
	m     *Model
	rng   *rand.Rand
	full  bool
	steps int
}

// DriverOption configures NewDriver.
type DriverOption func(*Driver)

// WithFullChecks makes every verification compare all neighborhood weights
// and run Graph.Validate.
func WithFullChecks() DriverOption {
	return func(d *Driver) { d.full = true }
}

// NewDriver builds n vertices with distinct random ids in [0, max(DefaultIDLimit, 2n))
// and weights in [0, DefaultMaxWeight], all drawn from seed.
func NewDriver(n int, seed int64, opts ...DriverOption) (*Driver, error) {
	rng := rand.New(rand.NewSource(seed))
	limit := int64(DefaultIDLimit)
	if int64(2*n) > limit {
		limit = int64(2 * n)
	}
	vs, err := builder.Vertices(n,
		builder.WithRand(rng),
		builder.WithRandomIDs(limit),
		builder.WithWeightRange(0, DefaultMaxWeight),
	)
	if err != nil {
		return nil, fmt.Errorf("NewDriver: %w", err)
	}

	return NewDriverFrom(vs, rng, opts...)
}

// NewDriverFrom wraps an explicit vertex set. rng drives every later batch.
func NewDriverFrom(vs []neighborhood.Vertex, rng *rand.Rand, opts ...DriverOption) (*Driver, error) {
	if rng == nil {
		return nil, fmt.Errorf("NewDriverFrom: %w", builder.ErrNeedRandSource)
	}
	g, err := neighborhood.New(vs, neighborhood.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("NewDriverFrom: %w", err)
	}
	d := &Driver{g: g, m: NewModel(vs), rng: rng}
	for _, opt := range opts {
		opt(d)
	}

	return d, d.verify()
}

// Graph exposes the graph under test.
func (d *Driver) Graph() *neighborhood.Graph { return d.g }

// Model exposes the reference model.
func (d *Driver) Model() *Model { return d.m }

// Verifications is the number of successful Verify calls so far.
func (d *Driver) Verifications() int { return d.steps }

// MissingEdges is the number of vertex pairs that are not yet edges.
func (d *Driver) MissingEdges() int {
	n := d.m.NodeCount()
	return n*(n-1)/2 - d.m.EdgeCount()
}

func (d *Driver) verify() error {
	if err := Verify(d.g, d.m, d.full); err != nil {
		return err
	}
	d.steps++
	return nil
}

// addEdge applies one edge to both sides and demands they agree.
func (d *Driver) addEdge(u, v int64) error {
	want := d.m.AddEdge(u, v)
	if got := d.g.AddEdge(u, v); got != want {
		return fmt.Errorf("%w: AddEdge(%d,%d) graph=%t model=%t", ErrMismatch, u, v, got, want)
	}
	return nil
}

// RandomEdges adds k new edges between random distinct live vertices, then
// verifies. Above half of the remaining pairs it shuffles the missing pairs
// instead of rejection sampling.
func (d *Driver) RandomEdges(k int) error {
	missing := d.MissingEdges()
	if k < 0 || k > missing {
		return fmt.Errorf("RandomEdges(%d): %d pairs free: %w", k, missing, ErrExhausted)
	}
	ids := d.m.IDs()

	if 2*k > missing {
		free := make([][2]int64, 0, missing)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if !d.m.HasEdge(ids[i], ids[j]) {
					free = append(free, [2]int64{ids[i], ids[j]})
				}
			}
		}
		d.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
		for _, p := range free[:k] {
			if err := d.addEdge(p[0], p[1]); err != nil {
				return fmt.Errorf("RandomEdges: %w", err)
			}
		}
		return d.verify()
	}

	for added := 0; added < k; {
		u, v := ids[d.rng.Intn(len(ids))], ids[d.rng.Intn(len(ids))]
		if u == v || d.m.HasEdge(u, v) {
			continue
		}
		if err := d.addEdge(u, v); err != nil {
			return fmt.Errorf("RandomEdges: %w", err)
		}
		added++
	}

	return d.verify()
}

// RandomDeletions deletes k distinct live vertices chosen uniformly, then verifies.
func (d *Driver) RandomDeletions(k int) error {
	ids := d.m.IDs()
	if k < 0 || k > len(ids) {
		return fmt.Errorf("RandomDeletions(%d): %d nodes: %w", k, len(ids), ErrExhausted)
	}
	for _, idx := range d.rng.Perm(len(ids))[:k] {
		id := ids[idx]
		want := d.m.DeleteNode(id)
		if got := d.g.DeleteNode(id); got != want {
			return fmt.Errorf("RandomDeletions: %w: DeleteNode(%d) graph=%t model=%t", ErrMismatch, id, got, want)
		}
	}

	return d.verify()
}

// RandomOperations interleaves edge and deletion batches in six slices of k:
// edges, deletions, edges, deletions, edges, deletions.
func (d *Driver) RandomOperations(k int) error {
	bounds := [7]int{0, k / 6, k / 3, k / 2, 2 * k / 3, 5 * k / 6, k}
	for i := 0; i < 6; i++ {
		amount := bounds[i+1] - bounds[i]
		var err error
		if i%2 == 0 {
			err = d.RandomEdges(amount)
		} else {
			err = d.RandomDeletions(amount)
		}
		if err != nil {
			return fmt.Errorf("RandomOperations(%d) slice %d: %w", k, i, err)
		}
	}

	return nil
}

// AddAllEdges completes the graph.
func (d *Driver) AddAllEdges() error {
	if err := d.RandomEdges(d.MissingEdges()); err != nil {
		return err
	}
	n := d.g.NodeCount()
	if d.g.EdgeCount() != n*(n-1)/2 {
		return fmt.Errorf("AddAllEdges: %w: %d edges on %d nodes", ErrMismatch, d.g.EdgeCount(), n)
	}
	return nil
}

// DeleteOneByOne deletes every vertex, verifying after each deletion.
func (d *Driver) DeleteOneByOne() error {
	for d.m.NodeCount() > 0 {
		if err := d.RandomDeletions(1); err != nil {
			return err
		}
	}
	if !d.g.IsEmpty() {
		return fmt.Errorf("DeleteOneByOne: %w: %d nodes left", ErrMismatch, d.g.NodeCount())
	}
	return nil
}

// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vicinity/builder"
	"github.com/katalvlaran/vicinity/internal/metrics"
	"github.com/katalvlaran/vicinity/neighborhood"
)

// benchCommand creates the "bench" command.
func (c *CLI) benchCommand() *cobra.Command {
	var withMetrics bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random edge insertions, max queries and deletions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			n, m := c.cfg.Check.Nodes, c.cfg.Check.Edges

			rng := rand.New(rand.NewSource(c.cfg.Seed))
			vs, err := builder.Vertices(n, builder.WithRand(rng), builder.WithWeightRange(0, 1000))
			if err != nil {
				return err
			}
			ids := make([]int64, len(vs))
			for i, v := range vs {
				ids[i] = v.ID
			}
			edges, err := builder.Generate(ids, []builder.BuilderOption{builder.WithRand(rng)}, builder.RandomEdges(m))
			if err != nil {
				return err
			}
			g, err := neighborhood.New(vs, c.graphOptions()...)
			if err != nil {
				return err
			}

			rec := metrics.New()
			res := runBench(g, rec, edges, rng.Perm(len(ids)), ids)

			printTitle(out, "Bench")
			printKeyValue(out, "add_edge", fmt.Sprintf("%d in %s", len(edges), res.add))
			printKeyValue(out, "max", fmt.Sprintf("%d in %s", res.queries, res.max))
			printKeyValue(out, "delete_node", fmt.Sprintf("%d in %s", res.deleted, res.del))
			c.Logger.Debug("bench finished", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			if withMetrics {
				return rec.WriteText(out)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("nodes", 1000, "vertices")
	f.Int("edges", 2000, "random edges")
	f.BoolVar(&withMetrics, "metrics", false, "print Prometheus text exposition after the run")

	return cmd
}

type benchResult struct {
	add, max, del    time.Duration
	queries, deleted int
}

// runBench inserts every edge, issues one max query per edge, then deletes
// half the vertices in perm order. Gauges are snapshotted at the end.
func runBench(g *neighborhood.Graph, rec *metrics.Recorder, edges []builder.Edge, perm []int, ids []int64) benchResult {
	var res benchResult

	start := time.Now()
	for _, e := range edges {
		rec.AddEdge(g, e.U, e.V)
	}
	res.add = time.Since(start)

	start = time.Now()
	for range edges {
		rec.Max(g)
		res.queries++
	}
	res.max = time.Since(start)

	start = time.Now()
	for _, idx := range perm[:len(perm)/2] {
		if rec.DeleteNode(g, ids[idx]) {
			res.deleted++
		}
	}
	res.del = time.Since(start)

	rec.Snapshot(g)
	return res
}

// SPDX-License-Identifier: MIT
// Package metrics records neighborhood graph operations in a private
// Prometheus registry and renders them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/vicinity/neighborhood"
)

// Operation label values.
const (
	OpAddEdge    = "add_edge"
	OpDeleteNode = "delete_node"
	OpMax        = "max"
)

// Result label values.
const (
	ResultApplied = "applied"
	ResultNoop    = "noop"
)

// Recorder owns one registry so concurrent runs and tests never collide on
// the global default registerer.
type Recorder struct {
	reg      *prometheus.Registry
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	nodes    prometheus.Gauge
	edges    prometheus.Gauge
	maxNW    prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vicinity_operations_total",
			Help: "Graph operations by kind and outcome",
		}, []string{"op", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name: "vicinity_operation_duration_seconds",
			Help: "Duration of graph operations in seconds",
			// From a cached heap peek up to a large vertex deletion.
			Buckets: []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3, 1e-2},
		}, []string{"op"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "vicinity_nodes",
			Help: "Live vertices in the graph",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "vicinity_edges",
			Help: "Edges in the graph",
		}),
		maxNW: f.NewGauge(prometheus.GaugeOpts{
			Name: "vicinity_max_neighborhood_weight",
			Help: "Current maximal neighborhood weight",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one operation outcome and its duration.
func (r *Recorder) Observe(op string, applied bool, d time.Duration) {
	result := ResultNoop
	if applied {
		result = ResultApplied
	}
	r.ops.WithLabelValues(op, result).Inc()
	r.duration.WithLabelValues(op).Observe(d.Seconds())
}

// Snapshot sets the gauges from g. Edges are counted in O(n).
func (r *Recorder) Snapshot(g *neighborhood.Graph) {
	r.nodes.Set(float64(g.NodeCount()))
	r.edges.Set(float64(g.EdgeCount()))
	if top, ok := g.MaxNeighborhoodWeight(); ok {
		r.maxNW.Set(float64(top.NeighborhoodWeight))
	} else {
		r.maxNW.Set(0)
	}
}

// AddEdge times g.AddEdge and records it.
func (r *Recorder) AddEdge(g *neighborhood.Graph, u, v int64) bool {
	start := time.Now()
	ok := g.AddEdge(u, v)
	r.Observe(OpAddEdge, ok, time.Since(start))
	return ok
}

// DeleteNode times g.DeleteNode and records it.
func (r *Recorder) DeleteNode(g *neighborhood.Graph, id int64) bool {
	start := time.Now()
	ok := g.DeleteNode(id)
	r.Observe(OpDeleteNode, ok, time.Since(start))
	return ok
}

// Max times g.MaxNeighborhoodWeight and records it.
func (r *Recorder) Max(g *neighborhood.Graph) (neighborhood.Node, bool) {
	start := time.Now()
	n, ok := g.MaxNeighborhoodWeight()
	r.Observe(OpMax, ok, time.Since(start))
	return n, ok
}

// WriteText gathers every family and writes it in text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

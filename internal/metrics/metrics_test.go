// SPDX-License-Identifier: MIT
package metrics_test

import (
	"bytes"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vicinity/internal/metrics"
	"github.com/katalvlaran/vicinity/neighborhood"
)

// family returns the gathered family called name.
func family(t *testing.T, r *metrics.Recorder, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("family %q not gathered", name)
	return nil
}

// counter finds the op/result counter value.
func counter(t *testing.T, r *metrics.Recorder, op, result string) float64 {
	t.Helper()
	for _, m := range family(t, r, "vicinity_operations_total").GetMetric() {
		labels := map[string]string{}
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		if labels["op"] == op && labels["result"] == result {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecorder_Operations(t *testing.T) {
	g, err := neighborhood.New([]neighborhood.Vertex{{ID: 1, Weight: 3}, {ID: 2, Weight: 4}, {ID: 3, Weight: 1}}, neighborhood.WithSeed(1))
	require.NoError(t, err)
	r := metrics.New()

	assert.True(t, r.AddEdge(g, 1, 2))
	assert.False(t, r.AddEdge(g, 1, 2))
	assert.False(t, r.AddEdge(g, 3, 3))
	top, ok := r.Max(g)
	require.True(t, ok)
	assert.Equal(t, int64(7), top.NeighborhoodWeight)
	assert.True(t, r.DeleteNode(g, 1))
	assert.False(t, r.DeleteNode(g, 1))

	assert.Equal(t, 1.0, counter(t, r, metrics.OpAddEdge, metrics.ResultApplied))
	assert.Equal(t, 2.0, counter(t, r, metrics.OpAddEdge, metrics.ResultNoop))
	assert.Equal(t, 1.0, counter(t, r, metrics.OpMax, metrics.ResultApplied))
	assert.Equal(t, 1.0, counter(t, r, metrics.OpDeleteNode, metrics.ResultNoop))

	var samples uint64
	for _, m := range family(t, r, "vicinity_operation_duration_seconds").GetMetric() {
		samples += m.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(6), samples)
}

func TestRecorder_SnapshotAndText(t *testing.T) {
	g, err := neighborhood.New([]neighborhood.Vertex{{ID: 1, Weight: 3}, {ID: 2, Weight: 4}}, neighborhood.WithSeed(1))
	require.NoError(t, err)
	r := metrics.New()
	g.AddEdge(1, 2)
	r.Snapshot(g)
	r.Observe(metrics.OpMax, true, time.Microsecond)

	assert.Equal(t, 2.0, family(t, r, "vicinity_nodes").GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 1.0, family(t, r, "vicinity_edges").GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 7.0, family(t, r, "vicinity_max_neighborhood_weight").GetMetric()[0].GetGauge().GetValue())

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE vicinity_operations_total counter")
	assert.Contains(t, out, `vicinity_operations_total{op="max",result="applied"} 1`)
	assert.Contains(t, out, "vicinity_nodes 2")

	g.DeleteNode(1)
	g.DeleteNode(2)
	r.Snapshot(g)
	assert.Equal(t, 0.0, family(t, r, "vicinity_max_neighborhood_weight").GetMetric()[0].GetGauge().GetValue())
}

// SPDX-License-Identifier: MIT
package neighborhood_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vicinity/neighborhood"
)

func benchVertices(n int) []neighborhood.Vertex {
	vs := make([]neighborhood.Vertex, n)
	for i := range vs {
		vs[i] = neighborhood.Vertex{ID: int64(i), Weight: int64(i%97 + 1)}
	}
	return vs
}

// BenchmarkNew measures construction of registry, heap and lists.
func BenchmarkNew(b *testing.B) {
	vs := benchVertices(1 << 14)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = neighborhood.New(vs, neighborhood.WithSeed(1))
	}
}

// BenchmarkAddEdge measures random edge insertion (parallel edges allowed, unchecked).
func BenchmarkAddEdge(b *testing.B) {
	const n = 1 << 14
	g, _ := neighborhood.New(benchVertices(n), neighborhood.WithSeed(1))
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(int64(r.Intn(n)), int64(r.Intn(n)))
	}
}

// BenchmarkDeleteNode measures deleting every vertex of a random sparse graph.
func BenchmarkDeleteNode(b *testing.B) {
	const n = 1 << 12
	vs := benchVertices(n)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, _ := neighborhood.New(vs, neighborhood.WithSeed(1))
		r := rand.New(rand.NewSource(int64(i)))
		for k := 0; k < 4*n; k++ {
			g.AddEdge(int64(r.Intn(n)), int64(r.Intn(n)))
		}
		b.StartTimer()
		for id := 0; id < n; id++ {
			g.DeleteNode(int64(id))
		}
	}
}

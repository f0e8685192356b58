// SPDX-License-Identifier: MIT
// Package: vicinity/neighborhood
//
// locked.go - whole-operation locking for shared use.

package neighborhood

import "sync"

// Locked guards a Graph with one sync.RWMutex held for the full duration of
// each call. Mutations take the write lock, queries the read lock.
type Locked struct {
	mu sync.RWMutex
	g  *Graph
}

// NewLocked wraps g. The caller must stop using g directly afterwards.
func NewLocked(g *Graph) *Locked { return &Locked{g: g} }

// AddEdge is Graph.AddEdge under the write lock.
func (l *Locked) AddEdge(id1, id2 int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.g.AddEdge(id1, id2)
}

// DeleteNode is Graph.DeleteNode under the write lock.
func (l *Locked) DeleteNode(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.g.DeleteNode(id)
}

// MaxNeighborhoodWeight is Graph.MaxNeighborhoodWeight under the read lock.
func (l *Locked) MaxNeighborhoodWeight() (Node, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.MaxNeighborhoodWeight()
}

// NeighborhoodWeight is Graph.NeighborhoodWeight under the read lock.
func (l *Locked) NeighborhoodWeight(id int64) (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.NeighborhoodWeight(id)
}

// NodeCount is Graph.NodeCount under the read lock.
func (l *Locked) NodeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.NodeCount()
}

// EdgeCount is Graph.EdgeCount under the read lock.
func (l *Locked) EdgeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.EdgeCount()
}

// IsEmpty is Graph.IsEmpty under the read lock.
func (l *Locked) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.IsEmpty()
}

// Update runs fn with exclusive access, for batches that must be observed as one step.
func (l *Locked) Update(fn func(g *Graph)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fn(l.g)
}

// View runs fn with shared read access. fn must not mutate g.
func (l *Locked) View(fn func(g *Graph)) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	fn(l.g)
}

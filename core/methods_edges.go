// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - AddEdge under the write lock.
//   - Read queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge records one observation of "from" immediately followed by "to".
//
// Steps:
//  1. Normalize both words; reject empties with ErrEmptyVertexID.
//  2. Drop self-loops when the graph was built with WithLoops(false).
//  3. Lock, bump adjacency[from][to] (starting at 1).
//  4. Append from to incidence[to].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	// 1) Normalize and validate
	from, to = Normalize(from), Normalize(to)
	if from == "" || to == "" {
		return fmt.Errorf("%w: AddEdge(%q, %q)", ErrEmptyVertexID, from, to)
	}
	// 2) Loop policy
	if from == to && !g.allowLoops {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Successor weight
	succ, ok := g.adjacency[from]
	if !ok {
		succ = make(map[string]int64)
		g.adjacency[from] = succ
	}
	if succ[to] == 0 {
		g.edgeCount++ // first observation of this pair
	}
	succ[to]++

	// 4) Predecessor occurrence
	g.incidence[to] = append(g.incidence[to], from)

	return nil
}

// HasEdge reports whether "from" was ever followed by "to".
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	from, to = Normalize(from), Normalize(to)

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the observation count of from→to.
// Returns ErrEdgeNotFound when the pair was never observed.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	from, to = Normalize(from), Normalize(to)

	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Edges returns a snapshot of every distinct directed pair, sorted by From then To.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	var from, to string
	var succ map[string]int64
	var w int64
	for from, succ = range g.adjacency {
		for to, w = range succ {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct directed pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of all edge weights, i.e. the number of
// consecutive token pairs the graph was built from.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for _, succ := range g.adjacency {
		for _, w := range succ {
			total += w
		}
	}

	return total
}

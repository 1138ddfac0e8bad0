// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/NeighborIDs/Predecessors/OutDegree/InDegree.
// Determinism:
//   - NeighborIDs() is sorted asc; Predecessors() keeps observation order.
// Concurrency:
//   - Read lock only. Every returned map/slice is a copy the caller owns.

package core

import "sort"

// Neighbors returns a copy of the successor→weight map of id, or an empty map
// when id has no outgoing edges (including when it is absent).
// Complexity: O(d).
func (g *Graph) Neighbors(id string) map[string]int64 {
	id = Normalize(id)

	g.mu.RLock()
	defer g.mu.RUnlock()

	succ := g.adjacency[id]
	out := make(map[string]int64, len(succ))
	for to, w := range succ {
		out[to] = w
	}

	return out
}

// NeighborIDs returns the distinct successors of id, sorted.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) []string {
	id = Normalize(id)

	g.mu.RLock()
	succ := g.adjacency[id]
	out := make([]string, 0, len(succ))
	for to := range succ {
		out = append(out, to)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Predecessors returns a copy of the predecessor sequence of id, one entry per
// observed occurrence, in observation order. Empty when id has no incoming edges.
// Complexity: O(in).
func (g *Graph) Predecessors(id string) []string {
	id = Normalize(id)

	g.mu.RLock()
	defer g.mu.RUnlock()

	in := g.incidence[id]
	out := make([]string, len(in))
	copy(out, in)

	return out
}

// OutDegree returns the number of distinct successors of id.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	id = Normalize(id)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// InDegree returns the number of observed incoming occurrences of id
// (duplicates counted), i.e. len(Predecessors(id)).
// Complexity: O(1).
func (g *Graph) InDegree(id string) int {
	id = Normalize(id)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incidence[id])
}

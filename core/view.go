// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; results are fresh values the caller owns.

package core

// AdjacencyList returns a deep copy of the adjacency index:
// from → (to → weight). Pure sinks are absent.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string]map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]int64, len(g.adjacency))
	var from, to string
	var succ, cp map[string]int64
	for from, succ = range g.adjacency {
		cp = make(map[string]int64, len(succ))
		for to = range succ {
			cp[to] = succ[to]
		}
		out[from] = cp
	}

	return out
}

// InducedSubgraph returns a new Graph holding only the edges whose endpoints
// are both in keep, with the same weights. Predecessor multiplicities are
// preserved. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(WithLoops(g.Looped()))

	g.mu.RLock()
	defer g.mu.RUnlock()

	var from, to string
	var succ map[string]int64
	var w int64
	for from, succ = range g.adjacency {
		if !keep[from] {
			continue
		}
		for to, w = range succ {
			if !keep[to] {
				continue
			}
			if out.adjacency[from] == nil {
				out.adjacency[from] = make(map[string]int64)
			}
			out.adjacency[from][to] = w
			out.edgeCount++
		}
	}
	// Rebuild incidence in the source's observation order.
	var pred []string
	var p string
	for to, pred = range g.incidence {
		if !keep[to] {
			continue
		}
		for _, p = range pred {
			if keep[p] {
				out.incidence[to] = append(out.incidence[to], p)
			}
		}
	}

	return out
}

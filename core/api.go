// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	AllowsLoops bool // loop policy

	VertexCount int // words in either index
	SourceCount int // words with ≥1 successor (adjacency keys)
	SinkCount   int // words with no successor (incidence-only keys)
	EdgeCount   int // distinct directed pairs

	TotalWeight int64 // Σ weights = consecutive token pairs observed
	MaxWeight   int64 // heaviest single pair
}

// Looped reports whether self-loops are kept by AddEdge.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a snapshot of policy flags and catalog sizes in a single pass.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		SourceCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for _, succ := range g.adjacency {
		for _, w := range succ {
			stats.TotalWeight += w
			if w > stats.MaxWeight {
				stats.MaxWeight = w
			}
		}
	}
	for id := range g.incidence {
		if _, ok := g.adjacency[id]; !ok {
			stats.SinkCount++
		}
	}
	stats.VertexCount = stats.SourceCount + stats.SinkCount

	return &stats
}

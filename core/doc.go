// Package core provides the word-adjacency Graph that every query package in
// wordgraph reads from.
//
// The Graph G = (V,E) is directed and weighted:
//
//   - V is the set of distinct lowercased words observed in a corpus.
//   - (u,v) ∈ E iff word v immediately followed word u at least once.
//   - weight(u,v) is the number of such observations (always ≥ 1).
//
// Two reciprocal indices are maintained by AddEdge:
//
//	adjacency[from][to] = weight        // successors, distinct keys
//	incidence[to]       = []from        // predecessors, one entry per observation
//
// A word may live in only one of them: a pure sink ("end" in "the end") has no
// adjacency entry, a pure source (the first token) has no incidence entry.
// HasVertex checks both.
//
// Identity is case-insensitive: every public method normalizes its word
// arguments with Normalize before touching the maps, so "The" and "the" are the
// same vertex.
//
// Core Methods:
//
//	// Construction
//	AddEdge(from, to string) error           // O(1) amortized
//
//	// Query
//	HasVertex(id string) bool                // O(1)
//	HasEdge(from, to string) bool            // O(1)
//	Weight(from, to string) (int64, error)   // O(1)
//	Neighbors(id string) map[string]int64    // O(d), copy
//	NeighborIDs(id string) []string          // O(d·log d), sorted
//	Predecessors(id string) []string         // O(in), copy, observation order
//	Sources() []string                       // O(V·log V), adjacency keys
//	Vertices() []string                      // O(V·log V), union of both indices
//	Edges() []Edge                           // O(E·log E)
//
//	// Counts & degrees
//	OutDegree(id) int / InDegree(id) int / VertexCount() / EdgeCount() / Stats()
//
// Concurrency: a single sync.RWMutex guards both indices. Construction takes
// the write lock per AddEdge; every query takes the read lock, so a fully built
// Graph can be shared by readers.
package core

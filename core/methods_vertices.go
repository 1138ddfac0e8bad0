// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex identity & queries: Normalize/HasVertex/Sources/Vertices/VertexCount.
// Determinism:
//   - Sources() and Vertices() return IDs sorted asc.
// Concurrency:
//   - Read lock only.

package core

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize maps a word to its vertex ID (lowercase).
// A cases.Caser is stateful, so one is built per call.
func Normalize(word string) string {
	return cases.Lower(language.Und).String(word)
}

// HasVertex reports whether the word is a key of either index.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	id = Normalize(id)
	if id == "" {
		return false // empty ID considered absent
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.adjacency[id]; ok {
		return true
	}
	_, ok := g.incidence[id]

	return ok
}

// HasSuccessors reports whether the word is a key of the adjacency index,
// i.e. it has at least one outgoing edge.
// Complexity: O(1).
func (g *Graph) HasSuccessors(id string) bool {
	id = Normalize(id)

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Sources returns the adjacency key set (words with at least one successor), sorted.
// This is the node set of PageRank, random walks and all-targets shortest paths.
// Complexity: O(V·log V).
func (g *Graph) Sources() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// Vertices returns every word that appears in either index, sorted.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	seen := make(map[string]struct{}, len(g.adjacency)+len(g.incidence))
	for id := range g.adjacency {
		seen[id] = struct{}{}
	}
	for id := range g.incidence {
		seen[id] = struct{}{}
	}
	g.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of distinct words in either index.
// Complexity: O(V).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	for id := range g.incidence {
		if _, ok := g.adjacency[id]; !ok {
			n++ // pure sink
		}
	}

	return n
}

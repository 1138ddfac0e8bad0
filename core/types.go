// SPDX-License-Identifier: MIT
//
// This file declares Edge, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string (after normalization).
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a word normalized to the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent word.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a pair that was never observed.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a read-only snapshot of one directed word pair.
//
// Weight counts how many times From was immediately followed by To in the
// token stream the Graph was built from. It is always ≥ 1.
type Edge struct {
	// From is the source word.
	From string

	// To is the successor word.
	To string

	// Weight is the observed occurrence count.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for roughly n distinct words.
// Panics on negative n.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) {
		g.adjacency = make(map[string]map[string]int64, n)
		g.incidence = make(map[string][]string, n)
	}
}

// WithLoops permits self-loops ("the the"). Enabled by default;
// WithLoops(false) drops them silently at AddEdge time.
func WithLoops(allow bool) GraphOption {
	return func(g *Graph) { g.allowLoops = allow }
}

// Graph is the word-adjacency graph.
//
// adjacency[from][to] = weight, one entry per distinct successor.
// incidence[to] = ordered predecessor words, one entry per observation
// (duplicates preserved).
//
// A word is a key of adjacency iff it has at least one outgoing edge and a key
// of incidence iff it has at least one incoming edge. mu guards both maps;
// writers take the write lock only during construction.
type Graph struct {
	mu sync.RWMutex // guards adjacency, incidence and edgeCount

	allowLoops bool // keep self-loops

	edgeCount int // distinct (from,to) pairs

	adjacency map[string]map[string]int64
	incidence map[string][]string
}

// NewGraph creates an empty Graph. Self-loops are kept by default.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		adjacency:  make(map[string]map[string]int64),
		incidence:  make(map[string][]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

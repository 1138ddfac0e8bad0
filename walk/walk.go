// SPDX-License-Identifier: MIT

// Package walk performs a random traversal of a word graph.
//
// The start is drawn uniformly from the words that have successors
// (core.Graph.Sources, sorted). At each step a successor is drawn uniformly
// from the distinct successors of the current word (sorted), regardless of
// weight. The walk stops when:
//
//   - the current word has no successors (DeadEnd), or
//   - the drawn edge current→next was already traversed (RepeatedEdge); next is
//     not appended, or
//   - WithMaxSteps is set and that many edges have been traversed (MaxSteps).
//
// A directed edge therefore appears at most once in a path, although words may
// repeat. Every walk terminates after at most EdgeCount steps.
package walk

import (
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/rng"
)

// edge is a traversed (from, to) pair.
type edge struct{ from, to string }

// Trace walks g and reports why it stopped. A nil or empty graph yields an
// empty path with Reason Empty.
func Trace(g *core.Graph, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{Reason: Empty}
	}

	// 1) Random start among words with successors.
	current, ok := rng.Pick(cfg.Source, g.Sources())
	if !ok {
		return Result{Reason: Empty}
	}

	path := []string{current}
	seen := make(map[edge]struct{})
	for {
		// 2) Cap reached.
		if cfg.MaxSteps > 0 && len(path)-1 >= cfg.MaxSteps {
			return Result{Path: path, Reason: MaxSteps}
		}

		// 3) Uniform successor, weight ignored.
		next, ok := rng.Pick(cfg.Source, g.NeighborIDs(current))
		if !ok {
			return Result{Path: path, Reason: DeadEnd}
		}

		// 4) Stop before re-traversing an edge.
		e := edge{current, next}
		if _, dup := seen[e]; dup {
			return Result{Path: path, Reason: RepeatedEdge}
		}
		seen[e] = struct{}{}

		path = append(path, next)
		current = next
	}
}

// Walk returns only the visited words of Trace.
func Walk(g *core.Graph, opts ...Option) []string {
	return Trace(g, opts...).Path
}

// String joins a path with single spaces; an empty path gives "".
func String(path []string) string {
	return strings.Join(path, " ")
}

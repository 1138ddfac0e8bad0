// SPDX-License-Identifier: MIT

// Package pagerank scores the words of a word graph with a fixed-iteration
// power method.
//
// Node set: the words that have at least one successor (core.Graph.Sources),
// N = |node set|. Words that only ever appear as a successor (pure sinks) are
// not ranked and score 0.0, as does any unknown word.
//
// Initialization is Laplace-smoothed in-degree:
//
//	init(n) = (indeg(n)+1) / Σ_m (indeg(m)+1)
//
// where indeg counts observations (len(Predecessors(n))).
//
// Each iteration is synchronous, computed from the previous snapshot:
//
//	PR'(n) = (1-d)/N + d · Σ_{p ∈ Predecessors(n)} PR(p) / OutDegree(p)
//
// Predecessors keeps one entry per observation, so a pair seen twice
// contributes twice. OutDegree counts distinct successors.
//
// Scores are recomputed on every call; nothing is cached.
package pagerank

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/wordgraph/core"
)

// Rank computes scores for every word with at least one successor.
// An empty or nil graph yields an empty Ranking.
//
// Complexity: O(k · (V + Σ in-degree)) for k iterations.
func Rank(g *core.Graph, opts ...Option) Ranking {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Ranking{}
	}

	// 1) Node set and index
	nodes := g.Sources()
	N := len(nodes)
	if N == 0 {
		return Ranking{}
	}
	index := make(map[string]int, N)
	for i, n := range nodes {
		index[n] = i
	}

	// 2) Snapshot predecessors (as indices) and out-degrees once.
	preds := make([][]int, N)
	outDeg := make([]float64, N)
	smoothed := make([]float64, N)
	for i, n := range nodes {
		outDeg[i] = float64(g.OutDegree(n))
		in := g.Predecessors(n)
		smoothed[i] = float64(len(in)) + 1
		preds[i] = make([]int, 0, len(in))
		for _, p := range in {
			// Every predecessor has an outgoing edge, so it is in the node set.
			if j, ok := index[p]; ok {
				preds[i] = append(preds[i], j)
			}
		}
	}

	// 3) Smoothed initialization
	pr := make([]float64, N)
	copy(pr, smoothed)
	floats.Scale(1/floats.Sum(smoothed), pr)

	// 4) Synchronous power iterations
	d := cfg.DampingFactor
	base := (1 - d) / float64(N)
	next := make([]float64, N)
	var sum float64
	for it := 0; it < cfg.Iterations; it++ {
		for i := range nodes {
			sum = 0
			for _, j := range preds[i] {
				sum += pr[j] / outDeg[j]
			}
			next[i] = base + d*sum
		}
		pr, next = next, pr
	}

	out := make(Ranking, N)
	for i, n := range nodes {
		out[n] = pr[i]
	}

	return out
}

// Score returns the PageRank of word (case-insensitive), or 0.0 when the word
// has no successors or is absent.
func Score(g *core.Graph, word string, opts ...Option) float64 {
	return Rank(g, opts...).Score(core.Normalize(word))
}

// Sum returns the total mass of a Ranking.
func (r Ranking) Sum() float64 {
	vals := make([]float64, 0, len(r))
	for _, s := range r {
		vals = append(vals, s)
	}

	return floats.Sum(vals)
}

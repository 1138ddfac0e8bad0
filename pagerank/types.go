// SPDX-License-Identifier: MIT

package pagerank

import "sort"

// PageRank configuration constants.
const (
	// DefaultDampingFactor is the probability of following a link (vs random jump).
	DefaultDampingFactor = 0.85

	// DefaultIterations is the fixed number of synchronous power iterations.
	DefaultIterations = 100
)

// Options configures Rank.
type Options struct {
	// DampingFactor must be in [0, 1].
	DampingFactor float64

	// Iterations must be > 0. There is no convergence early-exit.
	Iterations int
}

// Option represents a functional option for configuring Rank.
type Option func(*Options)

// WithDamping overrides the damping factor. Panics outside [0, 1].
func WithDamping(d float64) Option {
	if d < 0 || d > 1 {
		panic("pagerank: WithDamping(d outside [0,1])")
	}
	return func(o *Options) { o.DampingFactor = d }
}

// WithIterations overrides the iteration count. Panics on k <= 0.
func WithIterations(k int) Option {
	if k <= 0 {
		panic("pagerank: WithIterations(k<=0)")
	}
	return func(o *Options) { o.Iterations = k }
}

// DefaultOptions returns d=0.85 and 100 iterations.
func DefaultOptions() Options {
	return Options{
		DampingFactor: DefaultDampingFactor,
		Iterations:    DefaultIterations,
	}
}

// Entry is one ranked word.
type Entry struct {
	Word  string
	Score float64
}

// Ranking maps every word with at least one successor to its score.
type Ranking map[string]float64

// Score returns the score of word, or 0.0 if it is not ranked.
func (r Ranking) Score(word string) float64 {
	return r[word]
}

// Top returns the k highest-scoring entries, score descending then word
// ascending. k <= 0 or k > len(r) returns all entries.
func (r Ranking) Top(k int) []Entry {
	out := make([]Entry, 0, len(r))
	for w, s := range r {
		out = append(out, Entry{Word: w, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}

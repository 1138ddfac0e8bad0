// SPDX-License-Identifier: MIT
//
// This file defines sentinel errors, result types and functional options for
// shortest paths over a word graph.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source word is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source word is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target word is not in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNoPath indicates that both words exist but the target is unreachable.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance of a word the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Path is one shortest path: Nodes from source to target inclusive and the
// sum of the traversed edge weights.
type Path struct {
	Nodes    []string
	Distance int64
}

// Result is one line of an all-targets query.
type Result struct {
	Target    string // destination word
	Reachable bool   // false means "No path!"
	Path      Path   // zero value when unreachable
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting word (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0.
type Options struct {
	Source           string // normalized source word
	ReturnPath       bool   // return the predecessor map
	MaxDistance      int64  // maximum distance to explore
	InfEdgeThreshold int64  // weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting word.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold; words farther than max
// are reported unreachable. Panics on negative values.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold skips every edge whose weight (occurrence count) is ≥
// threshold, e.g. to route around very frequent word pairs.
// Panics on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

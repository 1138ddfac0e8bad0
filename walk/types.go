// SPDX-License-Identifier: MIT

package walk

import "github.com/katalvlaran/wordgraph/rng"

// Reason tells why a walk stopped.
type Reason int

const (
	// Empty means the graph had no word with successors to start from.
	Empty Reason = iota
	// DeadEnd means the current word has no successors.
	DeadEnd
	// RepeatedEdge means the drawn edge had already been traversed.
	RepeatedEdge
	// MaxSteps means the configured step cap was reached.
	MaxSteps
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case Empty:
		return "empty"
	case DeadEnd:
		return "dead end"
	case RepeatedEdge:
		return "repeated edge"
	case MaxSteps:
		return "max steps"
	default:
		return "unknown"
	}
}

// Result is a finished walk.
type Result struct {
	Path   []string // visited words, start first
	Reason Reason   // why the walk stopped
}

// Steps returns the number of edges traversed.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options configures Walk and Trace.
type Options struct {
	Source   rng.Source // start and successor picker
	MaxSteps int        // 0 = unlimited
}

// Option represents a functional option for configuring a walk.
type Option func(*Options)

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = rng.Seeded(seed) }
}

// WithSource plugs a custom random source. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("walk: WithSource(nil)")
	}
	return func(o *Options) { o.Source = src }
}

// WithMaxSteps caps the number of traversed edges. Panics on n < 0.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("walk: WithMaxSteps(n<0)")
	}
	return func(o *Options) { o.MaxSteps = n }
}

// DefaultOptions draws from rng.Entropy with no step cap.
func DefaultOptions() Options {
	return Options{Source: rng.Entropy()}
}

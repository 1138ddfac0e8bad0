// SPDX-License-Identifier: MIT

// Package augment rewrites text by inserting one bridge word between every
// adjacent word pair that has at least one.
//
// The input is normalized exactly like a corpus (corpus.Tokenize). For each
// pair (wᵢ, wᵢ₊₁) the output carries wᵢ, then one bridge chosen uniformly at
// random from bridge.Find(wᵢ, wᵢ₊₁) if that set is non-empty; the last token
// closes the sequence. Tokens are joined with single spaces.
//
// Fewer than two tokens cannot be augmented and yield ErrInvalidInput.
//
// Randomness flows through an rng.Source: WithSeed for reproducible output,
// WithSource to plug a custom generator, rng.Entropy by default.
package augment

import (
	"errors"

	"github.com/katalvlaran/wordgraph/rng"
)

// InvalidInputMessage is the user-facing sentence for ErrInvalidInput.
const InvalidInputMessage = "Invalid input!"

// ErrInvalidInput indicates the text normalized to fewer than two words.
var ErrInvalidInput = errors.New("augment: invalid input")

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("augment: graph is nil")

// Options configures Generate.
type Options struct {
	Source rng.Source // bridge picker
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = rng.Seeded(seed) }
}

// WithSource plugs an explicit random source. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("augment: WithSource(nil)")
	}
	return func(o *Options) { o.Source = src }
}

// DefaultOptions returns Options backed by an entropy source.
func DefaultOptions() Options {
	return Options{Source: rng.Entropy()}
}

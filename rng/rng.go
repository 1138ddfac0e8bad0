// SPDX-License-Identifier: MIT

// Package rng is the pluggable random source shared by the randomized query
// packages (augment, walk).
//
// Production callers use Entropy (lukechampine.com/frand); tests and
// reproducible runs use Seeded, which wraps math/rand with a fixed seed.
package rng

import (
	"math/rand"

	"lukechampine.com/frand"
)

// Source draws uniform integers in [0,n). Intn panics if n <= 0, like the
// math/rand and frand implementations it wraps.
type Source interface {
	Intn(n int) int
}

// Seeded returns a deterministic Source for the given seed.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Entropy returns a Source backed by a fresh frand generator.
func Entropy() Source {
	return frand.New()
}

// FromSeed returns Seeded(seed) for a non-zero seed and Entropy otherwise.
// Config files use seed 0 to mean "no fixed seed".
func FromSeed(seed int64) Source {
	if seed == 0 {
		return Entropy()
	}
	return Seeded(seed)
}

// Pick returns a uniformly chosen element of items, or ok=false when items is empty.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.Intn(len(items))], true
}

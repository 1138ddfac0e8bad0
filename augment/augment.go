// SPDX-License-Identifier: MIT

package augment

import (
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/corpus"
	"github.com/katalvlaran/wordgraph/rng"
)

// Generate returns text with bridge words inserted between adjacent pairs.
//
// Complexity: O(n·(d + in)) bridge lookups for n tokens.
func Generate(g *core.Graph, text string, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return "", ErrNilGraph
	}

	// 1) Same normalization as the corpus
	words := corpus.Tokenize(text)
	if len(words) < 2 {
		return "", ErrInvalidInput
	}

	// 2) Emit wᵢ and at most one bridge per pair
	out := make([]string, 0, 2*len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i])
		if b, ok := rng.Pick(cfg.Source, bridge.Find(g, words[i], words[i+1])); ok {
			out = append(out, b)
		}
	}
	// 3) Close with the last token
	out = append(out, words[len(words)-1])

	return strings.Join(out, " "), nil
}

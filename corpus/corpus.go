// SPDX-License-Identifier: MIT

package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordgraph/core"
)

// ErrRead indicates the corpus source could not be read.
var ErrRead = errors.New("corpus: read failed")

// Tokenize normalizes text into lowercase alphabetic tokens.
// Complexity: O(len(text)).
func Tokenize(text string) []string {
	// 1) Non-letters to spaces
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return ' '
	}, text)

	// 2) Lowercase, 3) split and drop empties (Fields never yields empties)
	return strings.Fields(core.Normalize(cleaned))
}

// Build creates a Graph from an already tokenized sequence by adding one edge
// per consecutive pair. Empty tokens are skipped at the pair level, so a
// pair with an empty side contributes nothing.
//
// Complexity: O(len(tokens)).
func Build(tokens []string, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == "" || tokens[i+1] == "" {
			continue
		}
		if err := g.AddEdge(tokens[i], tokens[i+1]); err != nil {
			return nil, fmt.Errorf("corpus: pair %d: %w", i, err)
		}
	}

	return g, nil
}

// FromText tokenizes text and builds its Graph.
func FromText(text string, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(Tokenize(text), opts...)
}

// FromReader reads r to EOF and builds its Graph.
func FromReader(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return FromText(string(data), opts...)
}

// LoadFile reads the corpus at path and builds its Graph.
func LoadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	g, err := FromReader(f, opts...)
	if err != nil {
		return nil, err
	}
	stats := g.Stats()
	log.Debug().
		Str("path", path).
		Int("vertices", stats.VertexCount).
		Int("edges", stats.EdgeCount).
		Int64("pairs", stats.TotalWeight).
		Msg("corpus loaded")

	return g, nil
}

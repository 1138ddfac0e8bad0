// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/core"
)

// EdgeRecord is one observed pair in the YAML edge list.
type EdgeRecord struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// EdgeList is the YAML document written by WriteYAML.
type EdgeList struct {
	Vertices int          `yaml:"vertices"`
	Edges    []EdgeRecord `yaml:"edges"`
}

// WriteYAML encodes g as a sorted edge list.
func WriteYAML(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	edges := g.Edges()
	doc := EdgeList{Vertices: g.VertexCount(), Edges: make([]EdgeRecord, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// ReadYAML rebuilds a graph from an edge list produced by WriteYAML. Each
// record is replayed Weight times, so weights and predecessor multiplicities
// match the encoded graph (predecessor order does not).
func ReadYAML(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var doc EdgeList
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g := core.NewGraph(opts...)
	for _, rec := range doc.Edges {
		if rec.Weight <= 0 {
			return nil, fmt.Errorf("%w: %s→%s has weight %d", ErrDecode, rec.From, rec.To, rec.Weight)
		}
		for i := int64(0); i < rec.Weight; i++ {
			if err := g.AddEdge(rec.From, rec.To); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDecode, err)
			}
		}
	}

	return g, nil
}

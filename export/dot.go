// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/wordgraph/core"
)

// GraphName is the identifier of the emitted digraph.
const GraphName = "G"

// DOT renders g as a Graphviz digraph named G. Every word becomes a quoted
// node and every observed pair a directed edge labelled with its weight.
func DOT(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	out := gographviz.NewGraph()
	if err := out.SetName(GraphName); err != nil {
		return "", err
	}
	if err := out.SetDir(true); err != nil {
		return "", err
	}

	for _, v := range g.Vertices() {
		if err := out.AddNode(GraphName, quote(v), nil); err != nil {
			return "", fmt.Errorf("export: node %q: %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		attrs := map[string]string{
			string(gographviz.Label): quote(strconv.FormatInt(e.Weight, 10)),
		}
		if err := out.AddEdge(quote(e.From), quote(e.To), true, attrs); err != nil {
			return "", fmt.Errorf("export: edge %q→%q: %w", e.From, e.To, err)
		}
	}

	return out.String(), nil
}

// WriteDOT writes DOT(g) to w.
func WriteDOT(w io.Writer, g *core.Graph) error {
	src, err := DOT(g)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, src); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// quote wraps an identifier in double quotes so DOT keywords ("node", "edge",
// "graph") stay plain words.
func quote(id string) string {
	return strconv.Quote(id)
}

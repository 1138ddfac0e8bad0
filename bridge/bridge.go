// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/wordgraph/core"
)

// Find returns the bridge words from word1 to word2, sorted ascending.
// Absent words simply yield no bridges.
//
// Complexity: O(d1 + in2 + k·log k), d1 = out-degree of word1,
// in2 = in-degree of word2, k = result size.
func Find(g *core.Graph, word1, word2 string) []string {
	if g == nil {
		return nil
	}
	// 1) S = successors of word1
	succ := lo.Keys(g.Neighbors(word1))

	// 2) P = predecessors of word2 as a set
	pred := lo.SliceToMap(g.Predecessors(word2), func(p string) (string, struct{}) {
		return p, struct{}{}
	})

	// 3) S ∩ P
	bridges := lo.Filter(succ, func(w string, _ int) bool {
		_, ok := pred[w]
		return ok
	})
	sort.Strings(bridges)

	return bridges
}

// Query runs Find and renders the result sentence.
func Query(g *core.Graph, word1, word2 string) string {
	word1, word2 = core.Normalize(word1), core.Normalize(word2)

	if g == nil || !g.HasVertex(word1) || !g.HasVertex(word2) {
		return fmt.Sprintf("No %s or %s in the graph!", word1, word2)
	}

	return Format(word1, word2, Find(g, word1, word2))
}

// Format renders an already computed bridge list for word1→word2.
// The caller guarantees both words are in the graph.
func Format(word1, word2 string, bridges []string) string {
	switch len(bridges) {
	case 0:
		return fmt.Sprintf("No bridge words from \"%s\" to \"%s\"!", word1, word2)
	case 1:
		return fmt.Sprintf("The bridge words from \"%s\" to \"%s\" is: \"%s\".", word1, word2, bridges[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The bridge words from \"%s\" to \"%s\" are: ", word1, word2)
	last := len(bridges) - 1
	for i, b := range bridges {
		sb.WriteString(`"` + b + `"`)
		switch {
		case i == last:
			sb.WriteString(".")
		case i == last-1:
			sb.WriteString(", and ")
		default:
			sb.WriteString(", ")
		}
	}

	return sb.String()
}

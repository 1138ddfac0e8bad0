// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// pathArrow joins path words in human-readable reports.
const pathArrow = " → "

// FormatPath renders a single-target result:
//
//	Shortest path from 'a' to 'c': a → b → c (Length: 3)
func FormatPath(source, target string, p Path) string {
	return fmt.Sprintf("Shortest path from '%s' to '%s': %s (Length: %d)",
		source, target, strings.Join(p.Nodes, pathArrow), p.Distance)
}

// Report answers a shortest-path query as text. With an empty target it lists
// every other word that has successors:
//
//	Shortest paths from 'a':
//	  To 'b': a → b (Length: 2)
//	  To 'x': No path!
//
// Missing words and unreachable targets are reported as sentences, never as errors.
// Words are echoed as typed by the caller.
func Report(g *core.Graph, source, target string) string {
	if strings.TrimSpace(target) == "" {
		return reportAll(g, source)
	}

	p, err := ShortestPath(g, source, target)
	switch {
	case err == nil:
		return FormatPath(source, target, p)
	case errors.Is(err, ErrTargetNotFound):
		return fmt.Sprintf("Error: Target word '%s' not found!", target)
	case errors.Is(err, ErrNoPath):
		return fmt.Sprintf("No path from '%s' to '%s'!", source, target)
	default:
		return fmt.Sprintf("Error: Source word '%s' not found!", source)
	}
}

func reportAll(g *core.Graph, source string) string {
	results, err := AllFrom(g, source)
	if err != nil {
		return fmt.Sprintf("Error: Source word '%s' not found!", source)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Shortest paths from '%s':", source)
	for _, r := range results {
		if !r.Reachable {
			fmt.Fprintf(&sb, "\n  To '%s': No path!", r.Target)
			continue
		}
		fmt.Fprintf(&sb, "\n  To '%s': %s (Length: %d)",
			r.Target, strings.Join(r.Path.Nodes, pathArrow), r.Path.Distance)
	}

	return sb.String()
}

// Package dijkstra_test provides examples demonstrating shortest paths over a word graph.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/corpus"
	"github.com/katalvlaran/wordgraph/dijkstra"
)

// ExampleShortestPath shows that a frequent pair costs more than a detour
// through two rare ones: a→b is seen 2×, b→c 1×, a→c 5×.
func ExampleShortestPath() {
	// 1) Build the corpus so the pair counts match the scenario.
	g, _ := corpus.FromText("a b a b a c a c a c a c a c b c")

	// 2) a→b (2) + b→c (1) beats a→c (5).
	p, err := dijkstra.ShortestPath(g, "a", "c")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Nodes, p.Distance)
	// Output: [a b c] 3
}

// ExampleReport renders the all-targets report used by the shell.
func ExampleReport() {
	g, _ := corpus.FromText("to be or not to be")
	fmt.Println(dijkstra.Report(g, "to", ""))
	// Output:
	// Shortest paths from 'to':
	//   To 'be': to → be (Length: 2)
	//   To 'not': to → be → or → not (Length: 4)
	//   To 'or': to → be → or (Length: 3)
}

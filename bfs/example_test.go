package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/corpus"
)

// ExampleBFS lists words by how many hops they are from "to".
func ExampleBFS() {
	g, _ := corpus.FromText("To be or not to be")

	res, err := bfs.BFS(g, "to")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range res.Order {
		fmt.Println(w, res.Depth[w])
	}
	// Output:
	// to 0
	// be 1
	// or 2
	// not 3
}

package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/corpus"
)

// ExampleQuery shows the singular sentence for a single bridge word.
func ExampleQuery() {
	g, _ := corpus.FromText("The scientist analyzed data, the scientist studied it.")
	fmt.Println(bridge.Query(g, "scientist", "data"))
	fmt.Println(bridge.Query(g, "zzz", "data"))
	// Output:
	// The bridge words from "scientist" to "data" is: "analyzed".
	// No zzz or data in the graph!
}

// Package wordgraph turns a plain-text corpus into a weighted directed graph of
// word adjacencies and answers structural queries over it.
//
// Every pair of consecutive words (wᵢ, wᵢ₊₁) in the corpus adds one observation
// of the edge wᵢ→wᵢ₊₁; the edge weight is the number of observations. Words are
// compared case-insensitively.
//
// Packages:
//
//	core/      the Graph: adjacency (successor → count) and incidence
//	           (predecessor observations) indices under one RWMutex
//	corpus/    tokenizer and graph construction from text, readers and files
//	bridge/    bridge words w1→b→w2 and their report sentence
//	augment/   inserts one random bridge word between adjacent input words
//	dijkstra/  weighted shortest paths and their reports
//	bfs/       hop distances and word neighborhoods
//	pagerank/  fixed-iteration PageRank with smoothed initialization
//	walk/      random walk until a dead end or a repeated edge
//	rng/       pluggable random source (seeded or frand entropy)
//	export/    adjacency listing, Graphviz DOT, YAML edge list, PNG rendering
//	config/    viper/godotenv settings
//	shell/     readline front end
//	cmd/       cobra CLI (wordgraph)
//
// Quick example:
//
//	g, _ := corpus.FromText("To be or not to be")
//	bridge.Query(g, "to", "or")        // The bridge words from "to" to "or" is: "be".
//	dijkstra.Report(g, "to", "not")    // Shortest path from 'to' to 'not': to → be → or → not (Length: 4)
//	pagerank.Score(g, "be")
//	walk.String(walk.Walk(g, walk.WithSeed(1)))
//
// Queries never mutate the graph; a fully built Graph may be shared.
package wordgraph

// Package dijkstra computes shortest paths over a word graph, where the cost
// of edge u→v is the number of times v followed u in the corpus.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source word to all
//     reachable words in O((V + E) log V), using a min-heap frontier.
//   - The frontier uses "lazy decrease-key": a relaxed word is pushed again at
//     its new distance, duplicates coexist, and entries for already finalized
//     words are skipped on extraction. No in-place priority updates, no removal
//     by value.
//   - Weights are occurrence counts (≥ 1), so negative weights cannot occur.
//
// Entry points:
//
//	Dijkstra(g, Source("a"), WithReturnPath())  // raw dist/prev maps
//	ShortestPath(g, "a", "c")                   // one Path or a sentinel error
//	AllFrom(g, "a")                             // one Result per word with successors
//	Report(g, "a", "c") / Report(g, "a", "")    // user-facing text
//
// Options:
//
//   - Source(string):              required, the starting word (case-insensitive).
//   - WithReturnPath():            return the predecessor map.
//   - WithMaxDistance(int64):      stop exploring beyond the given distance.
//   - WithInfEdgeThreshold(int64): treat edges with weight ≥ threshold as impassable.
//
// Error handling (sentinel errors, wrapped with context; use errors.Is):
//
//   - ErrEmptySource, ErrNilGraph   – malformed call.
//   - ErrSourceNotFound             – source word absent from the graph.
//   - ErrTargetNotFound             – target word absent from the graph.
//   - ErrNoPath                     – both present, target unreachable.
//
// Determinism:
//
//   - Successors are relaxed in sorted order and heap ties break by word, so
//     equal-weight alternatives always resolve to the same path.
//
// Thread safety:
//
//   - Queries only read the graph; a fully built core.Graph may be shared.
package dijkstra

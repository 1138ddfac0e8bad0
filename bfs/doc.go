// Package bfs runs breadth-first search over the successors of a word graph,
// returning hop distances, parent links and visit order.
//
// Unlike package dijkstra, occurrence counts are ignored: every observed pair
// is one hop. Weights are only visible to WithFilterNeighbor / WithMinWeight,
// which can prune rare pairs.
//
// What
//
//   - Explore words in non-decreasing hop count from a start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → hops from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - OnVisit hook may abort the search with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Neighborhood collects the words within d hops of several seeds; the shell
//     uses it to render the surroundings of a few words as an image.
//
// Determinism
//
//	Successors are enqueued in sorted order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = |words|, E = |distinct pairs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "the", bfs.WithMaxDepth(2), bfs.WithMinWeight(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, _ := res.PathTo("report")
package bfs

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wordgraph/core"
)

// Dijkstra computes shortest distances from the source word (Options.Source)
// to every word of g, using occurrence counts as edge weights.
//
// Returns:
//
//   - dist: map from word to minimum distance (Unreachable if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] is absent.
//   - err:  ErrEmptySource, ErrNilGraph or ErrSourceNotFound.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//
// Weights are occurrence counts and therefore ≥ 1, so no negative-weight
// scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.Source = core.Normalize(cfg.Source)

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph (either index)
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 5) Prepare data structures sized to the vertex count.
	vertices := g.Vertices()
	V := len(vertices)

	r := &runner{
		g:        g,
		options:  cfg,
		vertices: vertices,
		dist:     make(map[string]int64, V),
		prev:     make(map[string]string, V),
		visited:  make(map[string]bool, V),
		pq:       make(nodePQ, 0, V),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns one numerically shortest path from source to target.
//
// Errors (wrapped, check with errors.Is):
//   - ErrSourceNotFound / ErrEmptySource / ErrNilGraph from Dijkstra.
//   - ErrTargetNotFound if target is not in the graph.
//   - ErrNoPath if target is unreachable from source.
//
// Equal-weight alternatives resolve to whichever the frontier finalizes first.
func ShortestPath(g *core.Graph, source, target string) (Path, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return Path{}, err
	}

	source, target = core.Normalize(source), core.Normalize(target)
	if !g.HasVertex(target) {
		return Path{}, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	if dist[target] == Unreachable {
		return Path{}, fmt.Errorf("%w: %q → %q", ErrNoPath, source, target)
	}

	return Path{Nodes: reconstruct(prev, source, target), Distance: dist[target]}, nil
}

// AllFrom returns one Result per word with at least one successor, except
// source itself, sorted by Target.
func AllFrom(g *core.Graph, source string) ([]Result, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, err
	}

	source = core.Normalize(source)
	targets := g.Sources()
	out := make([]Result, 0, len(targets))
	for _, t := range targets {
		if t == source {
			continue // skip itself
		}
		if dist[t] == Unreachable {
			out = append(out, Result{Target: t})
			continue
		}
		out = append(out, Result{
			Target:    t,
			Reachable: true,
			Path:      Path{Nodes: reconstruct(prev, source, t), Distance: dist[t]},
		})
	}

	return out, nil
}

// reconstruct follows prev links from target back to source and reverses them.
func reconstruct(prev map[string]string, source, target string) []string {
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			break // unreachable; callers check dist first
		}
		path = append(path, p)
		cur = p
	}
	// reverse in place into source→target order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph       // The input graph; read-only within Dijkstra.
	options  Options           // Configuration options (Source, thresholds, etc.).
	vertices []string          // Sorted vertex IDs.
	dist     map[string]int64  // Maps word → current best distance from Source.
	prev     map[string]string // Maps word → predecessor on the shortest path.
	visited  map[string]bool   // Tracks if a word's distance is finalized.
	pq       nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +∞ except the source and seeds the heap.
func (r *runner) init() {
	// 1) dist[v] = +∞ for all vertices v.
	for _, v := range r.vertices {
		r.dist[v] = math.MaxInt64
		r.visited[v] = false
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = 0

	// 3) Push the source with distance 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		id:   r.options.Source,
		dist: 0,
	})
}

// process repeatedly extracts the closest unfinalized word and relaxes its
// outgoing edges. Stale heap entries (already finalized words) are skipped.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable words processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item = heap.Pop(&r.pq).(*nodeItem)

		// 2) Finalized already: this entry is stale.
		if r.visited[item.id] {
			continue
		}

		// 3) Beyond the cap: nothing closer remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Its distance is final.
		r.visited[item.id] = true

		// 5) Relax all outgoing edges.
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every successor of u. Successors are
// visited in sorted order so equal-weight ties resolve the same way on every run.
func (r *runner) relax(u string) {
	succ := r.g.Neighbors(u)
	ids := make([]string, 0, len(succ))
	for v := range succ {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	var w, newDist int64
	for _, v := range ids {
		w = succ[v]

		// Impassable edge
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: push a fresh entry, the old one goes stale.
		heap.Push(&r.pq, &nodeItem{
			id:   v,
			dist: newDist,
		})
	}
}

// nodeItem represents a word and its tentative distance from the source.
type nodeItem struct {
	id   string // word
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id. Duplicate ids at
// different distances may coexist; only the freshest is ever acted upon.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, ties by id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop has moved the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in weight counting and predecessor multiplicity for AddEdge.
//   - Validate case-insensitive identity at every public entry point.
//   - Provide anchors for ordering guarantees (Sources/Vertices/Edges sorted).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
)

// buildScientist builds the graph of
// "the scientist analyzed data the scientist studied it".
func buildScientist(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	words := []string{"the", "scientist", "analyzed", "data", "the", "scientist", "studied", "it"}
	for i := 0; i+1 < len(words); i++ {
		require.NoError(t, g.AddEdge(words[i], words[i+1]))
	}

	return g
}

func TestAddEdge_WeightCountsObservations(t *testing.T) {
	g := buildScientist(t)

	w, err := g.Weight("the", "scientist")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)

	w, err = g.Weight("scientist", "analyzed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)

	_, err = g.Weight("scientist", "the")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// 7 consecutive pairs, one of them repeated.
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, int64(7), g.TotalWeight())
}

func TestAddEdge_PredecessorsKeepDuplicates(t *testing.T) {
	g := buildScientist(t)

	assert.Equal(t, []string{"the", "the"}, g.Predecessors("scientist"))
	assert.Equal(t, 2, g.InDegree("scientist"))
	assert.Equal(t, 2, g.OutDegree("scientist"))
	assert.Empty(t, g.Predecessors("nobody"))
}

func TestAddEdge_CaseInsensitive(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("The", "END"))
	require.NoError(t, g.AddEdge("the", "end"))

	w, err := g.Weight("THE", "End")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	assert.True(t, g.HasVertex("tHe"))
	assert.True(t, g.HasEdge("the", "END"))
	assert.Equal(t, []string{"end", "the"}, g.Vertices())
}

func TestAddEdge_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "x"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("x", ""), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	kept := core.NewGraph()
	require.NoError(t, kept.AddEdge("very", "very"))
	assert.True(t, kept.HasEdge("very", "very"))

	dropped := core.NewGraph(core.WithLoops(false))
	require.NoError(t, dropped.AddEdge("very", "very"))
	assert.False(t, dropped.HasVertex("very"))
	assert.False(t, dropped.Looped())
}

func TestHasVertex_EitherIndex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("source", "sink"))

	// "source" lives only in adjacency, "sink" only in incidence.
	assert.True(t, g.HasVertex("source"))
	assert.True(t, g.HasVertex("sink"))
	assert.True(t, g.HasSuccessors("source"))
	assert.False(t, g.HasSuccessors("sink"))
	assert.False(t, g.HasVertex("other"))
	assert.False(t, g.HasVertex(""))
}

func TestNeighbors_CopyAndEmpty(t *testing.T) {
	g := buildScientist(t)

	nb := g.Neighbors("scientist")
	assert.Equal(t, map[string]int64{"analyzed": 1, "studied": 1}, nb)

	// Mutating the copy must not leak into the graph.
	nb["analyzed"] = 99
	w, _ := g.Weight("scientist", "analyzed")
	assert.Equal(t, int64(1), w)

	assert.Empty(t, g.Neighbors("it"))
	assert.NotNil(t, g.Neighbors("missing"))
	assert.Equal(t, []string{"analyzed", "studied"}, g.NeighborIDs("scientist"))
}

func TestSourcesAndVertices_Sorted(t *testing.T) {
	g := buildScientist(t)

	assert.Equal(t, []string{"analyzed", "data", "scientist", "studied", "the"}, g.Sources())
	assert.Equal(t, []string{"analyzed", "data", "it", "scientist", "studied", "the"}, g.Vertices())
	assert.Equal(t, 6, g.VertexCount())
}

func TestEdges_SortedSnapshot(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))

	assert.Equal(t, []core.Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "a", To: "c", Weight: 1},
		{From: "b", To: "c", Weight: 1},
	}, g.Edges())
}

func TestStats(t *testing.T) {
	g := buildScientist(t)
	s := g.Stats()

	assert.Equal(t, 6, s.VertexCount)
	assert.Equal(t, 5, s.SourceCount)
	assert.Equal(t, 1, s.SinkCount)
	assert.Equal(t, 6, s.EdgeCount)
	assert.Equal(t, int64(7), s.TotalWeight)
	assert.Equal(t, int64(2), s.MaxWeight)
	assert.True(t, s.AllowsLoops)
}

func TestAdjacencyList_DeepCopy(t *testing.T) {
	g := buildScientist(t)
	adj := g.AdjacencyList()

	assert.Len(t, adj, 5)
	assert.Equal(t, int64(2), adj["the"]["scientist"])
	adj["the"]["scientist"] = 0
	w, _ := g.Weight("the", "scientist")
	assert.Equal(t, int64(2), w)
}

func TestInducedSubgraph(t *testing.T) {
	g := buildScientist(t)
	sub := core.InducedSubgraph(g, map[string]bool{"the": true, "scientist": true, "studied": true})

	assert.Equal(t, []core.Edge{
		{From: "scientist", To: "studied", Weight: 1},
		{From: "the", To: "scientist", Weight: 2},
	}, sub.Edges())
	assert.Equal(t, []string{"the", "the"}, sub.Predecessors("scientist"))
	assert.False(t, sub.HasVertex("data"))
}

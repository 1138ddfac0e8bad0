package pagerank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/corpus"
	"github.com/katalvlaran/wordgraph/pagerank"
)

const eps = 1e-9

func fromText(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := corpus.FromText(text)
	require.NoError(t, err)

	return g
}

func TestRank_EmptyGraph(t *testing.T) {
	assert.Empty(t, pagerank.Rank(core.NewGraph()))
	assert.Empty(t, pagerank.Rank(nil))
	assert.Equal(t, 0.0, pagerank.Score(core.NewGraph(), "anything"))
}

func TestRank_CycleIsUniform(t *testing.T) {
	// a→b→c→a: symmetric, every word keeps 1/3.
	g := fromText(t, "a b c a")
	r := pagerank.Rank(g)

	require.Len(t, r, 3)
	for _, w := range []string{"a", "b", "c"} {
		assert.InDelta(t, 1.0/3, r.Score(w), eps, w)
	}
	assert.InDelta(t, 1.0, r.Sum(), eps)
}

func TestRank_PureSinkScoresZero(t *testing.T) {
	g := fromText(t, "a b")

	// Only a has successors; it receives nothing and keeps (1-d)/N.
	assert.InDelta(t, 0.15, pagerank.Score(g, "a"), eps)
	assert.Equal(t, 0.0, pagerank.Score(g, "b"))
	assert.Equal(t, 0.0, pagerank.Score(g, "missing"))
}

func TestRank_HubRanksFirst(t *testing.T) {
	g := fromText(t, "x a y a z a")
	r := pagerank.Rank(g)

	top := r.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].Word)

	// y and z are symmetric; x receives no links.
	assert.InDelta(t, r.Score("y"), r.Score("z"), eps)
	assert.InDelta(t, 0.15/4, r.Score("x"), eps)
	assert.InDelta(t, 1.0, r.Sum(), 1e-6)
}

func TestScore_CaseInsensitive(t *testing.T) {
	g := fromText(t, "x a y a z a")
	assert.Equal(t, pagerank.Score(g, "a"), pagerank.Score(g, "A"))
}

func TestRank_DampingZeroIsUniform(t *testing.T) {
	g := fromText(t, "x a y a z a")
	r := pagerank.Rank(g, pagerank.WithDamping(0))
	for w, s := range r {
		assert.InDelta(t, 0.25, s, eps, w)
	}
}

func TestRank_SingleIterationFromSmoothedInit(t *testing.T) {
	// a→b, b→a: indeg 1 each → init 0.5 each, and one step keeps it.
	g := fromText(t, "a b a")
	r := pagerank.Rank(g, pagerank.WithIterations(1))
	assert.InDelta(t, 0.5, r.Score("a"), eps)
	assert.InDelta(t, 0.5, r.Score("b"), eps)
}

func TestRank_Deterministic(t *testing.T) {
	g, err := corpus.LoadFile("../corpus/testdata/easy.txt")
	require.NoError(t, err)

	first := pagerank.Rank(g)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, pagerank.Rank(g))
	}
	assert.Equal(t, len(g.Sources()), len(first))
}

func TestTop_OrderingAndBounds(t *testing.T) {
	r := pagerank.Ranking{"b": 0.2, "a": 0.2, "c": 0.6}

	assert.Equal(t, []pagerank.Entry{
		{Word: "c", Score: 0.6},
		{Word: "a", Score: 0.2},
		{Word: "b", Score: 0.2},
	}, r.Top(0))
	assert.Len(t, r.Top(2), 2)
	assert.Len(t, r.Top(10), 3)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pagerank.WithDamping(-0.1) })
	assert.Panics(t, func() { pagerank.WithDamping(1.1) })
	assert.Panics(t, func() { pagerank.WithIterations(0) })
	assert.NotPanics(t, func() { pagerank.WithDamping(1) })
}

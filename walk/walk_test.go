package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/corpus"
	"github.com/katalvlaran/wordgraph/walk"
)

// firstSource always draws index 0.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func fromText(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := corpus.FromText(text)
	require.NoError(t, err)

	return g
}

func TestTrace_EmptyGraph(t *testing.T) {
	res := walk.Trace(core.NewGraph(), walk.WithSeed(1))
	assert.Empty(t, res.Path)
	assert.Equal(t, walk.Empty, res.Reason)
	assert.Equal(t, 0, res.Steps())

	assert.Empty(t, walk.Walk(nil))
	assert.Equal(t, "", walk.String(walk.Walk(core.NewGraph())))
}

func TestTrace_StopsAtDeadEnd(t *testing.T) {
	g := fromText(t, "a b c")

	res := walk.Trace(g, walk.WithSource(firstSource{}))
	assert.Equal(t, []string{"a", "b", "c"}, res.Path)
	assert.Equal(t, walk.DeadEnd, res.Reason)
	assert.Equal(t, 2, res.Steps())
}

func TestTrace_StopsBeforeRepeatedEdge(t *testing.T) {
	g := fromText(t, "a b a")

	res := walk.Trace(g, walk.WithSource(firstSource{}))
	// a→b, b→a, then a→b again is refused: words repeat, edges do not.
	assert.Equal(t, []string{"a", "b", "a"}, res.Path)
	assert.Equal(t, walk.RepeatedEdge, res.Reason)
}

func TestTrace_MaxSteps(t *testing.T) {
	g := fromText(t, "a b a")

	res := walk.Trace(g, walk.WithSource(firstSource{}), walk.WithMaxSteps(1))
	assert.Equal(t, []string{"a", "b"}, res.Path)
	assert.Equal(t, walk.MaxSteps, res.Reason)
}

func TestWalk_Invariants(t *testing.T) {
	g, err := corpus.LoadFile("../corpus/testdata/easy.txt")
	require.NoError(t, err)

	for seed := int64(1); seed <= 50; seed++ {
		res := walk.Trace(g, walk.WithSeed(seed))
		require.NotEmpty(t, res.Path, "seed %d", seed)
		assert.True(t, g.HasSuccessors(res.Path[0]), "start must have successors")

		seen := make(map[[2]string]bool)
		for i := 0; i+1 < len(res.Path); i++ {
			pair := [2]string{res.Path[i], res.Path[i+1]}
			assert.True(t, g.HasEdge(pair[0], pair[1]), "seed %d: %v is not an edge", seed, pair)
			assert.False(t, seen[pair], "seed %d: %v traversed twice", seed, pair)
			seen[pair] = true
		}
		assert.LessOrEqual(t, res.Steps(), g.EdgeCount())

		if res.Reason == walk.DeadEnd {
			assert.False(t, g.HasSuccessors(res.Path[len(res.Path)-1]))
		}
	}
}

func TestWalk_SameSeedSamePath(t *testing.T) {
	g, err := corpus.LoadFile("../corpus/testdata/easy.txt")
	require.NoError(t, err)

	for seed := int64(1); seed <= 10; seed++ {
		assert.Equal(t, walk.Walk(g, walk.WithSeed(seed)), walk.Walk(g, walk.WithSeed(seed)))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "the scientist analyzed", walk.String([]string{"the", "scientist", "analyzed"}))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "dead end", walk.DeadEnd.String())
	assert.Equal(t, "repeated edge", walk.RepeatedEdge.String())
	assert.Equal(t, "unknown", walk.Reason(42).String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { walk.WithSource(nil) })
	assert.Panics(t, func() { walk.WithMaxSteps(-1) })
}

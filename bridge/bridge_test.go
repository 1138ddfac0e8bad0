package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/corpus"
)

func mustGraph(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := corpus.FromText(text)
	require.NoError(t, err)

	return g
}

const scientist = "the scientist analyzed data the scientist studied it"

func TestFind_Scientist(t *testing.T) {
	g := mustGraph(t, scientist)
	assert.Equal(t, []string{"analyzed"}, bridge.Find(g, "scientist", "data"))
	assert.Equal(t, []string{"analyzed"}, bridge.Find(g, "Scientist", "DATA"))
	assert.Empty(t, bridge.Find(g, "the", "data"))
	assert.Empty(t, bridge.Find(g, "zzz", "data"))
	assert.Nil(t, bridge.Find(nil, "a", "b"))
}

func TestFind_MultiplicityIgnored(t *testing.T) {
	// "the" precedes "team" twice; it must appear once.
	g := mustGraph(t, "but the team but a team the team but")
	assert.Equal(t, []string{"a", "the"}, bridge.Find(g, "but", "team"))
}

func TestQuery_Sentences(t *testing.T) {
	g := mustGraph(t, scientist)
	multi := mustGraph(t, "but the team but a team the team but")
	three := mustGraph(t, "go x stop go y stop go z stop")

	cases := []struct {
		name   string
		g      *core.Graph
		w1, w2 string
		want   string
	}{
		{"single", g, "scientist", "data", `The bridge words from "scientist" to "data" is: "analyzed".`},
		{"lowercased", g, "SCIENTIST", "Data", `The bridge words from "scientist" to "data" is: "analyzed".`},
		{"missing first", g, "zzz", "data", "No zzz or data in the graph!"},
		{"missing second", g, "data", "zzz", "No data or zzz in the graph!"},
		{"digits", g, "111", "the", "No 111 or the in the graph!"},
		{"none", g, "the", "data", `No bridge words from "the" to "data"!`},
		{"two", multi, "but", "team", `The bridge words from "but" to "team" are: "a", and "the".`},
		{"single via repeated pair", multi, "the", "but", `The bridge words from "the" to "but" is: "team".`},
		{"three", three, "go", "stop", `The bridge words from "go" to "stop" are: "x", "y", and "z".`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bridge.Query(tc.g, tc.w1, tc.w2))
		})
	}
}

func TestQuery_SinkOnlyWordIsPresent(t *testing.T) {
	// "it" has no successors but is still a vertex.
	g := mustGraph(t, scientist)
	assert.Equal(t, `No bridge words from "it" to "the"!`, bridge.Query(g, "it", "the"))
}

func TestFormat_Grammar(t *testing.T) {
	assert.Equal(t, `The bridge words from "a" to "b" are: "p", "q", "r", and "s".`,
		bridge.Format("a", "b", []string{"p", "q", "r", "s"}))
}

// SPDX-License-Identifier: MIT

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordgraph/augment"
	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/export"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/walk"
)

const invalidInput = augment.InvalidInputMessage

// topRanked is how many words "pagerank" lists without an argument.
const topRanked = 10

type command struct {
	name  string
	alias string // numeric menu choice
	usage string
	run   func(sc *ShellController, cmd *shellcmd) (*Response, error)
	raw   bool // arguments are free text, not shell-quoted
}

// commands is in menu order.
var commands []command

func init() {
	commands = []command{
		{"show", "", "show                 print the adjacency listing", (*ShellController).show, false},
		{"image", "1", "image [-depth n] [words...]  render the graph (or the words within n hops) to PNG", (*ShellController).image, false},
		{"bridge", "2", "bridge <w1> <w2>     query bridge words from w1 to w2", (*ShellController).bridge, false},
		{"newtext", "3", "newtext <text...>    insert bridge words into text", (*ShellController).newText, true},
		{"path", "4", "path <w1> [w2]       shortest path(s) from w1", (*ShellController).path, false},
		{"pagerank", "5", "pagerank [word]      score of word, or the top words", (*ShellController).pageRank, false},
		{"walk", "6", "walk                 random walk until a repeated edge", (*ShellController).walk, false},
		{"reach", "", "reach <word> [n]     words reachable from word, with hop counts", (*ShellController).reach, false},
		{"help", "", "help                 this message", (*ShellController).help, false},
		{"exit", "0", "exit                 leave the shell", (*ShellController).exit, false},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name || (c.alias != "" && c.alias == name) {
			return c, true
		}
	}
	if name == "quit" {
		return lookup("exit")
	}
	return command{}, false
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var buf bytes.Buffer
	if err := export.WriteAdjacency(&buf, sc.graph); err != nil {
		return nil, err
	}
	return msg(strings.TrimSuffix(buf.String(), "\n")), nil
}

func (sc *ShellController) image(cmd *shellcmd) (*Response, error) {
	depth, words, err := depthOption(cmd.args)
	if err != nil {
		return msg(invalidInput), nil
	}

	g := sc.graph
	if len(words) > 0 {
		keep, err := bfs.Neighborhood(sc.graph, words, depth)
		if err != nil {
			return nil, err
		}
		g = core.InducedSubgraph(sc.graph, keep)
	}

	err = export.RenderImage(context.Background(), g, sc.cfg.DotBinary, sc.cfg.ImagePath)
	if err != nil {
		log.Error().Err(err).Msg("image export failed")
		return msg("Failed to save image: " + err.Error()), nil
	}
	return msg("Graph image saved to " + sc.cfg.ImagePath), nil
}

func (sc *ShellController) bridge(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return msg(invalidInput), nil
	}
	return msg(bridge.Query(sc.graph, cmd.args[0], cmd.args[1])), nil
}

func (sc *ShellController) newText(cmd *shellcmd) (*Response, error) {
	out, err := augment.Generate(sc.graph, cmd.raw, augment.WithSource(sc.src))
	if errors.Is(err, augment.ErrInvalidInput) {
		return msg(invalidInput), nil
	}
	if err != nil {
		return nil, err
	}
	return msg("New text: " + out), nil
}

func (sc *ShellController) path(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 1:
		return msg(dijkstra.Report(sc.graph, cmd.args[0], "")), nil
	case 2:
		return msg(dijkstra.Report(sc.graph, cmd.args[0], cmd.args[1])), nil
	default:
		return msg(invalidInput), nil
	}
}

func (sc *ShellController) pageRank(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		var sb strings.Builder
		sb.WriteString("PageRank (top words):")
		for i, e := range pagerank.Rank(sc.graph).Top(topRanked) {
			fmt.Fprintf(&sb, "\n%3d: %-20s %.6f", i+1, e.Word, e.Score)
		}
		return msg(sb.String()), nil
	case 1:
		return msg(fmt.Sprintf("PageRank: %.6f", pagerank.Score(sc.graph, cmd.args[0]))), nil
	default:
		return msg(invalidInput), nil
	}
}

func (sc *ShellController) walk(cmd *shellcmd) (*Response, error) {
	res := walk.Trace(sc.graph, walk.WithSource(sc.src))
	text := walk.String(res.Path)
	log.Debug().Int("steps", res.Steps()).Stringer("reason", res.Reason).Msg("walk finished")

	if sc.cfg.WalkOutput != "" {
		if err := os.WriteFile(sc.cfg.WalkOutput, []byte(text+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("shell: saving walk: %w", err)
		}
		log.Info().Str("file", sc.cfg.WalkOutput).Msg("walk saved")
	}
	return msg("Random walk: " + text), nil
}

func (sc *ShellController) reach(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 1 || len(cmd.args) > 2 {
		return msg(invalidInput), nil
	}
	depth := 0
	if len(cmd.args) == 2 {
		d, err := strconv.Atoi(cmd.args[1])
		if err != nil || d < 0 {
			return msg(invalidInput), nil
		}
		depth = d
	}

	res, err := bfs.BFS(sc.graph, cmd.args[0], bfs.WithMaxDepth(depth))
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return msg(fmt.Sprintf("Error: Source word '%s' not found!", cmd.args[0])), nil
	}
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Words reachable from '%s':", cmd.args[0])
	for _, w := range res.Order[1:] {
		fmt.Fprintf(&sb, " %s(%d)", w, res.Depth[w])
	}
	return msg(sb.String()), nil
}

// depthOption extracts a leading "-depth n" from args. The option needs at
// least one seed word after it.
func depthOption(args []string) (int, []string, error) {
	if len(args) == 0 || args[0] != "-depth" {
		return 0, args, nil
	}
	if len(args) < 2 {
		return 0, nil, errors.New("shell: -depth needs a value")
	}
	d, err := strconv.Atoi(args[1])
	if err != nil || d < 0 {
		return 0, nil, fmt.Errorf("shell: bad depth %q", args[1])
	}
	if len(args) == 2 {
		return 0, nil, errors.New("shell: -depth needs at least one word")
	}
	return d, args[2:], nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString("Commands (menu numbers in brackets):")
	for _, c := range commands {
		alias := "   "
		if c.alias != "" {
			alias = "[" + c.alias + "]"
		}
		fmt.Fprintf(&sb, "\n  %s %s", alias, c.usage)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errExit
}

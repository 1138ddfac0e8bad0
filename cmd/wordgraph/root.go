// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/corpus"
	"github.com/katalvlaran/wordgraph/shell"
)

var errNoCorpus = errors.New("no corpus file given (use --corpus or WORDGRAPH_CORPUS)")

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	graph   *core.Graph
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "Query the word-adjacency graph of a text",
		Long: `wordgraph reads a text file, links every word to the word that follows it
and answers queries over the resulting weighted directed graph.
Without a subcommand it starts an interactive shell.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runShell,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "optional YAML config file")
	pf.StringP("corpus", "c", "", "text file to build the graph from")
	pf.Int64("seed", 0, "random seed for newtext and walk (0 = entropy)")
	pf.String("log-level", "info", "zerolog level: debug, info, warn, error")
	pf.String("dot-binary", "dot", "Graphviz dot executable")
	pf.String("image-path", "graph.png", "where the image command writes its PNG")
	pf.String("walk-output", "", "file that receives each random walk")
	pf.String("history-file", "/tmp/wordgraph_readline.tmp", "shell history file")

	for key, flag := range map[string]string{
		config.KeyCorpus:      "corpus",
		config.KeySeed:        "seed",
		config.KeyLogLevel:    "log-level",
		config.KeyDotBinary:   "dot-binary",
		config.KeyImagePath:   "image-path",
		config.KeyWalkOutput:  "walk-output",
		config.KeyHistoryFile: "history-file",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		a.shellCmd(),
		a.queryCmd("show", "show", "Print the adjacency listing", cobra.NoArgs),
		a.imageCmd(),
		a.queryCmd("bridge <word1> <word2>", "bridge", "Query bridge words from word1 to word2", cobra.ExactArgs(2)),
		a.queryCmd("newtext <text...>", "newtext", "Insert bridge words into text", cobra.MinimumNArgs(1)),
		a.queryCmd("path <word1> [word2]", "path", "Shortest path from word1 to word2, or to every word", cobra.RangeArgs(1, 2)),
		a.queryCmd("pagerank [word]", "pagerank", "PageRank of a word, or the top-ranked words", cobra.MaximumNArgs(1)),
		a.queryCmd("walk", "walk", "Random walk until a repeated edge or a dead end", cobra.NoArgs),
		a.queryCmd("reach <word> [hops]", "reach", "Words reachable from word, with hop counts", cobra.RangeArgs(1, 2)),
		a.exportCmd(),
	)

	return rootCmd
}

// load merges configuration, sets up logging and builds the graph.
func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	setupLogger(lvl)

	if cfg.Corpus == "" {
		return errNoCorpus
	}
	a.graph, err = corpus.LoadFile(cfg.Corpus)
	if err != nil {
		return err
	}
	log.Info().Str("corpus", cfg.Corpus).
		Int("words", a.graph.VertexCount()).
		Int("edges", a.graph.EdgeCount()).
		Msg("graph built")

	return nil
}

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

func (a *app) runShell(cmd *cobra.Command, args []string) error {
	sc, err := shell.NewShellController(a.graph, a.cfg)
	if err != nil {
		return err
	}

	// The listing is shown once on start, then the menu loop begins.
	if err = sc.RunLine("show"); err != nil {
		return err
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	go sc.Loop(sig)
	<-done

	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/export"
	"github.com/katalvlaran/wordgraph/shell"
)

// queryCmd runs a single shell command non-interactively, so one-shot and
// interactive output stay identical.
func (a *app) queryCmd(use, name, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := name
			if len(args) > 0 {
				line += " " + shellquote.Join(args...)
			}
			return shell.NewBatchController(a.graph, a.cfg, cmd.OutOrStdout()).RunLine(line)
		},
	}
}

func (a *app) imageCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "image [words...]",
		Short: "Render the graph, or the words within --depth hops of the given words, to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "image"
			if depth > 0 {
				line += " -depth " + strconv.Itoa(depth)
			}
			if len(args) > 0 {
				line += " " + shellquote.Join(args...)
			}
			return shell.NewBatchController(a.graph, a.cfg, cmd.OutOrStdout()).RunLine(line)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "include words up to this many hops away")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph as an adjacency listing, DOT or a YAML edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch strings.ToLower(format) {
			case "adjacency", "adj":
				return export.WriteAdjacency(w, a.graph)
			case "dot":
				return export.WriteDOT(w, a.graph)
			case "yaml", "yml":
				return export.WriteYAML(w, a.graph)
			default:
				return fmt.Errorf("unknown export format %q (want adjacency, dot or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "adjacency, dot or yaml")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file, - for stdout")

	return cmd
}

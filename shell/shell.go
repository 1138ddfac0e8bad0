// SPDX-License-Identifier: MIT

// Package shell is the interactive front end of wordgraph: a readline loop
// that parses each line with shell-style quoting and dispatches it to the
// query packages over one graph built at startup.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/rng"
)

const prompt = "\033[32mwordgraph>\033[0m "

var (
	errNoData = errors.New("shell: no data in line")
	errExit   = errors.New("shell: exit requested")
)

// ShellController owns the readline instance and the graph being queried.
type ShellController struct {
	l     *readline.Instance
	out   io.Writer
	graph *core.Graph
	cfg   config.Config
	src   rng.Source
}

// Response is the text printed after a command.
type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd  string
	args []string
	raw  string // the line after the command word, untouched
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		items = append(items, readline.PcItem(c.name))
	}
	return readline.NewPrefixCompleter(items...)
}

// NewShellController opens a readline session over g.
func NewShellController(g *core.Graph, cfg config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	sc := newController(g, cfg, l.Stdout())
	sc.l = l

	return sc, nil
}

// NewBatchController returns a controller without a terminal, for one-shot
// commands whose output goes to out.
func NewBatchController(g *core.Graph, cfg config.Config, out io.Writer) *ShellController {
	return newController(g, cfg, out)
}

func newController(g *core.Graph, cfg config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:   out,
		graph: g,
		cfg:   cfg,
		src:   rng.FromSeed(cfg.Seed),
	}
}

// extractFields splits off the command word. Free-text commands (newtext)
// keep their remainder as typed; everything else is parsed with shell quoting.
func extractFields(line string) (*shellcmd, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errNoData
	}

	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], strings.TrimSpace(line[i:])
	}
	cmd := &shellcmd{cmd: strings.ToLower(name), raw: rest}

	if c, ok := lookup(cmd.cmd); ok && c.raw {
		cmd.args = strings.Fields(rest)
		return cmd, nil
	}

	args, err := shellquote.Split(rest)
	if err != nil {
		return nil, err
	}
	cmd.args = args

	return cmd, nil
}

func (sc *ShellController) showMessage(m string) {
	io.WriteString(sc.out, m)
	io.WriteString(sc.out, "\n")
}

// Execute runs one command line. It returns errExit when the user asked to
// leave; every other failure is already rendered into the Response.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return nil, nil
	}
	if err != nil {
		log.Debug().Err(err).Str("line", line).Msg("unparsable line")
		return msg(invalidInput), nil
	}

	c, ok := lookup(cmd.cmd)
	if !ok {
		return msg("Invalid choice!"), nil
	}
	log.Debug().Str("cmd", c.name).Strs("args", cmd.args).Msg("dispatch")

	return c.run(sc, cmd)
}

// RunLine executes line and prints its response. An exit command is a no-op.
func (sc *ShellController) RunLine(line string) error {
	resp, err := sc.Execute(line)
	if errors.Is(err, errExit) {
		return nil
	}
	if err != nil {
		return err
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
	return nil
}

// Loop reads lines until exit, EOF or an interrupt on an empty line, then
// signals sig.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage("Type `help` for the list of commands.")
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}

		resp, err := sc.Execute(strings.TrimSpace(line))
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("")
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}

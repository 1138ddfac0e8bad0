// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/wordgraph/core"
)

// DefaultDotBinary is looked up on PATH when no binary is configured.
const DefaultDotBinary = "dot"

// RenderImage writes g as DOT to a temporary file and runs
// "<dotBinary> -Tpng <tmp> -o <outPath>". The temporary file is always removed.
// A missing binary or a non-zero exit is reported as ErrRender with the
// tool's combined output attached.
func RenderImage(ctx context.Context, g *core.Graph, dotBinary, outPath string) error {
	if dotBinary == "" {
		dotBinary = DefaultDotBinary
	}

	src, err := DOT(g)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "wordgraph-*.dot")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.WriteString(src); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	cmd := exec.CommandContext(ctx, dotBinary, "-Tpng", tmp.Name(), "-o", outPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s: %v: %s", ErrRender, dotBinary, err, strings.TrimSpace(string(out)))
	}
	log.Debug().Str("binary", dotBinary).Str("out", outPath).Int("edges", g.EdgeCount()).Msg("rendered graph image")

	return nil
}

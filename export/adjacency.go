// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/wordgraph/core"
)

// WriteAdjacency lists every word with successors on its own line:
//
//	the -> scientist(2) team(2)
//
// Each target is followed by a single space, including the last one.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	for _, src := range g.Sources() {
		fmt.Fprintf(bw, "%s -> ", src)
		succ := g.Neighbors(src)
		for _, dst := range g.NeighborIDs(src) {
			fmt.Fprintf(bw, "%s(%d) ", dst, succ[dst])
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

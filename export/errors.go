// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("export: graph is nil")

	// ErrWrite wraps failures of the destination writer.
	ErrWrite = errors.New("export: write failed")

	// ErrDecode indicates a malformed YAML edge list.
	ErrDecode = errors.New("export: decode failed")

	// ErrRender indicates that the Graphviz binary failed or could not be run.
	ErrRender = errors.New("export: render failed")
)

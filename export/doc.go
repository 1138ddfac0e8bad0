// Package export converts a core.Graph into external representations:
//
//   - WriteAdjacency: a plain-text adjacency listing, one line per word with
//     successors ("node -> target(weight) target(weight) ").
//   - DOT / WriteDOT: Graphviz source built with awalterschulze/gographviz,
//     one labelled edge per observed pair.
//   - WriteYAML / ReadYAML: a sorted edge list encoded with gopkg.in/yaml.v3,
//     which can be loaded back into an equivalent graph.
//   - RenderImage: writes the DOT source to a temporary file and invokes the
//     Graphviz "dot" binary to produce a PNG.
//
// Every listing iterates words and successors in sorted order, so output is
// byte-stable for a given graph.
package export

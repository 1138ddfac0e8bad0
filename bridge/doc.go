// Package bridge finds bridge words in a word graph and renders them as the
// user-facing sentence.
//
// A word b is a bridge from w1 to w2 iff w1→b and b→w2 are both edges, i.e. b
// is a successor of w1 and a predecessor of w2. Only existence matters; edge
// weights and observation counts are ignored.
//
// Query sentences (words shown lowercased):
//
//	No {w1} or {w2} in the graph!
//	No bridge words from "{w1}" to "{w2}"!
//	The bridge words from "{w1}" to "{w2}" is: "{b}".
//	The bridge words from "{w1}" to "{w2}" are: "{x}", "{y}", and "{z}".
//
// Find returns bridges sorted ascending, so Query output is deterministic.
package bridge

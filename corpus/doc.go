// Package corpus turns raw text into the token sequence and word-adjacency
// graph the query packages operate on.
//
// Normalization (Tokenize):
//
//  1. Every rune outside [a-zA-Z] becomes whitespace ("it's" → "it s").
//  2. The result is lowercased.
//  3. It is split on whitespace runs; empty tokens are dropped.
//
// Construction (Build) adds one observation per consecutive token pair, so
// tokens [a b a b] yield a→b (weight 2) and b→a (weight 1).
//
// Example:
//
//	g, err := corpus.LoadFile("testdata/easy.txt")
//	if err != nil {
//	    log.Fatal().Err(err).Msg("load corpus")
//	}
//	fmt.Println(g.Stats().EdgeCount)
package corpus

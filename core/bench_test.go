// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// BenchmarkAddEdge_Distinct measures inserting fresh pairs.
func BenchmarkAddEdge_Distinct(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", fmt.Sprintf("n%d", i))
	}
}

// BenchmarkAddEdge_Repeated measures bumping weights of 100 hot pairs.
func BenchmarkAddEdge_Repeated(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", fmt.Sprintf("n%d", i%100))
	}
}

// BenchmarkNeighbors measures copying a 1000-leaf successor map.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("center", fmt.Sprintf("node%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("center")
	}
}

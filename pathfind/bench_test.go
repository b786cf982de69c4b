package pathfind_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/pathfind"
)

// buildPedigree returns a full ancestor tree of the given depth rooted at
// "p1" (heap numbering: parents of pi are p(2i) and p(2i+1)), with each
// couple married.
func buildPedigree(depth int) *family.Graph {
	n := (1 << depth) - 1
	g := &family.Graph{}
	for i := 1; i <= n; i++ {
		g.Nodes = append(g.Nodes, fmt.Sprintf("p%d", i))
	}
	for i := 1; 2*i+1 <= n; i++ {
		child := fmt.Sprintf("p%d", i)
		dad, mom := fmt.Sprintf("p%d", 2*i), fmt.Sprintf("p%d", 2*i+1)
		g.Edges = append(g.Edges,
			family.ParentChild(dad, child),
			family.ParentChild(mom, child),
			family.Spouse(dad, mom),
		)
	}

	return g
}

// BenchmarkShortestPath_Pedigree rebuilds the adjacency on every query.
func BenchmarkShortestPath_Pedigree(b *testing.B) {
	const depth = 10
	g := buildPedigree(depth)
	last := fmt.Sprintf("p%d", (1<<depth)-1)

	b.ReportAllocs()
	b.SetBytes(int64(len(g.Nodes) + len(g.Edges)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathfind.ShortestPath(g, "p1", last)
	}
}

// BenchmarkSearch_Pedigree amortizes adjacency construction across queries.
func BenchmarkSearch_Pedigree(b *testing.B) {
	const depth = 10
	g := buildPedigree(depth)
	adj := family.BuildAdjacency(g)
	last := fmt.Sprintf("p%d", (1<<depth)-1)

	b.ReportAllocs()
	b.SetBytes(int64(len(g.Nodes) + len(g.Edges)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathfind.Search(adj, "p1", last)
	}
}

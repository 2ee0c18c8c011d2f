package bfs_test

import (
	"testing"

	"github.com/gostructs/classics/bfs"
	"github.com/gostructs/classics/builder"
)

// BenchmarkSearch_Chain searches for the far end of a chain of N vertices,
// so every vertex is visited.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 1000
	g := chain(b, N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0, N-1)
	}
}

// BenchmarkWalk_BinaryTree walks a complete binary tree of 2^10-1 vertices
// stored as an adjacency list.
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const n = (1 << 10) - 1
	g := make(adjList, n)
	for i := 1; i < n; i++ {
		p := (i - 1) / 2
		g[p] = append(g[p], i)
		g[i] = append(g[i], p)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, 0)
	}
}

// BenchmarkSearch_MatrixGrid searches corner to corner across a 32x32 grid
// held in the adjacency matrix, so Neighbors scans a full row per dequeue.
func BenchmarkSearch_MatrixGrid(b *testing.B) {
	const side = 32
	g, err := builder.Build(side*side, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0, side*side-1)
	}
}

package paths_test

import (
	"testing"

	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/paths"
)

// BenchmarkComputeFrom_Grid measures one single-source computation on an
// M×M open grid (M² nodes, 2·M·(M−1) edges).
func BenchmarkComputeFrom_Grid(b *testing.B) {
	const M = 100
	grid := make([][]int, M)
	for y := 0; y < M; y++ {
		grid[y] = make([]int, M)
	}
	m, err := maze.FromGrid(grid, maze.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	sp, err := paths.New(m)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(m.NodeCount() + m.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = sp.ComputeFrom(0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBestPath_Corridor measures path reconstruction along a long
// chain after a single computation.
func BenchmarkBestPath_Corridor(b *testing.B) {
	const n = 10000
	m := maze.New()
	for i := 0; i < n; i++ {
		if err := m.AddNode(maze.ID(i), 0); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n-1; i++ {
		if err := m.Connect(maze.ID(i), maze.ID(i+1), 1); err != nil {
			b.Fatal(err)
		}
	}
	sp, err := paths.New(m)
	if err != nil {
		b.Fatal(err)
	}
	if err = sp.ComputeFrom(0); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = sp.BestPath(maze.ID(n - 1)); err != nil {
			b.Fatal(err)
		}
	}
}

// Package maze_test provides runnable examples for building mazes by
// hand and from 2D grids.
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/spelunk/maze"
)

// ExampleFromGrid demonstrates turning a small grid into a maze.
// Negative cells are walls; non-negative cells carry collectible value.
func ExampleFromGrid() {
	// 1) A 2×3 grid: the top-right corner is walled off.
	grid := [][]int{
		{0, 3, -1},
		{0, 0, 9},
	}

	// 2) Build with default 4-connectivity.
	m, err := maze.FromGrid(grid, maze.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Node IDs are y*width+x; node 4 is the centre of the bottom row.
	nbs, _ := m.Neighbors(4)
	fmt.Printf("nodes=%d edges=%d value=%d deg(4)=%d\n",
		m.NodeCount(), m.EdgeCount(), m.TotalValue(), len(nbs))
	// Output: nodes=5 edges=5 value=12 deg(4)=3
}

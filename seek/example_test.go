// Package seek_test provides a runnable example of the exploration
// phase on a walled grid maze.
package seek_test

import (
	"fmt"

	"github.com/katalvlaran/spelunk/env"
	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/seek"
)

// ExampleSeek explores a small grid from the top-left corner to a
// target hidden behind a wall.
func ExampleSeek() {
	// 1) A 3×3 grid with a wall in the middle; IDs are y*3+x.
	grid := [][]int{
		{0, 0, 0},
		{0, -1, 0},
		{0, 0, 0},
	}
	m, err := maze.FromGrid(grid, maze.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The agent starts at 0; the target sits at the far corner 8.
	st, err := env.NewSeekEnv(m, 0, 8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Explore. The heuristic pulls the search around the wall.
	res, err := seek.Seek(st)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v moves=%d visited=%d\n",
		st.DistanceToTarget() == 0, res.Moves, len(res.Visited))
	// Output: found=true moves=4 visited=5
}

package maze

// FromGrid constructs a maze from a non-empty, rectangular 2D slice of
// cell values. Cells with value < 0 are walls; cells with value ≥ 0 are
// open locations carrying that value as their collectible amount.
// Adjacent open cells (per opts.Conn) are joined by edges of length 1.
// Node IDs are assigned as y*width+x, so positions are recoverable.
//
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromGrid(values [][]int, opts GridOptions) (*Maze, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	m := New()

	// 1) Register every open cell as a node.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] < 0 {
				continue // wall
			}
			if err := m.AddNode(ID(y*w+x), int64(values[y][x])); err != nil {
				return nil, err
			}
		}
	}

	// 2) Connect adjacent open cells. Each offset pair is scanned from
	//    both endpoints; Adjacent filters the second encounter.
	var nx, ny int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] < 0 {
				continue
			}
			for _, off := range offsets {
				nx, ny = x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h || values[ny][nx] < 0 {
					continue
				}
				a, b := ID(y*w+x), ID(ny*w+nx)
				if m.Adjacent(a, b) {
					continue
				}
				if err := m.Connect(a, b, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

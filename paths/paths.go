// Package paths implements the single-source shortest-path oracle
// (Dijkstra with a decrease-key heap) and best-path reconstruction.
package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/pqueue"
)

// Sentinel errors for oracle operations.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to New.
	ErrNilMaze = errors.New("paths: maze is nil")

	// ErrNodeNotFound indicates a source or destination absent from the maze.
	ErrNodeNotFound = errors.New("paths: node not found in maze")

	// ErrNotComputed indicates a table read before any ComputeFrom call.
	ErrNotComputed = errors.New("paths: no source computed yet")

	// ErrUnreachable indicates the destination cannot be reached from the
	// computed source.
	ErrUnreachable = errors.New("paths: destination unreachable from source")
)

// ShortestPaths answers single-source shortest-distance and best-path
// queries over one maze. Not safe for concurrent use; the spelunk
// controllers are strictly sequential.
type ShortestPaths struct {
	m        *maze.Maze
	source   maze.ID
	computed bool
	dist     map[maze.ID]int64     // node → minimum distance from source
	prev     map[maze.ID]maze.Edge // node → travel-oriented edge reaching it
}

// New binds an oracle to m.
// Returns ErrNilMaze if m is nil.
func New(m *maze.Maze) (*ShortestPaths, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	return &ShortestPaths{m: m}, nil
}

// ComputeFrom runs Dijkstra from src and (re)fills the distance and
// predecessor tables. Edge lengths are non-negative by maze
// construction, so no negative-weight pre-scan is needed.
// Returns ErrNodeNotFound if src is absent.
// Complexity: O((V + E) log V).
func (sp *ShortestPaths) ComputeFrom(src maze.ID) error {
	// 1) Validate the source.
	if !sp.m.Has(src) {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}

	// 2) Reset tables. Absence from dist means "not reached yet";
	//    unreachable nodes simply never enter the map.
	v := sp.m.NodeCount()
	sp.dist = make(map[maze.ID]int64, v)
	sp.prev = make(map[maze.ID]maze.Edge, v)
	sp.source = src
	sp.computed = true

	// 3) Seed the frontier with the source at distance 0.
	visited := make(map[maze.ID]bool, v)
	frontier := pqueue.New[maze.ID]()
	sp.dist[src] = 0
	if err := frontier.Insert(src, 0); err != nil {
		return fmt.Errorf("paths: seeding frontier: %w", err)
	}

	// 4) Main loop: settle the closest frontier node, relax its edges.
	var u maze.ID
	var err error
	var nbs []maze.Edge
	var nd int64
	for !frontier.IsEmpty() {
		if u, err = frontier.ExtractMin(); err != nil {
			return fmt.Errorf("paths: extracting frontier minimum: %w", err)
		}
		visited[u] = true

		if nbs, err = sp.m.Neighbors(u); err != nil {
			return fmt.Errorf("paths: neighbors of %d: %w", u, err)
		}
		for _, e := range nbs {
			if visited[e.To] {
				continue // distance already final
			}
			nd = sp.dist[u] + e.Length
			old, seen := sp.dist[e.To]
			switch {
			case !seen:
				sp.dist[e.To] = nd
				sp.prev[e.To] = e
				if err = frontier.Insert(e.To, float64(nd)); err != nil {
					return fmt.Errorf("paths: inserting %d: %w", e.To, err)
				}
			case nd < old:
				sp.dist[e.To] = nd
				sp.prev[e.To] = e
				if err = frontier.UpdatePriority(e.To, float64(nd)); err != nil {
					return fmt.Errorf("paths: rescoring %d: %w", e.To, err)
				}
			}
		}
	}

	return nil
}

// Source returns the node the tables were computed from.
// Returns ErrNotComputed before the first ComputeFrom.
func (sp *ShortestPaths) Source() (maze.ID, error) {
	if !sp.computed {
		return 0, ErrNotComputed
	}

	return sp.source, nil
}

// DistanceTo returns the minimum total edge length from the computed
// source to dst.
// Returns ErrNotComputed before ComputeFrom, ErrNodeNotFound if dst is
// absent, ErrUnreachable if no path exists.
// Complexity: O(1).
func (sp *ShortestPaths) DistanceTo(dst maze.ID) (int64, error) {
	if !sp.computed {
		return 0, ErrNotComputed
	}
	if !sp.m.Has(dst) {
		return 0, fmt.Errorf("%w: destination %d", ErrNodeNotFound, dst)
	}
	d, ok := sp.dist[dst]
	if !ok {
		return 0, fmt.Errorf("%w: %d from %d", ErrUnreachable, dst, sp.source)
	}

	return d, nil
}

// BestPath reconstructs the minimum-length edge sequence from the
// computed source to dst, oriented along the direction of travel.
// BestPath(source) returns an empty path.
// Returns ErrNotComputed before ComputeFrom, ErrNodeNotFound if dst is
// absent, ErrUnreachable if no path exists.
// Complexity: O(path length).
func (sp *ShortestPaths) BestPath(dst maze.ID) ([]maze.Edge, error) {
	if _, err := sp.DistanceTo(dst); err != nil {
		return nil, err
	}

	// Walk predecessors back to the source, then reverse.
	var path []maze.Edge
	for at := dst; at != sp.source; {
		e := sp.prev[at]
		path = append(path, e)
		at = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathLength sums the edge lengths of a path as produced by BestPath.
// Complexity: O(path length).
func PathLength(path []maze.Edge) int64 {
	var total int64
	for _, e := range path {
		total += e.Length
	}

	return total
}

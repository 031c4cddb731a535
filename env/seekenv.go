package env

import (
	"fmt"

	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/paths"
	"github.com/katalvlaran/spelunk/seek"
)

// SeekEnv is the reference seek.State: it hides the maze behind the
// narrow exploration view and reports true shortest-path distances as
// the heuristic.
type SeekEnv struct {
	m      *maze.Maze
	target maze.ID
	cur    maze.ID
	dist   *paths.ShortestPaths // computed once from the target
	trace  []maze.ID            // positions, start first
}

// NewSeekEnv builds a seek environment with the agent standing on start
// and the target hidden at target. Distances are precomputed from the
// target; the maze must not change during the episode.
// Returns ErrNilMaze, or a wrapped maze/paths error for absent nodes.
func NewSeekEnv(m *maze.Maze, start, target maze.ID) (*SeekEnv, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.Has(start) {
		return nil, fmt.Errorf("env: start: %w: node %d", maze.ErrNodeNotFound, start)
	}
	sp, err := paths.New(m)
	if err != nil {
		return nil, fmt.Errorf("env: binding oracle: %w", err)
	}
	if err = sp.ComputeFrom(target); err != nil {
		return nil, fmt.Errorf("env: target distances: %w", err)
	}

	return &SeekEnv{
		m:      m,
		target: target,
		cur:    start,
		dist:   sp,
		trace:  []maze.ID{start},
	}, nil
}

// DistanceToTarget returns the heuristic distance from the current
// position to the target; zero means the agent stands on it. Positions
// with no path to the target report a huge finite distance.
func (s *SeekEnv) DistanceToTarget() int {
	return s.heuristic(s.cur)
}

// CurrentLocation returns the agent's current node.
func (s *SeekEnv) CurrentLocation() maze.ID {
	return s.cur
}

// Neighbors returns the observations for the immediate neighbors of the
// current position, ordered by ascending node ID.
func (s *SeekEnv) Neighbors() []seek.Neighbor {
	edges, err := s.m.Neighbors(s.cur)
	if err != nil {
		return nil // current position always exists; unreachable in practice
	}
	out := make([]seek.Neighbor, 0, len(edges))
	for _, e := range edges {
		out = append(out, seek.Neighbor{
			ID:               e.To,
			DistanceToTarget: s.heuristic(e.To),
		})
	}

	return out
}

// MoveTo moves the agent to id.
// Returns ErrNotAdjacent if id is not an immediate neighbor.
func (s *SeekEnv) MoveTo(id maze.ID) error {
	if !s.m.Adjacent(s.cur, id) {
		return fmt.Errorf("%w: %d→%d", ErrNotAdjacent, s.cur, id)
	}
	s.cur = id
	s.trace = append(s.trace, id)

	return nil
}

// Trace returns a copy of the position history, start node first.
func (s *SeekEnv) Trace() []maze.ID {
	out := make([]maze.ID, len(s.trace))
	copy(out, s.trace)

	return out
}

// heuristic maps the oracle's distance table onto the int contract of
// seek.State, substituting farAway for disconnected positions.
func (s *SeekEnv) heuristic(id maze.ID) int {
	d, err := s.dist.DistanceTo(id)
	if err != nil {
		// Unreachable (or unknown) positions look arbitrarily distant.
		return farAway
	}

	return int(d)
}

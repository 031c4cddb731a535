package env

import (
	"fmt"

	"github.com/katalvlaran/spelunk/maze"
)

// ScramEnv is the reference scram.State: it owns the movement budget
// and the not-yet-collected value amounts, and validates every move.
type ScramEnv struct {
	m         *maze.Maze
	exit      maze.ID
	cur       maze.ID
	steps     int64
	collected int64
	remaining map[maze.ID]int64 // value still sitting on each node
	trace     []maze.ID         // positions, start first
}

// NewScramEnv builds a scram environment with the agent standing on
// start, the exit at exit, and the given step budget. The start node's
// value is collected immediately — the agent is standing on it.
// Returns ErrNilMaze, ErrBadBudget, or a wrapped maze error for absent
// nodes.
func NewScramEnv(m *maze.Maze, start, exit maze.ID, budget int64) (*ScramEnv, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	if !m.Has(start) {
		return nil, fmt.Errorf("env: start: %w: node %d", maze.ErrNodeNotFound, start)
	}
	if !m.Has(exit) {
		return nil, fmt.Errorf("env: exit: %w: node %d", maze.ErrNodeNotFound, exit)
	}

	remaining := make(map[maze.ID]int64, m.NodeCount())
	for _, n := range m.Nodes() {
		remaining[n.ID] = n.Value
	}

	s := &ScramEnv{
		m:         m,
		exit:      exit,
		cur:       start,
		steps:     budget,
		remaining: remaining,
		trace:     []maze.ID{start},
	}
	s.pickUp(start)

	return s, nil
}

// StepsRemaining returns the movement budget still available.
func (s *ScramEnv) StepsRemaining() int64 {
	return s.steps
}

// AllNodes returns every node with its current (uncollected) value,
// sorted by ascending ID.
func (s *ScramEnv) AllNodes() []maze.Node {
	nodes := s.m.Nodes()
	for i := range nodes {
		nodes[i].Value = s.remaining[nodes[i].ID]
	}

	return nodes
}

// Graph returns the maze topology.
func (s *ScramEnv) Graph() *maze.Maze {
	return s.m
}

// CurrentNode returns the agent's current node.
func (s *ScramEnv) CurrentNode() maze.ID {
	return s.cur
}

// Exit returns the designated exit node.
func (s *ScramEnv) Exit() maze.ID {
	return s.exit
}

// MoveTo moves the agent to id, charging the edge length against the
// budget and collecting id's value on first entry.
// Returns ErrNotAdjacent if id is not an immediate neighbor, and
// ErrBudgetExhausted if the edge costs more than the remaining budget.
func (s *ScramEnv) MoveTo(id maze.ID) error {
	if !s.m.Adjacent(s.cur, id) {
		return fmt.Errorf("%w: %d→%d", ErrNotAdjacent, s.cur, id)
	}
	length, err := s.edgeLength(s.cur, id)
	if err != nil {
		return err
	}
	if length > s.steps {
		return fmt.Errorf("%w: move %d→%d costs %d, %d left", ErrBudgetExhausted, s.cur, id, length, s.steps)
	}

	s.steps -= length
	s.cur = id
	s.trace = append(s.trace, id)
	s.pickUp(id)

	return nil
}

// Collected returns the total value gathered so far this episode.
func (s *ScramEnv) Collected() int64 {
	return s.collected
}

// Trace returns a copy of the position history, start node first.
func (s *ScramEnv) Trace() []maze.ID {
	out := make([]maze.ID, len(s.trace))
	copy(out, s.trace)

	return out
}

// pickUp transfers whatever value remains on id to the collected total.
func (s *ScramEnv) pickUp(id maze.ID) {
	s.collected += s.remaining[id]
	s.remaining[id] = 0
}

// edgeLength finds the length of the edge joining a and b.
func (s *ScramEnv) edgeLength(a, b maze.ID) (int64, error) {
	edges, err := s.m.Neighbors(a)
	if err != nil {
		return 0, fmt.Errorf("env: neighbors of %d: %w", a, err)
	}
	for _, e := range edges {
		if e.To == b {
			return e.Length, nil
		}
	}

	return 0, fmt.Errorf("%w: %d→%d", ErrNotAdjacent, a, b)
}

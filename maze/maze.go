package maze

import (
	"fmt"
	"sort"
)

// Maze is a weighted, undirected graph of maze locations. Build it
// with AddNode and Connect (or FromGrid), then treat it as read-only:
// the controllers never mutate a maze, and no internal locking is
// performed.
type Maze struct {
	nodes map[ID]Node   // node ID → node record
	adj   map[ID][]Edge // node ID → outward-oriented edges
	edges map[[2]ID]bool
	total int64 // sum of all node values
}

// New returns an empty maze ready for AddNode/Connect calls.
func New() *Maze {
	return &Maze{
		nodes: make(map[ID]Node),
		adj:   make(map[ID][]Edge),
		edges: make(map[[2]ID]bool),
	}
}

// AddNode registers a node with the given collectible value.
// Returns ErrDuplicateNode if id is already present,
// ErrNegativeValue if value < 0.
// Complexity: O(1).
func (m *Maze) AddNode(id ID, value int64) error {
	if value < 0 {
		return fmt.Errorf("%w: node %d value=%d", ErrNegativeValue, id, value)
	}
	if _, ok := m.nodes[id]; ok {
		return fmt.Errorf("%w: node %d", ErrDuplicateNode, id)
	}
	m.nodes[id] = Node{ID: id, Value: value}
	m.total += value

	return nil
}

// Connect joins nodes a and b with an undirected edge of the given
// length. Both endpoints must already exist.
// Returns ErrSelfLoop if a == b, ErrBadLength if length < 0,
// ErrNodeNotFound if either endpoint is absent, and ErrDuplicateEdge
// if the pair is already connected.
// Complexity: O(1).
func (m *Maze) Connect(a, b ID, length int64) error {
	if a == b {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, a)
	}
	if length < 0 {
		return fmt.Errorf("%w: edge %d—%d length=%d", ErrBadLength, a, b, length)
	}
	if _, ok := m.nodes[a]; !ok {
		return fmt.Errorf("%w: node %d", ErrNodeNotFound, a)
	}
	if _, ok := m.nodes[b]; !ok {
		return fmt.Errorf("%w: node %d", ErrNodeNotFound, b)
	}
	key := edgeKey(a, b)
	if m.edges[key] {
		return fmt.Errorf("%w: edge %d—%d", ErrDuplicateEdge, a, b)
	}
	m.edges[key] = true

	// Store both orientations so Neighbors never has to flip edges.
	m.adj[a] = append(m.adj[a], Edge{From: a, To: b, Length: length})
	m.adj[b] = append(m.adj[b], Edge{From: b, To: a, Length: length})

	return nil
}

// Has reports whether the maze contains a node with the given ID.
// Complexity: O(1).
func (m *Maze) Has(id ID) bool {
	_, ok := m.nodes[id]

	return ok
}

// Node returns the node record for id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1).
func (m *Maze) Node(id ID) (Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// Nodes returns all nodes sorted by ascending ID. The slice is a copy;
// callers may keep or mutate it freely.
// Complexity: O(V log V).
func (m *Maze) Nodes() []Node {
	out := make([]Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Neighbors returns the edges leaving id, oriented outward
// (Edge.From == id), sorted by ascending destination ID.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg log deg).
func (m *Maze) Neighbors(id ID) ([]Edge, error) {
	if _, ok := m.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(m.adj[id]))
	copy(out, m.adj[id])
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Adjacent reports whether a and b are joined by an edge.
// Complexity: O(1).
func (m *Maze) Adjacent(a, b ID) bool {
	return m.edges[edgeKey(a, b)]
}

// NodeCount returns the number of nodes in the maze.
// Complexity: O(1).
func (m *Maze) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of undirected edges in the maze.
// Complexity: O(1).
func (m *Maze) EdgeCount() int {
	return len(m.edges)
}

// TotalValue returns the sum of all node values in the maze.
// Complexity: O(1).
func (m *Maze) TotalValue() int64 {
	return m.total
}

// edgeKey canonicalizes an undirected pair so both orientations map to
// the same key.
func edgeKey(a, b ID) [2]ID {
	if a > b {
		a, b = b, a
	}

	return [2]ID{a, b}
}

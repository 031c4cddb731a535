// Package maze defines the core maze types (ID, Node, Edge, Maze),
// grid-builder options, and sentinel errors.
package maze

import (
	"errors"
)

// Sentinel errors for maze construction and queries.
var (
	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("maze: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("maze: node not found")

	// ErrSelfLoop indicates Connect was asked to join a node to itself.
	ErrSelfLoop = errors.New("maze: self-loop not allowed")

	// ErrBadLength indicates Connect was given a negative edge length.
	ErrBadLength = errors.New("maze: edge length must be non-negative")

	// ErrDuplicateEdge indicates Connect was called twice for the same pair.
	ErrDuplicateEdge = errors.New("maze: edge already exists")

	// ErrNegativeValue indicates AddNode was given a negative value amount.
	ErrNegativeValue = errors.New("maze: node value must be non-negative")

	// ErrEmptyGrid indicates FromGrid input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")

	// ErrNonRectangular indicates FromGrid rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all grid rows must have the same length")
)

// ID uniquely identifies a node within its Maze. It is opaque to the
// controllers; FromGrid assigns y*Width+x, hand-built mazes may use
// any values.
type ID int64

// Node represents a single maze location.
//
// Value is the collectible amount sitting on the node. It is part of
// the static maze description; environments decide when it is picked up.
type Node struct {
	// ID is the unique identifier for this node.
	ID ID

	// Value is the non-negative collectible amount at this node.
	Value int64
}

// Edge represents an undirected corridor between two nodes.
//
// Edges returned by Maze.Neighbors and paths.BestPath are oriented
// along the direction of travel: From is where you stand, To is where
// the edge takes you.
type Edge struct {
	// From is the origin node ID for this orientation of the edge.
	From ID

	// To is the destination node ID for this orientation of the edge.
	To ID

	// Length is the non-negative traversal cost in budget units.
	Length int64
}

// Connectivity selects grid neighbor connectivity: orthogonal (Conn4)
// or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for FromGrid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

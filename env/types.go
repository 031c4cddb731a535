// Package env defines sentinel errors shared by the reference
// environments.
package env

import (
	"errors"
)

// Sentinel errors for environment operations.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to a constructor.
	ErrNilMaze = errors.New("env: maze is nil")

	// ErrNotAdjacent indicates a MoveTo destination that is not an
	// immediate neighbor of the current position.
	ErrNotAdjacent = errors.New("env: destination is not an immediate neighbor")

	// ErrBudgetExhausted indicates a move whose edge length exceeds the
	// remaining step budget.
	ErrBudgetExhausted = errors.New("env: movement budget exhausted")

	// ErrBadBudget indicates a negative initial budget.
	ErrBadBudget = errors.New("env: budget must be non-negative")
)

// farAway is the heuristic distance reported for nodes with no path to
// the target. Large enough to never be mistaken for a real maze
// distance, small enough to survive int conversion on 32-bit platforms.
const farAway = 1<<31 - 1

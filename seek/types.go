// Package seek defines the exploration state interface, options, and
// sentinel errors for the seek phase.
package seek

import (
	"context"
	"errors"

	"github.com/katalvlaran/spelunk/maze"
)

// Sentinel errors for seek execution.
var (
	// ErrNilState is returned when a nil State is passed to Seek.
	ErrNilState = errors.New("seek: state is nil")

	// ErrTargetUnreachable is returned when exploration exhausts every
	// reachable unvisited node without the heuristic distance hitting zero.
	ErrTargetUnreachable = errors.New("seek: target unreachable from start")
)

// Neighbor is one per-step observation during exploration: a reachable
// neighbor node and its known heuristic distance to the target.
type Neighbor struct {
	// ID identifies the neighbor node.
	ID maze.ID

	// DistanceToTarget is the heuristic distance from this neighbor to
	// the target; lower means the neighbor looks closer.
	DistanceToTarget int
}

// State is the narrow view of the environment the exploration phase is
// allowed to see. The graph itself stays hidden; only the current
// location and its immediate surroundings are observable.
type State interface {
	// DistanceToTarget returns the heuristic distance from the current
	// location to the target; zero means the agent stands on the target.
	DistanceToTarget() int

	// CurrentLocation returns the agent's current node.
	CurrentLocation() maze.ID

	// Neighbors returns the observations for the immediate neighbors of
	// the current location, in a stable order.
	Neighbors() []Neighbor

	// MoveTo moves the agent to id, which must be an immediate neighbor
	// of the current location. Implementations fail otherwise.
	MoveTo(id maze.ID) error
}

// Option configures optional behavior of Seek.
type Option func(*Options)

// Options holds configurable parameters for the seek phase.
type Options struct {
	// Ctx allows cancellation between moves; defaults to context.Background().
	Ctx context.Context

	// OnMove, if non-nil, is invoked after every committed move —
	// candidate advances and compensating backtracks alike.
	OnMove func(from, to maze.ID)
}

// DefaultOptions returns an Options struct with a background context
// and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnMove: nil,
	}
}

// WithContext returns an Option that sets the Context for Seek.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnMove returns an Option that installs fn as a move observer.
func WithOnMove(fn func(from, to maze.ID)) Option {
	return func(o *Options) {
		o.OnMove = fn
	}
}

// Result captures the outcome of one exploration episode.
type Result struct {
	// Moves counts every committed MoveTo, backtracks included.
	Moves int

	// Backtracks counts the compensating moves issued after failed
	// branches.
	Backtracks int

	// Visited flags every node the agent stood on during the episode,
	// the start node included.
	Visited map[maze.ID]bool
}

// Package scram defines the collection state interface, options, and
// sentinel errors for the scram phase.
package scram

import (
	"context"
	"errors"

	"github.com/katalvlaran/spelunk/maze"
)

// Sentinel errors for scram execution.
var (
	// ErrNilState is returned when a nil State is passed to Collect,
	// Return, or Scram.
	ErrNilState = errors.New("scram: state is nil")

	// ErrNilGraph is returned when the state exposes a nil maze.
	ErrNilGraph = errors.New("scram: state graph is nil")

	// ErrExitUnreachable is returned when no path exists from the
	// current node to the exit.
	ErrExitUnreachable = errors.New("scram: exit unreachable from current node")
)

// Scoring constants. Tuned empirically; preserved verbatim for
// behavioral parity across implementations.
const (
	// proximityWeight scales the distance-to-candidate term.
	proximityWeight = 4.2

	// exitWeight scales the distance-to-exit term before budget damping.
	exitWeight = 1.0
)

// State is the view of the environment the scram phase operates on.
// The full maze is known by now; only position, budget, and remaining
// value amounts evolve.
type State interface {
	// StepsRemaining returns the movement budget still available.
	StepsRemaining() int64

	// AllNodes returns a snapshot of every node with its current
	// (uncollected) value amount.
	AllNodes() []maze.Node

	// Graph returns the full maze topology for shortest-path queries.
	Graph() *maze.Maze

	// CurrentNode returns the agent's current node.
	CurrentNode() maze.ID

	// Exit returns the designated exit node.
	Exit() maze.ID

	// MoveTo moves the agent to id, which must be an immediate neighbor
	// of the current node. Implementations fail otherwise.
	MoveTo(id maze.ID) error
}

// Option configures optional behavior of Collect, Return, and Scram.
type Option func(*Options)

// Options holds configurable parameters for the scram phase.
type Options struct {
	// Ctx allows cancellation between moves; defaults to context.Background().
	Ctx context.Context

	// OnMove, if non-nil, is invoked after every committed move.
	OnMove func(from, to maze.ID)

	// OnCollect, if non-nil, is invoked when a candidate node is chosen,
	// with the score that won it.
	OnCollect func(chosen maze.ID, score float64)
}

// DefaultOptions returns an Options struct with a background context
// and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnMove:    nil,
		OnCollect: nil,
	}
}

// WithContext returns an Option that sets the Context for the phase.
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

// WithOnCollect returns an Option that installs fn as a candidate-choice
// observer.
func WithOnCollect(fn func(chosen maze.ID, score float64)) Option {
	return func(o *Options) {
		o.OnCollect = fn
	}
}

// score ranks a candidate node for the min-queue: the more value per
// weighted unit of distance, the more negative (better) the score.
// steps damps the exit term — a flush budget all but ignores it.
func score(value, distToNode, distToExit, steps int64) float64 {
	return -1 * float64(value) /
		(proximityWeight*float64(distToNode) +
			1/float64(steps+1)*exitWeight*float64(distToExit) + 1)
}

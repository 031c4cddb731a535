package scram

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spelunk/paths"
)

// Return walks the agent from its current node to the exit along the
// single best path, one move per edge. On success the agent stands on
// the exit; an agent already on the exit succeeds without moving.
//
// Returns ErrExitUnreachable if no path to the exit exists (an explicit
// failure, never a silent return), a context error, or a wrapped
// MoveTo error.
func Return(st State, opts ...Option) error {
	// 1. Validate the state handle and graph.
	if st == nil {
		return ErrNilState
	}
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}
	m := st.Graph()
	if m == nil {
		return ErrNilGraph
	}

	// 2. Compute the best path from here to the exit.
	sp, err := paths.New(m)
	if err != nil {
		return fmt.Errorf("scram: binding oracle: %w", err)
	}
	cur := st.CurrentNode()
	if err = sp.ComputeFrom(cur); err != nil {
		return fmt.Errorf("scram: distances from %d: %w", cur, err)
	}
	best, err := sp.BestPath(st.Exit())
	if err != nil {
		if errors.Is(err, paths.ErrUnreachable) {
			return fmt.Errorf("%w: node %d", ErrExitUnreachable, cur)
		}

		return fmt.Errorf("scram: path to exit: %w", err)
	}

	// 3. Walk it edge by edge; the final edge lands on the exit.
	for _, e := range best {
		select {
		case <-sopts.Ctx.Done():
			return sopts.Ctx.Err()
		default:
		}
		if err = move(st, sopts, e.To); err != nil {
			return err
		}
	}

	return nil
}

// Scram runs the full scram phase: greedy collection, then the walk to
// the exit unless collection already handed off to it. On success the
// agent stands on the exit with a non-negative budget.
func Scram(st State, opts ...Option) error {
	handedOff, err := Collect(st, opts...)
	if err != nil {
		return err
	}
	if handedOff {
		return nil
	}

	return Return(st, opts...)
}

package scram

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/paths"
	"github.com/katalvlaran/spelunk/pqueue"
)

// collector encapsulates state during one collection episode.
type collector struct {
	st       State
	opts     Options
	fromCur  *paths.ShortestPaths // distances from the current node, recomputed per iteration
	fromExit *paths.ShortestPaths // distances from the exit; equal to to-exit distances (undirected)
	queue    *pqueue.Queue[maze.ID]
}

// Collect moves the agent through value-bearing nodes while the budget
// safely allows it, then hands off to Return the moment the safety
// margin would vanish. It reports whether that hand-off happened — a
// true result means the agent already stands on the exit.
//
// Each iteration scores every reachable node by greedy value density,
// walks the shortest path toward the best candidate edge by edge, and
// re-checks the safe-return invariant before committing each edge.
func Collect(st State, opts ...Option) (bool, error) {
	// 1. Validate the state handle and graph.
	if st == nil {
		return false, ErrNilState
	}
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}
	m := st.Graph()
	if m == nil {
		return false, ErrNilGraph
	}

	// 2. Bind the two oracles and the persistent candidate queue.
	fromCur, err := paths.New(m)
	if err != nil {
		return false, fmt.Errorf("scram: binding oracle: %w", err)
	}
	fromExit, err := paths.New(m)
	if err != nil {
		return false, fmt.Errorf("scram: binding exit oracle: %w", err)
	}
	c := &collector{
		st:       st,
		opts:     sopts,
		fromCur:  fromCur,
		fromExit: fromExit,
		queue:    pqueue.New[maze.ID](),
	}

	return c.run()
}

// run is the outer greedy loop. lengthToExit carries the safety bound
// computed while walking the previous candidate path; it starts at
// MinInt64 so the first iteration always runs, and is reset to zero at
// the top of each iteration. The loop also ends once no candidate
// scores below zero: every remaining node is value-free, and walking
// toward one would only burn budget.
func (c *collector) run() (bool, error) {
	lengthToExit := int64(math.MinInt64)
	var done, handedOff bool
	var err error
	for c.st.StepsRemaining() >= lengthToExit {
		// Cancellation check between iterations.
		select {
		case <-c.opts.Ctx.Done():
			return false, c.opts.Ctx.Err()
		default:
		}

		lengthToExit = 0
		if done, handedOff, lengthToExit, err = c.iterate(lengthToExit); err != nil {
			return handedOff, err
		}
		if handedOff {
			return true, nil
		}
		if done {
			break
		}
	}

	return false, nil
}

// iterate performs one score-choose-walk round. It reports whether
// collection is finished (nothing left worth walking to), whether the
// walk aborted into Return, and the possibly updated safety bound.
func (c *collector) iterate(lengthToExit int64) (bool, bool, int64, error) {
	// 1. Two single-source computations serve every distance this
	//    iteration needs: from the current node and from the exit.
	cur := c.st.CurrentNode()
	if err := c.fromCur.ComputeFrom(cur); err != nil {
		return false, false, lengthToExit, fmt.Errorf("scram: distances from %d: %w", cur, err)
	}
	if err := c.fromExit.ComputeFrom(c.st.Exit()); err != nil {
		return false, false, lengthToExit, fmt.Errorf("scram: distances from exit %d: %w", c.st.Exit(), err)
	}
	if _, err := c.fromExit.DistanceTo(cur); err != nil {
		if errors.Is(err, paths.ErrUnreachable) {
			return false, false, lengthToExit, fmt.Errorf("%w: node %d", ErrExitUnreachable, cur)
		}

		return false, false, lengthToExit, fmt.Errorf("scram: exit distance of %d: %w", cur, err)
	}

	// 2. Re-score every reachable node. The queue persists across
	//    iterations, so a node may already be present — branch to an
	//    in-place update instead of an insert.
	if err := c.scoreAll(); err != nil {
		return false, false, lengthToExit, err
	}

	// 3. Inspect the best candidate. A winning score of zero or above
	//    means no reachable node carries value anymore; collection is
	//    finished (walking further would only burn budget).
	_, winning, err := c.queue.Peek()
	if err != nil {
		return false, false, lengthToExit, fmt.Errorf("scram: choosing candidate: %w", err)
	}
	if winning >= 0 {
		return true, false, lengthToExit, nil
	}
	goTo, err := c.queue.ExtractMin()
	if err != nil {
		return false, false, lengthToExit, fmt.Errorf("scram: choosing candidate: %w", err)
	}
	best, err := c.fromCur.BestPath(goTo)
	if err != nil {
		return false, false, lengthToExit, fmt.Errorf("scram: path to candidate %d: %w", goTo, err)
	}
	if c.opts.OnCollect != nil {
		c.opts.OnCollect(goTo, winning)
	}
	// The chosen node can be the one we stand on when its value has
	// not been picked up by the environment; the empty walk would
	// never touch the budget, so stop collecting instead of spinning.
	if len(best) == 0 {
		return true, false, lengthToExit, nil
	}

	// 4. Walk the path one edge at a time, re-checking the safe-return
	//    margin before committing each edge.
	handedOff, bound, err := c.walk(best, lengthToExit)

	return false, handedOff, bound, err
}

// scoreAll scores every node reachable from the current position and
// with a reachable exit. Unreachable nodes are skipped; they cannot be
// visited this episode.
func (c *collector) scoreAll() error {
	steps := c.st.StepsRemaining()
	var dNode, dExit int64
	var err error
	for _, n := range c.st.AllNodes() {
		if dNode, err = c.fromCur.DistanceTo(n.ID); err != nil {
			if errors.Is(err, paths.ErrUnreachable) {
				continue
			}

			return fmt.Errorf("scram: distance to %d: %w", n.ID, err)
		}
		if dExit, err = c.fromExit.DistanceTo(n.ID); err != nil {
			if errors.Is(err, paths.ErrUnreachable) {
				continue
			}

			return fmt.Errorf("scram: exit distance of %d: %w", n.ID, err)
		}

		s := score(n.Value, dNode, dExit, steps)
		if c.queue.Contains(n.ID) {
			if err = c.queue.UpdatePriority(n.ID, s); err != nil {
				return fmt.Errorf("scram: rescoring %d: %w", n.ID, err)
			}
		} else if err = c.queue.Insert(n.ID, s); err != nil {
			return fmt.Errorf("scram: scoring %d: %w", n.ID, err)
		}
	}

	return nil
}

// walk commits the chosen path edge by edge. Before each edge it
// computes lengthToExit = edge length + shortest distance from the
// edge's far end to the exit; the edge is committed only while
// StepsRemaining stays strictly above that bound. Otherwise the walk
// aborts into Return, completing the episode.
func (c *collector) walk(best []maze.Edge, lengthToExit int64) (bool, int64, error) {
	var dExit int64
	var err error
	for _, e := range best {
		select {
		case <-c.opts.Ctx.Done():
			return false, lengthToExit, c.opts.Ctx.Err()
		default:
		}

		lengthToExit = e.Length
		if dExit, err = c.fromExit.DistanceTo(e.To); err != nil {
			if errors.Is(err, paths.ErrUnreachable) {
				return false, lengthToExit, fmt.Errorf("%w: node %d", ErrExitUnreachable, e.To)
			}

			return false, lengthToExit, fmt.Errorf("scram: exit distance of %d: %w", e.To, err)
		}
		lengthToExit += dExit

		if c.st.StepsRemaining() > lengthToExit {
			if err = move(c.st, c.opts, e.To); err != nil {
				return false, lengthToExit, err
			}

			continue
		}

		// Margin gone: guaranteed-return mode.
		if err = Return(c.st, withOptions(c.opts)); err != nil {
			return true, lengthToExit, err
		}

		return true, lengthToExit, nil
	}

	return false, lengthToExit, nil
}

// move issues one MoveTo command and fires the OnMove hook.
func move(st State, opts Options, to maze.ID) error {
	from := st.CurrentNode()
	if err := st.MoveTo(to); err != nil {
		return fmt.Errorf("scram: move %d→%d: %w", from, to, err)
	}
	if opts.OnMove != nil {
		opts.OnMove(from, to)
	}

	return nil
}

// withOptions re-wraps an already-applied Options value so it can be
// forwarded to another phase entry point.
func withOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

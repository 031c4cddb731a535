package seek

import (
	"fmt"

	"github.com/katalvlaran/spelunk/maze"
	"github.com/katalvlaran/spelunk/pqueue"
)

// explorer encapsulates state during one exploration episode.
type explorer struct {
	st   State   // the environment view
	opts Options // episode options
	res  *Result // result collector; res.Visited is the episode's visited set
}

// Seek drives the agent from its current location to the target node
// (heuristic distance zero) by priority-guided depth-first search with
// backtracking. The visited set is created here and discarded when Seek
// returns, so every call is a fresh episode.
//
// Returns the episode Result and, on failure, ErrTargetUnreachable (the
// explored region exhausted without success), a context error, or a
// wrapped MoveTo error. The Result is valid in all cases.
func Seek(st State, opts ...Option) (*Result, error) {
	// 1. Validate the state handle.
	if st == nil {
		return nil, ErrNilState
	}

	// 2. Apply options.
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Fresh per-episode result and visited set.
	res := &Result{Visited: make(map[maze.ID]bool)}

	// 4. Already standing on the target: nothing to do.
	if st.DistanceToTarget() == 0 {
		res.Visited[st.CurrentLocation()] = true

		return res, nil
	}

	// 5. Explore. A clean return with nonzero distance means the
	//    reachable region ran out of unvisited nodes.
	e := &explorer{st: st, opts: sopts, res: res}
	if err := e.explore(); err != nil {
		return res, err
	}
	if st.DistanceToTarget() != 0 {
		return res, ErrTargetUnreachable
	}

	return res, nil
}

// explore expands the current location: mark it visited, rank its
// unvisited neighbors by ascending heuristic distance, then move into
// each candidate in turn and recurse. A branch that returns with the
// target still unfound is compensated by a move back to this frame's
// origin, so the next candidate is tried from a consistent position.
// Success anywhere down the chain unwinds with no further movement.
func (e *explorer) explore() error {
	// 1. Cancellation check.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	// 2. Standing on the target: propagate success up the call chain.
	if e.st.DistanceToTarget() == 0 {
		e.res.Visited[e.st.CurrentLocation()] = true

		return nil
	}

	// 3. Mark the origin of this frame visited.
	origin := e.st.CurrentLocation()
	e.res.Visited[origin] = true

	// 4. Rank unvisited neighbors by heuristic distance; observation
	//    order breaks ties (the queue is stable).
	candidates := pqueue.New[maze.ID]()
	for _, nb := range e.st.Neighbors() {
		if e.res.Visited[nb.ID] || candidates.Contains(nb.ID) {
			continue
		}
		if err := candidates.Insert(nb.ID, float64(nb.DistanceToTarget)); err != nil {
			return fmt.Errorf("seek: ranking neighbor %d: %w", nb.ID, err)
		}
	}

	// 5. Try candidates closest-looking first.
	var next maze.ID
	var err error
	for !candidates.IsEmpty() {
		// A deeper branch may have reached the target; stop trying.
		if e.st.DistanceToTarget() == 0 {
			return nil
		}

		if next, err = candidates.ExtractMin(); err != nil {
			return fmt.Errorf("seek: extracting candidate: %w", err)
		}

		// 5.1 Advance into the candidate and recurse.
		if err = e.move(next); err != nil {
			return err
		}
		if err = e.explore(); err != nil {
			return err
		}

		// 5.2 Failed branch: compensate back to this frame's origin.
		if e.st.DistanceToTarget() != 0 {
			if err = e.move(origin); err != nil {
				return err
			}
			e.res.Backtracks++
		}
	}

	return nil
}

// move issues one MoveTo command and records it.
func (e *explorer) move(to maze.ID) error {
	from := e.st.CurrentLocation()
	if err := e.st.MoveTo(to); err != nil {
		return fmt.Errorf("seek: move %d→%d: %w", from, to, err)
	}
	e.res.Moves++
	if e.opts.OnMove != nil {
		e.opts.OnMove(from, to)
	}

	return nil
}

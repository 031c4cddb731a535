// Package seek implements the exploration phase of a spelunk episode:
// priority-guided depth-first search with backtracking over an
// initially-unknown maze, driving the agent to a target it can only
// sense through a heuristic distance.
//
// Overview:
//
//   - The agent observes the world through the State interface: its
//     current location, a heuristic distance to the target, and the
//     immediate neighbors with their own heuristic distances.
//   - Seek marks the current location visited, ranks the unvisited
//     neighbors by ascending heuristic distance (closer-looking first,
//     ties by observation order), and tries them one by one: move,
//     recurse, and — if the branch failed to find the target — move
//     back to the branch's origin so the next candidate starts from a
//     consistent position.
//   - Reaching heuristic distance zero terminates the search
//     immediately; the recursion unwinds without further movement.
//   - The visited set lives and dies inside one Seek call, so repeated
//     episodes on the same agent start clean.
//
// Termination: every recursion level either reaches the target or
// exhausts its unvisited neighbors, and the visited set grows
// monotonically, so Seek always terminates. If the whole reachable
// region is exhausted without reaching the target, Seek returns
// ErrTargetUnreachable (exhaustion is an observable failure, not a
// silent return).
//
// Side effects: every successful candidate move and every compensating
// backtrack move is a MoveTo command issued to the environment; Seek
// never issues a move to a node that is not an immediate neighbor of
// the agent's position at that moment.
//
// Complexity:
//
//   - Time:   O(V·(M + deg log deg)) where M is the cost of one MoveTo;
//     each node is expanded at most once, each expansion heaps its
//     neighbors.
//   - Memory: O(V) for the visited set plus recursion depth ≤ V.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation between moves.
//   - WithOnMove(fn)    observes every committed move (including
//     backtracks) as (from, to) pairs.
//
// Errors:
//
//   - ErrNilState            if st is nil.
//   - ErrTargetUnreachable   if exploration exhausts without success.
//   - context.Canceled       if ctx is done.
//   - any error surfaced by State.MoveTo, wrapped with the move.
package seek

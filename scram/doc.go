// Package scram implements the collection-and-escape phase of a
// spelunk episode: greedy value-maximizing movement under a hard step
// budget, with a guaranteed safe return to the exit.
//
// Overview:
//
//   - By the scram phase the maze is fully known. The agent sees it
//     through the State interface: remaining steps, the node set with
//     current (uncollected) value amounts, its position, and the exit.
//   - Collect repeatedly scores every reachable node with a greedy
//     value-density heuristic, extracts the best candidate, and walks
//     the shortest path toward it one edge at a time. Before each edge
//     it re-checks the safe-return invariant: the step committed plus
//     the shortest distance from the edge's far end to the exit must
//     stay strictly below the remaining budget. The moment the margin
//     would vanish, Collect aborts into Return and reports the
//     hand-off.
//   - Return computes the single best path from the current node to
//     the exit and walks it edge by edge.
//   - Scram is the phase driver: Collect, then Return unless Collect
//     already handed off.
//
// Scoring:
//
//	score(n) = -value(n) / (4.2·dist(current,n) + (1/(steps+1))·1.0·dist(n,exit) + 1)
//
// Lower is better (the negation turns value-density maximization into
// min-queue extraction). The 4.2 proximity weight and the 1/(steps+1)
// damping on the exit term are tuned constants: with a flush budget
// the exit distance barely matters, and it gains relative weight as
// the budget tightens. The candidate queue persists across iterations,
// so nodes are re-scored in place (Contains → UpdatePriority) rather
// than re-inserted. Only value-bearing nodes score below zero;
// collection ends as soon as the winning score is non-negative, at
// which point the budget is spent on nothing but the walk home.
//
// Each Collect iteration performs exactly two single-source
// shortest-path computations — from the current node and from the exit
// (the maze is undirected, so from-exit distances equal to-exit
// distances) — instead of one per candidate.
//
// Safe-return invariant: StepsRemaining never drops below the shortest
// known distance from the agent's position to the exit at the moment
// of any committed move.
//
// Complexity per Collect iteration: O((V + E) log V) for the two
// Dijkstra passes plus O(V log V) for scoring.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation between moves.
//   - WithOnMove(fn)     observes every committed move as (from, to).
//   - WithOnCollect(fn)  observes each chosen candidate node and its score.
//
// Errors:
//
//   - ErrNilState        if st is nil.
//   - ErrNilGraph        if the state exposes a nil maze.
//   - ErrExitUnreachable if no path from the current node to the exit
//     exists (an explicit failure, never a silent return).
//   - context.Canceled   if ctx is done.
//   - any error surfaced by State.MoveTo, wrapped with the move.
package scram

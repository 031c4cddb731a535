// Package env provides a reference in-memory environment for spelunk
// episodes: concrete implementations of seek.State and scram.State over
// a maze.Maze, suitable for tests, examples, and simulation.
//
// SeekEnv drives the exploration phase. The heuristic distance-to-target
// it reports is the true shortest-path distance, computed once from the
// target (the maze is static during an episode); nodes in a different
// component report a huge finite distance, so an unreachable target is
// observable as heuristic exhaustion rather than a crash.
//
// ScramEnv drives the collection phase. It owns the movement budget
// (decremented by edge length on every move), collects a node's value
// on first entry (the start node included), and refuses moves that are
// not to an immediate neighbor or that would overdraw the budget — the
// controllers are expected never to trigger either refusal.
//
// Both environments record the full position trace, start node first,
// which the test suite uses to assert movement-level properties.
package env

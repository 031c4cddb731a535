// Package spelunk is a small toolkit for autonomous maze navigation:
// explore an initially-unknown weighted maze to find a target, then
// greedily collect value and escape before a movement budget runs out.
//
// 🚀 What is spelunk?
//
//	A pure-Go library that brings together:
//		• maze/   — the weighted, undirected maze graph + grid builder
//		• pqueue/ — a stable generic min-priority queue with decrease-key
//		• paths/  — single-source shortest paths & best-path reconstruction
//		• seek/   — priority-guided depth-first exploration with backtracking
//		• scram/  — greedy value collection under a hard step budget + safe return
//		• agent/  — the two-phase seek-then-scram episode driver
//		• env/    — a reference in-memory environment for tests and simulation
//
// ✨ Why choose spelunk?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable priority ordering, reproducible traces
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnMove, OnCollect…) for custom logic
//
// An episode has two phases. In the seek phase the agent only sees its
// current location, a heuristic distance to the target, and its immediate
// neighbors; seek.Seek drives it to the target with a priority-guided DFS.
// In the scram phase the full maze is known and a step budget is imposed;
// scram.Scram gathers as much value as the budget safely allows and walks
// the agent to the exit, never breaking the safe-return guarantee.
//
// Quick ASCII example (unit edge lengths, S start, T target/exit):
//
//	    S───•───•
//	        │   │
//	        •───T
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/spelunk
package spelunk

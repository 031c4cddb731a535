// Package paths provides the shortest-path oracle used by the scram
// controllers: single-source distances over a maze plus best-path
// reconstruction.
//
// Overview:
//
//   - A ShortestPaths value is bound to one maze at construction.
//   - ComputeFrom(src) runs Dijkstra from src and fills the internal
//     distance and predecessor tables. Each call replaces the previous
//     tables; the oracle answers for one source at a time.
//   - DistanceTo(dst) reads the table: the minimum total edge length
//     from the computed source to dst.
//   - BestPath(dst) reconstructs the minimum-length edge sequence from
//     the computed source to dst. Edges are oriented along the
//     direction of travel (each Edge.To is the next position), so a
//     caller can walk the path by issuing MoveTo(e.To) per edge.
//     BestPath(source) is the empty path.
//
// The maze is undirected, so distances are symmetric: computing from
// the exit once answers every node's distance to the exit. The scram
// controller leans on this to avoid per-candidate recomputation.
//
// Complexity:
//
//   - ComputeFrom: O((V + E) log V) with a decrease-key heap
//   - DistanceTo:  O(1)
//   - BestPath:    O(path length)
//
// Error handling (sentinel errors):
//
//   - ErrNilMaze     if New is given a nil maze.
//   - ErrNodeNotFound if a source or destination is absent from the maze.
//   - ErrNotComputed if DistanceTo/BestPath is called before ComputeFrom.
//   - ErrUnreachable if dst cannot be reached from the computed source.
//
// Priorities are carried as float64 inside the heap; edge lengths are
// exact up to 2⁵³, far beyond any realistic maze.
package paths

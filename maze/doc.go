// Package maze provides the weighted, undirected maze graph that the
// spelunk controllers navigate. It supports:
//
//   - Incremental construction: AddNode + Connect with validation
//   - Immutable-by-convention queries: Nodes, Neighbors, Node, Has
//   - A grid builder: FromGrid turns a rectangular 2D int grid into a maze
//     (negative cells are walls, non-negative cells are open and carry
//     that value as a collectible amount)
//   - Four- or eight-connectivity for grid mazes (Conn4 or Conn8)
//
// Every node carries an int64 Value (the collectible amount sitting on
// it) and every edge a non-negative int64 Length (its traversal cost in
// budget units). Edges are undirected: Connect(a, b, l) makes b visible
// from a and a visible from b; Neighbors(id) always returns edges
// oriented outward (Edge.From == id), so Edge.To is the step destination.
//
// Determinism: Nodes() returns nodes sorted by ID and Neighbors()
// returns edges sorted by destination ID, so traversals over a maze are
// reproducible run to run.
//
// Complexity:
//
//   - AddNode / Connect / Has / Node: O(1) (amortized; Connect is O(1)
//     plus the duplicate check)
//   - Nodes: O(V log V) for the sorted copy
//   - Neighbors: O(deg log deg) for the sorted copy
//   - FromGrid: O(W×H) time and memory
//
// Error handling (sentinel errors):
//
//   - ErrDuplicateNode  if AddNode is called twice with the same ID.
//   - ErrNodeNotFound   if an operation references an absent node.
//   - ErrSelfLoop       if Connect is called with a == b.
//   - ErrBadLength      if Connect is given a negative length.
//   - ErrDuplicateEdge  if Connect is called twice for the same pair.
//   - ErrNegativeValue  if AddNode is given a negative value.
//   - ErrEmptyGrid      if FromGrid receives no rows or no columns.
//   - ErrNonRectangular if FromGrid rows differ in length.
package maze

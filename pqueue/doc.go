// Package pqueue provides a generic, stable min-priority queue with
// true decrease-key support, used by the seek and scram controllers to
// rank candidate nodes.
//
// Overview:
//
//   - Insert(item, priority) adds an item; duplicates are rejected with
//     ErrDuplicateItem so callers can detect "already scored" explicitly.
//   - ExtractMin() removes and returns the item with the smallest
//     priority. Among equal priorities, items leave in insertion order
//     (stable), which keeps traversal tie-breaks deterministic.
//   - UpdatePriority(item, priority) re-scores an item in place — a real
//     decrease-key (heap.Fix), not a lazy duplicate push.
//   - Contains(item) answers the "is it already present?" question so
//     callers can branch to Insert or UpdatePriority without driving
//     control flow through errors.
//
// Complexity (N = queue length):
//
//   - Insert:         O(log N)
//   - ExtractMin:     O(log N)
//   - UpdatePriority: O(log N)
//   - Peek, Contains, Len, IsEmpty: O(1)
//
// Error handling (sentinel errors):
//
//   - ErrDuplicateItem if Insert is called with an item already present.
//   - ErrItemNotFound  if UpdatePriority references an absent item.
//   - ErrEmptyQueue    if ExtractMin or Peek is called on an empty queue.
//
// Items must be comparable: the queue tracks positions in an index map
// keyed by the item itself.
package pqueue

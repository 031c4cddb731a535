// Package pqueue implements a stable generic min-priority queue on
// container/heap, with an index map for O(log N) decrease-key.
package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrDuplicateItem indicates Insert was called with an item already present.
	ErrDuplicateItem = errors.New("pqueue: item already present")

	// ErrItemNotFound indicates UpdatePriority referenced an absent item.
	ErrItemNotFound = errors.New("pqueue: item not found")

	// ErrEmptyQueue indicates ExtractMin or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
)

// entry is one heap slot: the item, its priority, an insertion sequence
// number for stable ordering, and its current heap index.
type entry[T comparable] struct {
	item  T
	prio  float64
	seq   uint64 // insertion order; breaks priority ties
	index int    // maintained by innerHeap.Swap
}

// innerHeap implements heap.Interface over entries.
// Less orders by priority, then by insertion sequence, making equal
// priorities leave the queue first-in-first-out.
type innerHeap[T comparable] []*entry[T]

// Len returns the number of entries in the heap.
func (h innerHeap[T]) Len() int { return len(h) }

// Less defines the comparison: smaller priority wins; on ties, the
// earlier insertion wins.
func (h innerHeap[T]) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (h innerHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds a new entry; called by heap.Push.
func (h *innerHeap[T]) Push(x interface{}) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes and returns the last entry; called by heap.Pop.
func (h *innerHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // release the slot
	*h = old[:n-1]

	return e
}

// Queue is a stable min-priority queue over items of comparable type T.
// The zero value is not usable; construct with New.
type Queue[T comparable] struct {
	heap innerHeap[T]
	pos  map[T]*entry[T] // item → its heap entry
	seq  uint64          // next insertion sequence number
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{
		heap: make(innerHeap[T], 0),
		pos:  make(map[T]*entry[T]),
	}
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether item is currently queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.pos[item]

	return ok
}

// Insert adds item with the given priority.
// Returns ErrDuplicateItem if item is already queued; callers that may
// re-score an item should branch on Contains and call UpdatePriority.
func (q *Queue[T]) Insert(item T, priority float64) error {
	if _, ok := q.pos[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	e := &entry[T]{item: item, prio: priority, seq: q.seq}
	q.seq++
	q.pos[item] = e
	heap.Push(&q.heap, e)

	return nil
}

// ExtractMin removes and returns the item with the smallest priority.
// Equal priorities extract in insertion order.
// Returns the zero value and ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) ExtractMin() (T, error) {
	if len(q.heap) == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.heap).(*entry[T])
	delete(q.pos, e.item)

	return e.item, nil
}

// Peek returns the minimum item and its priority without removing it.
// Returns the zero value and ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Peek() (T, float64, error) {
	if len(q.heap) == 0 {
		var zero T

		return zero, 0, ErrEmptyQueue
	}
	e := q.heap[0]

	return e.item, e.prio, nil
}

// UpdatePriority re-scores an already-queued item and restores heap
// order in place. The item keeps its original insertion sequence, so
// ties still resolve by first insertion.
// Returns ErrItemNotFound if item is not queued.
func (q *Queue[T]) UpdatePriority(item T, priority float64) error {
	e, ok := q.pos[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	e.prio = priority
	heap.Fix(&q.heap, e.index)

	return nil
}

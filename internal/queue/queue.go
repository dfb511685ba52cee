// Package queue provides the min-priority structure used by the k-way merge.
package queue

import "container/heap"

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Entry is the current head of one active run.
type Entry struct {
	Key float64 // Key is the head record's sort key.
	Run int     // Run is the index of the run offering the key.
}

// Less orders entries by key, then by run index. Keys are never NaN, so
// this is a strict total order over distinct runs.
func (e Entry) Less(o Entry) bool {
	if e.Key != o.Key {
		return e.Key < o.Key
	}
	return e.Run < o.Run
}

// PriorityQueue is a binary min-heap of Entries.
// Value-based storage: no per-entry allocation.
type PriorityQueue struct {
	items []Entry
}

// NewMin initializes a new min-priority queue.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]Entry, 0, capacity),
	}
}

// TopEntry returns the smallest entry without removing it.
func (pq *PriorityQueue) TopEntry() (Entry, bool) {
	if len(pq.items) == 0 {
		return Entry{}, false
	}
	return pq.items[0], true
}

// PushEntry inserts an entry while maintaining the heap invariant.
func (pq *PriorityQueue) PushEntry(e Entry) {
	pq.items = append(pq.items, e)
	pq.siftUp(len(pq.items) - 1)
}

// PopEntry removes and returns the smallest entry.
func (pq *PriorityQueue) PopEntry() (Entry, bool) {
	n := len(pq.items)
	if n == 0 {
		return Entry{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// ReplaceTop swaps the smallest entry for e and restores the heap. It is the
// advance-cursor step of a merge: one sift instead of a pop and a push.
func (pq *PriorityQueue) ReplaceTop(e Entry) {
	if len(pq.items) == 0 {
		pq.PushEntry(e)
		return
	}
	pq.items[0] = e
	pq.siftDown(0)
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.items[i].Less(pq.items[p]) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.items[r].Less(pq.items[l]) {
			best = r
		}
		if !pq.items[best].Less(pq.items[i]) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool { return pq.items[i].Less(pq.items[j]) }

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x to the priority queue. Use heap.Push, not this method.
func (pq *PriorityQueue) Push(x any) { pq.items = append(pq.items, x.(Entry)) }

// Pop removes and returns the last element. Use heap.Pop, not this method.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	if n == 0 {
		return Entry{}
	}
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

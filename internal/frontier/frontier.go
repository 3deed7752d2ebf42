// SPDX-License-Identifier: MIT

// Package frontier provides the min-priority structures Dijkstra and A* use to
// pick the next node to settle.
//
// Both implementations order members by key ascending and break ties by node
// ID ascending, so for the same sequence of Set calls they pop the same IDs in
// the same order. That keeps Result.VisitedOrder reproducible across runs,
// platforms and frontier kinds.
package frontier

import "container/heap"

// Frontier is a keyed set of node IDs with min extraction.
type Frontier interface {
	// Set inserts id with key, or replaces the key of an existing member.
	Set(id string, key float64)
	// Contains reports whether id is a member.
	Contains(id string) bool
	// PopMin removes and returns the member with the smallest (key, id).
	// ok is false when the frontier is empty.
	PopMin() (id string, key float64, ok bool)
	// Len returns the number of members.
	Len() int
}

// New returns a Heap frontier when useHeap is set, a Linear one otherwise.
func New(useHeap bool, n int) Frontier {
	if useHeap {
		return NewHeap(n)
	}
	return NewLinear(n)
}

// before reports whether (ka, a) orders strictly before (kb, b).
func before(ka float64, a string, kb float64, b string) bool {
	if ka != kb {
		return ka < kb
	}
	return a < b
}

// Linear is a map-backed frontier selected by full scan.
type Linear struct {
	keys map[string]float64
}

// NewLinear returns an empty Linear frontier sized for n members.
func NewLinear(n int) *Linear {
	return &Linear{keys: make(map[string]float64, n)}
}

// Set implements Frontier in O(1).
func (l *Linear) Set(id string, key float64) { l.keys[id] = key }

// Contains implements Frontier in O(1).
func (l *Linear) Contains(id string) bool {
	_, ok := l.keys[id]
	return ok
}

// PopMin implements Frontier in O(n).
func (l *Linear) PopMin() (string, float64, bool) {
	var (
		best    string
		bestKey float64
		found   bool
	)
	for id, k := range l.keys {
		if !found || before(k, id, bestKey, best) {
			best, bestKey, found = id, k, true
		}
	}
	if found {
		delete(l.keys, best)
	}

	return best, bestKey, found
}

// Len implements Frontier.
func (l *Linear) Len() int { return len(l.keys) }

// item is one heap entry; index is maintained by itemHeap.Swap for heap.Fix.
type item struct {
	id    string
	key   float64
	index int
}

// itemHeap implements heap.Interface ordered by (key, id).
type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool { return before(h[i].key, h[i].id, h[j].key, h[j].id) }

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	it.index = -1

	return it
}

// Heap is an indexed binary heap with in-place decrease/increase-key.
type Heap struct {
	h    itemHeap
	byID map[string]*item
}

// NewHeap returns an empty Heap frontier sized for n members.
func NewHeap(n int) *Heap {
	return &Heap{
		h:    make(itemHeap, 0, n),
		byID: make(map[string]*item, n),
	}
}

// Set implements Frontier in O(log n).
func (q *Heap) Set(id string, key float64) {
	if it, ok := q.byID[id]; ok {
		it.key = key
		heap.Fix(&q.h, it.index)
		return
	}
	it := &item{id: id, key: key}
	heap.Push(&q.h, it)
	q.byID[id] = it
}

// Contains implements Frontier in O(1).
func (q *Heap) Contains(id string) bool {
	_, ok := q.byID[id]
	return ok
}

// PopMin implements Frontier in O(log n).
func (q *Heap) PopMin() (string, float64, bool) {
	if q.h.Len() == 0 {
		return "", 0, false
	}
	it := heap.Pop(&q.h).(*item)
	delete(q.byID, it.id)

	return it.id, it.key, true
}

// Len implements Frontier.
func (q *Heap) Len() int { return q.h.Len() }

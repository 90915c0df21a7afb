package bluenoise

import (
	"container/heap"

	"gonum.org/v1/gonum/spatial/r3"
)

// weightEntry associates a live point with its current summed falloff
// weight. The weight is always the sum of contributions from still-live
// neighbors within 2*rmax; a neighbor's contribution is subtracted exactly
// once, at the moment that neighbor is eliminated.
type weightEntry struct {
	id     int
	pos    r3.Vec
	weight float64
}

// weightHeap is an indexed binary max-heap over weightEntry supporting
// extract-max and decrease-key addressed by point identifier. Equal weights
// break toward the lower identifier, so extraction order is deterministic.
type weightHeap struct {
	entries []weightEntry
	slot    map[int]int // id → position in entries
}

func newWeightHeap(entries []weightEntry) *weightHeap {
	h := &weightHeap{
		entries: entries,
		slot:    make(map[int]int, len(entries)),
	}
	for i, e := range h.entries {
		h.slot[e.id] = i
	}
	heap.Init(h)
	return h
}

func (h *weightHeap) Len() int { return len(h.entries) }

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.weight != b.weight {
		return a.weight > b.weight // max-heap
	}
	return a.id < b.id
}

func (h *weightHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].id] = i
	h.slot[h.entries[j].id] = j
}

func (h *weightHeap) Push(x interface{}) {
	e := x.(weightEntry)
	h.slot[e.id] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *weightHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	delete(h.slot, e.id)
	return e
}

// popMax removes and returns the entry with the highest current weight.
func (h *weightHeap) popMax() weightEntry {
	return heap.Pop(h).(weightEntry)
}

// decrease lowers the tracked weight of id by delta and restores heap
// order. An id no longer in the heap (already eliminated) is skipped.
func (h *weightHeap) decrease(id int, delta float64) {
	i, ok := h.slot[id]
	if !ok {
		return
	}
	h.entries[i].weight -= delta
	heap.Fix(h, i)
}

// contains reports whether id is still live.
func (h *weightHeap) contains(id int) bool {
	_, ok := h.slot[id]
	return ok
}

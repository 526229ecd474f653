package hydro

import "container/heap"

// shorePoint is a cell on the boundary of a growing lake, not yet absorbed.
//
// Shore points pop by height ascending; among equal heights the higher id
// pops first. This is the max-heap order spec.md describes as "height
// descending, id ascending" used in reverse: here the heap is a plain
// min-heap on height, which pops the lake's lowest unclaimed neighbour
// directly.
type shorePoint struct {
	id     int
	height float64
}

// shoreHeap implements container/heap.Interface. Duplicate shore points are
// permitted (a cell may be queued as a shore from more than one interior
// neighbour); callers must drain entries equal to a just-popped point.
type shoreHeap []shorePoint

func (h shoreHeap) Len() int { return len(h) }

func (h shoreHeap) Less(i, j int) bool {
	if h[i].height != h[j].height {
		return h[i].height < h[j].height
	}
	return h[i].id > h[j].id
}

func (h shoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *shoreHeap) Push(x any) {
	*h = append(*h, x.(shorePoint))
}

func (h *shoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// popShore pops the lowest shore point and drains any duplicates sitting
// immediately on top of it, returning the single de-duplicated point.
func popShore(h *shoreHeap) shorePoint {
	s := heap.Pop(h).(shorePoint)
	for h.Len() > 0 && (*h)[0] == s {
		heap.Pop(h)
	}
	return s
}

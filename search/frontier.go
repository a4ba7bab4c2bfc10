package search

import (
	"container/heap"

	"github.com/katalvlaran/pathgrid/grid"
)

// Frontier is the open set of a weighted search: cells keyed by a cost.
//
// Pop returns the cell with the smallest key; among equal keys the one
// pushed first wins. Update changes the key of a cell already present
// without changing its insertion rank.
type Frontier interface {
	Push(c grid.Coord, key float64)
	Update(c grid.Coord, key float64)
	Pop() grid.Coord
	Len() int
}

// NewFrontier returns the frontier selected by o.
func NewFrontier(o Options, capacity int) Frontier {
	if o.IndexedFrontier {
		return NewHeapFrontier(capacity)
	}

	return NewScanFrontier(capacity)
}

type entry struct {
	c   grid.Coord
	key float64
	seq int // insertion rank, heap tie-break
	pos int // heap index
}

// ScanFrontier keeps cells in insertion order and finds the minimum by a
// linear scan with strict less-than, so the earliest inserted minimum wins.
//
// Push: O(1). Update, Pop: O(n).
type ScanFrontier struct {
	items []entry
}

// NewScanFrontier returns an empty scan frontier.
func NewScanFrontier(capacity int) *ScanFrontier {
	return &ScanFrontier{items: make([]entry, 0, capacity)}
}

// Push appends c.
func (f *ScanFrontier) Push(c grid.Coord, key float64) {
	f.items = append(f.items, entry{c: c, key: key})
}

// Update rewrites the key of c in place.
func (f *ScanFrontier) Update(c grid.Coord, key float64) {
	for i := range f.items {
		if f.items[i].c == c {
			f.items[i].key = key
			return
		}
	}
}

// Pop removes the first minimum-key cell, keeping the others in order.
// Pop on an empty frontier panics.
func (f *ScanFrontier) Pop() grid.Coord {
	best := 0
	for i := 1; i < len(f.items); i++ {
		if f.items[i].key < f.items[best].key {
			best = i
		}
	}
	c := f.items[best].c
	f.items = append(f.items[:best], f.items[best+1:]...)

	return c
}

// Len returns the number of cells in the frontier.
func (f *ScanFrontier) Len() int { return len(f.items) }

// HeapFrontier is a binary min-heap ordered by (key, insertion rank), with
// an index for in-place key updates.
//
// Push, Update, Pop: O(log n).
type HeapFrontier struct {
	pq    entryPQ
	index map[grid.Coord]*entry
	seq   int
}

// NewHeapFrontier returns an empty heap frontier.
func NewHeapFrontier(capacity int) *HeapFrontier {
	return &HeapFrontier{
		pq:    make(entryPQ, 0, capacity),
		index: make(map[grid.Coord]*entry, capacity),
	}
}

// Push inserts c with the next insertion rank.
func (f *HeapFrontier) Push(c grid.Coord, key float64) {
	e := &entry{c: c, key: key, seq: f.seq}
	f.seq++
	f.index[c] = e
	heap.Push(&f.pq, e)
}

// Update changes the key of c and restores heap order.
func (f *HeapFrontier) Update(c grid.Coord, key float64) {
	e, ok := f.index[c]
	if !ok {
		return
	}
	e.key = key
	heap.Fix(&f.pq, e.pos)
}

// Pop removes the minimum. Pop on an empty frontier panics.
func (f *HeapFrontier) Pop() grid.Coord {
	e := heap.Pop(&f.pq).(*entry)
	delete(f.index, e.c)

	return e.c
}

// Len returns the number of cells in the frontier.
func (f *HeapFrontier) Len() int { return f.pq.Len() }

// entryPQ implements heap.Interface over *entry.
type entryPQ []*entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

func (pq *entryPQ) Push(x interface{}) {
	e := x.(*entry)
	e.pos = len(*pq)
	*pq = append(*pq, e)
}

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return e
}

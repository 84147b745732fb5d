package search

import (
	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/state"
)

// node is one entry of the per-invocation search arena. Parent links are
// arena indices rather than pointers, so the back-link DAG (several nodes
// may share an ancestor) stays a flat slice owned by one search call.
type node struct {
	state  state.State
	parent int // arena index, -1 for the root
	action state.Action
	cost   int
}

// frontier is the discipline hook of the uninformed engine: FIFO for
// breadth-first, LIFO for depth-first. Entries are arena indices.
type frontier interface {
	push(idx int)
	pop() int
	empty() bool
}

// fifoFrontier pops from the front: breadth-first order.
type fifoFrontier struct {
	items []int
}

func (f *fifoFrontier) push(idx int) { f.items = append(f.items, idx) }

func (f *fifoFrontier) pop() int {
	idx := f.items[0]
	f.items = f.items[1:]

	return idx
}

func (f *fifoFrontier) empty() bool { return len(f.items) == 0 }

// lifoFrontier pops from the back: depth-first order.
type lifoFrontier struct {
	items []int
}

func (f *lifoFrontier) push(idx int) { f.items = append(f.items, idx) }

func (f *lifoFrontier) pop() int {
	n := len(f.items) - 1
	idx := f.items[n]
	f.items = f.items[:n]

	return idx
}

func (f *lifoFrontier) empty() bool { return len(f.items) == 0 }

// newFrontier maps a discipline onto its frontier implementation.
func newFrontier(lifo bool) frontier {
	if lifo {
		return &lifoFrontier{}
	}

	return &fifoFrontier{}
}

// pqItem is one priority-queue entry of the informed engine. f orders the
// heap; ties break on lower g, then on insertion sequence, which keeps the
// expansion order (and so the returned path) deterministic.
type pqItem struct {
	idx int // arena index
	g   int // path cost
	f   int // g + heuristic
	seq int // insertion order, final tie-break
}

// nodePQ is a min-heap of pqItem under the "lazy decrease-key" strategy:
// improving a state's cost pushes a fresh entry, and stale entries are
// skipped when popped.
type nodePQ []pqItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then lower g, then insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push, x must be a pqItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// goalReached is the goal condition shared by every variant: agent on the
// finish cell with all dirt removed.
func goalReached(s state.State, finish board.Point) bool {
	return s.Pos() == finish && s.Clean()
}
